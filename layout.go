package panel

import "github.com/panelkit/go-panel/internal/flex"

// Direction specifies the main axis for laying out children.
type Direction = flex.Direction

const (
	// Row lays children out left-to-right.
	Row = flex.Row
	// Column lays children out top-to-bottom.
	Column = flex.Column
)

// Align specifies how children are positioned on the cross axis.
type Align = flex.Align

const (
	// AlignStart aligns to the start of the cross axis.
	AlignStart = flex.AlignStart
	// AlignEnd aligns to the end of the cross axis.
	AlignEnd = flex.AlignEnd
	// AlignCenter centers on the cross axis, rounding toward the start edge.
	AlignCenter = flex.AlignCenter
	// AlignStretch stretches to fill the cross axis.
	AlignStretch = flex.AlignStretch
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value = flex.Value

// LayoutStyle contains the layout constraints for a node.
type LayoutStyle = flex.Style

// Rect is a rectangle in grid-cell coordinates.
type Rect = flex.Rect

// Edges holds per-side spacing values (padding or margin).
type Edges = flex.Edges

// LayoutResult holds a node's computed rectangles after a solve pass.
type LayoutResult = flex.Layout

// Layoutable is the interface the solver works against.
type Layoutable = flex.Layoutable

// Fixed returns a Value representing an absolute number of grid cells.
func Fixed(n int) Value {
	return flex.Fixed(n)
}

// Percent returns a Value representing a percentage of available space.
func Percent(p float64) Value {
	return flex.Percent(p)
}

// Auto returns a Value computed from content or flex distribution.
func Auto() Value {
	return flex.Auto()
}

// DefaultLayoutStyle returns a LayoutStyle with sensible defaults.
func DefaultLayoutStyle() LayoutStyle {
	return flex.DefaultStyle()
}

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return flex.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return flex.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return flex.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return flex.EdgeTRBL(t, r, b, l)
}

// Solve computes concrete rectangles for every node in the tree from its
// constraints and the available space. Solving twice with unchanged inputs
// yields identical rectangles.
func Solve(root Layoutable, availableWidth, availableHeight int) {
	flex.Solve(root, availableWidth, availableHeight)
}
