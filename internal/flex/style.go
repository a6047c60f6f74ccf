package flex

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint is returned when a style carries a negative basis,
// weight, gap or edge value. Constraints are validated when a style is set
// on a node, never during solving.
var ErrInvalidConstraint = errors.New("invalid constraint")

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis, rounded toward start
	AlignStretch              // Stretch to fill cross axis
)

// Style contains the layout constraints for a node.
type Style struct {
	// Sizing. Width/Height act as the basis on their axis; the effective
	// basis is max(resolved value, intrinsic content size).
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Container properties
	Direction Direction
	Align     Align // Cross-axis placement of children
	Gap       int   // Cells between adjacent children on the main axis

	// Item properties
	Grow      float64 // Share of positive remaining space
	Shrink    float64 // Share of deficit when children overflow (default 1)
	AlignSelf *Align  // Override parent's Align (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with auto sizing, row direction, stretch
// alignment, and shrink weight 1.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Fixed(0),
		MinHeight: Fixed(0),
		MaxWidth:  Auto(), // No maximum
		MaxHeight: Auto(),
		Direction: Row,
		Align:     AlignStretch,
		Shrink:    1.0,
	}
}

// Validate reports whether the style holds any negative constraint.
// All violations wrap [ErrInvalidConstraint].
func (s Style) Validate() error {
	for _, dim := range []struct {
		name string
		v    Value
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"min width", s.MinWidth},
		{"min height", s.MinHeight},
		{"max width", s.MaxWidth},
		{"max height", s.MaxHeight},
	} {
		if !dim.v.IsAuto() && dim.v.Amount < 0 {
			return fmt.Errorf("%w: negative %s %v", ErrInvalidConstraint, dim.name, dim.v.Amount)
		}
	}
	if s.Grow < 0 {
		return fmt.Errorf("%w: negative grow weight %v", ErrInvalidConstraint, s.Grow)
	}
	if s.Shrink < 0 {
		return fmt.Errorf("%w: negative shrink weight %v", ErrInvalidConstraint, s.Shrink)
	}
	if s.Gap < 0 {
		return fmt.Errorf("%w: negative gap %d", ErrInvalidConstraint, s.Gap)
	}
	for _, e := range []struct {
		name string
		e    Edges
	}{
		{"padding", s.Padding},
		{"margin", s.Margin},
	} {
		if e.e.Top < 0 || e.e.Right < 0 || e.e.Bottom < 0 || e.e.Left < 0 {
			return fmt.Errorf("%w: negative %s %+v", ErrInvalidConstraint, e.name, e.e)
		}
	}
	return nil
}
