package panel

import (
	"fmt"

	"github.com/panelkit/go-panel/internal/flex"
)

// Compile-time check that Node participates in layout.
var _ Layoutable = (*Node)(nil)

// Node is a layout tree node. Interior nodes hold layout constraints and an
// ordered child sequence (order determines main-axis placement); only leaf
// nodes hold paintable content. Each node is owned exclusively by its
// parent; the parent pointer is a non-owning back-link used for dirty
// propagation only.
type Node struct {
	children []*Node
	parent   *Node

	style  LayoutStyle
	layout LayoutResult
	dirty  bool

	content Content
}

// New creates a node from the given options. Options carrying invalid
// constraints (negative sizes, weights, gaps or edges) fail with
// ErrInvalidConstraint.
func New(opts ...Option) (*Node, error) {
	n := &Node{
		style: DefaultLayoutStyle(),
		dirty: true,
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MustNew is New for statically known option sets; it panics on invalid
// constraints.
func MustNew(opts ...Option) *Node {
	n, err := New(opts...)
	if err != nil {
		panic("panel: " + err.Error())
	}
	return n
}

// --- Tree mutation ---

// AddChild appends children in order. Fails if this node holds content
// (only leaves paint) or if a child already has a parent.
func (n *Node) AddChild(children ...*Node) error {
	if n.content.Kind != ContentNone {
		return fmt.Errorf("%w: node with content cannot have children", ErrInvalidConstraint)
	}
	for _, child := range children {
		if child.parent != nil {
			return fmt.Errorf("%w: child already has a parent", ErrInvalidConstraint)
		}
		if n.hasAncestor(child) {
			return fmt.Errorf("%w: child is an ancestor of this node", ErrInvalidConstraint)
		}
	}
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.MarkDirty()
	return nil
}

// InsertChild inserts a child at index i (clamped to the child list), so
// callers can control main-axis ordering.
func (n *Node) InsertChild(i int, child *Node) error {
	if n.content.Kind != ContentNone {
		return fmt.Errorf("%w: node with content cannot have children", ErrInvalidConstraint)
	}
	if child.parent != nil {
		return fmt.Errorf("%w: child already has a parent", ErrInvalidConstraint)
	}
	if n.hasAncestor(child) {
		return fmt.Errorf("%w: child is an ancestor of this node", ErrInvalidConstraint)
	}
	i = clampIndex(i, len(n.children))
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	n.MarkDirty()
	return nil
}

// RemoveChild removes a child by pointer, preserving sibling order.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// hasAncestor reports whether candidate is this node or one of its
// ancestors. Attaching such a node as a child would close a cycle, which
// the solver's unguarded recursion assumes cannot exist.
func (n *Node) hasAncestor(candidate *Node) bool {
	for node := n; node != nil; node = node.parent {
		if node == candidate {
			return true
		}
	}
	return false
}

// Children returns the ordered child list. The slice is the node's own;
// treat it as read-only.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the owning parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// --- Constraints and content ---

// Style returns the node's layout constraints.
func (n *Node) Style() LayoutStyle {
	return n.style
}

// SetStyle replaces the layout constraints, validating them first.
func (n *Node) SetStyle(style LayoutStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	n.style = style
	n.MarkDirty()
	return nil
}

// Content returns the node's content.
func (n *Node) Content() Content {
	return n.content
}

// SetContent attaches paintable content. Fails on a node with children:
// interior nodes hold only layout parameters.
func (n *Node) SetContent(c Content) error {
	if c.Kind != ContentNone && len(n.children) > 0 {
		return fmt.Errorf("%w: node with children cannot hold content", ErrInvalidConstraint)
	}
	if c.Kind == ContentParagraph && c.WrapWidth < 0 {
		return fmt.Errorf("%w: negative wrap width %d", ErrInvalidConstraint, c.WrapWidth)
	}
	n.content = c
	n.MarkDirty()
	return nil
}

// SetText replaces the node's content with a single-line text run, keeping
// the current content style.
func (n *Node) SetText(text string) error {
	return n.SetContent(TextContent(text, n.content.Style))
}

// --- Layout participation ---

// LayoutStyle returns the layout constraints for the solver.
func (n *Node) LayoutStyle() LayoutStyle {
	return n.style
}

// LayoutChildren returns the children in declaration order.
func (n *Node) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		out[i] = child
	}
	return out
}

// IntrinsicSize returns the natural content-based dimensions of this node.
// Leaves report their content size plus padding; containers accumulate
// children along the main axis (plus gaps) and take the cross-axis maximum.
func (n *Node) IntrinsicSize() (width, height int) {
	if n.content.Kind != ContentNone {
		w, h := n.content.intrinsicSize()
		return w + n.style.Padding.Horizontal(), h + n.style.Padding.Vertical()
	}

	if len(n.children) == 0 {
		return 0, 0
	}

	isRow := n.style.Direction == Row
	var iw, ih int

	for i, child := range n.children {
		cw, ch := child.IntrinsicSize()
		cw += child.style.Margin.Horizontal()
		ch += child.style.Margin.Vertical()

		if isRow {
			iw += cw
			ih = max(ih, ch)
		} else {
			iw = max(iw, cw)
			ih += ch
		}
		if i > 0 {
			if isRow {
				iw += n.style.Gap
			} else {
				ih += n.style.Gap
			}
		}
	}

	return iw + n.style.Padding.Horizontal(), ih + n.style.Padding.Vertical()
}

// SetLayout stores the computed layout. Called by the solver.
func (n *Node) SetLayout(l LayoutResult) {
	n.layout = l
}

// GetLayout returns the last computed layout.
func (n *Node) GetLayout() LayoutResult {
	return n.layout
}

// IsDirty returns whether this node's subtree has pending mutations since
// the last solve.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty marks this node as needing recalculation or not.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}

// MarkDirty marks this node and all ancestors as needing recalculation.
// Dirty propagates up, so a clean root guarantees a clean tree.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// Solve computes rectangles for this node and all descendants within the
// available space.
func (n *Node) Solve(availableWidth, availableHeight int) {
	flex.Solve(n, availableWidth, availableHeight)
}

// Rect returns the computed border box.
func (n *Node) Rect() Rect {
	return n.layout.Rect
}

// ContentRect returns the computed content area (border box minus padding).
func (n *Node) ContentRect() Rect {
	return n.layout.ContentRect
}

// clampIndex clamps i to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
