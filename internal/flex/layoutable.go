package flex

// Layout holds the computed position and size after a solve pass.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are
	// placed and content is painted.
	ContentRect Rect
}

// Layoutable is the interface for anything that can participate in layout.
// The solver works entirely against this interface.
type Layoutable interface {
	// LayoutStyle returns the layout constraints for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children in declaration order.
	LayoutChildren() []Layoutable

	// IntrinsicSize returns the natural content-based dimensions of the
	// node. The solver takes the basis as max(fixed basis, intrinsic size).
	IntrinsicSize() (width, height int)

	// SetLayout is called by the solver to store the computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IsDirty returns whether this node needs recalculation.
	IsDirty() bool

	// SetDirty marks this node as needing recalculation or not.
	SetDirty(dirty bool)
}
