package panel

// Viewport is a logical window over content larger than the visible area.
// It tracks a content size, a visible size, and a scroll offset; the offset
// is always clamped to [0, content - visible] per axis, so out-of-content
// space is never exposed.
//
// A viewport persists across frames and is mutated only by explicit scroll
// operations, independent of layout recomputation.
type Viewport struct {
	contentWidth  int
	contentHeight int
	visibleWidth  int
	visibleHeight int
	offsetX       int
	offsetY       int
}

// NewViewport creates a viewport with the given visible size and no content.
// Negative dimensions clamp to zero.
func NewViewport(visibleWidth, visibleHeight int) *Viewport {
	return &Viewport{
		visibleWidth:  max(visibleWidth, 0),
		visibleHeight: max(visibleHeight, 0),
	}
}

// SetContentSize updates the logical content dimensions and re-clamps the
// offset (shrinking content may force the offset down).
func (v *Viewport) SetContentSize(width, height int) {
	v.contentWidth = max(width, 0)
	v.contentHeight = max(height, 0)
	v.clampOffset()
}

// ContentSize returns the logical content dimensions.
func (v *Viewport) ContentSize() (width, height int) {
	return v.contentWidth, v.contentHeight
}

// ResizeVisible updates the visible area and re-clamps the offset.
func (v *Viewport) ResizeVisible(width, height int) {
	v.visibleWidth = max(width, 0)
	v.visibleHeight = max(height, 0)
	v.clampOffset()
}

// VisibleSize returns the visible area dimensions.
func (v *Viewport) VisibleSize() (width, height int) {
	return v.visibleWidth, v.visibleHeight
}

// Offset returns the current scroll offset.
func (v *Viewport) Offset() (x, y int) {
	return v.offsetX, v.offsetY
}

// MaxScroll returns the maximum offset per axis: zero when the content fits
// entirely within the visible area.
func (v *Viewport) MaxScroll() (maxX, maxY int) {
	return max(0, v.contentWidth-v.visibleWidth), max(0, v.contentHeight-v.visibleHeight)
}

// SetOffset sets the scroll offset, clamped per axis.
func (v *Viewport) SetOffset(x, y int) {
	v.offsetX = x
	v.offsetY = y
	v.clampOffset()
}

// ScrollBy adds a delta to the offset, then clamps. Relative scrolling never
// overshoots the content edge.
func (v *Viewport) ScrollBy(dx, dy int) {
	v.SetOffset(v.offsetX+dx, v.offsetY+dy)
}

// ScrollToTop scrolls to the top of the content, keeping the horizontal
// offset.
func (v *Viewport) ScrollToTop() {
	v.SetOffset(v.offsetX, 0)
}

// ScrollToBottom scrolls to the bottom of the content, keeping the
// horizontal offset.
func (v *Viewport) ScrollToBottom() {
	_, maxY := v.MaxScroll()
	v.SetOffset(v.offsetX, maxY)
}

// AtBottom returns true if the viewport shows the end of the content.
func (v *Viewport) AtBottom() bool {
	_, maxY := v.MaxScroll()
	return v.offsetY >= maxY
}

// VisibleRegion returns the rectangle of logical content currently mapped
// onto the grid: (offsetX, offsetY, visibleWidth, visibleHeight).
func (v *Viewport) VisibleRegion() Rect {
	return NewRect(v.offsetX, v.offsetY, v.visibleWidth, v.visibleHeight)
}

func (v *Viewport) clampOffset() {
	maxX, maxY := v.MaxScroll()
	v.offsetX = clampInt(v.offsetX, 0, maxX)
	v.offsetY = clampInt(v.offsetY, 0, maxY)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
