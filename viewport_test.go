package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportScrollClamping(t *testing.T) {
	vp := NewViewport(10, 1)
	vp.SetContentSize(20, 1)

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"in range", 5, 0, 5, 0},
		{"at max", 10, 0, 10, 0},
		{"beyond max clamps", 15, 0, 10, 0},
		{"negative clamps to zero", -3, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp.SetOffset(tt.x, tt.y)
			x, y := vp.Offset()
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestViewportScrollByOvershoot(t *testing.T) {
	vp := NewViewport(10, 1)
	vp.SetContentSize(20, 1)

	vp.ScrollBy(15, 0)
	x, y := vp.Offset()
	assert.Equal(t, 10, x, "relative scroll clamps at the content edge")
	assert.Equal(t, 0, y)

	vp.ScrollBy(-100, 0)
	x, _ = vp.Offset()
	assert.Equal(t, 0, x)
}

func TestViewportContentFitsEntirely(t *testing.T) {
	vp := NewViewport(10, 10)
	vp.SetContentSize(5, 5)

	maxX, maxY := vp.MaxScroll()
	assert.Equal(t, 0, maxX)
	assert.Equal(t, 0, maxY)

	vp.ScrollBy(3, 3)
	x, y := vp.Offset()
	assert.Equal(t, 0, x, "content smaller than the viewport never scrolls")
	assert.Equal(t, 0, y)
}

func TestViewportShrinkingContentReclamps(t *testing.T) {
	vp := NewViewport(10, 5)
	vp.SetContentSize(30, 20)
	vp.SetOffset(20, 15)

	vp.SetContentSize(15, 8)
	x, y := vp.Offset()
	assert.Equal(t, 5, x)
	assert.Equal(t, 3, y)
}

func TestViewportResizeVisibleReclamps(t *testing.T) {
	vp := NewViewport(10, 5)
	vp.SetContentSize(20, 10)
	vp.SetOffset(10, 5)

	// A larger visible area leaves less room to scroll.
	vp.ResizeVisible(18, 9)
	x, y := vp.Offset()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)

	w, h := vp.VisibleSize()
	assert.Equal(t, 18, w)
	assert.Equal(t, 9, h)
}

func TestViewportScrollToBottom(t *testing.T) {
	vp := NewViewport(10, 5)
	vp.SetContentSize(10, 42)

	assert.False(t, vp.AtBottom())

	vp.ScrollToBottom()
	_, y := vp.Offset()
	assert.Equal(t, 37, y)
	assert.True(t, vp.AtBottom())

	vp.ScrollToTop()
	_, y = vp.Offset()
	assert.Equal(t, 0, y)
}

func TestViewportVisibleRegion(t *testing.T) {
	vp := NewViewport(10, 5)
	vp.SetContentSize(40, 30)
	vp.SetOffset(7, 3)

	assert.Equal(t, NewRect(7, 3, 10, 5), vp.VisibleRegion())
}

func TestViewportNegativeDimensionsClamp(t *testing.T) {
	vp := NewViewport(-5, -5)
	w, h := vp.VisibleSize()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	vp.SetContentSize(-10, -10)
	cw, ch := vp.ContentSize()
	assert.Equal(t, 0, cw)
	assert.Equal(t, 0, ch)
}
