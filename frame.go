package panel

import "github.com/panelkit/go-panel/internal/debug"

// Frame is a double-buffered pair of grids: the previously flushed frame and
// the next frame being painted. Painting always produces a complete next
// frame which is then diffed against the previous one, keeping the renderer
// stateless about what changed.
//
// A Frame is owned by a single rendering loop; it provides no internal
// synchronization.
type Frame struct {
	prev *Grid
	next *Grid
}

// NewFrame creates a frame pair of the given dimensions with both grids set
// to fill.
func NewFrame(width, height int, fill Cell) *Frame {
	return &Frame{
		prev: NewGrid(width, height, fill),
		next: NewGrid(width, height, fill),
	}
}

// Next returns the grid for the frame under construction. Paint into it,
// then call Flush.
func (f *Frame) Next() *Grid {
	return f.next
}

// Prev returns the last flushed grid.
func (f *Frame) Prev() *Grid {
	return f.prev
}

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.next.Size()
}

// Flush diffs the next frame against the previous one and promotes it: after
// Flush the next grid becomes the comparison base for the following frame.
// The returned updates are in row-major order.
func (f *Frame) Flush() []CellUpdate {
	updates, err := Diff(f.prev, f.next)
	if err != nil {
		// Both halves are constructed together and replaced together in
		// Resize, so they can never disagree on dimensions.
		panic("panel: frame buffers diverged: " + err.Error())
	}
	debug.Logf("frame flush: %d cell updates", len(updates))

	copy(f.prev.cells, f.next.cells)
	return updates
}

// Resize replaces both grids with freshly constructed ones of the new
// dimensions (grids themselves never resize) and returns the full-grid
// update sequence the device needs after a dimension change.
func (f *Frame) Resize(width, height int, fill Cell) []CellUpdate {
	f.prev = NewGrid(width, height, fill)
	f.next = NewGrid(width, height, fill)
	return FullFrame(f.next)
}

// Device is the caller-supplied driver that writes cell updates to real
// display hardware, a terminal, or a test double. The engine never performs
// device I/O itself.
type Device interface {
	Apply(updates []CellUpdate) error
}

// Render flushes the frame and forwards any updates to the device. Frames
// with no changes produce no device traffic.
func Render(dev Device, f *Frame) error {
	updates := f.Flush()
	if len(updates) == 0 {
		return nil
	}
	return dev.Apply(updates)
}

// RenderFull pushes every cell of the next frame to the device regardless of
// the previous frame, then promotes it. Use after startup, a resize, or
// device corruption.
func RenderFull(dev Device, f *Frame) error {
	updates := FullFrame(f.next)
	copy(f.prev.cells, f.next.cells)
	if len(updates) == 0 {
		return nil
	}
	return dev.Apply(updates)
}
