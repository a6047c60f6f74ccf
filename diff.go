package panel

import "fmt"

// CellUpdate is a single cell that differs between two frames: a position
// and the new cell value. A frame's updates are consumed once by the device
// driver, then discarded.
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// Diff compares two grids of identical dimensions and returns one update per
// cell position whose value differs, in row-major order (top-to-bottom,
// left-to-right, which minimizes cursor movement on serial devices).
//
// Cells are compared by value, so diffing a grid against itself (or any
// equal grid) yields an empty sequence. Grids of mismatched dimensions fail
// with [ErrDimensionMismatch]; a resize must be handled as a full redraw via
// [FullFrame] instead.
func Diff(prev, next *Grid) ([]CellUpdate, error) {
	if prev.width != next.width || prev.height != next.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, prev.width, prev.height, next.width, next.height)
	}

	updates := make([]CellUpdate, 0, next.width) // Pre-allocate one row
	for y := 0; y < next.height; y++ {
		for x := 0; x < next.width; x++ {
			idx := y*next.width + x
			if !next.cells[idx].Equal(prev.cells[idx]) {
				updates = append(updates, CellUpdate{X: x, Y: y, Cell: next.cells[idx]})
			}
		}
	}
	return updates, nil
}

// FullFrame synthesizes a whole-grid update sequence, one entry per cell in
// row-major order. Use after a resize or to repaint a corrupted device.
func FullFrame(g *Grid) []CellUpdate {
	updates := make([]CellUpdate, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: g.cells[y*g.width+x]})
		}
	}
	return updates
}

// ApplyUpdates writes a sequence of updates into a grid, skipping positions
// outside its bounds. Applying Diff(a, b) to a copy of a yields b.
func ApplyUpdates(g *Grid, updates []CellUpdate) {
	for _, u := range updates {
		g.setCell(u.X, u.Y, u.Cell)
	}
}
