package panel

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size 2D buffer of styled cells, stored row-major. It is
// both the painting target and the diffing substrate.
//
// Dimensions are immutable after creation: growing or shrinking a grid means
// constructing a replacement and discarding the old one. Frames are typically
// double-buffered as a previous/next Grid pair (see [Frame]).
//
// Get and Set enforce bounds with [ErrOutOfBounds]. The painting helpers
// (SetRune, SetString, Fill, ...) instead clip silently, since painting
// partially off-grid content is expected behavior, not an error.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid of the given fixed dimensions with every cell set
// to fill. Negative dimensions clamp to zero.
func NewGrid(width, height int, fill Cell) *Grid {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the grid dimensions (width, height).
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Rect returns the grid bounds as a Rect starting at (0, 0).
func (g *Grid) Rect() Rect {
	return NewRect(0, 0, g.width, g.height)
}

// idx converts (x, y) coordinates to a flat index, or -1 if out of bounds.
func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Get returns the cell at (x, y), or ErrOutOfBounds if either coordinate is
// outside [0, width) x [0, height).
func (g *Grid) Get(x, y int) (Cell, error) {
	idx := g.idx(x, y)
	if idx < 0 {
		return Cell{}, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[idx], nil
}

// Set overwrites the cell at (x, y) in place, with the same bounds contract
// as Get.
func (g *Grid) Set(x, y int, c Cell) error {
	idx := g.idx(x, y)
	if idx < 0 {
		return fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[idx] = c
	return nil
}

// Clear resets every cell to fill without changing dimensions.
func (g *Grid) Clear(fill Cell) {
	for i := range g.cells {
		g.cells[i] = fill
	}
}

// Clone returns a grid with the same dimensions and cell values.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, width: g.width, height: g.height}
}

// cell returns the cell at (x, y), or the zero Cell when out of bounds.
// Internal painting helper; the exported accessor is Get.
func (g *Grid) cell(x, y int) Cell {
	idx := g.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return g.cells[idx]
}

// setCell writes a cell, silently dropping out-of-bounds writes.
func (g *Grid) setCell(x, y int, c Cell) {
	idx := g.idx(x, y)
	if idx < 0 {
		return
	}
	g.cells[idx] = c
}

// SetRune paints a rune at (x, y) with the given style, clipping silently at
// the grid edge. Wide characters get a continuation cell; overlapping an
// existing wide character clears the remnant halves so no orphaned
// continuation cells survive.
func (g *Grid) SetRune(x, y int, r rune, style Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}

	width := RuneWidth(r)
	current := g.cell(x, y)

	// Landing on a continuation cell: clear the wide char it belongs to.
	if current.IsContinuation() {
		g.clearWideCharAt(x, y)
	}

	// Landing on the head of a wide char: clear its continuation.
	if current.Width == 2 && x+1 < g.width {
		g.setCell(x+1, y, EmptyCell())
	}

	// A wide rune overlapping whatever sits at x+1.
	if width == 2 && x+1 < g.width {
		next := g.cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			g.clearWideCharAt(x+1, y)
		}
	}

	// A wide rune at the last column cannot fit; paint a space instead.
	if width == 2 && x+1 >= g.width {
		g.setCell(x, y, NewCell(' ', style))
		return
	}

	g.setCell(x, y, NewCellWithWidth(r, style, uint8(width)))
	if width == 2 {
		g.setCell(x+1, y, NewCellWithWidth(0, style, 0))
	}
}

// clearWideCharAt clears the wide character that includes position (x, y),
// whether (x, y) is its head or its continuation.
func (g *Grid) clearWideCharAt(x, y int) {
	cell := g.cell(x, y)

	if cell.IsContinuation() {
		if x > 0 {
			g.setCell(x-1, y, EmptyCell())
		}
		g.setCell(x, y, EmptyCell())
	} else if cell.Width == 2 {
		g.setCell(x, y, EmptyCell())
		if x+1 < g.width {
			g.setCell(x+1, y, EmptyCell())
		}
	}
}

// SetString paints a string starting at (x, y), stopping at the grid edge
// without wrapping. Returns the total display width painted.
func (g *Grid) SetString(x, y int, s string, style Style) int {
	return g.SetStringClipped(x, y, s, style, g.Rect())
}

// SetStringClipped paints a string clipped to a rectangle; characters
// outside clipRect are skipped. Returns the total display width painted.
func (g *Grid) SetStringClipped(x, y int, s string, style Style, clipRect Rect) int {
	clipRect = clipRect.Intersect(g.Rect())
	if y < clipRect.Y || y >= clipRect.Bottom() {
		return 0
	}

	painted := 0
	curX := x

	for _, r := range s {
		width := RuneWidth(r)

		// Entirely before the clip region: advance without painting.
		if curX+width <= clipRect.X {
			curX += width
			continue
		}
		if curX >= clipRect.Right() {
			break
		}

		if curX >= clipRect.X {
			// A wide char straddling the right clip edge is dropped whole.
			if width == 2 && curX+1 >= clipRect.Right() {
				curX += width
				continue
			}
			g.SetRune(curX, y, r, style)
			painted += width
		}
		curX += width
	}

	return painted
}

// Fill fills a rectangle with the given rune and style, intersected with the
// grid bounds.
func (g *Grid) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(g.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				// Wide rune does not fit in the remaining span.
				g.SetRune(x, y, ' ', style)
				x++
			} else {
				g.SetRune(x, y, r, style)
				x += width
			}
		}
	}
}

// gradientT maps a position inside rect to a gradient parameter in [0, 1]
// based on the gradient's direction.
func gradientT(grad Gradient, rect Rect, x, y int) float64 {
	w := max(float64(rect.Width), 1)
	h := max(float64(rect.Height), 1)

	switch grad.Direction {
	case GradientVertical:
		return float64(y-rect.Y) / h
	case GradientDiagonalDown:
		return (float64(x-rect.X)/w + float64(y-rect.Y)/h) / 2
	case GradientDiagonalUp:
		return (float64(x-rect.X)/w + float64(rect.Bottom()-1-y)/h) / 2
	default: // GradientHorizontal
		return float64(x-rect.X) / w
	}
}

// SetStringGradient paints a string with a gradient applied to the
// foreground, one color per character along the string. Returns the total
// display width painted.
func (g *Grid) SetStringGradient(x, y int, s string, grad Gradient, baseStyle Style) int {
	if y < 0 || y >= g.height {
		return 0
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	painted := 0
	curX := x

	for i, r := range runes {
		if curX >= g.width {
			break
		}
		width := RuneWidth(r)
		if curX < 0 || (width == 2 && curX+1 >= g.width) {
			curX += width
			continue
		}

		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := baseStyle
		style.Fg = grad.At(t)

		g.SetRune(curX, y, r, style)
		curX += width
		painted += width
	}

	return painted
}

// FillGradient fills a rectangle with a gradient background.
func (g *Grid) FillGradient(rect Rect, r rune, grad Gradient, baseStyle Style) {
	rect = rect.Intersect(g.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			style := baseStyle
			style.Bg = grad.At(gradientT(grad, rect, x, y))

			if width == 2 && x+1 >= rect.Right() {
				g.SetRune(x, y, ' ', style)
				x++
			} else {
				g.SetRune(x, y, r, style)
				x += width
			}
		}
	}
}

// String renders the grid to a string for debugging and tests. Rows are
// newline-separated; continuation cells are skipped.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := g.cells[y*g.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the grid content with trailing spaces removed from
// each line.
func (g *Grid) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		for x := 0; x < g.width; x++ {
			cell := g.cells[y*g.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
