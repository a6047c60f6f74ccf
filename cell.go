package panel

import "github.com/mattn/go-runewidth"

// Cell is a single grid position: a codepoint with styling. Cells are value
// types compared with Equal; equality is the dirty key for frame diffing.
// Wide characters (CJK, emoji) occupy two cells: the first holds the rune,
// the second is a continuation marker.
type Cell struct {
	Rune  rune  // The character (0 for empty or continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewCellWithWidth creates a Cell with an explicit width. Use this for
// continuation cells (width 0) or when the width is already known.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// EmptyCell returns the blank cell: a space with default styling.
func EmptyCell() Cell {
	return NewCell(' ', NewStyle())
}

// IsContinuation returns true if this cell is the tail of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical by value.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// IsEmpty returns true if this cell represents an empty/blank position:
// a zero rune, or a space with default styling.
func (c Cell) IsEmpty() bool {
	if c.Rune == 0 {
		return true
	}
	return c.Rune == ' ' && c.Style.Equal(NewStyle())
}

// RuneWidth returns the display width of a rune in cells: 1 for most
// characters, 2 for wide characters. Control characters report 1 since they
// still occupy a cell when painted.
func RuneWidth(r rune) int {
	if r < 32 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the display width of a string in cells. It sums
// RuneWidth over the runes, so it always matches the cells a painting helper
// advances (zero-width runes included).
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
