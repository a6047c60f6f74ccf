package panel

// BorderStyle selects a set of box-drawing characters for a frame border.
type BorderStyle int

const (
	// BorderNone draws nothing.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
	// BorderRounded uses single lines with rounded corners.
	BorderRounded
	// BorderThick uses heavy box-drawing characters.
	BorderThick
)

// BorderChars holds the eight runes that make up a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBorder paints a box border along the perimeter of rect. Cells outside
// the grid clip silently; rectangles smaller than 2x2 have no perimeter and
// paint nothing.
func DrawBorder(g *Grid, rect Rect, border BorderStyle, style Style) {
	DrawBorderClipped(g, rect, border, style, g.Rect())
}

// DrawBorderClipped paints a box border with positions computed from the full
// rect but only cells inside clip painted. Use it when a bordered region is
// partially scrolled out of view: the visible part of the border stays
// aligned with the region, not with the clip edge.
func DrawBorderClipped(g *Grid, rect Rect, border BorderStyle, style Style, clip Rect) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left, top := rect.X, rect.Y
	right, bottom := rect.Right()-1, rect.Bottom()-1

	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			g.SetRune(x, y, r, style)
		}
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawBorderTitle paints a border with a title centered in the top edge.
// Overlong titles truncate at the corner cells.
func DrawBorderTitle(g *Grid, rect Rect, border BorderStyle, title string, style Style) {
	DrawBorder(g, rect, border, style)

	room := rect.Width - 2
	if title == "" || room <= 0 {
		return
	}

	var kept []rune
	width := 0
	for _, r := range title {
		w := RuneWidth(r)
		if width+w > room {
			break
		}
		kept = append(kept, r)
		width += w
	}
	if len(kept) == 0 {
		return
	}

	x := rect.X + 1 + (room-width)/2
	for _, r := range kept {
		g.SetRune(x, rect.Y, r, style)
		x += RuneWidth(r)
	}
}

// DrawBorderGradient paints a border with a gradient running around the
// perimeter. The parameter is mirrored: it ramps up over the first half of
// the perimeter and back down over the second, so the colors meet without a
// seam where the perimeter wraps.
func DrawBorderGradient(g *Grid, rect Rect, border BorderStyle, grad Gradient, baseStyle Style) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left, top := rect.X, rect.Y
	right, bottom := rect.Right()-1, rect.Bottom()-1
	w := float64(rect.Width)
	h := float64(rect.Height)
	perimeter := 2*w + 2*h - 4

	at := func(x, y int) float64 {
		// Clockwise distance from the top-left corner.
		var pos float64
		switch {
		case y == top:
			pos = float64(x - left)
		case x == right:
			pos = w - 1 + float64(y-top)
		case y == bottom:
			pos = w - 1 + h - 1 + float64(right-x)
		default:
			pos = w - 1 + h - 1 + w - 1 + float64(bottom-y)
		}
		t := pos / perimeter
		if t <= 0.5 {
			return 2 * t
		}
		return 2 * (1 - t)
	}

	set := func(x, y int, r rune) {
		style := baseStyle
		style.Fg = grad.At(at(x, y))
		g.SetRune(x, y, r, style)
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
