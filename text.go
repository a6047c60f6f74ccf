package panel

import "strings"

// WrapText breaks text into lines no wider than width cells. Source newlines
// are preserved; overlong lines break at the last whitespace before the
// limit, and words wider than the whole width are broken mid-word. A width
// of 0 or less disables wrapping and only splits on source newlines.
func WrapText(text string, width int) []string {
	source := strings.Split(text, "\n")
	if width <= 0 {
		return source
	}

	var out []string
	for _, line := range source {
		if StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// wrapLine wraps a single overlong line at whitespace boundaries.
func wrapLine(line string, width int) []string {
	var out []string
	var scrap []rune
	lineWidth := 0

	for _, ch := range line {
		chWidth := RuneWidth(ch)
		if lineWidth+chWidth > width {
			if bp := lastSpace(scrap); bp >= 0 {
				out = append(out, string(scrap[:bp]))
				// The overhang after the break starts the next line.
				overhang := scrap[bp+1:]
				scrap = append(scrap[:0:0], overhang...)
				lineWidth = runesWidth(scrap)
			} else if len(scrap) > 0 {
				// No break point: hard-break the word. A single rune
				// wider than the whole width still gets its own line
				// rather than a spurious empty one before it.
				out = append(out, string(scrap))
				scrap = scrap[:0]
				lineWidth = 0
			}
		}
		// Whitespace never starts a continuation line.
		if len(scrap) == 0 && len(out) > 0 && (ch == ' ' || ch == '\t') {
			continue
		}
		scrap = append(scrap, ch)
		lineWidth += chWidth
	}

	if len(scrap) > 0 {
		out = append(out, string(scrap))
	}
	return out
}

// lastSpace returns the index of the last whitespace rune, or -1.
func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' || runes[i] == '\t' {
			return i
		}
	}
	return -1
}

// runesWidth sums the display widths of the runes.
func runesWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += RuneWidth(r)
	}
	return w
}
