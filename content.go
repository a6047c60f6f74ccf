package panel

// TextAlign specifies how text is aligned within its content area.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// ContentKind tags the closed set of leaf content variants. The display
// surface (fixed-width cells) keeps this vocabulary small and enumerable,
// so painting dispatches on the tag rather than open-ended interfaces.
type ContentKind uint8

const (
	// ContentNone marks a node with no paintable content (containers).
	ContentNone ContentKind = iota
	// ContentText is a single-line styled text run.
	ContentText
	// ContentParagraph is word-wrapped multi-line text.
	ContentParagraph
	// ContentFill fills the content area with one rune.
	ContentFill
	// ContentGraph plots a sample window as one column per sample.
	ContentGraph
	// ContentPainter delegates painting to a caller-supplied function.
	ContentPainter
)

// PainterFunc paints custom content into the given area of a grid. The area
// is already clipped to the visible region.
type PainterFunc func(g *Grid, area Rect)

// Content is the paintable payload of a leaf node, dispatched by Kind.
// Only the fields relevant to the kind are set.
type Content struct {
	Kind ContentKind

	// Text and Paragraph
	Text  string
	Style Style
	Align TextAlign

	// Paragraph: wrap width in cells; 0 wraps to the content area width.
	WrapWidth int

	// Fill
	FillRune rune

	// Graph
	Graph  *Graph
	Marker rune // Rune plotted per sample; 0 defaults to '•'

	// Painter
	Painter PainterFunc
}

// TextContent returns single-line text content.
func TextContent(text string, style Style) Content {
	return Content{Kind: ContentText, Text: text, Style: style}
}

// ParagraphContent returns word-wrapped text content. wrapWidth 0 wraps to
// whatever width the layout assigns.
func ParagraphContent(text string, wrapWidth int, style Style) Content {
	return Content{Kind: ContentParagraph, Text: text, WrapWidth: wrapWidth, Style: style}
}

// FillContent returns content that floods the area with one rune.
func FillContent(r rune, style Style) Content {
	return Content{Kind: ContentFill, FillRune: r, Style: style}
}

// GraphContent returns sparkline content over the given sample window.
func GraphContent(g *Graph, style Style) Content {
	return Content{Kind: ContentGraph, Graph: g, Style: style}
}

// PainterContent returns content painted by a custom function.
func PainterContent(fn PainterFunc) Content {
	return Content{Kind: ContentPainter, Painter: fn}
}

// intrinsicSize returns the natural cell dimensions of the content.
func (c Content) intrinsicSize() (width, height int) {
	switch c.Kind {
	case ContentText:
		return StringWidth(c.Text), 1
	case ContentParagraph:
		if c.WrapWidth > 0 {
			return c.WrapWidth, len(WrapText(c.Text, c.WrapWidth))
		}
		// Unwrapped: widest source line by total line count.
		lines := WrapText(c.Text, 0)
		w := 0
		for _, line := range lines {
			w = max(w, StringWidth(line))
		}
		return w, len(lines)
	case ContentGraph:
		if c.Graph != nil {
			return c.Graph.Len(), 1
		}
	}
	return 0, 0
}
