package panel

import "fmt"

// Option configures a Node at construction. Options validate their inputs:
// negative sizes, weights, gaps or edges fail with ErrInvalidConstraint.
type Option func(*Node) error

// --- Dimension options ---

// WithWidth sets a fixed width (the main-axis basis in a row) in cells.
func WithWidth(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative width %d", ErrInvalidConstraint, cells)
		}
		n.style.Width = Fixed(cells)
		return nil
	}
}

// WithHeight sets a fixed height in cells.
func WithHeight(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative height %d", ErrInvalidConstraint, cells)
		}
		n.style.Height = Fixed(cells)
		return nil
	}
}

// WithSize sets both width and height in cells.
func WithSize(width, height int) Option {
	return func(n *Node) error {
		if err := WithWidth(width)(n); err != nil {
			return err
		}
		return WithHeight(height)(n)
	}
}

// WithWidthPercent sets width as a percentage of the parent's available
// width.
func WithWidthPercent(percent float64) Option {
	return func(n *Node) error {
		if percent < 0 {
			return fmt.Errorf("%w: negative width percent %v", ErrInvalidConstraint, percent)
		}
		n.style.Width = Percent(percent)
		return nil
	}
}

// WithHeightPercent sets height as a percentage of the parent's available
// height.
func WithHeightPercent(percent float64) Option {
	return func(n *Node) error {
		if percent < 0 {
			return fmt.Errorf("%w: negative height percent %v", ErrInvalidConstraint, percent)
		}
		n.style.Height = Percent(percent)
		return nil
	}
}

// WithMinWidth sets the minimum width in cells; shrink never cuts below it.
func WithMinWidth(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative min width %d", ErrInvalidConstraint, cells)
		}
		n.style.MinWidth = Fixed(cells)
		return nil
	}
}

// WithMinHeight sets the minimum height in cells.
func WithMinHeight(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative min height %d", ErrInvalidConstraint, cells)
		}
		n.style.MinHeight = Fixed(cells)
		return nil
	}
}

// WithMaxWidth sets the maximum width in cells.
func WithMaxWidth(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative max width %d", ErrInvalidConstraint, cells)
		}
		n.style.MaxWidth = Fixed(cells)
		return nil
	}
}

// WithMaxHeight sets the maximum height in cells.
func WithMaxHeight(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative max height %d", ErrInvalidConstraint, cells)
		}
		n.style.MaxHeight = Fixed(cells)
		return nil
	}
}

// --- Container options ---

// WithDirection sets the main axis for laying out children.
func WithDirection(d Direction) Option {
	return func(n *Node) error {
		n.style.Direction = d
		return nil
	}
}

// WithAlign sets cross-axis placement for this node's children.
func WithAlign(a Align) Option {
	return func(n *Node) error {
		n.style.Align = a
		return nil
	}
}

// WithGap sets the spacing between adjacent children on the main axis.
func WithGap(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative gap %d", ErrInvalidConstraint, cells)
		}
		n.style.Gap = cells
		return nil
	}
}

// WithChildren appends children in declaration order.
func WithChildren(children ...*Node) Option {
	return func(n *Node) error {
		return n.AddChild(children...)
	}
}

// --- Item options ---

// WithGrow sets the node's share of positive remaining space.
func WithGrow(weight float64) Option {
	return func(n *Node) error {
		if weight < 0 {
			return fmt.Errorf("%w: negative grow weight %v", ErrInvalidConstraint, weight)
		}
		n.style.Grow = weight
		return nil
	}
}

// WithShrink sets the node's share of the deficit when siblings overflow.
func WithShrink(weight float64) Option {
	return func(n *Node) error {
		if weight < 0 {
			return fmt.Errorf("%w: negative shrink weight %v", ErrInvalidConstraint, weight)
		}
		n.style.Shrink = weight
		return nil
	}
}

// WithAlignSelf overrides the parent's cross-axis alignment for this node.
func WithAlignSelf(a Align) Option {
	return func(n *Node) error {
		n.style.AlignSelf = &a
		return nil
	}
}

// WithPadding sets uniform padding on all sides.
func WithPadding(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative padding %d", ErrInvalidConstraint, cells)
		}
		n.style.Padding = EdgeAll(cells)
		return nil
	}
}

// WithPaddingEdges sets per-side padding.
func WithPaddingEdges(e Edges) Option {
	return func(n *Node) error {
		if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			return fmt.Errorf("%w: negative padding %+v", ErrInvalidConstraint, e)
		}
		n.style.Padding = e
		return nil
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(cells int) Option {
	return func(n *Node) error {
		if cells < 0 {
			return fmt.Errorf("%w: negative margin %d", ErrInvalidConstraint, cells)
		}
		n.style.Margin = EdgeAll(cells)
		return nil
	}
}

// WithMarginEdges sets per-side margin.
func WithMarginEdges(e Edges) Option {
	return func(n *Node) error {
		if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			return fmt.Errorf("%w: negative margin %+v", ErrInvalidConstraint, e)
		}
		n.style.Margin = e
		return nil
	}
}

// WithStyle replaces the whole layout style, validating it.
func WithStyle(style LayoutStyle) Option {
	return func(n *Node) error {
		return n.SetStyle(style)
	}
}

// --- Content options ---

// WithText attaches a single-line text run.
func WithText(text string, style Style) Option {
	return func(n *Node) error {
		return n.SetContent(TextContent(text, style))
	}
}

// WithTextAlign sets the horizontal alignment of text content.
func WithTextAlign(a TextAlign) Option {
	return func(n *Node) error {
		n.content.Align = a
		return nil
	}
}

// WithParagraph attaches word-wrapped text. wrapWidth 0 wraps to the width
// the layout assigns.
func WithParagraph(text string, wrapWidth int, style Style) Option {
	return func(n *Node) error {
		if wrapWidth < 0 {
			return fmt.Errorf("%w: negative wrap width %d", ErrInvalidConstraint, wrapWidth)
		}
		return n.SetContent(ParagraphContent(text, wrapWidth, style))
	}
}

// WithFill floods the node's content area with one rune.
func WithFill(r rune, style Style) Option {
	return func(n *Node) error {
		return n.SetContent(FillContent(r, style))
	}
}

// WithGraph attaches sparkline content over the given sample window.
func WithGraph(g *Graph, style Style) Option {
	return func(n *Node) error {
		return n.SetContent(GraphContent(g, style))
	}
}

// WithPainter attaches a custom painter.
func WithPainter(fn PainterFunc) Option {
	return func(n *Node) error {
		return n.SetContent(PainterContent(fn))
	}
}
