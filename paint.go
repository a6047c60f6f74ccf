package panel

// Paint paints a solved tree into the grid. Node rectangles are taken from
// the last solve pass; anything outside the grid is clipped.
func Paint(g *Grid, root *Node) {
	paintNode(g, root, g.Rect(), 0, 0)
}

// PaintViewport paints a solved tree through a scroll viewport into the dst
// rectangle on the grid. Logical coordinates are translated by subtracting
// the viewport offset; nodes whose rectangles fall outside the visible
// region are culled entirely, and partial overlaps are clipped to the
// intersection.
func PaintViewport(g *Grid, root *Node, vp *Viewport, dst Rect) {
	clip := dst.Intersect(g.Rect())
	if clip.IsEmpty() {
		return
	}
	offX, offY := vp.Offset()
	paintNode(g, root, clip, dst.X-offX, dst.Y-offY)
}

// paintNode paints one node and recurses. (dx, dy) translates logical
// layout coordinates into grid coordinates; clip is in grid coordinates.
func paintNode(g *Grid, n *Node, clip Rect, dx, dy int) {
	rect := n.Rect().Translate(dx, dy)
	if !rect.Intersects(clip) {
		return // Culled: nothing of this subtree is visible
	}

	contentRect := n.ContentRect().Translate(dx, dy)
	area := contentRect.Intersect(clip)

	switch n.content.Kind {
	case ContentText:
		paintTextLine(g, n.content.Text, n.content, contentRect, contentRect.Y, area)
	case ContentParagraph:
		paintParagraph(g, n.content, contentRect, area)
	case ContentFill:
		if !area.IsEmpty() {
			g.Fill(area, n.content.FillRune, n.content.Style)
		}
	case ContentGraph:
		paintGraph(g, n.content, contentRect, area)
	case ContentPainter:
		if n.content.Painter != nil && !area.IsEmpty() {
			n.content.Painter(g, area)
		}
	}

	// Children clip to this node's visible content area, so overflow from
	// exhausted shrink capacity is cut at the parent edge (the tail child
	// loses cells, deterministically).
	for _, child := range n.children {
		paintNode(g, child, area, dx, dy)
	}
}

// paintTextLine paints one line of text at row y, aligned within the full
// (unclipped) content rect and clipped to area.
func paintTextLine(g *Grid, text string, c Content, contentRect Rect, y int, area Rect) {
	if area.IsEmpty() {
		return
	}
	x := contentRect.X
	switch c.Align {
	case TextAlignCenter:
		x += (contentRect.Width - StringWidth(text)) / 2
	case TextAlignRight:
		x += contentRect.Width - StringWidth(text)
	}
	g.SetStringClipped(x, y, text, c.Style, area)
}

// paintParagraph word-wraps and paints multi-line text. A zero wrap width
// wraps to the width the layout assigned.
func paintParagraph(g *Grid, c Content, contentRect Rect, area Rect) {
	if area.IsEmpty() {
		return
	}
	width := c.WrapWidth
	if width <= 0 {
		width = contentRect.Width
	}
	for i, line := range WrapText(c.Text, width) {
		y := contentRect.Y + i
		if y >= area.Bottom() {
			break
		}
		paintTextLine(g, line, c, contentRect, y, area)
	}
}

// paintGraph plots one column per sample, newest on the left, scaled to the
// window's min/max over the content height.
func paintGraph(g *Grid, c Content, contentRect Rect, area Rect) {
	if c.Graph == nil || area.IsEmpty() || contentRect.Height <= 0 {
		return
	}

	marker := c.Marker
	if marker == 0 {
		marker = '•'
	}

	minV := c.Graph.Min()
	span := c.Graph.Max() - minV
	rows := contentRect.Height - 1

	for i, v := range c.Graph.Values() {
		x := contentRect.X + i
		if x >= area.Right() {
			break
		}

		// Flat windows plot along the baseline.
		y := contentRect.Bottom() - 1
		if span > 0 {
			scaled := int((v-minV)/span*float64(rows) + 0.5)
			y = contentRect.Y + rows - scaled
		}

		if area.Contains(x, y) {
			g.SetRune(x, y, marker, c.Style)
		}
	}
}
