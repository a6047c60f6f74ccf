package panel

import "testing"

func TestPaintTextLeaf(t *testing.T) {
	root := MustNew(WithText("hi there", NewStyle()))
	root.Solve(10, 1)

	g := NewGrid(10, 1, EmptyCell())
	Paint(g, root)

	if got := g.String(); got != "hi there  " {
		t.Errorf("grid = %q, want %q", got, "hi there  ")
	}
}

func TestPaintTextAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align TextAlign
		want  string
	}{
		{"left", TextAlignLeft, "ab        "},
		{"center", TextAlignCenter, "    ab    "},
		{"right", TextAlignRight, "        ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := MustNew(WithText("ab", NewStyle()), WithTextAlign(tt.align))
			root.Solve(10, 1)

			g := NewGrid(10, 1, EmptyCell())
			Paint(g, root)

			if got := g.String(); got != tt.want {
				t.Errorf("grid = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaintRowOfFills(t *testing.T) {
	root := MustNew(WithChildren(
		MustNew(WithGrow(1), WithFill('a', NewStyle())),
		MustNew(WithGrow(1), WithFill('b', NewStyle())),
	))
	root.Solve(10, 2)

	g := NewGrid(10, 2, EmptyCell())
	Paint(g, root)

	want := "aaaaabbbbb\naaaaabbbbb"
	if got := g.String(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintOverflowClipsTail(t *testing.T) {
	// Minimums exceed the parent; the last child overflows and loses its
	// tail cells at the parent edge.
	root := MustNew(WithChildren(
		MustNew(WithWidth(6), WithShrink(0), WithFill('a', NewStyle())),
		MustNew(WithWidth(6), WithShrink(0), WithFill('b', NewStyle())),
	))
	root.Solve(10, 1)

	g := NewGrid(10, 1, EmptyCell())
	Paint(g, root)

	if got := g.String(); got != "aaaaaabbbb" {
		t.Errorf("grid = %q, want %q", got, "aaaaaabbbb")
	}
}

func TestPaintParagraph(t *testing.T) {
	root := MustNew(WithParagraph("hello dear world", 0, NewStyle()))
	root.Solve(5, 3)

	g := NewGrid(5, 3, EmptyCell())
	Paint(g, root)

	want := "hello\ndear\nworld"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintParagraphClipsExtraLines(t *testing.T) {
	root := MustNew(WithParagraph("one two three four", 5, NewStyle()), WithHeight(2))
	root.Solve(5, 2)

	g := NewGrid(5, 2, EmptyCell())
	Paint(g, root)

	want := "one\ntwo"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintGraph(t *testing.T) {
	graph := NewGraph(5)
	graph.Push(4) // Newest first: [4 0 0 0 0]

	root := MustNew(WithGraph(graph, NewStyle()))
	root.Solve(5, 3)

	g := NewGrid(5, 3, EmptyCell())
	Paint(g, root)

	want := "•\n\n ••••"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintGraphFlatWindow(t *testing.T) {
	// All samples equal: the whole window plots along the baseline.
	graph := NewGraph(4)

	root := MustNew(WithGraph(graph, NewStyle()))
	root.Solve(4, 3)

	g := NewGrid(4, 3, EmptyCell())
	Paint(g, root)

	want := "\n\n••••"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintPainterReceivesClippedArea(t *testing.T) {
	var got Rect
	root := MustNew(
		WithSize(6, 2),
		WithPainter(func(g *Grid, area Rect) {
			got = area
			g.Fill(area, '#', NewStyle())
		}),
	)
	root.Solve(4, 2) // Grid smaller than the node

	g := NewGrid(4, 2, EmptyCell())
	Paint(g, root)

	if want := NewRect(0, 0, 4, 2); got != want {
		t.Errorf("painter area = %+v, want %+v", got, want)
	}
	if want := "####\n####"; g.String() != want {
		t.Errorf("grid =\n%s\nwant\n%s", g.String(), want)
	}
}

func TestPaintViewportOffset(t *testing.T) {
	root := MustNew(WithText("0123456789abcdefghij", NewStyle()))
	root.Solve(20, 1)

	vp := NewViewport(10, 1)
	vp.SetContentSize(20, 1)
	vp.SetOffset(5, 0)

	g := NewGrid(10, 1, EmptyCell())
	PaintViewport(g, root, vp, g.Rect())

	if got := g.String(); got != "56789abcde" {
		t.Errorf("grid = %q, want %q", got, "56789abcde")
	}
}

func TestPaintViewportCullsInvisibleNodes(t *testing.T) {
	painted := 0
	visible := 0

	offscreen := MustNew(WithWidth(10), WithPainter(func(g *Grid, area Rect) { painted++ }))
	onscreen := MustNew(WithWidth(10), WithPainter(func(g *Grid, area Rect) { visible++ }))
	root := MustNew(WithChildren(offscreen, onscreen))
	root.Solve(20, 1)

	vp := NewViewport(10, 1)
	vp.SetContentSize(20, 1)
	vp.SetOffset(10, 0)

	g := NewGrid(10, 1, EmptyCell())
	PaintViewport(g, root, vp, g.Rect())

	if painted != 0 {
		t.Errorf("fully scrolled-out node was painted %d times", painted)
	}
	if visible != 1 {
		t.Errorf("visible node painted %d times, want 1", visible)
	}
}

func TestPaintViewportVerticalScroll(t *testing.T) {
	var rows []*Node
	for _, s := range []string{"line0", "line1", "line2", "line3"} {
		rows = append(rows, MustNew(WithText(s, NewStyle()), WithHeight(1)))
	}
	root := MustNew(WithDirection(Column), WithChildren(rows...))
	root.Solve(5, 4)

	vp := NewViewport(5, 2)
	vp.SetContentSize(5, 4)
	vp.ScrollBy(0, 2)

	g := NewGrid(5, 2, EmptyCell())
	PaintViewport(g, root, vp, g.Rect())

	want := "line2\nline3"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintViewportDstRegion(t *testing.T) {
	// Scrolled content painted into a sub-rectangle of a larger grid.
	root := MustNew(WithText("abcdef", NewStyle()))
	root.Solve(6, 1)

	vp := NewViewport(3, 1)
	vp.SetContentSize(6, 1)
	vp.SetOffset(2, 0)

	g := NewGrid(8, 2, EmptyCell())
	PaintViewport(g, root, vp, NewRect(4, 1, 3, 1))

	want := "\n    cde"
	if got := g.StringTrimmed(); got != want {
		t.Errorf("grid =\n%s\nwant\n%s", got, want)
	}
}
