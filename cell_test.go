package panel

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'a', 1},
		{"space", ' ', 1},
		{"cjk", '世', 2},
		{"control char still occupies a cell", '\t', 1},
		{"box drawing", '─', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneWidth(tt.r); got != tt.want {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("ab世"); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}

	// Zero-width runes still occupy a cell when painted rune by rune, so
	// the string width counts them too.
	if got := StringWidth("à"); got != 2 {
		t.Errorf("StringWidth with combining mark = %d, want 2", got)
	}
}

func TestNewCellDetectsWidth(t *testing.T) {
	if c := NewCell('a', NewStyle()); c.Width != 1 {
		t.Errorf("narrow cell width = %d, want 1", c.Width)
	}
	if c := NewCell('世', NewStyle()); c.Width != 2 {
		t.Errorf("wide cell width = %d, want 2", c.Width)
	}
}

func TestCellContinuation(t *testing.T) {
	cont := NewCellWithWidth(0, NewStyle(), 0)
	if !cont.IsContinuation() {
		t.Error("width-0 cell should be a continuation")
	}
	if NewCell('a', NewStyle()).IsContinuation() {
		t.Error("narrow cell should not be a continuation")
	}
}

func TestCellEqual(t *testing.T) {
	a := NewCell('x', NewStyle())
	if !a.Equal(NewCell('x', NewStyle())) {
		t.Error("identical cells should be equal")
	}
	if a.Equal(NewCell('y', NewStyle())) {
		t.Error("different runes should not be equal")
	}
	if a.Equal(NewCell('x', NewStyle().Bold())) {
		t.Error("different styles should not be equal")
	}
}

func TestCellIsEmpty(t *testing.T) {
	if !(Cell{}).IsEmpty() {
		t.Error("zero cell should be empty")
	}
	if !EmptyCell().IsEmpty() {
		t.Error("EmptyCell should be empty")
	}
	if NewCell(' ', NewStyle().Bold()).IsEmpty() {
		t.Error("styled space should not be empty")
	}
	if NewCell('x', NewStyle()).IsEmpty() {
		t.Error("non-space cell should not be empty")
	}
}

func TestStyleBuilder(t *testing.T) {
	s := NewStyle().Foreground(Red).Background(Black).Bold().Underline()

	if !s.Fg.Equal(Red) {
		t.Errorf("Fg = %+v, want Red", s.Fg)
	}
	if !s.HasAttr(AttrBold | AttrUnderline) {
		t.Error("missing bold+underline")
	}
	if s.HasAttr(AttrItalic) {
		t.Error("italic set unexpectedly")
	}
}

func TestStyleEqual(t *testing.T) {
	if !NewStyle().Equal(NewStyle()) {
		t.Error("default styles should be equal")
	}
	if NewStyle().Bold().Equal(NewStyle()) {
		t.Error("bold should differ from default")
	}
	if NewStyle().Foreground(Red).Equal(NewStyle().Foreground(Blue)) {
		t.Error("different foregrounds should differ")
	}
}
