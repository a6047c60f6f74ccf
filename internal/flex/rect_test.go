package flex

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"interior", 4, 5, true},
		{"right edge exclusive", 6, 3, false},
		{"bottom edge exclusive", 2, 8, false},
		{"left of rect", 1, 5, false},
		{"above rect", 4, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5), Rect{}},
		{"touching edges", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 8)
	got := r.Inset(Edges{Top: 1, Right: 2, Bottom: 3, Left: 4})
	want := NewRect(4, 1, 4, 4)
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 3, 3)
	b := NewRect(5, 5, 2, 2)
	want := NewRect(0, 0, 7, 7)
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero Rect should be empty")
	}
	if !NewRect(0, 0, 5, 0).IsEmpty() {
		t.Error("zero-height Rect should be empty")
	}
	if NewRect(0, 0, 1, 1).IsEmpty() {
		t.Error("1x1 Rect should not be empty")
	}
}

func TestRectTranslate(t *testing.T) {
	got := NewRect(1, 2, 3, 4).Translate(-1, 5)
	want := NewRect(0, 7, 3, 4)
	if got != want {
		t.Errorf("Translate = %+v, want %+v", got, want)
	}
}
