package panel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "breaks at whitespace and newlines",
			text:  "hello dear\nworld",
			width: 5,
			want:  []string{"hello", "dear", "world"},
		},
		{
			name:  "short lines pass through",
			text:  "hi\nthere",
			width: 10,
			want:  []string{"hi", "there"},
		},
		{
			name:  "breaks at last space before the limit",
			text:  "one two three",
			width: 8,
			want:  []string{"one two", "three"},
		},
		{
			name:  "hard-breaks overlong words",
			text:  "abcdefgh",
			width: 3,
			want:  []string{"abc", "def", "gh"},
		},
		{
			name:  "whitespace never starts a continuation line",
			text:  "one  two",
			width: 3,
			want:  []string{"one", "two"},
		},
		{
			name:  "zero width only splits newlines",
			text:  "a long line\nshort",
			width: 0,
			want:  []string{"a long line", "short"},
		},
		{
			name:  "empty input",
			text:  "",
			width: 5,
			want:  []string{""},
		},
		{
			name:  "wide characters count display cells",
			text:  "世界世界",
			width: 4,
			want:  []string{"世界", "世界"},
		},
		{
			name:  "rune wider than the whole width",
			text:  "漢字",
			width: 1,
			want:  []string{"漢", "字"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapText(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
		})
	}
}
