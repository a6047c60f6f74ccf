package panel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphPushShiftsWindow(t *testing.T) {
	g := NewGraph(3)
	if diff := cmp.Diff([]float64{0, 0, 0}, g.Values()); diff != "" {
		t.Errorf("fresh window (-want +got):\n%s", diff)
	}

	g.Push(1)
	g.Push(2)
	if diff := cmp.Diff([]float64{2, 1, 0}, g.Values()); diff != "" {
		t.Errorf("window newest first (-want +got):\n%s", diff)
	}

	// Pushing past capacity drops the oldest sample.
	g.Push(3)
	g.Push(4)
	if diff := cmp.Diff([]float64{4, 3, 2}, g.Values()); diff != "" {
		t.Errorf("window after overflow (-want +got):\n%s", diff)
	}
}

func TestGraphMinMax(t *testing.T) {
	g := NewGraph(4)
	g.Push(3)
	g.Push(-2)
	g.Push(7)

	if got := g.Min(); got != -2 {
		t.Errorf("Min = %v, want -2", got)
	}
	if got := g.Max(); got != 7 {
		t.Errorf("Max = %v, want 7", got)
	}
}

func TestGraphAt(t *testing.T) {
	g := NewGraph(2)
	g.Push(5)

	if got := g.At(0); got != 5 {
		t.Errorf("At(0) = %v, want the newest sample", got)
	}
	if got := g.At(1); got != 0 {
		t.Errorf("At(1) = %v, want 0", got)
	}
}

func TestGraphEmptyWindow(t *testing.T) {
	g := NewGraph(0)
	g.Push(1) // No-op

	if got := g.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if g.Min() != 0 || g.Max() != 0 {
		t.Errorf("Min/Max of empty window = %v/%v, want 0/0", g.Min(), g.Max())
	}

	if got := NewGraph(-3).Len(); got != 0 {
		t.Errorf("negative size Len = %d, want 0", got)
	}
}
