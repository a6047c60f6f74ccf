package panel

// Graph is a fixed-capacity window of float samples, newest first. Pushing a
// sample shifts the window: the oldest value falls off the end. It backs
// [ContentGraph] leaves, painted one column per sample.
//
// The window length is fixed at construction so a graph leaf has a stable
// intrinsic width.
type Graph struct {
	samples []float64
}

// NewGraph creates a zero-filled sample window of the given length.
// Non-positive lengths yield an empty window.
func NewGraph(size int) *Graph {
	return &Graph{samples: make([]float64, max(size, 0))}
}

// Push prepends a sample, dropping the oldest one.
func (g *Graph) Push(v float64) {
	if len(g.samples) == 0 {
		return
	}
	copy(g.samples[1:], g.samples[:len(g.samples)-1])
	g.samples[0] = v
}

// Len returns the window length.
func (g *Graph) Len() int {
	return len(g.samples)
}

// At returns the i-th sample, newest first.
func (g *Graph) At(i int) float64 {
	return g.samples[i]
}

// Values returns the samples newest first. The slice is the live window; do
// not mutate it while painting.
func (g *Graph) Values() []float64 {
	return g.samples
}

// Min returns the smallest sample, or 0 for an empty window.
func (g *Graph) Min() float64 {
	if len(g.samples) == 0 {
		return 0
	}
	m := g.samples[0]
	for _, v := range g.samples[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample, or 0 for an empty window.
func (g *Graph) Max() float64 {
	if len(g.samples) == 0 {
		return 0
	}
	m := g.samples[0]
	for _, v := range g.samples[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
