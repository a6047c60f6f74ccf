package panel

// GradientDirection specifies how a gradient is applied across a region.
type GradientDirection uint8

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs top-left to bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs bottom-left to top-right.
	GradientDiagonalUp
)

// Gradient is a multi-stop color ramp. Stops are spaced evenly; colors
// between stops are blended perceptually (see [Color.Lerp]).
type Gradient struct {
	Stops     []Color
	Direction GradientDirection
}

// NewGradient creates a horizontal gradient over the given color stops.
// At least two stops are needed for an actual ramp; fewer yield a constant
// color.
func NewGradient(stops ...Color) Gradient {
	return Gradient{Stops: stops, Direction: GradientHorizontal}
}

// WithDirection returns a copy of the gradient with the given direction.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// At returns the gradient color at position t in [0, 1].
func (g Gradient) At(t float64) Color {
	switch len(g.Stops) {
	case 0:
		return DefaultColor()
	case 1:
		return g.Stops[0]
	}

	if t <= 0 {
		return g.Stops[0]
	}
	if t >= 1 {
		return g.Stops[len(g.Stops)-1]
	}

	// Locate the surrounding pair of stops and blend within it.
	segments := len(g.Stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	return g.Stops[i].Lerp(g.Stops[i+1], pos-float64(i))
}
