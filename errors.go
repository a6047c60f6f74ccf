package panel

import (
	"errors"

	"github.com/panelkit/go-panel/internal/flex"
)

// Engine error conditions. All are local, recoverable failures returned to
// the caller; none is fatal to the engine.
var (
	// ErrOutOfBounds reports a grid coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrDimensionMismatch reports an attempt to diff grids of different
	// sizes. A resize must be treated as a full redraw instead (see
	// [FullFrame]).
	ErrDimensionMismatch = errors.New("grid dimensions do not match")

	// ErrInvalidConstraint reports a negative basis, weight, gap or edge
	// value supplied to a node. Constraints are rejected at construction
	// and mutation time, never during solving.
	ErrInvalidConstraint = flex.ErrInvalidConstraint
)
