package shape

import "errors"

// Construction errors
var (
	ErrTooFewVertices       = errors.New("polygon needs at least 3 vertices")
	ErrCoincidentVertices   = errors.New("polygon has coincident adjacent vertices")
	ErrNotConvex            = errors.New("polygon is not convex")
	ErrClockwiseWinding     = errors.New("polygon vertices are not in counter-clockwise order")
	ErrDegenerateArea       = errors.New("polygon has zero area")
	ErrNonPositiveDimension = errors.New("shape dimension must be positive")
	ErrNonFinite            = errors.New("shape value is NaN or infinite")
)
