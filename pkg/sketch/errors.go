package sketch

import "errors"

var (
	// ErrInvalidGeometry is returned by constructors for degenerate or
	// non-finite input.
	ErrInvalidGeometry = errors.New("sketch: invalid geometry")

	// ErrCollinear is returned when three points cannot define an arc.
	ErrCollinear = errors.New("sketch: points are collinear, cannot form an arc")
)
