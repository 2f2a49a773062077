package spline

import "errors"

var (
	// ErrInvalidArgument is returned for non-positive sample counts, curves
	// with fewer than two control points, out of range indices, non-finite
	// control points, and empty lookup tables.
	ErrInvalidArgument = errors.New("spline: invalid argument")

	// ErrDegenerateGeometry is returned when a direction cannot be computed,
	// for example when the tangent vanishes or is parallel to the up vector.
	ErrDegenerateGeometry = errors.New("spline: degenerate geometry")
)
