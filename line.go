package spline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateLength2 is the squared length, relative to the squared
// magnitude of the end points, below which a line is treated as a point.
const degenerateLength2 = 1e-24

// Line is a straight line between two points.
type Line struct {
	P0 r3.Vec
	P1 r3.Vec
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return r3.Norm(r3.Sub(l.P1, l.P0))
}

// Project returns the parameter of the orthogonal projection of pt onto the
// infinite line through P0 and P1. The parameter is not clamped to [0, 1].
//
// It returns false if the line is too short, relative to the magnitude of
// its end points, for the parameter to be meaningful.
func (l Line) Project(pt r3.Vec) (float64, bool) {
	d := r3.Sub(l.P1, l.P0)
	dSquared := r3.Dot(d, d)
	scale := max(1, r3.Norm2(l.P0), r3.Norm2(l.P1))
	if dSquared <= degenerateLength2*scale {
		return 0, false
	}
	ratio := r3.Dot(r3.Sub(pt, l.P0), d) / dSquared
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}
	return ratio, true
}
