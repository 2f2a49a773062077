package spline

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectLUT returns the global time whose position on the sampled curve is
// closest to pt.
//
// It finds the nearest sample and refines the estimate by projecting pt onto
// the line through the nearest sample and its closer neighbour. The result
// is interpolated linearly between the two samples' times without clamping,
// so points beyond either end of the curve produce times outside [0, 1].
//
// A table with a single sample returns that sample's time. If the nearest
// sample and its neighbour coincide, the nearest sample's time is returned.
func ProjectLUT(lut *LUT, pt r3.Vec) (float64, error) {
	if !isFinite(pt) {
		return 0, fmt.Errorf("%w: point %v is not finite", ErrInvalidArgument, pt)
	}
	i, err := lut.Nearest(pt)
	if err != nil {
		return 0, err
	}
	n := lut.Len()
	if n == 1 {
		return lut.At(0).Time, nil
	}

	var j int
	switch i {
	case 0:
		j = 1
	case n - 1:
		j = n - 2
	default:
		prev, next := lut.At(i-1), lut.At(i+1)
		if distanceSquared(pt, prev.Position) < distanceSquared(pt, next.Position) {
			j = i - 1
		} else {
			j = i + 1
		}
	}

	closest, neighbor := lut.At(i), lut.At(j)
	ratio, ok := Line{closest.Position, neighbor.Position}.Project(pt)
	if !ok {
		Logger().Debug("coincident lookup table samples, skipping refinement", "index", i, "neighbor", j)
		return closest.Time, nil
	}
	return lerpf(closest.Time, neighbor.Time, ratio), nil
}

// Project returns the global time at which the curve comes closest to pt,
// using the curve's lookup table with the given number of steps. See
// [ProjectLUT].
//
// The accuracy of the result is bounded by the spacing of the lookup table.
func (c *Curve) Project(pt r3.Vec, steps int) (float64, error) {
	lut, err := c.LUT(steps)
	if err != nil {
		return 0, err
	}
	return ProjectLUT(lut, pt)
}

// Closest is like [Curve.Project], but clamps the time to [0, 1] and also
// returns the curve's position at that time.
func (c *Curve) Closest(pt r3.Vec, steps int) (float64, r3.Vec, error) {
	t, err := c.Project(pt, steps)
	if err != nil {
		return 0, r3.Vec{}, err
	}
	t = min(max(t, 0), 1)
	pos, err := c.EvaluatePosition(t)
	if err != nil {
		return 0, r3.Vec{}, err
	}
	return t, pos, nil
}
