package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// mapTime maps a global time to a segment index and a time local to that
// segment, given the lengths of all segments. Each segment owns a share of
// the global time proportional to its length. lengths must not be empty.
//
// The first segment whose cumulative share strictly exceeds time is
// selected, so times on a boundary belong to the later segment. Times at or
// past the end select the last segment.
func mapTime(lengths []float64, time float64) (int, float64) {
	var total float64
	for _, l := range lengths {
		total += l
	}
	share := func(i int) float64 {
		if total == 0 {
			return 1 / float64(len(lengths))
		}
		return lengths[i] / total
	}
	if total == 0 {
		Logger().Debug("curve has zero length, weighting segments uniformly", "segments", len(lengths))
	}

	last := len(lengths) - 1
	var base float64
	for i := range last {
		f := share(i)
		if base+f > time {
			return i, localTime(time, base, f)
		}
		base += f
	}
	return last, localTime(time, base, share(last))
}

func localTime(time, base, share float64) float64 {
	if share == 0 {
		// A zero-length segment has no interior; snap to whichever end the
		// time is on.
		if time <= base {
			return 0
		}
		return 1
	}
	return (time - base) / share
}

// MapGlobalTime maps a global time to the index of the segment it falls in
// and the corresponding time local to that segment.
//
// Times outside [0, 1] are not clamped. They map to the first or last
// segment with a local time outside [0, 1], which extrapolates the segment.
// Non-finite times are an error.
func (c *Curve) MapGlobalTime(time float64) (segment int, local float64, err error) {
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return 0, 0, fmt.Errorf("%w: time is %g", ErrInvalidArgument, time)
	}
	lengths, err := c.segmentLengths()
	if err != nil {
		return 0, 0, err
	}
	segment, local = mapTime(lengths, time)
	return segment, local, nil
}

func (c *Curve) segmentAt(time float64) (CubicSegment, float64, error) {
	i, local, err := c.MapGlobalTime(time)
	if err != nil {
		return CubicSegment{}, 0, err
	}
	return c.segment(i), local, nil
}

// EvaluatePosition returns the position of the curve at a global time.
func (c *Curve) EvaluatePosition(time float64) (r3.Vec, error) {
	seg, t, err := c.segmentAt(time)
	if err != nil {
		return r3.Vec{}, err
	}
	return seg.Eval(t), nil
}

// EvaluateTangent returns the unit tangent of the curve at a global time. It
// returns the zero vector if the tangent is degenerate, see
// [CubicSegment.Tangent].
func (c *Curve) EvaluateTangent(time float64) (r3.Vec, error) {
	seg, t, err := c.segmentAt(time)
	if err != nil {
		return r3.Vec{}, err
	}
	return seg.Tangent(t), nil
}

func (c *Curve) frameAt(time float64, up r3.Vec) (tangent, normal, binormal r3.Vec, err error) {
	seg, t, err := c.segmentAt(time)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, err
	}
	tangent, normal, binormal, ok := seg.frame(t, up)
	if !ok {
		if tangent == (r3.Vec{}) {
			return r3.Vec{}, r3.Vec{}, r3.Vec{}, fmt.Errorf("%w: zero tangent at time %g", ErrDegenerateGeometry, time)
		}
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, fmt.Errorf("%w: tangent %v is parallel to up %v at time %g", ErrDegenerateGeometry, tangent, up, time)
	}
	return tangent, normal, binormal, nil
}

// EvaluateNormal returns the unit normal of the curve at a global time, the
// component of up orthogonal to the tangent.
func (c *Curve) EvaluateNormal(time float64, up r3.Vec) (r3.Vec, error) {
	_, n, _, err := c.frameAt(time, up)
	return n, err
}

// EvaluateBinormal returns the unit binormal of the curve at a global time,
// normalize(up × tangent).
func (c *Curve) EvaluateBinormal(time float64, up r3.Vec) (r3.Vec, error) {
	_, _, b, err := c.frameAt(time, up)
	return b, err
}

// EvaluateRotation returns the orientation of the curve at a global time. Its
// forward (+Z) axis is the tangent and its up (+Y) axis is the normal.
func (c *Curve) EvaluateRotation(time float64, up r3.Vec) (r3.Rotation, error) {
	tangent, normal, _, err := c.frameAt(time, up)
	if err != nil {
		return identityRotation, err
	}
	rot, _ := LookRotation(tangent, normal)
	return rot, nil
}
