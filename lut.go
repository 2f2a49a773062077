package spline

import (
	"fmt"
	"iter"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// LUTPoint is a sample of a curve at a global time.
type LUTPoint struct {
	// Index is the sample's position in its lookup table.
	Index    int
	Position r3.Vec
	Time     float64
}

// LUT is an immutable lookup table of curve samples, ordered by time.
type LUT struct {
	points []LUTPoint
}

// NewLUT returns a lookup table holding a copy of points.
func NewLUT(points []LUTPoint) *LUT {
	return &LUT{points: slices.Clone(points)}
}

// Len returns the number of samples. It is 0 for a nil LUT.
func (l *LUT) Len() int {
	if l == nil {
		return 0
	}
	return len(l.points)
}

// At returns the i-th sample.
func (l *LUT) At(i int) LUTPoint { return l.points[i] }

// All returns an iterator over all samples, in order.
func (l *LUT) All() iter.Seq[LUTPoint] {
	return func(yield func(LUTPoint) bool) {
		for _, p := range l.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Points returns a copy of all samples.
func (l *LUT) Points() []LUTPoint { return slices.Clone(l.points) }

// Nearest returns the index of the sample closest to pt. Of several equally
// close samples, the first one wins.
func (l *LUT) Nearest(pt r3.Vec) (int, error) {
	if l.Len() == 0 {
		return 0, fmt.Errorf("%w: empty lookup table", ErrInvalidArgument)
	}
	best := 0
	bestDist := distanceSquared(pt, l.points[0].Position)
	for i, p := range l.points[1:] {
		if d := distanceSquared(pt, p.Position); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best, nil
}

// LUT returns a lookup table of steps samples spanning the whole curve.
// Tables are built on first use and cached per number of steps until the
// curve's points are added or removed, or [Curve.ClearCache] is called.
//
// With steps == 1, the table holds the single sample at time 0.5. Otherwise
// sample i is at time i/(steps-1).
func (c *Curve) LUT(steps int) (*LUT, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidArgument, steps)
	}
	if lut, ok := c.luts[steps]; ok {
		return lut, nil
	}
	lut, err := c.buildLUT(steps)
	if err != nil {
		return nil, err
	}
	c.luts[steps] = lut
	return lut, nil
}

func (c *Curve) buildLUT(steps int) (*LUT, error) {
	lengths, err := c.segmentLengths()
	if err != nil {
		return nil, err
	}
	sample := func(i int, time float64) LUTPoint {
		seg, t := mapTime(lengths, time)
		return LUTPoint{
			Index:    i,
			Position: c.segment(seg).Eval(t),
			Time:     time,
		}
	}

	points := make([]LUTPoint, steps)
	if steps == 1 {
		points[0] = sample(0, 0.5)
	} else {
		for i := range points {
			points[i] = sample(i, float64(i)/float64(steps-1))
		}
	}
	Logger().Debug("built lookup table", "steps", steps, "points", c.Len())
	return &LUT{points: points}, nil
}
