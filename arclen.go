package spline

import (
	"fmt"
	"slices"
)

// segmentSamplingFactor is the number of samples used for each segment's
// length estimate. Every segment gets the same share of the curve's sampling
// resolution, plus one.
func (c *Curve) segmentSamplingFactor() int {
	return c.opts.sampling/c.SegmentCount() + 1
}

func (c *Curve) checkDefined() error {
	if n := c.store.Len(); n < 2 {
		return fmt.Errorf("%w: curve needs at least 2 control points, has %d", ErrInvalidArgument, n)
	}
	return nil
}

// segmentLengths returns the estimated length of every segment. The result
// must not be modified.
func (c *Curve) segmentLengths() ([]float64, error) {
	if err := c.checkDefined(); err != nil {
		return nil, err
	}
	if lengths, ok := c.memoLengths(); ok {
		return lengths, nil
	}
	samples := c.segmentSamplingFactor()
	lengths := make([]float64, c.SegmentCount())
	for i := range lengths {
		lengths[i] = c.segment(i).EstimateLength(samples)
	}
	if c.opts.lengthCache {
		c.lengths = lengths
	}
	return lengths, nil
}

// memoLengths returns the memoized segment lengths if they are still sized
// for the store. A memo left over from a structural change made directly on
// the store is dropped.
func (c *Curve) memoLengths() ([]float64, bool) {
	if c.lengths == nil {
		return nil, false
	}
	if len(c.lengths) != c.SegmentCount() {
		c.lengths = nil
		return nil, false
	}
	return c.lengths, true
}

// SegmentLength returns the estimated length of segment i.
func (c *Curve) SegmentLength(i int) (float64, error) {
	seg, err := c.Segment(i)
	if err != nil {
		return 0, err
	}
	if lengths, ok := c.memoLengths(); ok {
		return lengths[i], nil
	}
	return seg.EstimateLength(c.segmentSamplingFactor()), nil
}

// SegmentLengths returns the estimated length of every segment, in order.
func (c *Curve) SegmentLengths() ([]float64, error) {
	lengths, err := c.segmentLengths()
	if err != nil {
		return nil, err
	}
	return slices.Clone(lengths), nil
}

// ApproximateLength returns the estimated length of the whole curve, the sum
// of the estimated lengths of its segments.
func (c *Curve) ApproximateLength() (float64, error) {
	lengths, err := c.segmentLengths()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range lengths {
		total += l
	}
	return total, nil
}
