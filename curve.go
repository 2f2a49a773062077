package spline

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DefaultSampling is the default sampling resolution of a curve. It is
	// shared between all segments for estimating their lengths.
	DefaultSampling = 100

	// DefaultProjectionSteps is a default number of lookup table samples
	// for [Curve.Project].
	DefaultProjectionSteps = 100
)

// Option configures a [Curve] during creation.
type Option func(*options)

type options struct {
	sampling         int
	invalidateOnMove bool
	lengthCache      bool
}

func defaultOptions() options {
	return options{
		sampling: DefaultSampling,
	}
}

// WithSampling sets the sampling resolution of the curve. It must be
// positive.
func WithSampling(n int) Option {
	return func(o *options) {
		o.sampling = n
	}
}

// WithInvalidateOnMove controls whether [Curve.SetPoint] drops cached
// lookup tables and lengths.
//
// By default, caches are only dropped when points are added or removed, and
// moving a point leaves previously built lookup tables stale until
// [Curve.ClearCache] is called.
func WithInvalidateOnMove(b bool) Option {
	return func(o *options) {
		o.invalidateOnMove = b
	}
}

// WithLengthCache enables memoizing the estimated length of each segment.
// Without it, every evaluation at a global time re-estimates the length of
// the whole curve. The memo is dropped together with the lookup tables.
func WithLengthCache(b bool) Option {
	return func(o *options) {
		o.lengthCache = b
	}
}

// Curve is a piecewise cubic Bézier through an ordered sequence of control
// points. Segment i runs from point i to point i+1, using the right handle of
// point i and the left handle of point i+1 as its inner control points.
//
// A Curve can be evaluated at a global time in [0, 1] which spans the whole
// curve. Each segment's share of the global time is proportional to its
// estimated length, so that traversal speed is roughly uniform.
//
// A Curve is not safe for concurrent use.
type Curve struct {
	store PointStore
	opts  options

	luts    map[int]*LUT
	lengths []float64
}

// NewCurve returns a curve whose control points are owned by store.
func NewCurve(store PointStore, opts ...Option) (*Curve, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil point store", ErrInvalidArgument)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampling <= 0 {
		return nil, fmt.Errorf("%w: sampling must be positive, got %d", ErrInvalidArgument, o.sampling)
	}
	return &Curve{
		store: store,
		opts:  o,
		luts:  make(map[int]*LUT),
	}, nil
}

// Store returns the point store backing the curve.
//
// Changes made directly to the store bypass cache management; call
// [Curve.ClearCache] afterwards.
func (c *Curve) Store() PointStore { return c.store }

// Sampling returns the curve's sampling resolution.
func (c *Curve) Sampling() int { return c.opts.sampling }

// SetSampling changes the sampling resolution and drops all caches.
func (c *Curve) SetSampling(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: sampling must be positive, got %d", ErrInvalidArgument, n)
	}
	c.opts.sampling = n
	c.ClearCache()
	return nil
}

// Len returns the number of control points.
func (c *Curve) Len() int { return c.store.Len() }

// SegmentCount returns the number of segments, which is one less than the
// number of control points.
func (c *Curve) SegmentCount() int { return max(c.store.Len()-1, 0) }

// Point returns the control point at index i.
func (c *Curve) Point(i int) (ControlPoint, error) {
	if i < 0 || i >= c.store.Len() {
		return ControlPoint{}, fmt.Errorf("%w: point index %d out of range [0, %d)", ErrInvalidArgument, i, c.store.Len())
	}
	return c.store.At(i), nil
}

// Segment returns the cubic Bézier between control points i and i+1.
func (c *Curve) Segment(i int) (CubicSegment, error) {
	if i < 0 || i >= c.SegmentCount() {
		return CubicSegment{}, fmt.Errorf("%w: segment index %d out of range [0, %d)", ErrInvalidArgument, i, c.SegmentCount())
	}
	return c.segment(i), nil
}

func (c *Curve) segment(i int) CubicSegment {
	a, b := c.store.At(i), c.store.At(i+1)
	return CubicSegment{
		P0: a.Position,
		P1: a.RightHandle,
		P2: b.LeftHandle,
		P3: b.Position,
	}
}

// AddPoint has the point store create a new control point at index i and
// drops all caches.
func (c *Curve) AddPoint(i int) (ControlPoint, error) {
	cp, err := c.store.Insert(i)
	if err != nil {
		return ControlPoint{}, err
	}
	c.ClearCache()
	return cp, nil
}

// RemovePoint removes the control point at index i and drops all caches.
func (c *Curve) RemovePoint(i int) error {
	if err := c.store.Remove(i); err != nil {
		return err
	}
	c.ClearCache()
	return nil
}

// SetPoint replaces the position and handles of the control point at index
// i. Caches are only dropped if the curve was created with
// [WithInvalidateOnMove].
func (c *Curve) SetPoint(i int, cp ControlPoint) error {
	if !cp.IsFinite() {
		return fmt.Errorf("%w: control point %v is not finite", ErrInvalidArgument, cp)
	}
	if err := c.store.Set(i, cp); err != nil {
		return err
	}
	if c.opts.invalidateOnMove {
		c.ClearCache()
	}
	return nil
}

// MovePoint translates the control point at index i, handles included. It
// follows the same invalidation rules as [Curve.SetPoint].
func (c *Curve) MovePoint(i int, v r3.Vec) error {
	cp, err := c.Point(i)
	if err != nil {
		return err
	}
	return c.SetPoint(i, cp.Translate(v))
}

// ClearCache drops all lookup tables and memoized segment lengths.
func (c *Curve) ClearCache() {
	if len(c.luts) > 0 || c.lengths != nil {
		Logger().Debug("dropping curve caches", "luts", len(c.luts), "lengths", len(c.lengths))
	}
	clear(c.luts)
	c.lengths = nil
}
