package spline

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// ControlPoint is a point on the curve with independent incoming and
// outgoing tangent handles. All three vectors are in world space.
//
// Handles may coincide with the position, which produces a zero tangent at
// that end of the adjacent segment.
type ControlPoint struct {
	// ID identifies the point within its [PointStore]. It is assigned by
	// the store.
	ID uint64
	// Position is the point the curve passes through.
	Position r3.Vec
	// LeftHandle controls the incoming tangent.
	LeftHandle r3.Vec
	// RightHandle controls the outgoing tangent.
	RightHandle r3.Vec
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("#%d %v (left %v, right %v)", cp.ID, cp.Position, cp.LeftHandle, cp.RightHandle)
}

// IsFinite reports whether the position and both handles are finite.
func (cp ControlPoint) IsFinite() bool {
	return isFinite(cp.Position) && isFinite(cp.LeftHandle) && isFinite(cp.RightHandle)
}

// Translate returns the control point moved by v, handles included.
func (cp ControlPoint) Translate(v r3.Vec) ControlPoint {
	cp.Position = r3.Add(cp.Position, v)
	cp.LeftHandle = r3.Add(cp.LeftHandle, v)
	cp.RightHandle = r3.Add(cp.RightHandle, v)
	return cp
}

// PointStore owns the control points of a curve. Insertion order is curve
// order.
//
// [Curve] only reads points through At and Len, and forwards structural
// changes made through [Curve.AddPoint], [Curve.RemovePoint] and
// [Curve.SetPoint] so that it can manage its caches.
type PointStore interface {
	// Len returns the number of control points.
	Len() int
	// At returns the control point at index i, which must be in [0, Len()).
	At(i int) ControlPoint
	// Insert creates a new control point at index i in [0, Len()] and
	// returns it. Points at and after i move up by one.
	Insert(i int) (ControlPoint, error)
	// Remove deletes the control point at index i.
	Remove(i int) error
	// Set replaces the position and handles of the control point at index
	// i. The point keeps its ID.
	Set(i int, cp ControlPoint) error
}

var _ PointStore = (*MemStore)(nil)

// MemStore is an in-memory [PointStore].
//
// The zero value is an empty store ready to use.
type MemStore struct {
	points []ControlPoint
	nextID uint64
}

// NewMemStore returns a store holding the given points, in order. IDs are
// reassigned.
func NewMemStore(points ...ControlPoint) (*MemStore, error) {
	s := &MemStore{}
	for _, cp := range points {
		if !cp.IsFinite() {
			return nil, fmt.Errorf("%w: control point %v is not finite", ErrInvalidArgument, cp)
		}
		s.nextID++
		cp.ID = s.nextID
		s.points = append(s.points, cp)
	}
	return s, nil
}

func (s *MemStore) Len() int { return len(s.points) }

func (s *MemStore) At(i int) ControlPoint { return s.points[i] }

// Insert implements [PointStore]. The new point is placed halfway between
// its neighbours, or one step beyond the end point it extends, with its
// handles a third of the way towards the neighbouring points. The first
// point of an empty store is placed at the origin, the second one unit
// along the x axis from it.
func (s *MemStore) Insert(i int) (ControlPoint, error) {
	if i < 0 || i > len(s.points) {
		return ControlPoint{}, fmt.Errorf("%w: insert index %d out of range [0, %d]", ErrInvalidArgument, i, len(s.points))
	}
	s.nextID++
	cp := ControlPoint{ID: s.nextID}
	n := len(s.points)
	switch {
	case n == 0:
	case i == 0:
		first := s.points[0].Position
		step := V(1, 0, 0)
		if n > 1 {
			step = r3.Sub(s.points[1].Position, first)
		}
		cp.Position = r3.Sub(first, step)
		cp.LeftHandle = lerp(cp.Position, first, -1.0/3.0)
		cp.RightHandle = lerp(cp.Position, first, 1.0/3.0)
	case i == n:
		last := s.points[n-1].Position
		step := V(1, 0, 0)
		if n > 1 {
			step = r3.Sub(last, s.points[n-2].Position)
		}
		cp.Position = r3.Add(last, step)
		cp.LeftHandle = lerp(cp.Position, last, 1.0/3.0)
		cp.RightHandle = lerp(cp.Position, last, -1.0/3.0)
	default:
		prev, next := s.points[i-1].Position, s.points[i].Position
		cp.Position = lerp(prev, next, 0.5)
		cp.LeftHandle = lerp(cp.Position, prev, 1.0/3.0)
		cp.RightHandle = lerp(cp.Position, next, 1.0/3.0)
	}
	s.points = slices.Insert(s.points, i, cp)
	return cp, nil
}

func (s *MemStore) Remove(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: remove index %d out of range [0, %d)", ErrInvalidArgument, i, len(s.points))
	}
	s.points = slices.Delete(s.points, i, i+1)
	return nil
}

func (s *MemStore) Set(i int, cp ControlPoint) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, len(s.points))
	}
	if !cp.IsFinite() {
		return fmt.Errorf("%w: control point %v is not finite", ErrInvalidArgument, cp)
	}
	cp.ID = s.points[i].ID
	s.points[i] = cp
	return nil
}
