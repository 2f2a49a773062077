package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those in vectors, with an absolute
// tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

var ignoreID = cmpopts.IgnoreFields(ControlPoint{}, "ID")

func cp(pos, left, right r3.Vec) ControlPoint {
	return ControlPoint{Position: pos, LeftHandle: left, RightHandle: right}
}

// newTestCurve returns a curve over a fresh MemStore holding points.
func newTestCurve(t *testing.T, points []ControlPoint, opts ...Option) *Curve {
	t.Helper()
	store, err := NewMemStore(points...)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCurve(store, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// straightCurve is a single straight segment from the origin to (10, 0, 0).
func straightCurve(t *testing.T, opts ...Option) *Curve {
	return newTestCurve(t, []ControlPoint{
		cp(V(0, 0, 0), V(1, 0, 0), V(1, 0, 0)),
		cp(V(10, 0, 0), V(9, 0, 0), V(9, 0, 0)),
	}, opts...)
}

// wavyCurve has four segments of quite different lengths, bending in all
// three dimensions.
func wavyCurve(t *testing.T, opts ...Option) *Curve {
	return newTestCurve(t, []ControlPoint{
		cp(V(0, 0, 0), V(-1, -1, 0), V(1, 1, 0)),
		cp(V(3, 0, 1), V(2, -1, 1), V(4, 1, 1)),
		cp(V(4, 2, 1), V(4, 1.5, 0), V(4, 2.5, 2)),
		cp(V(12, 5, -3), V(9, 6, -2), V(15, 4, -4)),
		cp(V(13, 5, -3), V(12.5, 5, -3), V(13.5, 5, -3)),
	}, opts...)
}
