package spline

import (
	"errors"
	"math"
	"testing"
)

func TestMapTime(t *testing.T) {
	type result struct {
		Segment int
		Local   float64
	}
	tests := []struct {
		lengths []float64
		time    float64
		want    result
	}{
		{[]float64{1}, 0, result{0, 0}},
		{[]float64{1}, 0.3, result{0, 0.3}},
		{[]float64{1}, 1, result{0, 1}},
		{[]float64{1}, -0.5, result{0, -0.5}},
		{[]float64{1}, 1.5, result{0, 1.5}},

		// Boundaries belong to the later segment.
		{[]float64{1, 1}, 0.5, result{1, 0}},
		{[]float64{1, 1, 2}, 0.25, result{1, 0}},
		{[]float64{1, 1, 2}, 0.5, result{2, 0}},
		{[]float64{1, 1, 2}, 0.125, result{0, 0.5}},
		{[]float64{1, 1, 2}, 0.75, result{2, 0.5}},
		{[]float64{1, 1, 2}, 1, result{2, 1}},

		// Extrapolation.
		{[]float64{1, 1}, -0.5, result{0, -1}},
		{[]float64{1, 1}, 1.5, result{1, 2}},

		// Lengths scale.
		{[]float64{30, 10}, 0.5, result{0, 2.0 / 3.0}},
		{[]float64{30, 10}, 0.875, result{1, 0.5}},

		// Zero-length curves are weighted uniformly.
		{[]float64{0, 0}, 0.25, result{0, 0.5}},
		{[]float64{0, 0}, 0.75, result{1, 0.5}},

		// Zero-length segments are skipped.
		{[]float64{1, 0, 1}, 0.5, result{2, 0}},
		{[]float64{1, 0}, 1, result{1, 0}},
	}
	for _, tt := range tests {
		seg, local := mapTime(tt.lengths, tt.time)
		diff(t, tt.want, result{seg, local}, approx(1e-12))
	}
}

func TestMapGlobalTimeMonotonic(t *testing.T) {
	c := wavyCurve(t)
	prevSeg := 0
	prevLocal := math.Inf(-1)
	const n = 1000
	for i := range n + 1 {
		time := float64(i) / n
		seg, local, err := c.MapGlobalTime(time)
		if err != nil {
			t.Fatal(err)
		}
		if seg < prevSeg {
			t.Fatalf("time %g: segment %d after segment %d", time, seg, prevSeg)
		}
		if seg == prevSeg && local < prevLocal {
			t.Fatalf("time %g: local time %g after %g in segment %d", time, local, prevLocal, seg)
		}
		if local < 0 || local > 1+1e-12 {
			t.Fatalf("time %g: local time %g outside [0, 1]", time, local)
		}
		prevSeg, prevLocal = seg, local
	}
	if prevSeg != c.SegmentCount()-1 {
		t.Errorf("sweep ended in segment %d, want %d", prevSeg, c.SegmentCount()-1)
	}
}

func TestMapGlobalTimeTwoPoints(t *testing.T) {
	c := straightCurve(t)
	for _, time := range []float64{-1, 0, 0.5, 1, 2} {
		seg, local, err := c.MapGlobalTime(time)
		if err != nil {
			t.Fatal(err)
		}
		if seg != 0 {
			t.Errorf("time %g: got segment %d, want 0", time, seg)
		}
		if math.Abs(local-time) > 1e-12 {
			t.Errorf("time %g: got local time %g", time, local)
		}
	}
	for _, time := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, _, err := c.MapGlobalTime(time); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("time %g: got error %v, want %v", time, err, ErrInvalidArgument)
		}
		if p, err := c.EvaluatePosition(time); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("time %g: got (%v, %v), want error %v", time, p, err, ErrInvalidArgument)
		}
		if _, err := c.EvaluateTangent(time); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("time %g: got error %v, want %v", time, err, ErrInvalidArgument)
		}
	}
}

func TestMapGlobalTimeUniformSpeed(t *testing.T) {
	// Two straight segments, the second three times as long as the first.
	c := newTestCurve(t, []ControlPoint{
		cp(V(0, 0, 0), V(0, 0, 0), V(1, 0, 0)),
		cp(V(3, 0, 0), V(2, 0, 0), V(6, 0, 0)),
		cp(V(12, 0, 0), V(9, 0, 0), V(12, 0, 0)),
	})
	for _, tt := range []struct{ time, x float64 }{{0.25, 3}, {0.5, 6}, {0.75, 9}, {1, 12}} {
		p, err := c.EvaluatePosition(tt.time)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, V(tt.x, 0, 0), p, approx(1e-9))
	}
}
