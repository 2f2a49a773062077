package spline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// V returns the vector ⟨x, y, z⟩.
func V(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Up is the default up vector, the positive y axis.
var Up = V(0, 1, 0)

// lerp linearly interpolates between two vectors.
func lerp(a, b r3.Vec, t float64) r3.Vec {
	// a + t * (b-a)
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// lerpf is the scalar version of lerp. t is not clamped.
func lerpf(a, b, t float64) float64 {
	return a + (b-a)*t
}

// normalize returns a unit vector with the same direction as v. Unlike
// [r3.Unit], it returns the zero vector and false if v has zero magnitude.
func normalize(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n == 0 || math.IsNaN(n) {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

func distanceSquared(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

// isFinite reports whether none of v's components are infinite or NaN.
func isFinite(v r3.Vec) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}
