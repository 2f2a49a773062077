package spline

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// CubicSegment is a cubic Bézier in 3D space. P0 and P3 are the end points,
// P1 and P2 the tangent handles.
//
// All methods accept any t, not just t ∈ [0, 1]. Values outside the unit
// interval extrapolate the polynomial.
type CubicSegment struct {
	P0 r3.Vec
	P1 r3.Vec
	P2 r3.Vec
	P3 r3.Vec
}

// IsFinite reports whether all control points are finite.
func (c CubicSegment) IsFinite() bool {
	return isFinite(c.P0) && isFinite(c.P1) && isFinite(c.P2) && isFinite(c.P3)
}

// Eval evaluates the position of the segment at parameter t, using de
// Casteljau. Coincident control points evaluate to exactly that point.
func (c CubicSegment) Eval(t float64) r3.Vec {
	p01 := lerp(c.P0, c.P1, t)
	p12 := lerp(c.P1, c.P2, t)
	p23 := lerp(c.P2, c.P3, t)
	return lerp(lerp(p01, p12, t), lerp(p12, p23, t), t)
}

// Deriv evaluates the first derivative of the segment at parameter t.
func (c CubicSegment) Deriv(t float64) r3.Vec {
	mt := 1.0 - t
	d01 := r3.Sub(c.P1, c.P0)
	d12 := r3.Sub(c.P2, c.P1)
	d23 := r3.Sub(c.P3, c.P2)
	return r3.Add(
		r3.Add(r3.Scale(3*mt*mt, d01), r3.Scale(6*mt*t, d12)),
		r3.Scale(3*t*t, d23))
}

// Tangent returns the unit direction of travel at t. It returns the zero
// vector if the derivative vanishes, which happens for example at an end
// point whose handle coincides with it.
func (c CubicSegment) Tangent(t float64) r3.Vec {
	v, _ := normalize(c.Deriv(t))
	return v
}

// Binormal returns normalize(up × tangent). It returns the zero vector if the
// tangent is zero or parallel to up.
func (c CubicSegment) Binormal(t float64, up r3.Vec) r3.Vec {
	_, _, b, _ := c.frame(t, up)
	return b
}

// Normal returns normalize(tangent × binormal), the component of up that is
// orthogonal to the direction of travel. It returns the zero vector under the
// same conditions as [CubicSegment.Binormal].
func (c CubicSegment) Normal(t float64, up r3.Vec) r3.Vec {
	_, n, _, _ := c.frame(t, up)
	return n
}

// Rotation returns the orientation whose forward (+Z) axis is the tangent and
// whose up (+Y) axis is the normal at t. Degenerate frames produce the
// identity rotation.
func (c CubicSegment) Rotation(t float64, up r3.Vec) r3.Rotation {
	tan, n, _, ok := c.frame(t, up)
	if !ok {
		return identityRotation
	}
	rot, _ := LookRotation(tan, n)
	return rot
}

// frame computes the tangent, normal and binormal at t. ok is false if any of
// them is degenerate, in which case the degenerate vectors are zero.
func (c CubicSegment) frame(t float64, up r3.Vec) (tangent, normal, binormal r3.Vec, ok bool) {
	tangent, ok = normalize(c.Deriv(t))
	if !ok {
		return r3.Vec{}, r3.Vec{}, r3.Vec{}, false
	}
	binormal, ok = normalize(r3.Cross(up, tangent))
	if !ok {
		return tangent, r3.Vec{}, r3.Vec{}, false
	}
	normal, ok = normalize(r3.Cross(tangent, binormal))
	return tangent, normal, binormal, ok
}

// EstimateLength approximates the arc length of the segment by evaluating it
// at samples+1 evenly spaced parameters in [0, 1] and summing the chord
// lengths. The estimate never exceeds the true length and approaches it as
// samples grows. Values of samples smaller than 1 are treated as 1.
func (c CubicSegment) EstimateLength(samples int) float64 {
	samples = max(samples, 1)
	var length float64
	prev := c.P0
	for i := 1; i <= samples; i++ {
		p := c.Eval(float64(i) / float64(samples))
		length += Line{prev, p}.Length()
		prev = p
	}
	return length
}

var identityRotation = r3.Rotation{Real: 1}

// LookRotation returns the rotation that maps the +Z axis onto forward and
// the +Y axis onto the component of up orthogonal to forward.
//
// It returns the identity rotation and false if forward is zero or parallel
// to up.
func LookRotation(forward, up r3.Vec) (r3.Rotation, bool) {
	z, ok := normalize(forward)
	if !ok {
		return identityRotation, false
	}
	x, ok := normalize(r3.Cross(up, z))
	if !ok {
		return identityRotation, false
	}
	y := r3.Cross(z, x)

	// Columns of the rotation matrix are x, y and z.
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	var q quat.Number
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (m21 - m12) * s,
			Jmag: (m02 - m20) * s,
			Kmag: (m10 - m01) * s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: 0.25 * s,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: 0.25 * s,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: 0.25 * s,
		}
	}
	// Renormalize to absorb rounding; Rotate assumes a unit quaternion.
	q = quat.Scale(1/quat.Abs(q), q)
	return r3.Rotation(q), true
}
