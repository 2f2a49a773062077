// Package spline evaluates piecewise cubic Bézier curves in 3D space.
//
// A [Curve] is defined by an ordered sequence of [ControlPoint] values, each
// carrying a position and independent incoming and outgoing tangent handles.
// Consecutive control points define the [CubicSegment] values that make up
// the curve. Control points are owned by a [PointStore]; [MemStore] is a
// simple in-memory implementation.
//
// # Global time
//
// Curves are evaluated at a single global time in [0, 1] that spans all
// segments. Rather than giving each segment an equal share of the global
// time, each segment's share is proportional to its estimated arc length.
// This makes traversal speed approximately uniform, even if segments vary
// greatly in length. [Curve.MapGlobalTime] exposes the mapping from global
// time to a segment and the time local to it.
//
// Arc lengths are estimated by summing chord lengths, see
// [CubicSegment.EstimateLength]. The curve's sampling resolution (see
// [WithSampling]) is divided evenly among the segments. All
// parameterization inherits the error of this estimate.
//
// # Lookup tables and projection
//
// [Curve.LUT] samples the curve at evenly spaced global times and caches the
// resulting [LUT] per number of samples. Lookup tables are used by
// [Curve.Project] to find the global time closest to an arbitrary point: the
// nearest sample is refined by projecting the point onto the line to the
// adjacent sample.
//
// Cached lookup tables are dropped when control points are added or removed.
// Moving existing points leaves them stale, unless the curve was created
// with [WithInvalidateOnMove].
//
// # Orientation
//
// Besides positions and tangents, curves provide normals, binormals and
// rotations relative to a caller-supplied up vector. Vectors are
// [r3.Vec] values and rotations are [r3.Rotation] values from gonum.
//
// [r3.Vec]: https://pkg.go.dev/gonum.org/v1/gonum/spatial/r3#Vec
// [r3.Rotation]: https://pkg.go.dev/gonum.org/v1/gonum/spatial/r3#Rotation
package spline
