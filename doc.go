// Package geom provides primitives and routines for planar and spatial
// geometry: vectors, line segments, circular arcs, planar polygons, and
// parametric cross-section shapes, together with the metrics structural
// analysis needs from them (length, area, centroid, second moment of area)
// and their mutual relationships (containment, intersection, local
// coordinate frames).
//
// # Tolerance
//
// Equality of floating-point quantities is never bit-exact. Every predicate
// in this package routes through a single process-wide tolerance, which
// defaults to [DefaultEpsilon] and can be read with [Epsilon], replaced with
// [SetEpsilon], or overridden for a scoped computation with [WithEpsilon].
// Methods whose result depends on a comparison ("equal enough", "zero",
// "parallel") document that they do.
//
// # Degeneracy
//
// Geometric degeneracy is an expected outcome, not an error. Operations
// whose result may not exist (the direction of a zero-length line, the
// crossing of parallel segments, the circle through collinear points) report
// it with an additional boolean result or an empty slice. Errors are
// reserved for construction-time validation of dimensions and vertex lists.
//
// # Local frames
//
// Lines and polygons expose an orthonormal local basis as a [Mat3] whose
// columns are the local X, Y, and Z axes expressed in global coordinates.
// The conventions for choosing the basis are deliberate and documented on
// [Line.RotationMatrix] and [NewPolygon]; downstream code depends on the
// specific axis and sign choices, not merely on orthonormality.
package geom
