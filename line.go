package geom

import (
	"fmt"
	"math"
)

// Axis identifies one of the three axes of a local frame.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vec3 returns the global unit vector of the axis.
func (a Axis) Vec3() Vec3 {
	switch a {
	case AxisX:
		return UnitX
	case AxisY:
		return UnitY
	case AxisZ:
		return UnitZ
	default:
		panic(fmt.Sprintf("invalid axis %d", int(a)))
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// LocalAxis is an orthonormal coordinate frame placed at an origin. The
// rotation's columns are the local x, y, and z axes in global coordinates.
type LocalAxis struct {
	origin   Vec3
	rotation Mat3
}

// NewLocalAxis returns the frame with the given origin and rotation. The
// rotation is assumed to be orthonormal.
func NewLocalAxis(origin Vec3, rotation Mat3) LocalAxis {
	return LocalAxis{origin: origin, rotation: rotation}
}

// Origin returns the frame's origin in global coordinates.
func (la LocalAxis) Origin() Vec3 {
	return la.origin
}

// Rotation returns the frame's basis. Its columns are the local axes in
// global coordinates.
func (la LocalAxis) Rotation() Mat3 {
	return la.rotation
}

// Direction returns the given local axis in global coordinates.
func (la LocalAxis) Direction(a Axis) Vec3 {
	return la.rotation.Col(int(a))
}

// ToLocal maps a global point into frame coordinates.
func (la LocalAxis) ToLocal(p Vec3) Vec3 {
	return la.rotation.Transpose().MulVec(p.Sub(la.origin))
}

// ToGlobal maps a point in frame coordinates back to global coordinates.
func (la LocalAxis) ToGlobal(p Vec3) Vec3 {
	return la.origin.Add(la.rotation.MulVec(p))
}

// Line is a straight segment between two points. The zero value is the
// degenerate segment at the origin.
//
// A Line may carry a frame produced by [Line.Rotate]; changing the endpoints
// with [Line.SetEndpoints] or [Line.Reverse] discards it, and the frame is
// then derived from the tangent again (see [Line.RotationMatrix]).
type Line struct {
	start Vec3
	end   Vec3

	// Accumulated rigid rotation, if any. Without it the frame is derived
	// from the tangent alone, which cannot represent roll about the axis.
	rot    Mat3
	hasRot bool
}

// NewLine returns the segment from start to end. Degenerate (zero-length)
// segments are allowed; operations that need a direction report the
// degeneracy instead.
func NewLine(start, end Vec3) Line {
	return Line{start: start, end: end}
}

// Start returns the start point.
func (l Line) Start() Vec3 {
	return l.start
}

// End returns the end point.
func (l Line) End() Vec3 {
	return l.end
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.end.Sub(l.start).Hypot()
}

// Midpoint returns the point halfway between the endpoints.
func (l Line) Midpoint() Vec3 {
	return l.start.Lerp(l.end, 0.5)
}

// Direction returns the unit tangent from start to end. The second return
// value is false for a degenerate segment.
func (l Line) Direction() (Vec3, bool) {
	d := l.end.Sub(l.start)
	n := d.Hypot()
	if n <= epsilon {
		return Vec3{}, false
	}
	return d.Mul(1 / n), true
}

// PointAt returns the point at parameter t, where t = 0 is the start and
// t = 1 is the end. t is not clamped.
func (l Line) PointAt(t float64) Vec3 {
	return l.start.Lerp(l.end, t)
}

// ClosestPoint returns the point on the segment closest to p. For a
// degenerate segment this is the start point.
func (l Line) ClosestPoint(p Vec3) Vec3 {
	d := l.end.Sub(l.start)
	d2 := d.Hypot2()
	if d2 <= epsilon {
		return l.start
	}
	t := d.Dot(p.Sub(l.start)) / d2
	return l.PointAt(math.Max(0, math.Min(1, t)))
}

// PointParameter returns the parameter in [0, 1] of p on the segment. The
// second return value is false if p does not lie on the segment; a
// degenerate segment maps its start point to 0.
func (l Line) PointParameter(p Vec3) (float64, bool) {
	if !l.Contains(p) {
		return 0, false
	}
	d := l.end.Sub(l.start)
	d2 := d.Hypot2()
	if d2 <= epsilon {
		return 0, true
	}
	t := d.Dot(p.Sub(l.start)) / d2
	return math.Max(0, math.Min(1, t)), true
}

// Distance returns the distance from p to the segment.
func (l Line) Distance(p Vec3) float64 {
	return p.Sub(l.ClosestPoint(p)).Hypot()
}

// LengthAtPoint returns the arc length from the start to the point on the
// segment closest to p.
func (l Line) LengthAtPoint(p Vec3) float64 {
	return l.ClosestPoint(p).Sub(l.start).Hypot()
}

// Contains reports whether p lies on the segment, within [Epsilon]. A
// degenerate segment contains only (the neighborhood of) its start point.
func (l Line) Contains(p Vec3) bool {
	if !l.ClosestPoint(p).IsApprox(p) {
		return false
	}
	d := l.end.Sub(l.start)
	d2 := d.Hypot2()
	if d2 <= epsilon {
		return p.IsApprox(l.start)
	}
	t := d.Dot(p.Sub(l.start)) / d2
	return t >= -epsilon && t <= 1+epsilon
}

// Intersection computes the crossing of two segments in space. If ray is
// true, l is treated as a ray from its start through its end instead of a
// segment; o is then an infinite line.
//
// The second return value is false when the segments do not cross within
// [Epsilon], including the parallel and skew cases. Parallel overlapping
// segments report o's start point if l contains it.
func (l Line) Intersection(o Line, ray bool) (Vec3, bool) {
	d1 := l.end.Sub(l.start)
	d2 := o.end.Sub(o.start)
	r := o.start.Sub(l.start)

	a := d1.Dot(d1)
	b := d1.Dot(d2)
	e := d2.Dot(d2)
	c := d1.Dot(r)
	f := d2.Dot(r)

	denom := a*e - b*b
	if math.Abs(denom) <= epsilon {
		// Parallel or degenerate.
		if l.Contains(o.start) {
			return o.start, true
		}
		return Vec3{}, false
	}

	s := (c*e - b*f) / denom
	t := (b*c - a*f) / denom

	if ray {
		// The ray tolerance is absolute: a crossing barely behind the
		// origin still counts, anything farther back does not.
		const rayEpsilon = 1e-9
		if s < -rayEpsilon {
			return Vec3{}, false
		}
		if s < 0 {
			s = 0
		}
	} else {
		if s < -epsilon || s > 1+epsilon || t < -epsilon || t > 1+epsilon {
			return Vec3{}, false
		}
	}

	p1 := l.PointAt(s)
	p2 := o.PointAt(t)
	if !p1.IsApprox(p2) {
		// Skew lines: the closest points do not coincide.
		return Vec3{}, false
	}
	return p1, true
}

// RayIntersection is shorthand for [Line.Intersection] in ray mode.
func (l Line) RayIntersection(o Line) (Vec3, bool) {
	return l.Intersection(o, true)
}

// RotationMatrix returns the local frame of the segment as a matrix whose
// columns are the local x, y, and z axes in global coordinates. The second
// return value is false for a degenerate segment.
//
// The local x axis is the tangent. For a fresh line the local z axis is the
// unit vector in the global XZ plane perpendicular to the tangent (falling
// back to global +Z when the tangent is parallel to global Y), and the local
// y axis completes the right-handed basis. A line that has been rotated with
// [Line.Rotate] instead carries the accumulated rotation of that derived
// frame.
func (l Line) RotationMatrix() (Mat3, bool) {
	if l.hasRot {
		return l.rot, true
	}
	return l.derivedFrame()
}

func (l Line) derivedFrame() (Mat3, bool) {
	ex, ok := l.Direction()
	if !ok {
		return Mat3{}, false
	}
	ez := ex.Cross(UnitY)
	if ez.Hypot() <= epsilon {
		ez = UnitZ
	} else {
		ez = ez.Normalize()
	}
	ey := ez.Cross(ex)
	return Mat3Cols(ex, ey, ez), true
}

// Axis returns the given local axis of the segment's frame in global
// coordinates. The second return value is false for a degenerate segment.
func (l Line) Axis(a Axis) (Vec3, bool) {
	rot, ok := l.RotationMatrix()
	if !ok {
		return Vec3{}, false
	}
	return rot.Col(int(a)), true
}

// LocalAxis returns the segment's frame, placed at the start point. The
// second return value is false for a degenerate segment.
func (l Line) LocalAxis() (LocalAxis, bool) {
	rot, ok := l.RotationMatrix()
	if !ok {
		return LocalAxis{}, false
	}
	return NewLocalAxis(l.start, rot), true
}

// ToLocal maps a global point into the segment's frame. The second return
// value is false for a degenerate segment.
func (l Line) ToLocal(p Vec3) (Vec3, bool) {
	la, ok := l.LocalAxis()
	if !ok {
		return Vec3{}, false
	}
	return la.ToLocal(p), true
}

// ToGlobal maps a point in the segment's frame back to global coordinates.
// The second return value is false for a degenerate segment.
func (l Line) ToGlobal(p Vec3) (Vec3, bool) {
	la, ok := l.LocalAxis()
	if !ok {
		return Vec3{}, false
	}
	return la.ToGlobal(p), true
}

// Move translates the segment by offset. Any rotation applied with
// [Line.Rotate] is kept.
func (l *Line) Move(offset Vec3) {
	l.start = l.start.Add(offset)
	l.end = l.end.Add(offset)
}

// Rotate rotates the segment by angle radians about an axis through the
// start point, following the right-hand rule. The segment's frame rotates
// with it, so rotating about the tangent rolls the frame while leaving the
// endpoints in place.
func (l *Line) Rotate(angle float64, axis Vec3) {
	rod := Mat3Rotation(angle, axis)
	if cur, ok := l.RotationMatrix(); ok {
		l.rot = rod.Mul(cur)
		l.hasRot = true
	}
	l.end = l.start.Add(rod.MulVec(l.end.Sub(l.start)))
}

// SetEndpoints replaces both endpoints. Any rotation applied with
// [Line.Rotate] is discarded.
func (l *Line) SetEndpoints(start, end Vec3) {
	l.start = start
	l.end = end
	l.rot = Mat3{}
	l.hasRot = false
}

// MoveStart replaces the start point. Any rotation applied with [Line.Rotate]
// is discarded, since the tangent changes.
func (l *Line) MoveStart(start Vec3) {
	l.SetEndpoints(start, l.end)
}

// MoveEnd replaces the end point. Any rotation applied with [Line.Rotate] is
// discarded, since the tangent changes.
func (l *Line) MoveEnd(end Vec3) {
	l.SetEndpoints(l.start, end)
}

// Reverse swaps the endpoints in place. Any rotation applied with
// [Line.Rotate] is discarded.
func (l *Line) Reverse() {
	l.SetEndpoints(l.end, l.start)
}

// Reversed returns a copy of the segment with the endpoints swapped.
func (l Line) Reversed() Line {
	return NewLine(l.end, l.start)
}

// BreakAt splits the segment at parameter t. For t outside (0, 1) the
// segment is returned unsplit.
func (l Line) BreakAt(t float64) []Line {
	if t <= 0 || t >= 1 {
		return []Line{l}
	}
	mid := l.PointAt(t)
	return []Line{
		NewLine(l.start, mid),
		NewLine(mid, l.end),
	}
}

// BreakAtPoint splits the segment at p. If p is not on the segment, or
// coincides with an endpoint, the segment is returned unsplit.
func (l Line) BreakAtPoint(p Vec3) []Line {
	if !l.Contains(p) || p.IsApprox(l.start) || p.IsApprox(l.end) {
		return []Line{l}
	}
	return []Line{
		NewLine(l.start, p),
		NewLine(p, l.end),
	}
}

// BoundingBox returns the componentwise minimum and maximum of the
// endpoints.
func (l Line) BoundingBox() (min, max Vec3) {
	return l.start.Min(l.end), l.start.Max(l.end)
}

func (l Line) String() string {
	return fmt.Sprintf("%v–%v", l.start, l.end)
}
