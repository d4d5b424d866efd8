package geom

import (
	"fmt"
	"math"
)

// Arc is a circular arc in space, described by its center, the start and end
// points on the circle, a unit plane normal, and a signed sweep angle. A
// positive sweep turns counter-clockwise when viewed from the tip of the
// normal.
type Arc struct {
	center Vec3
	start  Vec3
	end    Vec3
	normal Vec3
	sweep  float64
	radius float64
}

// NewArc constructs the arc on the circle around center from start to end,
// turning clockwise or counter-clockwise. Construction never fails:
//
//   - The radius is the average of the two endpoint distances; callers are
//     expected to pass points that are actually concyclic.
//   - If center, start, and end are collinear the plane is ambiguous and the
//     global XY plane is used.
//   - If start and end (nearly) coincide the arc is a half turn in the
//     requested direction rather than an empty one.
func NewArc(center, start, end Vec3, clockwise bool) Arc {
	startVec := start.Sub(center)
	endVec := end.Sub(center)

	startLen := startVec.Hypot()
	endLen := endVec.Hypot()
	radius := (startLen + endLen) * 0.5

	cross := startVec.Cross(endVec)
	crossNorm := cross.Hypot()
	var normal Vec3
	if crossNorm <= epsilon {
		if clockwise {
			normal = Vec3{Z: -1}
		} else {
			normal = Vec3{Z: 1}
		}
	} else {
		normal = cross.Div(crossNorm)
		if clockwise {
			normal = normal.Negate()
		}
	}

	startDir := UnitX
	if startLen > epsilon {
		startDir = startVec.Div(startLen)
	}
	endDir := startDir
	if endLen > epsilon {
		endDir = endVec.Div(endLen)
	}

	crossDir := startDir.Cross(endDir)
	dot := math.Max(-1, math.Min(1, startDir.Dot(endDir)))
	sweep := math.Atan2(crossDir.Hypot(), dot)
	if crossDir.Dot(normal) < 0 {
		sweep = -sweep
	}

	if clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if !clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	}

	if math.Abs(sweep) <= epsilon {
		if clockwise {
			sweep = -math.Pi
		} else {
			sweep = math.Pi
		}
	}

	return Arc{
		center: center,
		start:  start,
		end:    end,
		normal: normal.Normalize(),
		sweep:  sweep,
		radius: radius,
	}
}

// ArcFromThreePoints constructs the arc from p1 through p2 to p3. The second
// return value is false if the points are (nearly) collinear, in which case
// no circle passes through them.
func ArcFromThreePoints(p1, p2, p3 Vec3) (Arc, bool) {
	v1 := p2.Sub(p1)
	v2 := p3.Sub(p1)
	if v1.Hypot() <= epsilon || v2.Hypot() <= epsilon {
		return Arc{}, false
	}

	normal := v1.Cross(v2)
	normalNorm := normal.Hypot()
	if normalNorm <= epsilon {
		return Arc{}, false
	}
	normalUnit := normal.Div(normalNorm)

	// Circumcenter in the plane coordinates spanned by u and v.
	u := v1.Normalize()
	v := normalUnit.Cross(u)

	x2 := v1.Dot(u)
	x3 := v2.Dot(u)
	y3 := v2.Dot(v)
	if math.Abs(y3) <= epsilon {
		return Arc{}, false
	}

	cx := x2 * 0.5
	cy := (x3*x3 + y3*y3 - x2*x3) / (2 * y3)

	center := p1.Add(u.Mul(cx)).Add(v.Mul(cy))
	clockwise := cy < 0
	return NewArc(center, p1, p3, clockwise), true
}

// Center returns the center of the arc's circle.
func (a Arc) Center() Vec3 {
	return a.center
}

// Start returns the start point.
func (a Arc) Start() Vec3 {
	return a.start
}

// End returns the end point.
func (a Arc) End() Vec3 {
	return a.end
}

// Normal returns the unit normal of the arc's plane.
func (a Arc) Normal() Vec3 {
	return a.normal
}

// Radius returns the radius.
func (a Arc) Radius() float64 {
	return a.radius
}

// Angle returns the signed sweep angle in radians. It is positive for a
// counter-clockwise arc (viewed from the tip of the normal) and negative for
// a clockwise one.
func (a Arc) Angle() float64 {
	return a.sweep
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return a.radius * math.Abs(a.sweep)
}

func (a Arc) startDirection() Vec3 {
	startVec := a.start.Sub(a.center)
	if startVec.Hypot() <= epsilon {
		return UnitX
	}
	return startVec.Normalize()
}

// PointAt returns the point at parameter t, where t = 0 is the start and
// t = 1 is the end. t is not clamped.
func (a Arc) PointAt(t float64) Vec3 {
	return a.PointAtAngle(a.sweep * t)
}

// AngleAt returns the signed angle from the start at parameter t.
func (a Arc) AngleAt(t float64) float64 {
	return a.sweep * t
}

// PointAtAngle returns the point at the signed angle from the start.
func (a Arc) PointAtAngle(angle float64) Vec3 {
	startDir := a.startDirection()
	perp := a.normal.Cross(startDir)
	sin, cos := math.Sincos(angle)
	rotated := startDir.Mul(cos).Add(perp.Mul(sin))
	return a.center.Add(rotated.Mul(a.radius))
}

// ClosestPoint returns the point on the arc closest to p.
func (a Arc) ClosestPoint(p Vec3) Vec3 {
	return a.PointAtAngle(a.clampedAngleFromPoint(p))
}

// Distance returns the distance from p to the arc.
func (a Arc) Distance(p Vec3) float64 {
	return p.Sub(a.ClosestPoint(p)).Hypot()
}

// Contains reports whether p lies on the arc, within [Epsilon].
func (a Arc) Contains(p Vec3) bool {
	if !a.angleInRange(a.AngleFromPoint(p)) {
		return false
	}
	radial := p.Sub(a.center).Hypot()
	return math.Abs(radial-a.radius) <= epsilon
}

// AngleFromPoint returns the signed angle from the start direction to p as
// seen from the center. A point at the center maps to angle 0.
func (a Arc) AngleFromPoint(p Vec3) float64 {
	startDir := a.startDirection()
	perp := a.normal.Cross(startDir)
	vec := p.Sub(a.center)
	if vec.Hypot() <= epsilon {
		return 0
	}
	dir := vec.Normalize()
	return math.Atan2(dir.Dot(perp), dir.Dot(startDir))
}

// LengthAtAngle returns the arc length swept by the given angle.
func (a Arc) LengthAtAngle(angle float64) float64 {
	return a.radius * math.Abs(angle)
}

// LengthAtPoint returns the arc length from the start to the point on the
// arc closest to p.
func (a Arc) LengthAtPoint(p Vec3) float64 {
	return a.LengthAtAngle(a.clampedAngleFromPoint(p))
}

// BreakAt splits the arc at parameter t. For t outside (0, 1) the arc is
// returned unsplit.
func (a Arc) BreakAt(t float64) []Arc {
	if t <= 0 || t >= 1 {
		return []Arc{a}
	}
	angle := a.sweep * t
	return []Arc{a.segment(0, angle), a.segment(angle, a.sweep)}
}

// BreakAtAngle splits the arc at the given signed angle from the start. If
// the angle lies outside the sweep, or the sweep is (nearly) zero, the arc
// is returned unsplit.
func (a Arc) BreakAtAngle(angle float64) []Arc {
	if math.Abs(a.sweep) <= epsilon {
		return []Arc{a}
	}
	if !a.angleInRange(angle) {
		return []Arc{a}
	}
	return []Arc{a.segment(0, angle), a.segment(angle, a.sweep)}
}

// BreakAtPoint splits the arc at p. If p is not on the arc, the arc is
// returned unsplit.
func (a Arc) BreakAtPoint(p Vec3) []Arc {
	if !a.Contains(p) {
		return []Arc{a}
	}
	return a.BreakAtAngle(a.AngleFromPoint(p))
}

// Reverse swaps the start and end in place and negates the sweep. The plane
// normal is unchanged, so the traced arc is the same and only the direction
// of travel flips.
func (a *Arc) Reverse() {
	a.start, a.end = a.end, a.start
	a.sweep = -a.sweep
}

// Reversed returns a copy of the arc with start and end swapped.
func (a Arc) Reversed() Arc {
	clone := a
	clone.Reverse()
	return clone
}

// StartTangent returns the unit tangent at the start, pointing in the
// direction of increasing angle.
func (a Arc) StartTangent() Vec3 {
	return a.tangentAtAngle(0)
}

// EndTangent returns the unit tangent at the end, pointing in the direction
// of increasing angle.
func (a Arc) EndTangent() Vec3 {
	return a.tangentAtAngle(a.sweep)
}

// IntersectLine computes the crossings of the arc's circle with a segment
// and keeps those that lie on the arc. If ray is true, l is treated as a ray
// from its start through its end, and every circle crossing along the ray is
// reported whether or not it lies on the arc.
func (a Arc) IntersectLine(l Line, ray bool) []Vec3 {
	dir := l.End().Sub(l.Start())
	toCenter := l.Start().Sub(a.center)

	qa := dir.Dot(dir)
	qb := 2 * dir.Dot(toCenter)
	qc := toCenter.Dot(toCenter) - a.radius*a.radius

	discriminant := qb*qb - 4*qa*qc
	if discriminant < -epsilon {
		return nil
	}

	discSqrt := math.Sqrt(math.Max(discriminant, 0))
	var ts []float64
	if discSqrt <= epsilon {
		// Tangent line, single touch point.
		ts = []float64{-qb / (2 * qa)}
	} else {
		ts = []float64{(-qb - discSqrt) / (2 * qa), (-qb + discSqrt) / (2 * qa)}
	}

	var result []Vec3
	for _, t := range ts {
		if ray {
			if t < -epsilon {
				continue
			}
		} else if t < -epsilon || t > 1+epsilon {
			continue
		}
		p := l.Start().Add(dir.Mul(t))
		if a.Contains(p) || ray {
			result = append(result, p)
		}
	}
	return result
}

// IntersectArc computes the crossings of two arcs, assuming they share a
// plane. Concentric circles report no crossings.
func (a Arc) IntersectArc(o Arc) []Vec3 {
	diff := o.center.Sub(a.center)
	d := diff.Hypot()
	if d <= epsilon {
		return nil
	}

	r1 := a.radius
	r2 := o.radius
	if d > r1+r2+epsilon || d < math.Abs(r1-r2)-epsilon {
		return nil
	}

	// Radical line of the two circles.
	ra := (r1*r1 - r2*r2 + d*d) / (2 * d)
	hSq := r1*r1 - ra*ra
	if hSq < -epsilon {
		return nil
	}
	h := math.Sqrt(math.Max(hSq, 0))
	diffNorm := diff.Div(d)
	base := a.center.Add(diffNorm.Mul(ra))
	perp := a.normal.Cross(diffNorm)

	var candidates []Vec3
	if h <= epsilon {
		candidates = []Vec3{base}
	} else {
		candidates = []Vec3{base.Add(perp.Mul(h)), base.Sub(perp.Mul(h))}
	}

	var points []Vec3
	for _, p := range candidates {
		if a.Contains(p) && o.Contains(p) {
			points = append(points, p)
		}
	}
	return points
}

// Linearized approximates the arc with at least one chord.
func (a Arc) Linearized(segments int) []Line {
	segments = max(segments, 1)
	lines := make([]Line, 0, segments)
	prev := a.start
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		next := a.PointAt(t)
		lines = append(lines, NewLine(prev, next))
		prev = next
	}
	return lines
}

func (a Arc) tangentAtAngle(angle float64) Vec3 {
	startDir := a.startDirection()
	perp := a.normal.Cross(startDir)
	sin, cos := math.Sincos(angle)
	return startDir.Mul(-sin).Add(perp.Mul(cos))
}

func (a Arc) segment(startAngle, endAngle float64) Arc {
	return Arc{
		center: a.center,
		start:  a.PointAtAngle(startAngle),
		end:    a.PointAtAngle(endAngle),
		normal: a.normal,
		sweep:  endAngle - startAngle,
		radius: a.radius,
	}
}

func (a Arc) angleInRange(angle float64) bool {
	if a.sweep >= 0 {
		return angle >= -epsilon && angle <= a.sweep+epsilon
	}
	return angle <= epsilon && angle >= a.sweep-epsilon
}

func (a Arc) clampAngle(angle float64) float64 {
	if a.sweep >= 0 {
		return math.Max(0, math.Min(a.sweep, angle))
	}
	return math.Max(a.sweep, math.Min(0, angle))
}

func (a Arc) clampedAngleFromPoint(p Vec3) float64 {
	return a.clampAngle(a.AngleFromPoint(p))
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(center %v, radius %g, sweep %g)", a.center, a.radius, a.sweep)
}
