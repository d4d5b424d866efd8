package geom

import (
	"errors"
	"fmt"
	"math"
)

// Polygon is a planar polygon in space, implicitly closed. Vertices are
// projected onto a common plane at construction time, and the plane's frame
// and the polygon's metrics are cached.
type Polygon struct {
	vertices []Vec3
	normal   Vec3
	rotation Mat3 // columns are [ex, ey, ez]
	centroid Vec3
	area     float64 // signed
	perim    float64
}

// NewPolygon creates a polygon from its vertices; the last vertex connects
// back to the first. Consecutive (nearly) duplicate vertices are dropped, as
// is a last vertex that repeats the first (a closed ring); an error is
// returned if fewer than three remain.
//
// The polygon's plane is taken from the first non-collinear vertex triple,
// falling back to the global XY plane for fully collinear input, and all
// vertices are projected onto it. The frame has ez along the plane normal,
// ex along the first edge, and ey completing the right-handed basis.
func NewPolygon(vertices []Vec3) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, errors.New("geom: polygon requires at least 3 vertices")
	}

	verts := make([]Vec3, 0, len(vertices))
	verts = append(verts, vertices[0])
	for _, v := range vertices[1:] {
		if !v.IsApprox(verts[len(verts)-1]) {
			verts = append(verts, v)
		}
	}
	// Closed-ring input repeats the first vertex at the end.
	if len(verts) > 1 && verts[len(verts)-1].IsApprox(verts[0]) {
		verts = verts[:len(verts)-1]
	}
	if len(verts) < 3 {
		return nil, errors.New("geom: polygon requires at least 3 distinct vertices")
	}

	base, normal, planar := planeFromVertices(verts)
	if !planar {
		// All points collinear or identical.
		base = verts[0]
		normal = UnitZ
	}

	for i, v := range verts {
		verts[i] = v.Sub(normal.Mul(v.Sub(base).Dot(normal)))
	}

	ez := normal
	ex := UnitX
	for i := range verts {
		edge := verts[(i+1)%len(verts)].Sub(verts[i])
		if edge.Hypot() > epsilon {
			ex = edge
			break
		}
	}
	ex = ex.Sub(ez.Mul(ex.Dot(ez)))
	if ex.Hypot() <= epsilon {
		ex = ez.Cross(UnitY)
		if ex.Hypot() <= epsilon {
			ex = UnitX
		}
		ex = ex.Normalize()
	} else {
		ex = ex.Normalize()
	}
	ey := ez.Cross(ex)
	rotation := Mat3Cols(ex, ey, ez)

	p := &Polygon{
		vertices: verts,
		normal:   ez,
		rotation: rotation,
	}

	var area2, cxNum, cyNum, perim float64
	locals := p.localsAt(verts[0])
	for i := range locals {
		a := locals[i]
		b := locals[(i+1)%len(locals)]
		cross := a.X*b.Y - b.X*a.Y
		area2 += cross
		cxNum += (a.X + b.X) * cross
		cyNum += (a.Y + b.Y) * cross
		perim += b.Sub(a).Hypot()
	}
	p.area = 0.5 * area2
	p.perim = perim

	var cx, cy float64
	if math.Abs(p.area) > epsilon {
		cx = cxNum / (3 * area2)
		cy = cyNum / (3 * area2)
	} else {
		// Degenerate area, fall back to the vertex average.
		n := float64(len(locals))
		for _, l := range locals {
			cx += l.X / n
			cy += l.Y / n
		}
	}
	p.centroid = verts[0].Add(rotation.MulVec(Vec3{X: cx, Y: cy}))

	return p, nil
}

// planeFromVertices finds the first non-collinear vertex triple, preferring
// the earliest vertices, and returns its base point and unit normal.
func planeFromVertices(verts []Vec3) (base, normal Vec3, ok bool) {
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			for k := j + 1; k < len(verts); k++ {
				u := verts[j].Sub(verts[i])
				v := verts[k].Sub(verts[i])
				n := u.Cross(v)
				if n.Hypot() > epsilon {
					return verts[i], n.Normalize(), true
				}
			}
		}
	}
	return Vec3{}, Vec3{}, false
}

// Vertices returns a copy of the projected vertices.
func (p *Polygon) Vertices() []Vec3 {
	out := make([]Vec3, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edges returns the boundary segments, including the closing one.
func (p *Polygon) Edges() []Line {
	n := len(p.vertices)
	edges := make([]Line, n)
	for i := range p.vertices {
		edges[i] = NewLine(p.vertices[i], p.vertices[(i+1)%n])
	}
	return edges
}

// Area returns the unsigned area.
func (p *Polygon) Area() float64 {
	return math.Abs(p.area)
}

// SignedArea returns the shoelace area: positive if the vertices wind
// counter-clockwise around the normal.
func (p *Polygon) SignedArea() float64 {
	return p.area
}

// Perimeter returns the total boundary length.
func (p *Polygon) Perimeter() float64 {
	return p.perim
}

// Centroid returns the area centroid.
func (p *Polygon) Centroid() Vec3 {
	return p.centroid
}

// Center returns the first vertex.
func (p *Polygon) Center() Vec3 {
	return p.vertices[0]
}

// Normal returns the unit normal of the polygon's plane.
func (p *Polygon) Normal() Vec3 {
	return p.normal
}

// BoundingBox returns the componentwise minimum and maximum of the vertices.
func (p *Polygon) BoundingBox() (min, max Vec3) {
	min = p.vertices[0]
	max = p.vertices[0]
	for _, v := range p.vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// LocalAxis returns the polygon's frame, placed at the centroid.
func (p *Polygon) LocalAxis() LocalAxis {
	return NewLocalAxis(p.centroid, p.rotation)
}

// Axis returns the given local axis in global coordinates.
func (p *Polygon) Axis(a Axis) Vec3 {
	return p.rotation.Col(int(a))
}

// ToLocal maps a global point into the polygon's frame, with the centroid as
// origin.
func (p *Polygon) ToLocal(point Vec3) Vec3 {
	return p.rotation.Transpose().MulVec(point.Sub(p.centroid))
}

// ToGlobal maps a point in the polygon's frame back to global coordinates.
func (p *Polygon) ToGlobal(local Vec3) Vec3 {
	return p.centroid.Add(p.rotation.MulVec(local))
}

func (p *Polygon) localsAt(origin Vec3) []Vec3 {
	rt := p.rotation.Transpose()
	locals := make([]Vec3, len(p.vertices))
	for i, v := range p.vertices {
		locals[i] = rt.MulVec(v.Sub(origin))
	}
	return locals
}

// originMoments returns the signed area, the centroid, and the second
// moments of area, all in the local frame with the first vertex as origin.
func (p *Polygon) originMoments() (area, cx, cy, ixx0, iyy0, ixy0 float64) {
	locals := p.localsAt(p.vertices[0])
	var area2, cxNum, cyNum float64
	var ixSum, iySum, ixySum float64
	for i := range locals {
		a := locals[i]
		b := locals[(i+1)%len(locals)]
		cross := a.X*b.Y - b.X*a.Y
		area2 += cross
		cxNum += (a.X + b.X) * cross
		cyNum += (a.Y + b.Y) * cross

		yy := a.Y*a.Y + a.Y*b.Y + b.Y*b.Y
		xx := a.X*a.X + a.X*b.X + b.X*b.X
		xy := a.X*b.Y + 2*a.X*a.Y + 2*b.X*b.Y + b.X*a.Y
		ixSum += yy * cross
		iySum += xx * cross
		ixySum += xy * cross
	}
	area = 0.5 * area2
	if math.Abs(area) > epsilon {
		cx = cxNum / (3 * area2)
		cy = cyNum / (3 * area2)
	}
	return area, cx, cy, ixSum / 12, iySum / 12, ixySum / 24
}

// CentroidalLocalSecondMomentOfArea returns the in-plane second moment of
// area tensor [Ixx Ixy; Ixy Iyy] about the centroid, with the local x and y
// axes as reference. A degenerate polygon returns the zero matrix.
func (p *Polygon) CentroidalLocalSecondMomentOfArea() Mat2 {
	area, cx, cy, ixx0, iyy0, ixy0 := p.originMoments()
	if math.Abs(area) <= epsilon {
		return Mat2{}
	}
	// Parallel axis theorem, from the first vertex to the centroid.
	ixx := ixx0 - area*cy*cy
	iyy := iyy0 - area*cx*cx
	ixy := ixy0 - area*cx*cy
	return Mat2{
		ixx, ixy,
		ixy, iyy,
	}
}

// LocalSecondMomentOfArea returns the in-plane second moment of area tensor
// about the in-plane image of the global origin. A degenerate polygon
// returns the zero matrix.
func (p *Polygon) LocalSecondMomentOfArea() Mat2 {
	area, _, _, _, _, _ := p.originMoments()
	if math.Abs(area) <= epsilon {
		return Mat2{}
	}
	c := p.CentroidalLocalSecondMomentOfArea()
	g := p.rotation.Transpose().MulVec(p.centroid)
	ixx := c.N00 + area*g.Y*g.Y
	iyy := c.N11 + area*g.X*g.X
	ixy := c.N01 + area*g.X*g.Y
	return Mat2{
		ixx, ixy,
		ixy, iyy,
	}
}

// plateTensor embeds an in-plane tensor into the thin-plate 3D form and
// rotates it into the global frame.
func (p *Polygon) plateTensor(ixx, iyy, ixy float64) Mat3 {
	j := Mat3{
		ixx, -ixy, 0,
		-ixy, iyy, 0,
		0, 0, ixx + iyy,
	}
	return p.rotation.Mul(j).Mul(p.rotation.Transpose())
}

// SecondMomentOfArea returns the global second moment of area tensor about
// the in-plane image of the global origin.
func (p *Polygon) SecondMomentOfArea() Mat3 {
	s := p.LocalSecondMomentOfArea()
	return p.plateTensor(s.N00, s.N11, s.N01)
}

// CentroidalSecondMomentOfArea returns the global second moment of area
// tensor about the centroid.
func (p *Polygon) CentroidalSecondMomentOfArea() Mat3 {
	s := p.CentroidalLocalSecondMomentOfArea()
	return p.plateTensor(s.N00, s.N11, s.N01)
}

// SecondMomentOfAreaAtCenter returns the global second moment of area tensor
// about the first vertex.
func (p *Polygon) SecondMomentOfAreaAtCenter() Mat3 {
	_, _, _, ixx0, iyy0, ixy0 := p.originMoments()
	return p.plateTensor(ixx0, iyy0, ixy0)
}

// LocalPrincipalAxes returns the in-plane principal axes of the centroidal
// second moment of area tensor as an orthonormal matrix. The first column is
// the axis of smaller inertia; the second is its 90° counter-clockwise
// rotation.
func (p *Polygon) LocalPrincipalAxes() Mat2 {
	s := p.CentroidalLocalSecondMomentOfArea()
	a := s.N00
	b := s.N01
	c := s.N11

	var v1 Vec2
	if math.Abs(b) <= epsilon {
		// Already diagonal.
		if a <= c {
			v1 = Vec2{X: 1}
		} else {
			v1 = Vec2{Y: 1}
		}
	} else {
		tr := a + c
		det := a*c - b*b
		disc := math.Sqrt(math.Max(tr*tr-4*det, 0))
		lmin := 0.5 * (tr - disc)
		v1 = Vec2{X: b, Y: lmin - a}.NormalizeOr(Vec2{X: 1})
	}
	v2 := Vec2{X: -v1.Y, Y: v1.X}
	return Mat2Cols(v1, v2)
}

// PrincipalAxes returns the global principal directions as a matrix whose
// first two columns are the in-plane principal axes and whose third column
// is the polygon normal.
func (p *Polygon) PrincipalAxes() Mat3 {
	axes := p.LocalPrincipalAxes()
	u1 := p.rotation.MulVec(axes.Col(0).Vec3())
	u2 := p.rotation.MulVec(axes.Col(1).Vec3())
	u3 := p.rotation.MulVec(UnitZ)
	return Mat3Cols(u1, u2, u3)
}

// Contains reports whether point lies strictly inside the polygon. Points on
// the boundary are not contained; see [Polygon.BorderContains].
func (p *Polygon) Contains(point Vec3) bool {
	local := p.ToLocal(point)
	if math.Abs(local.Z) > epsilon {
		return false
	}
	locals := p.localsAt(p.centroid)
	// Ray cast along +X with the half-open edge rule, so a vertex on the
	// ray is counted exactly once.
	inside := false
	for i := range locals {
		a := locals[i]
		b := locals[(i+1)%len(locals)]
		if ((a.Y > local.Y && b.Y <= local.Y) || (b.Y > local.Y && a.Y <= local.Y)) &&
			a.X+(local.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y+1e-30) > local.X {
			inside = !inside
		}
	}
	return inside
}

// BorderContains reports whether point lies on the polygon's boundary,
// within [Epsilon].
func (p *Polygon) BorderContains(point Vec3) bool {
	local := p.ToLocal(point)
	if math.Abs(local.Z) > epsilon {
		return false
	}
	locals := p.localsAt(p.centroid)
	for i := range locals {
		a := locals[i]
		b := locals[(i+1)%len(locals)]
		if pointOnSegment2D(local, a, b) {
			return true
		}
	}
	return false
}

func pointOnSegment2D(p, a, b Vec3) bool {
	ap := p.Sub(a)
	ab := b.Sub(a)
	cross := ap.X*ab.Y - ap.Y*ab.X
	if math.Abs(cross) > epsilon {
		return false
	}
	dot := ap.X*ab.X + ap.Y*ab.Y
	if dot < -epsilon {
		return false
	}
	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	return dot <= abLen2+epsilon
}

// ClosestPoint returns the point of the polygon (interior included) closest
// to point.
func (p *Polygon) ClosestPoint(point Vec3) Vec3 {
	proj := point.Sub(p.normal.Mul(point.Sub(p.centroid).Dot(p.normal)))
	if p.Contains(proj) || p.BorderContains(proj) {
		return proj
	}
	best := p.vertices[0]
	bestDist := math.Inf(1)
	for _, edge := range p.Edges() {
		cp := edge.ClosestPoint(proj)
		if d := cp.Sub(proj).Hypot(); d < bestDist {
			bestDist = d
			best = cp
		}
	}
	return best
}

// IntersectLine computes the crossing of a segment with the polygon. If ray
// is true, l is treated as a ray from its start through its end. The second
// return value is false when the segment's line is parallel to the plane or
// the crossing falls outside the polygon. Coplanar segments never intersect.
func (p *Polygon) IntersectLine(l Line, ray bool) (Vec3, bool) {
	s0 := l.Start()
	dir := l.End().Sub(s0)
	denom := p.normal.Dot(dir)
	if math.Abs(denom) <= epsilon {
		return Vec3{}, false
	}
	t := p.normal.Dot(p.centroid.Sub(s0)) / denom
	if ray {
		if t < -epsilon {
			return Vec3{}, false
		}
		if t < 0 {
			t = 0
		}
	}
	hit := s0.Add(dir.Mul(t))
	if p.Contains(hit) || p.BorderContains(hit) {
		return hit, true
	}
	return Vec3{}, false
}

// Reverse flips the winding in place: the vertex order reverses, the normal
// and the signed area flip, and the frame is rebuilt around the unchanged
// local x axis. The centroid does not move.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.vertices)-1; i < j; i, j = i+1, j-1 {
		p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
	}
	p.normal = p.normal.Negate()
	ex := p.rotation.Col(0)
	ez := p.normal
	ey := ez.Cross(ex)
	p.rotation = Mat3Cols(ex, ey, ez)
	p.area = -p.area
}

// IsValid reports whether the polygon has a non-degenerate area and a
// boundary free of self-intersections.
func (p *Polygon) IsValid() bool {
	return p.Area() > epsilon && !p.selfIntersects()
}

func (p *Polygon) selfIntersects() bool {
	edges := p.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Adjacent edges share an endpoint, not a crossing.
			if j == (i+1)%n || i == (j+1)%n || (i == 0 && j == n-1) {
				continue
			}
			if _, ok := edges[i].Intersection(edges[j], false); ok {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy.
func (p *Polygon) Clone() *Polygon {
	clone := *p
	clone.vertices = make([]Vec3, len(p.vertices))
	copy(clone.vertices, p.vertices)
	return &clone
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon(%d vertices, area %g)", len(p.vertices), p.Area())
}
