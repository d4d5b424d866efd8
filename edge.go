package geom

import "fmt"

// Edge is a straight polygon or mesh edge: a [Line] that optionally carries
// the tangents of the curve it was discretized from at its two endpoints.
type Edge struct {
	line            Line
	startTangent    Vec3
	endTangent      Vec3
	hasStartTangent bool
	hasEndTangent   bool
}

// NewEdge returns the edge from start to end with no tangents.
func NewEdge(start, end Vec3) Edge {
	return Edge{line: NewLine(start, end)}
}

// NewEdgeWithTangents returns the edge from start to end carrying the given
// endpoint tangents.
func NewEdgeWithTangents(start, end, startTangent, endTangent Vec3) Edge {
	return Edge{
		line:            NewLine(start, end),
		startTangent:    startTangent,
		endTangent:      endTangent,
		hasStartTangent: true,
		hasEndTangent:   true,
	}
}

// Start returns the start point.
func (e Edge) Start() Vec3 {
	return e.line.Start()
}

// End returns the end point.
func (e Edge) End() Vec3 {
	return e.line.End()
}

// Line returns the underlying segment.
func (e Edge) Line() Line {
	return e.line
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.line.Length()
}

// Centroid returns the midpoint of the edge.
func (e Edge) Centroid() Vec3 {
	return e.line.Midpoint()
}

// PointAt returns the point at parameter t. t is not clamped.
func (e Edge) PointAt(t float64) Vec3 {
	return e.line.PointAt(t)
}

// ClosestPoint returns the point on the edge closest to p.
func (e Edge) ClosestPoint(p Vec3) Vec3 {
	return e.line.ClosestPoint(p)
}

// Contains reports whether p lies on the edge, within [Epsilon].
func (e Edge) Contains(p Vec3) bool {
	return e.line.Contains(p)
}

// LengthAtPoint returns the arc length from the start to the point on the
// edge closest to p.
func (e Edge) LengthAtPoint(p Vec3) float64 {
	return e.line.LengthAtPoint(p)
}

// BreakAt splits the edge at parameter t. Both pieces keep the original
// endpoint tangents. For t outside (0, 1) the edge is returned unsplit.
func (e Edge) BreakAt(t float64) []Edge {
	segments := e.line.BreakAt(t)
	edges := make([]Edge, len(segments))
	for i, segment := range segments {
		edge := NewEdge(segment.Start(), segment.End())
		edge.startTangent, edge.hasStartTangent = e.startTangent, e.hasStartTangent
		edge.endTangent, edge.hasEndTangent = e.endTangent, e.hasEndTangent
		edges[i] = edge
	}
	return edges
}

// BreakAtPoint splits the edge at p. The pieces carry no tangents, since the
// originals do not apply at an interior point. If p is not on the edge, or
// coincides with an endpoint, the edge is returned unsplit.
func (e Edge) BreakAtPoint(p Vec3) []Edge {
	segments := e.line.BreakAtPoint(p)
	edges := make([]Edge, len(segments))
	for i, segment := range segments {
		edges[i] = NewEdge(segment.Start(), segment.End())
	}
	return edges
}

// IntersectLine computes the crossing of the edge with a segment. See
// [Line.Intersection].
func (e Edge) IntersectLine(o Line, ray bool) (Vec3, bool) {
	return e.line.Intersection(o, ray)
}

// RayIntersectEdge computes the crossing of the edge, treated as a ray from
// its start through its end, with the infinite line through o.
func (e Edge) RayIntersectEdge(o Edge) (Vec3, bool) {
	return e.line.Intersection(o.line, true)
}

// Reverse swaps the endpoints in place and swaps the tangents with them.
func (e *Edge) Reverse() {
	e.line.Reverse()
	e.startTangent, e.endTangent = e.endTangent, e.startTangent
	e.hasStartTangent, e.hasEndTangent = e.hasEndTangent, e.hasStartTangent
}

// Reversed returns a copy of the edge with endpoints and tangents swapped.
func (e Edge) Reversed() Edge {
	clone := e
	clone.Reverse()
	return clone
}

// SetStartTangent sets the tangent at the start point.
func (e *Edge) SetStartTangent(tangent Vec3) {
	e.startTangent = tangent
	e.hasStartTangent = true
}

// SetEndTangent sets the tangent at the end point.
func (e *Edge) SetEndTangent(tangent Vec3) {
	e.endTangent = tangent
	e.hasEndTangent = true
}

// StartTangent returns the tangent at the start point, if one is set.
func (e Edge) StartTangent() (Vec3, bool) {
	return e.startTangent, e.hasStartTangent
}

// EndTangent returns the tangent at the end point, if one is set.
func (e Edge) EndTangent() (Vec3, bool) {
	return e.endTangent, e.hasEndTangent
}

// IsDegenerate reports whether the edge is shorter than [Epsilon].
func (e Edge) IsDegenerate() bool {
	return e.Length() <= epsilon
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%v)", e.line)
}
