package geom

import (
	"math"
	"testing"
)

func TestLineBasics(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(4, 0, 0))
	diff(t, 4.0, l.Length())
	diff(t, V3(2, 0, 0), l.Midpoint())
	diff(t, V3(1, 0, 0), l.PointAt(0.25))
	// PointAt extrapolates beyond the endpoints.
	diff(t, V3(6, 0, 0), l.PointAt(1.5))

	dir, ok := l.Direction()
	if !ok {
		t.Fatal("Direction reported a degenerate segment")
	}
	diff(t, UnitX, dir)
}

func TestLineDegenerate(t *testing.T) {
	l := NewLine(V3(1, 2, 3), V3(1, 2, 3))
	if _, ok := l.Direction(); ok {
		t.Error("degenerate segment reported a direction")
	}
	diff(t, true, l.Contains(V3(1, 2, 3)))
	diff(t, false, l.Contains(V3(1, 2, 4)))
	diff(t, V3(1, 2, 3), l.ClosestPoint(V3(5, 5, 5)))

	param, ok := l.PointParameter(V3(1, 2, 3))
	diff(t, true, ok)
	diff(t, 0.0, param)

	// A very short but non-degenerate segment still has a direction.
	short := NewLine(V3(0, 0, 0), V3(1e-7, 0, 0))
	if _, ok := short.Direction(); !ok {
		t.Error("short segment reported as degenerate")
	}
}

func TestLineClosestPointAndDistance(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(0, 0, 10))
	diffApprox(t, V3(0, 0, 5), l.ClosestPoint(V3(1, 0, 5)))
	diffApprox(t, 1.0, l.Distance(V3(1, 0, 5)))
	// Beyond the endpoints the closest point clamps.
	diff(t, V3(0, 0, 10), l.ClosestPoint(V3(0, 0, 15)))
	diff(t, V3(0, 0, 0), l.ClosestPoint(V3(0, 0, -3)))
}

func TestLineContainsAndParameter(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(10, 0, 0))
	diff(t, true, l.Contains(V3(3, 0, 0)))
	diff(t, false, l.Contains(V3(12, 0, 0)))
	diff(t, false, l.Contains(V3(3, 1, 0)))

	param, ok := l.PointParameter(V3(3, 0, 0))
	diff(t, true, ok)
	diffApprox(t, 0.3, param)

	if _, ok := l.PointParameter(V3(12, 0, 0)); ok {
		t.Error("PointParameter accepted a point beyond the segment")
	}

	diffApprox(t, 4.0, l.LengthAtPoint(V3(4, 0, 0)))
	diffApprox(t, 4.0, l.LengthAtPoint(V3(4, 2, 0)))
}

func TestLineBreakAt(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(4, 0, 0))
	diffApprox(t, []Line{
		NewLine(V3(0, 0, 0), V3(2, 0, 0)),
		NewLine(V3(2, 0, 0), V3(4, 0, 0)),
	}, l.BreakAt(0.5))

	// Parameters outside (0, 1) leave the segment unsplit.
	diff(t, []Line{l}, l.BreakAt(1.5), approx(1e-9)...)
	diff(t, []Line{l}, l.BreakAt(0), approx(1e-9)...)
}

func TestLineBreakAtPoint(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(0, 0, 10))
	diffApprox(t, []Line{
		NewLine(V3(0, 0, 0), V3(0, 0, 2.5)),
		NewLine(V3(0, 0, 2.5), V3(0, 0, 10)),
	}, l.BreakAtPoint(V3(0, 0, 2.5)))

	diff(t, []Line{l}, l.BreakAtPoint(V3(1, 0, 5)), approx(1e-9)...)
	diff(t, []Line{l}, l.BreakAtPoint(V3(0, 0, 0)), approx(1e-9)...)
	diff(t, []Line{l}, l.BreakAtPoint(V3(0, 0, 10)), approx(1e-9)...)
}

func TestLineIntersection(t *testing.T) {
	l1 := NewLine(V3(0, 0, 0), V3(4, 4, 0))
	l2 := NewLine(V3(4, 0, 0), V3(0, 4, 0))
	p, ok := l1.Intersection(l2, false)
	diff(t, true, ok)
	diffApprox(t, V3(2, 2, 0), p)

	// Parallel segments do not cross.
	p1 := NewLine(V3(0, 0, 0), V3(0, 0, 10))
	p2 := NewLine(V3(1, 0, 0), V3(1, 0, 10))
	if _, ok := p1.Intersection(p2, false); ok {
		t.Error("parallel segments reported a crossing")
	}

	// Overlapping parallel segments report the other's start point.
	p3 := NewLine(V3(0, 0, 5), V3(0, 0, 15))
	p, ok = p1.Intersection(p3, false)
	diff(t, true, ok)
	diff(t, V3(0, 0, 5), p)

	// Skew segments whose infinite lines pass close but do not touch.
	s1 := NewLine(V3(0, 0, 0), V3(4, 0, 0))
	s2 := NewLine(V3(2, -1, 1), V3(2, 1, 1))
	if _, ok := s1.Intersection(s2, false); ok {
		t.Error("skew segments reported a crossing")
	}

	// A crossing beyond the segment ends does not count in segment mode.
	s3 := NewLine(V3(6, -1, 0), V3(6, 1, 0))
	if _, ok := s1.Intersection(s3, false); ok {
		t.Error("crossing beyond the end reported in segment mode")
	}
}

func TestLineRayIntersection(t *testing.T) {
	ray := NewLine(V3(0, 0, 0), V3(5, 0, 0))

	// A crossing behind the ray origin misses.
	behind := NewLine(V3(-5, -1, 0), V3(-5, 1, 0))
	if _, ok := ray.RayIntersection(behind); ok {
		t.Error("ray hit a crossing behind its origin")
	}

	// A crossing ahead hits.
	ahead := NewLine(V3(3, -1, 0), V3(3, 1, 0))
	p, ok := ray.RayIntersection(ahead)
	diff(t, true, ok)
	diffApprox(t, V3(3, 0, 0), p)

	// Beyond the segment end still hits: the ray is unbounded.
	far := NewLine(V3(40, -1, 0), V3(40, 1, 0))
	p, ok = ray.RayIntersection(far)
	diff(t, true, ok)
	diffApprox(t, V3(40, 0, 0), p)
}

func TestLineRayOriginTolerance(t *testing.T) {
	// The ray parameter carries an absolute 1e-9 slack for round-off at the
	// origin. The bound stays absolute even when the global tolerance is
	// loosened far beyond it.
	defer SetEpsilon(DefaultEpsilon)
	if err := SetEpsilon(1e-8); err != nil {
		t.Fatal(err)
	}

	ray := NewLine(V3(0, 0, 0), V3(1, 0, 0))

	// A crossing a hair behind the origin clamps to the origin.
	near := NewLine(V3(-1e-10, -1, 0), V3(-1e-10, 1, 0))
	p, ok := ray.RayIntersection(near)
	diff(t, true, ok)
	diffApprox(t, V3(0, 0, 0), p)

	// Farther behind than the slack misses.
	far := NewLine(V3(-1e-8, -1, 0), V3(-1e-8, 1, 0))
	if _, ok := ray.RayIntersection(far); ok {
		t.Error("crossing 1e-8 behind the ray origin reported a hit")
	}
}

func TestLineMoveEndpoints(t *testing.T) {
	l := NewLine(V3(0, 0, 0), V3(4, 0, 0))
	l.MoveStart(V3(-1, 0, 0))
	l.MoveEnd(V3(2, 0, 0))
	diff(t, V3(-1, 0, 0), l.Start())
	diff(t, V3(2, 0, 0), l.End())
	diffApprox(t, 3.0, l.Length())

	l.Move(V3(0, 1, 0))
	diff(t, V3(-1, 1, 0), l.Start())
	diff(t, V3(2, 1, 0), l.End())
}

func TestLineReverse(t *testing.T) {
	l := NewLine(V3(1, 2, 3), V3(4, 5, 6))
	diff(t, NewLine(V3(4, 5, 6), V3(1, 2, 3)), l.Reversed(), approx(1e-9)...)
	l.Reverse()
	diff(t, V3(4, 5, 6), l.Start())
	diff(t, V3(1, 2, 3), l.End())
}

func TestLineBoundingBox(t *testing.T) {
	l := NewLine(V3(3, -1, 2), V3(1, 4, -5))
	min, max := l.BoundingBox()
	diff(t, V3(1, -1, -5), min)
	diff(t, V3(3, 4, 2), max)
}

func TestLineCanonicalFrames(t *testing.T) {
	tests := []struct {
		name string
		end  Vec3
		want Mat3
	}{
		{"alongX", UnitX, Identity3},
		{"alongY", UnitY, Mat3Cols(V3(0, 1, 0), V3(-1, 0, 0), V3(0, 0, 1))},
		{"alongZ", UnitZ, Mat3Cols(V3(0, 0, 1), V3(0, 1, 0), V3(-1, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(Vec3{}, tt.end)
			rot, ok := l.RotationMatrix()
			if !ok {
				t.Fatal("RotationMatrix reported a degenerate segment")
			}
			diffApprox(t, tt.want, rot)
		})
	}

	if _, ok := NewLine(Vec3{}, Vec3{}).RotationMatrix(); ok {
		t.Error("degenerate segment reported a frame")
	}
}

func TestLineReferenceFrames(t *testing.T) {
	tests := []struct {
		name       string
		start, end Vec3
		axes       Mat3
		angle      float64
		axis       Axis
		rotated    Mat3
	}{
		{
			name:  "line1",
			start: V3(8.8629468830558018, 0.6063292911286204, 3.2383809849393881),
			end:   V3(-8.8641849571395177, 8.3974564436718744, -7.9913375830590061),
			axes: Mat3Cols(
				V3(-0.791942861123317798, 0.348061242178514141, -0.501677063865753170),
				V3(0.294029768810411984, 0.937471797812152730, 0.186260901318945543),
				V3(0.535138299665711692, 0.0, -0.844764464351389965),
			),
			angle: 1.234567890123456690,
			axis:  AxisX,
			rotated: Mat3Cols(
				V3(-0.791942861123317687, 0.348061242178514141, -0.501677063865753059),
				V3(0.602182586684826160, 0.309299198191272495, -0.736009604755133551),
				V3(-0.101008103681759664, -0.884978744203150702, -0.454543711098535752),
			),
		},
		{
			name:  "line2",
			start: V3(1.118934201736756506, -4.272800337640170198, 7.510805322357963831),
			end:   V3(8.301498598350981695, -4.908171084453350375, -3.588028946472332947),
			axes: Mat3Cols(
				V3(0.542676386967694824, -0.048005236323126810, -0.838568921623768171),
				V3(0.026081377840261620, 0.998847084035169419, -0.040302164264376224),
				V3(0.839536837046262252, 0.0, 0.543302769404277686),
			),
			angle: -2.345678901234566904,
			axis:  AxisY,
			rotated: Mat3Cols(
				V3(0.220177888051432902, 0.033586008103318063, 0.974881365948131462),
				V3(0.026081377840261627, 0.998847084035169530, -0.040302164264376245),
				V3(-0.975110998473078583, 0.034299894666355871, 0.219048072081707068),
			),
		},
		{
			name:  "line3",
			start: V3(3.775271637572201300, 2.844966188100034543, 0.820457452320102476),
			end:   V3(1.778194199324607538, 0.719245564265655446, -9.309296179504123359),
			axes: Mat3Cols(
				V3(-0.189452747977124858, -0.201656483571541090, -0.960959062040353862),
				V3(-0.039005695896009607, 0.979456309711444262, -0.197848156559790184),
				V3(0.981114780222774874, 0.0, -0.193426440872017213),
			),
			angle: 3.456789012345677925,
			axis:  AxisZ,
			rotated: Mat3Cols(
				V3(0.192211346969217378, -0.111912570629632085, 0.974951472962294008),
				V3(-0.021646850225727973, -0.993718056862743948, -0.109799077137457249),
				V3(0.981114780222774985, 0.0, -0.193426440872017213),
			),
		},
		{
			name:  "line4",
			start: V3(-3.547902422314901827, 6.657026268528404955, 8.698787710044754817),
			end:   V3(-1.435754523140591488, 7.731013670364074386, 2.868332385162467801),
			axes: Mat3Cols(
				V3(0.335604932445631998, 0.170648783440507462, -0.926416926674182406),
				V3(-0.058123128127595472, 0.985331920070731671, 0.160445346664801508),
				V3(0.940207972362937294, 0.0, 0.340600893576593733),
			),
			angle: -4.567890123456789020,
			axis:  AxisX,
			rotated: Mat3Cols(
				V3(0.335604932445632054, 0.170648783440507545, -0.926416926674182517),
				V3(0.938778834951623065, -0.141884374981772476, 0.313947644015535154),
				V3(-0.077869303098436343, -0.975062980963951276, -0.207818562185039912),
			),
		},
		{
			name:  "line5",
			start: V3(1.338369301497582597, -6.615170746840433047, -2.487315837569119559),
			end:   V3(0.347904363068756994, -9.579487526422141741, -8.526699604919251385),
			axes: Mat3Cols(
				V3(-0.145652905809256217, -0.435917856284862903, -0.888122093859470163),
				V3(-0.070548508787524805, 0.899986456882551966, -0.430171227926562927),
				V3(0.986817176044872291, 0.0, -0.161838997348672214),
			),
			angle: 5.678901234567890199,
			axis:  AxisY,
			rotated: Mat3Cols(
				V3(0.440823854500862533, -0.358720761703848701, -0.822796295826380586),
				V3(-0.070548508787524833, 0.899986456882551966, -0.430171227926562927),
				V3(0.894816873561768977, 0.247676790496406840, 0.371428284112209461),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(tt.start, tt.end)
			rot, ok := l.RotationMatrix()
			if !ok {
				t.Fatal("RotationMatrix reported a degenerate segment")
			}
			diffApprox(t, tt.axes, rot)

			axis, ok := l.Axis(tt.axis)
			if !ok {
				t.Fatal("Axis reported a degenerate segment")
			}
			diffApprox(t, tt.axes.Col(int(tt.axis)), axis)

			l.Rotate(tt.angle, axis)
			rot, ok = l.RotationMatrix()
			if !ok {
				t.Fatal("RotationMatrix after Rotate reported a degenerate segment")
			}
			diffApprox(t, tt.rotated, rot)
		})
	}
}

func TestLineRotateEndpoints(t *testing.T) {
	l := NewLine(V3(1, 0, 0), V3(3, 0, 0))
	l.Rotate(math.Pi/2, UnitZ)
	diff(t, V3(1, 0, 0), l.Start())
	diffApprox(t, V3(1, 2, 0), l.End())

	// Rotating about the tangent rolls the frame but keeps the endpoints.
	roll := NewLine(V3(0, 0, 0), V3(2, 0, 0))
	roll.Rotate(math.Pi/2, UnitX)
	diffApprox(t, V3(2, 0, 0), roll.End())
	rot, ok := roll.RotationMatrix()
	if !ok {
		t.Fatal("RotationMatrix reported a degenerate segment")
	}
	diffApprox(t, Mat3Cols(V3(1, 0, 0), V3(0, 0, 1), V3(0, -1, 0)), rot)

	// Replacing an endpoint discards the accumulated rotation.
	roll.MoveEnd(V3(2, 0, 0))
	rot, ok = roll.RotationMatrix()
	if !ok {
		t.Fatal("RotationMatrix reported a degenerate segment")
	}
	diffApprox(t, Identity3, rot)
}

func TestLineToLocalToGlobal(t *testing.T) {
	l := NewLine(V3(1, 2, 3), V3(4, 6, 3))
	p := V3(-2, 5, 7)

	local, ok := l.ToLocal(p)
	if !ok {
		t.Fatal("ToLocal reported a degenerate segment")
	}
	back, ok := l.ToGlobal(local)
	if !ok {
		t.Fatal("ToGlobal reported a degenerate segment")
	}
	diffApprox(t, p, back)

	// The start point is the frame origin.
	local, _ = l.ToLocal(l.Start())
	diffApprox(t, Vec3{}, local)

	// The end point lies on the local x axis.
	local, _ = l.ToLocal(l.End())
	diffApprox(t, V3(l.Length(), 0, 0), local)

	la, ok := l.LocalAxis()
	if !ok {
		t.Fatal("LocalAxis reported a degenerate segment")
	}
	diff(t, l.Start(), la.Origin())
	diffApprox(t, p, la.ToGlobal(la.ToLocal(p)))
}
