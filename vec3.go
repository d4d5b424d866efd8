package geom

import (
	"fmt"
	"math"
)

// Vec3 is a vector in three-dimensional space. It doubles as the
// representation of points; the zero value is the origin.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Unit vectors along the global axes.
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y, and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Vec2 drops the z coordinate.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// NormalizeOr returns a vector of magnitude 1.0 with the same direction as v,
// or fallback if the magnitude of v is within [Epsilon] of zero.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	n := v.Hypot()
	if n <= epsilon {
		return fallback
	}
	return v.Mul(1.0 / n)
}

// Rotate returns v rotated by angle radians about axis, following the
// right-hand rule. The axis need not be normalized; a zero axis returns v
// unchanged.
func (v Vec3) Rotate(angle float64, axis Vec3) Vec3 {
	k := axis.NormalizeOr(Vec3{})
	if k == (Vec3{}) {
		return v
	}
	sin, cos := math.Sincos(angle)
	// Rodrigues' formula.
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}

// IsApprox reports whether the distance between v and o is within [Epsilon].
func (v Vec3) IsApprox(o Vec3) bool {
	return v.Sub(o).Hypot() <= epsilon
}

// IsApproxTol is like [Vec3.IsApprox] with an explicit tolerance.
func (v Vec3) IsApproxTol(o Vec3, tol float64) bool {
	return v.Sub(o).Hypot() <= tol
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{
		X: math.Min(v.X, o.X),
		Y: math.Min(v.Y, o.Y),
		Z: math.Min(v.Z, o.Z),
	}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{
		X: math.Max(v.X, o.X),
		Y: math.Max(v.Y, o.Y),
		Z: math.Max(v.Z, o.Z),
	}
}
