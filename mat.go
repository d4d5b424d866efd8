package geom

import (
	"fmt"
	"math"
)

// Mat2 is a 2×2 matrix. The coefficients are stored row-major as struct
// fields rather than an array; Nij is the entry in row i, column j.
type Mat2 struct {
	N00, N01 float64
	N10, N11 float64
}

// Identity2 is the 2×2 identity matrix.
var Identity2 = Mat2{
	1, 0,
	0, 1,
}

// Mat2Cols builds a matrix whose columns are c0 and c1.
func Mat2Cols(c0, c1 Vec2) Mat2 {
	return Mat2{
		c0.X, c1.X,
		c0.Y, c1.Y,
	}
}

// Col returns the j-th column.
func (m Mat2) Col(j int) Vec2 {
	switch j {
	case 0:
		return Vec2{X: m.N00, Y: m.N10}
	case 1:
		return Vec2{X: m.N01, Y: m.N11}
	default:
		panic(fmt.Sprintf("column index %d out of range", j))
	}
}

// Mul returns the matrix product m * o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m.N00*o.N00 + m.N01*o.N10, m.N00*o.N01 + m.N01*o.N11,
		m.N10*o.N00 + m.N11*o.N10, m.N10*o.N01 + m.N11*o.N11,
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.N00*v.X + m.N01*v.Y,
		Y: m.N10*v.X + m.N11*v.Y,
	}
}

// Transpose returns the transpose of m.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		m.N00, m.N10,
		m.N01, m.N11,
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat2) Trace() float64 {
	return m.N00 + m.N11
}

// Determinant computes the determinant.
func (m Mat2) Determinant() float64 {
	return m.N00*m.N11 - m.N01*m.N10
}

func (m Mat2) String() string {
	return fmt.Sprintf("⟨%g, %g; %g, %g⟩", m.N00, m.N01, m.N10, m.N11)
}

// Mat3 is a 3×3 matrix. The coefficients are stored row-major as struct
// fields rather than an array; Nij is the entry in row i, column j.
//
// When a Mat3 represents an orthonormal basis, its columns are the local x,
// y, and z axes expressed in global coordinates, so that m.MulVec maps local
// coordinates to global ones and m.Transpose().MulVec maps back.
type Mat3 struct {
	N00, N01, N02 float64
	N10, N11, N12 float64
	N20, N21, N22 float64
}

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Mat3Cols builds a matrix whose columns are c0, c1, and c2.
func Mat3Cols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// Mat3Rotation returns the rotation matrix of angle radians about axis,
// following the right-hand rule. The axis need not be normalized; a zero
// axis returns the identity.
func Mat3Rotation(angle float64, axis Vec3) Mat3 {
	k := axis.NormalizeOr(Vec3{})
	if k == (Vec3{}) {
		return Identity3
	}
	sin, cos := math.Sincos(angle)
	c1 := 1 - cos
	return Mat3{
		cos + k.X*k.X*c1, k.X*k.Y*c1 - k.Z*sin, k.X*k.Z*c1 + k.Y*sin,
		k.Y*k.X*c1 + k.Z*sin, cos + k.Y*k.Y*c1, k.Y*k.Z*c1 - k.X*sin,
		k.Z*k.X*c1 - k.Y*sin, k.Z*k.Y*c1 + k.X*sin, cos + k.Z*k.Z*c1,
	}
}

// Col returns the j-th column.
func (m Mat3) Col(j int) Vec3 {
	switch j {
	case 0:
		return Vec3{X: m.N00, Y: m.N10, Z: m.N20}
	case 1:
		return Vec3{X: m.N01, Y: m.N11, Z: m.N21}
	case 2:
		return Vec3{X: m.N02, Y: m.N12, Z: m.N22}
	default:
		panic(fmt.Sprintf("column index %d out of range", j))
	}
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	return Mat3{
		m.N00*o.N00 + m.N01*o.N10 + m.N02*o.N20,
		m.N00*o.N01 + m.N01*o.N11 + m.N02*o.N21,
		m.N00*o.N02 + m.N01*o.N12 + m.N02*o.N22,

		m.N10*o.N00 + m.N11*o.N10 + m.N12*o.N20,
		m.N10*o.N01 + m.N11*o.N11 + m.N12*o.N21,
		m.N10*o.N02 + m.N11*o.N12 + m.N12*o.N22,

		m.N20*o.N00 + m.N21*o.N10 + m.N22*o.N20,
		m.N20*o.N01 + m.N21*o.N11 + m.N22*o.N21,
		m.N20*o.N02 + m.N21*o.N12 + m.N22*o.N22,
	}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.N00*v.X + m.N01*v.Y + m.N02*v.Z,
		Y: m.N10*v.X + m.N11*v.Y + m.N12*v.Z,
		Z: m.N20*v.X + m.N21*v.Y + m.N22*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m.N00, m.N10, m.N20,
		m.N01, m.N11, m.N21,
		m.N02, m.N12, m.N22,
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m.N00 + m.N11 + m.N22
}

// Determinant computes the determinant.
func (m Mat3) Determinant() float64 {
	return m.N00*(m.N11*m.N22-m.N12*m.N21) -
		m.N01*(m.N10*m.N22-m.N12*m.N20) +
		m.N02*(m.N10*m.N21-m.N11*m.N20)
}

func (m Mat3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g; %g, %g, %g; %g, %g, %g⟩",
		m.N00, m.N01, m.N02, m.N10, m.N11, m.N12, m.N20, m.N21, m.N22)
}
