package arbor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Matrix3 is a row-major 3x3 affine matrix.
//
//	| M00 M01 M02 |
//	| M10 M11 M12 |
//	| M20 M21 M22 |
//
// Rotation and scale live in the upper-left 2x2 block and translation in the
// third column. Every constructor leaves the bottom row at [0 0 1].
type Matrix3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewTranslation returns a matrix that translates by (x, y).
func NewTranslation(x, y float64) Matrix3 {
	return Matrix3{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// NewRotation returns a matrix that rotates by radians.
//
//	|  cos  sin  0 |
//	| -sin  cos  0 |
//	|   0    0   1 |
//
// The sign layout fixes the handedness Actor.LookAt relies on.
func NewRotation(radians float64) Matrix3 {
	sin, cos := math.Sincos(radians)
	return Matrix3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// NewScale returns a matrix that scales by (x, y).
func NewScale(x, y float64) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Add returns the elementwise sum m + o.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 + o.M00, m.M01 + o.M01, m.M02 + o.M02,
		m.M10 + o.M10, m.M11 + o.M11, m.M12 + o.M12,
		m.M20 + o.M20, m.M21 + o.M21, m.M22 + o.M22,
	}
}

// Sub returns the elementwise difference m - o.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 - o.M00, m.M01 - o.M01, m.M02 - o.M02,
		m.M10 - o.M10, m.M11 - o.M11, m.M12 - o.M12,
		m.M20 - o.M20, m.M21 - o.M21, m.M22 - o.M22,
	}
}

// Mul returns the matrix product m * o. Order matters: a local transform is
// translation.Mul(rotation).Mul(scale) and a world transform is
// parentWorld.Mul(local).
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20,
		m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21,
		m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22,

		m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20,
		m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21,
		m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22,

		m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20,
		m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21,
		m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22,
	}
}

// TransformPoint applies m to the point p (treated as (x, y, 1)).
func (m Matrix3) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		m.M00*p.X + m.M01*p.Y + m.M02,
		m.M10*p.X + m.M11*p.Y + m.M12,
	}
}

// Inverse returns the inverse of an affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Matrix3) Inverse() Matrix3 {
	det := m.M00*m.M11 - m.M01*m.M10
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.M11 * invDet
	b := -m.M01 * invDet
	c := -m.M10 * invDet
	d := m.M00 * invDet
	return Matrix3{
		a, b, -(a*m.M02 + b*m.M12),
		c, d, -(c*m.M02 + d*m.M12),
		0, 0, 1,
	}
}

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix3) ApproxEqual(o Matrix3, eps float64) bool {
	d := m.Sub(o)
	for _, v := range [9]float64{d.M00, d.M01, d.M02, d.M10, d.M11, d.M12, d.M20, d.M21, d.M22} {
		if math.Abs(v) > eps {
			return false
		}
	}
	return true
}

// GeoM converts the affine part of m into an ebiten.GeoM.
func (m Matrix3) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.M00)
	g.SetElement(0, 1, m.M01)
	g.SetElement(0, 2, m.M02)
	g.SetElement(1, 0, m.M10)
	g.SetElement(1, 1, m.M11)
	g.SetElement(1, 2, m.M12)
	return g
}
