package arbor

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Vec2 is a value type; two vectors are equal when their
// components compare equal with ==.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s.
// Panics if s is zero so that Inf and NaN never reach a transform.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		panic("arbor: vector division by zero")
	}
	return Vec2{v.X / s, v.Y / s}
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector pointing in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalized() Vec2 {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Equal reports whether v and o have exactly the same components.
// No tolerance is applied.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Magnitude()
}
