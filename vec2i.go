package vecmath

import (
	"fmt"
	"math"
)

// Vec2i is an integer 2D vector, typically a pixel or grid coordinate.
type Vec2i struct {
	X, Y int
}

// V2i is a convenience function to create a Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns the componentwise sum.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale multiplies both components by s.
func (v Vec2i) Scale(s int) Vec2i {
	return Vec2i{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2i) Neg() Vec2i {
	return Vec2i{X: -v.X, Y: -v.Y}
}

// Length returns the Euclidean norm as a float.
func (v Vec2i) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Angle returns the direction in degrees, in [0, 360).
func (v Vec2i) Angle() float64 {
	return v.ToFloat().Angle()
}

// ToFloat converts to a Vec2.
func (v Vec2i) ToFloat() Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

func (v Vec2i) String() string {
	return fmt.Sprintf("Vec2i(%d, %d)", v.X, v.Y)
}

// ToInt converts to a Vec2i, truncating each component toward zero.
func (v Vec2) ToInt() Vec2i {
	return Vec2i{X: int(v.X), Y: int(v.Y)}
}
