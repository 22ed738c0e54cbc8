package vecmath

import (
	"fmt"
	"math"
)

// Vec3 is a three-component double-precision vector. It follows the same
// value and ...InPlace conventions as Vec2.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar, with IEEE-754 semantics.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs returns the vector with every component made non-negative.
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns a unit vector in the same direction.
// A zero-length vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// Rotate returns v rotated by angles.X degrees about the X axis, then
// angles.Y about Y, then angles.Z about Z. Each rotation is
// counterclockwise when looking down the positive axis at the origin.
func (v Vec3) Rotate(angles Vec3) Vec3 {
	sin, cos := math.Sincos(Radians(angles.X))
	v = Vec3{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}

	sin, cos = math.Sincos(Radians(angles.Y))
	v = Vec3{X: v.X*cos + v.Z*sin, Y: v.Y, Z: -v.X*sin + v.Z*cos}

	sin, cos = math.Sincos(Radians(angles.Z))
	return Vec3{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
}

// XY returns the X and Y components as a Vec2.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }

// XZ returns the X and Z components as a Vec2.
func (v Vec3) XZ() Vec2 { return Vec2{X: v.X, Y: v.Z} }

// YZ returns the Y and Z components as a Vec2.
func (v Vec3) YZ() Vec2 { return Vec2{X: v.Y, Y: v.Z} }

// RGB returns the components read as a colour triple.
func (v Vec3) RGB() (r, g, b float64) { return v.X, v.Y, v.Z }

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// AddInPlace adds w to v.
func (v *Vec3) AddInPlace(w Vec3) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// SubInPlace subtracts w from v.
func (v *Vec3) SubInPlace(w Vec3) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// ScaleInPlace multiplies every component of v by s.
func (v *Vec3) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivInPlace divides every component of v by s. There is no zero guard.
func (v *Vec3) DivInPlace(s float64) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Normalize scales v to unit length.
// If v has a length of exactly zero it is left unchanged.
func (v *Vec3) Normalize() {
	length := v.Length()
	if length == 0 {
		return
	}
	v.DivInPlace(length)
}

// RotateInPlace rotates v as Rotate does.
func (v *Vec3) RotateInPlace(angles Vec3) {
	*v = v.Rotate(angles)
}
