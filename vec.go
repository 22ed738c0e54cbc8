package vecmath

import "math"

// Vec2 is a two-component double-precision vector.
//
// Methods with a value receiver leave their operands untouched and return a
// fresh Vec2. Methods with a pointer receiver (the ...InPlace family,
// Normalize, SetAngle, SetLength) mutate the receiver and nothing else.
// A Vec2 carries no internal synchronization.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the componentwise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the componentwise product of v and w.
func (v Vec2) MulVec(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the vector divided by a scalar.
// A zero divisor yields ±Inf or NaN components.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// DivVec returns the componentwise quotient of v and w.
// Zero components in w yield ±Inf or NaN components.
func (v Vec2) DivVec(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Length returns the Euclidean norm of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns a unit vector in the same direction.
// A zero-length vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Rotate returns the vector rotated counterclockwise by angle degrees.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle * (math.Pi / 180))
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AddInPlace adds w to v.
func (v *Vec2) AddInPlace(w Vec2) {
	v.X += w.X
	v.Y += w.Y
}

// SubInPlace subtracts w from v.
func (v *Vec2) SubInPlace(w Vec2) {
	v.X -= w.X
	v.Y -= w.Y
}

// ScaleInPlace multiplies both components of v by s.
func (v *Vec2) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
}

// MulVecInPlace multiplies v by w componentwise.
func (v *Vec2) MulVecInPlace(w Vec2) {
	v.X *= w.X
	v.Y *= w.Y
}

// DivInPlace divides both components of v by s.
// Unlike Normalize, there is no zero guard.
func (v *Vec2) DivInPlace(s float64) {
	v.X /= s
	v.Y /= s
}

// DivVecInPlace divides v by w componentwise.
func (v *Vec2) DivVecInPlace(w Vec2) {
	v.X /= w.X
	v.Y /= w.Y
}

// Normalize scales v to unit length.
// If v has a length of exactly zero it is left unchanged.
func (v *Vec2) Normalize() {
	length := v.Length()
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
}

// RotateInPlace rotates v counterclockwise by angle degrees.
func (v *Vec2) RotateInPlace(angle float64) {
	*v = v.Rotate(angle)
}
