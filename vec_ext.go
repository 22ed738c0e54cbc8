package vecmath

import (
	"fmt"
	"math"
)

// Zero returns the zero vector.
func Zero() Vec2 { return Vec2{} }

// One returns the vector (1, 1).
func One() Vec2 { return Vec2{X: 1, Y: 1} }

// Half returns the vector (0.5, 0.5).
func Half() Vec2 { return Vec2{X: 0.5, Y: 0.5} }

// Between returns the displacement from p to q.
func Between(p, q Vec2) Vec2 {
	return q.Sub(p)
}

// FromAngle returns a vector of the given length pointing at angle degrees,
// measured counterclockwise from the positive X axis.
func FromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(Radians(angle))
	return Vec2{X: cos * length, Y: sin * length}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Abs returns the vector with both components made non-negative.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// Positive when w lies counterclockwise of v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns the perpendicular vector (rotated 90 degrees counterclockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Normal returns the unit vector perpendicular to v.
// Returns the zero vector if v has zero length.
func (v Vec2) Normal() Vec2 {
	if v.Length() == 0 {
		return Vec2{}
	}
	return v.Normalized().Perp()
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return math.Hypot(w.X-v.X, w.Y-v.Y)
}

// DistanceSq returns the squared distance between two points.
func (v Vec2) DistanceSq(w Vec2) float64 {
	return w.Sub(v).LengthSq()
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w. t is not clamped.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Angle returns the direction of the vector in degrees, in [0, 360).
func (v Vec2) Angle() float64 {
	return NormalizeDegrees(Degrees(math.Atan2(v.Y, v.X)))
}

// SetAngle points v at angle degrees while keeping its length.
func (v *Vec2) SetAngle(angle float64) {
	*v = FromAngle(angle, v.Length())
}

// SetLength scales v to the given length while keeping its direction.
// A zero vector stays zero.
func (v *Vec2) SetLength(length float64) {
	v.Normalize()
	v.ScaleInPlace(length)
}

// WithLength returns a copy of v scaled to the given length.
func (v Vec2) WithLength(length float64) Vec2 {
	v.SetLength(length)
	return v
}

// Reflect returns v reflected about the unit normal n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * v.Dot(n)
	return Vec2{X: v.X - d*n.X, Y: v.Y - d*n.Y}
}

// ReflectX returns v mirrored across the X axis.
func (v Vec2) ReflectX() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// ReflectY returns v mirrored across the Y axis.
func (v Vec2) ReflectY() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsNormalized reports whether v has unit length within epsilon.
func (v Vec2) IsNormalized(epsilon float64) bool {
	return math.Abs(v.Length()-1) < epsilon
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

// AngleBetween returns the unsigned angle between v and w in degrees,
// in [0, 180]. The result is NaN if either vector has zero length.
func AngleBetween(v, w Vec2) float64 {
	c := v.Dot(w) / (v.Length() * w.Length())
	return Degrees(math.Acos(math.Max(-1, math.Min(1, c))))
}

// IsParallel reports whether v and w are exactly parallel (or antiparallel).
func IsParallel(v, w Vec2) bool {
	return v.X*w.Y == v.Y*w.X
}

// IsPerpendicular reports whether v and w are exactly perpendicular.
func IsPerpendicular(v, w Vec2) bool {
	return v.Dot(w) == 0
}
