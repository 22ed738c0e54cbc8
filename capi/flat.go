package capi

import (
	"math"

	"github.com/gogpu/vecmath"
)

// std backs the package-level functions, mirroring the single process-wide
// symbol table of a C shared library.
var std = NewRegistry()

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	return std
}

// warn reports a failed call. Nothing crosses the C boundary except the
// documented fallback values.
func warn(op string, err error) {
	vecmath.Logger().Warn("capi: call failed", "op", op, "err", err)
}

func derive(op string, h Handle, fn func(vecmath.Vec2) vecmath.Vec2) Handle {
	out, err := std.Derive(h, fn)
	if err != nil {
		warn(op, err)
		return Null
	}
	return out
}

func derive2(op string, a, b Handle, fn func(vecmath.Vec2, vecmath.Vec2) vecmath.Vec2) Handle {
	out, err := std.Derive2(a, b, fn)
	if err != nil {
		warn(op, err)
		return Null
	}
	return out
}

func mutate(op string, h Handle, fn func(*vecmath.Vec2)) {
	if err := std.Mutate(h, fn); err != nil {
		warn(op, err)
	}
}

func mutate2(op string, a, b Handle, fn func(*vecmath.Vec2, vecmath.Vec2)) {
	if err := std.Mutate2(a, b, fn); err != nil {
		warn(op, err)
	}
}

func get(op string, h Handle) (vecmath.Vec2, bool) {
	v, err := std.Get(h)
	if err != nil {
		warn(op, err)
		return vecmath.Vec2{}, false
	}
	return v, true
}

// Create allocates the vector (x, y). Returns Null if the registry is full.
func Create(x, y float64) Handle {
	h, err := std.Create(vecmath.V2(x, y))
	if err != nil {
		warn("Create", err)
		return Null
	}
	return h
}

// Destroy frees h. Destroying an invalid or already freed handle is a no-op.
func Destroy(h Handle) {
	if err := std.Destroy(h); err != nil {
		warn("Destroy", err)
	}
}

// NewSum allocates a + b.
func NewSum(a, b Handle) Handle {
	return derive2("NewSum", a, b, vecmath.Vec2.Add)
}

// NewSub allocates a - b.
func NewSub(a, b Handle) Handle {
	return derive2("NewSub", a, b, vecmath.Vec2.Sub)
}

// NewMul allocates h scaled by s.
func NewMul(h Handle, s float64) Handle {
	return derive("NewMul", h, func(v vecmath.Vec2) vecmath.Vec2 { return v.Scale(s) })
}

// NewMulVector allocates the componentwise product of a and b.
func NewMulVector(a, b Handle) Handle {
	return derive2("NewMulVector", a, b, vecmath.Vec2.MulVec)
}

// NewDiv allocates h divided by s.
func NewDiv(h Handle, s float64) Handle {
	return derive("NewDiv", h, func(v vecmath.Vec2) vecmath.Vec2 { return v.Div(s) })
}

// NewDivVector allocates the componentwise quotient of a and b.
func NewDivVector(a, b Handle) Handle {
	return derive2("NewDivVector", a, b, vecmath.Vec2.DivVec)
}

// Sum adds b into a.
func Sum(a, b Handle) {
	mutate2("Sum", a, b, (*vecmath.Vec2).AddInPlace)
}

// Sub subtracts b from a.
func Sub(a, b Handle) {
	mutate2("Sub", a, b, (*vecmath.Vec2).SubInPlace)
}

// Mul scales h by s.
func Mul(h Handle, s float64) {
	mutate("Mul", h, func(v *vecmath.Vec2) { v.ScaleInPlace(s) })
}

// MulVector multiplies a by b componentwise.
func MulVector(a, b Handle) {
	mutate2("MulVector", a, b, (*vecmath.Vec2).MulVecInPlace)
}

// Div divides h by s.
func Div(h Handle, s float64) {
	mutate("Div", h, func(v *vecmath.Vec2) { v.DivInPlace(s) })
}

// DivVector divides a by b componentwise.
func DivVector(a, b Handle) {
	mutate2("DivVector", a, b, (*vecmath.Vec2).DivVecInPlace)
}

// NormalizeAt normalizes h in place.
func NormalizeAt(h Handle) {
	mutate("NormalizeAt", h, (*vecmath.Vec2).Normalize)
}

// RotateAt rotates h counterclockwise by angle degrees in place.
func RotateAt(h Handle, angle float64) {
	mutate("RotateAt", h, func(v *vecmath.Vec2) { v.RotateInPlace(angle) })
}

// Rotate allocates h rotated counterclockwise by angle degrees.
func Rotate(h Handle, angle float64) Handle {
	return derive("Rotate", h, func(v vecmath.Vec2) vecmath.Vec2 { return v.Rotate(angle) })
}

// Length returns the length of h, or NaN for an invalid handle.
func Length(h Handle) float64 {
	v, ok := get("Length", h)
	if !ok {
		return math.NaN()
	}
	return v.Length()
}

// GetX returns the X component of h, or NaN for an invalid handle.
func GetX(h Handle) float64 {
	v, ok := get("GetX", h)
	if !ok {
		return math.NaN()
	}
	return v.X
}

// GetY returns the Y component of h, or NaN for an invalid handle.
func GetY(h Handle) float64 {
	v, ok := get("GetY", h)
	if !ok {
		return math.NaN()
	}
	return v.Y
}

// SetX sets the X component of h.
func SetX(h Handle, x float64) {
	mutate("SetX", h, func(v *vecmath.Vec2) { v.X = x })
}

// SetY sets the Y component of h.
func SetY(h Handle, y float64) {
	mutate("SetY", h, func(v *vecmath.Vec2) { v.Y = y })
}

// Live returns the number of vectors allocated and not yet destroyed.
func Live() int {
	return std.Len()
}
