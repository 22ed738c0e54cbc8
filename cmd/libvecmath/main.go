// Command libvecmath builds vecmath as a C shared library.
//
//	go build -buildmode=c-shared -o libvecmath.so ./cmd/libvecmath
//
// Every exported symbol forwards to the capi package and uses the
// _Vector2f_ prefix expected by the Python bindings. Vectors are addressed
// by uint64 handles; 0 is the null handle. Getters on an invalid handle
// return NaN and mutators ignore it.
package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/gogpu/vecmath/capi"

func h(v C.uint64_t) capi.Handle { return capi.Handle(v) }

func out(v capi.Handle) C.uint64_t { return C.uint64_t(v) }

//export _Vector2f_Create
func _Vector2f_Create(x, y C.double) C.uint64_t {
	return out(capi.Create(float64(x), float64(y)))
}

//export _Vector2f_Destroy
func _Vector2f_Destroy(vec C.uint64_t) {
	capi.Destroy(h(vec))
}

//export _Vector2f_NewSum
func _Vector2f_NewSum(vec1, vec2 C.uint64_t) C.uint64_t {
	return out(capi.NewSum(h(vec1), h(vec2)))
}

//export _Vector2f_NewSub
func _Vector2f_NewSub(vec1, vec2 C.uint64_t) C.uint64_t {
	return out(capi.NewSub(h(vec1), h(vec2)))
}

//export _Vector2f_NewMul
func _Vector2f_NewMul(vec C.uint64_t, scalar C.double) C.uint64_t {
	return out(capi.NewMul(h(vec), float64(scalar)))
}

//export _Vector2f_NewMulVector
func _Vector2f_NewMulVector(vec1, vec2 C.uint64_t) C.uint64_t {
	return out(capi.NewMulVector(h(vec1), h(vec2)))
}

//export _Vector2f_NewDiv
func _Vector2f_NewDiv(vec C.uint64_t, scalar C.double) C.uint64_t {
	return out(capi.NewDiv(h(vec), float64(scalar)))
}

//export _Vector2f_NewDivVector
func _Vector2f_NewDivVector(vec1, vec2 C.uint64_t) C.uint64_t {
	return out(capi.NewDivVector(h(vec1), h(vec2)))
}

//export _Vector2f_Sum
func _Vector2f_Sum(vec1, vec2 C.uint64_t) {
	capi.Sum(h(vec1), h(vec2))
}

//export _Vector2f_Sub
func _Vector2f_Sub(vec1, vec2 C.uint64_t) {
	capi.Sub(h(vec1), h(vec2))
}

//export _Vector2f_Mul
func _Vector2f_Mul(vec C.uint64_t, scalar C.double) {
	capi.Mul(h(vec), float64(scalar))
}

//export _Vector2f_MulVector
func _Vector2f_MulVector(vec1, vec2 C.uint64_t) {
	capi.MulVector(h(vec1), h(vec2))
}

//export _Vector2f_Div
func _Vector2f_Div(vec C.uint64_t, scalar C.double) {
	capi.Div(h(vec), float64(scalar))
}

//export _Vector2f_DivVector
func _Vector2f_DivVector(vec1, vec2 C.uint64_t) {
	capi.DivVector(h(vec1), h(vec2))
}

//export _Vector2f_NormalizeAt
func _Vector2f_NormalizeAt(vec C.uint64_t) {
	capi.NormalizeAt(h(vec))
}

//export _Vector2f_Length
func _Vector2f_Length(vec C.uint64_t) C.double {
	return C.double(capi.Length(h(vec)))
}

//export _Vector2f_GetX
func _Vector2f_GetX(vec C.uint64_t) C.double {
	return C.double(capi.GetX(h(vec)))
}

//export _Vector2f_GetY
func _Vector2f_GetY(vec C.uint64_t) C.double {
	return C.double(capi.GetY(h(vec)))
}

//export _Vector2f_SetX
func _Vector2f_SetX(vec C.uint64_t, x C.double) {
	capi.SetX(h(vec), float64(x))
}

//export _Vector2f_SetY
func _Vector2f_SetY(vec C.uint64_t, y C.double) {
	capi.SetY(h(vec), float64(y))
}

//export _Vector2f_RotateAt
func _Vector2f_RotateAt(vec C.uint64_t, angle C.double) {
	capi.RotateAt(h(vec), float64(angle))
}

//export _Vector2f_Rotate
func _Vector2f_Rotate(vec C.uint64_t, angle C.double) C.uint64_t {
	return out(capi.Rotate(h(vec), float64(angle)))
}

//export _Vector2f_Live
func _Vector2f_Live() C.int64_t {
	return C.int64_t(capi.Live())
}

func main() {}
