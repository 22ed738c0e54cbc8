package vecmath

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts v to a 26.6 fixed-point point, as used by
// golang.org/x/image/font. Components are rounded to the nearest 1/64.
func (v Vec2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}

// FromFixed converts a 26.6 fixed-point point to a Vec2.
func FromFixed(p fixed.Point26_6) Vec2 {
	return Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// ImagePoint converts v to an image.Point, rounding each component.
func (v Vec2) ImagePoint() image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// FromImagePoint converts an image.Point to a Vec2.
func FromImagePoint(p image.Point) Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}
