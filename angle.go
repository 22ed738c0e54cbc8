package vecmath

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// NormalizeDegrees wraps an angle into the range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod(-1e-18, 360) + 360 rounds to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}
