// Package vecmath provides 2D vector math for graphics and geometry code.
//
// # Overview
//
// The central type is [Vec2], a plain value of two float64 components.
// Every arithmetic operation comes in two forms: a value method that returns
// a new vector and leaves its operands alone, and an ...InPlace method on a
// pointer receiver that mutates the receiver only.
//
//	v := vecmath.V2(3, 4)
//	w := v.Add(vecmath.V2(1, 0)) // v is unchanged
//	v.RotateInPlace(90)          // v is now ≈ (-4, 3)
//	v.Normalize()                // unit length; no-op for a zero vector
//
// [Vec3] follows the same conventions in three dimensions, and [Noise]
// samples seeded fractal Perlin noise over the plane.
//
// # Numeric Semantics
//
// All operations are total over float64. Division by zero is not an error:
// [Vec2.Div] and [Vec2.DivVec] produce ±Inf or NaN exactly as IEEE-754
// prescribes. [Vec2.Normalize] is the one guarded operation and leaves a
// zero-length vector untouched.
//
// # Coordinate System
//
// Angles are in degrees and increase counterclockwise in a y-up frame:
// V2(1, 0).Rotate(90) is (0, 1). In a y-down screen frame the same rotation
// appears clockwise.
//
// # Related Packages
//
//   - vertex: packing vectors into GPU vertex buffers
//   - capi: handle-based flat API backing the C shared library in cmd/libvecmath
//
// # Concurrency
//
// Vectors carry no internal synchronization. Distinct values may be used from
// any goroutine; concurrent in-place mutation of one value is a data race.
package vecmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
