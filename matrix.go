package vecmath

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	| A  B  C |
//	| D  E  F |
//
// A point p maps to (A*p.X + B*p.Y + C, D*p.X + E*p.Y + F). The zero Matrix
// collapses everything onto the origin; start from Identity.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves every point in place.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// TranslateVec returns a transform that moves points by v.
func TranslateVec(v Vec2) Matrix {
	return Translate(v.X, v.Y)
}

// Scale returns a transform that stretches x by sx and y by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a counterclockwise rotation by angle degrees about the
// origin. Rotate(a).TransformVector(v) equals v.Rotate(a).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(Radians(angle))
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Shear returns a transform that adds x*Y to X and y*X to Y.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// Multiply returns m·n: the transform that applies n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Then returns the transform that applies m first, then next.
func (m Matrix) Then(next Matrix) Matrix {
	return next.Multiply(m)
}

// TransformPoint maps p, including translation.
func (m Matrix) TransformPoint(p Vec2) Vec2 {
	return m.TransformVector(p).Add(Vec2{X: m.C, Y: m.F})
}

// TransformVector maps v by the linear part only.
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// TransformPoints maps every point of pts in place.
func (m Matrix) TransformPoints(pts []Vec2) {
	for i := range pts {
		pts[i] = m.TransformPoint(pts[i])
	}
}

// Determinant returns the area scale of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform, or Identity when m is singular
// (|det| < 1e-10).
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is exactly Identity().
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only moves points.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// MaxScaleFactor returns the largest length TransformVector can give a unit
// vector (the larger singular value of the linear part).
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	diff := p - r
	return math.Sqrt((p + r + math.Hypot(diff, 2*q)) / 2)
}
