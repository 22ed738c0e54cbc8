package vecmath

// Clamp limits value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return max(lo, min(value, hi))
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Rect is an axis-aligned rectangle given by its top-left position and size.
type Rect struct {
	Pos, Size Vec2
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Max returns the corner opposite Pos.
func (r Rect) Max() Vec2 {
	return r.Pos.Add(r.Size)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	m := r.Max()
	return r.Pos.X <= p.X && p.X <= m.X && r.Pos.Y <= p.Y && p.Y <= m.Y
}

// Intersects reports whether r and s overlap. Touching edges count.
func (r Rect) Intersects(s Rect) bool {
	rm, sm := r.Max(), s.Max()
	return r.Pos.X <= sm.X && rm.X >= s.Pos.X &&
		r.Pos.Y <= sm.Y && rm.Y >= s.Pos.Y
}

// CirclesCollide reports whether two circles overlap or touch.
func CirclesCollide(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	rr := r1 + r2
	return c1.DistanceSq(c2) <= rr*rr
}

// SegmentIntersection returns the point where segments a1-a2 and b1-b2 cross.
// ok is false for parallel segments and for lines that cross outside
// either segment.
func SegmentIntersection(a1, a2, b1, b2 Vec2) (p Vec2, ok bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := db.Y*da.X - db.X*da.Y
	if denom == 0 {
		return Vec2{}, false
	}

	off := a1.Sub(b1)
	ua := (db.X*off.Y - db.Y*off.X) / denom
	if ua < 0 || ua > 1 {
		return Vec2{}, false
	}
	ub := (da.X*off.Y - da.Y*off.X) / denom
	if ub < 0 || ub > 1 {
		return Vec2{}, false
	}
	return a1.Add(da.Scale(ua)), true
}

// closestOnSegment returns the point of segment a-b nearest to p.
// Segments shorter than minLenSq are treated as the point a.
func closestOnSegment(p, a, b Vec2, minLenSq float64) Vec2 {
	seg := b.Sub(a)
	lenSq := seg.LengthSq()
	t := 0.0
	if lenSq > minLenSq {
		t = Clamp(p.Sub(a).Dot(seg)/lenSq, 0, 1)
	}
	return a.Add(seg.Scale(t))
}

// CircleSegmentCollide reports whether a circle touches segment a-b.
func CircleSegmentCollide(center Vec2, radius float64, a, b Vec2) bool {
	closest := closestOnSegment(center, a, b, 0)
	return closest.DistanceSq(center) <= radius*radius
}

// PointOnSegment reports whether p lies within maxDist of segment a-b.
func PointOnSegment(p, a, b Vec2, maxDist float64) bool {
	closest := closestOnSegment(p, a, b, 1e-6)
	return closest.DistanceSq(p) <= maxDist*maxDist
}

// RotateAround rotates p counterclockwise by angle degrees about center.
// Convert radians with Degrees.
func RotateAround(p, center Vec2, angle float64) Vec2 {
	return p.Sub(center).Rotate(angle).Add(center)
}
