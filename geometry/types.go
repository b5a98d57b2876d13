package geometry

import "math"

// Line is the infinite line through Base along Direction. Direction need not
// be normalized, and may even be the zero vector; every routine here
// tolerates a degenerate point-line. A Line also stands in for a bounded
// segment wherever an operation documents that it clamps the parameter to
// [0,1] (the "edge" and "segment" routines).
type Line struct {
	Base      Vec2
	Direction Vec2
}

// NewLine creates a line with the given base point and direction.
func NewLine(base, direction Vec2) Line {
	return Line{Base: base, Direction: direction}
}

// LineThrough creates the line from p toward q. Its [0,1] parameter range
// covers exactly the segment pq.
func LineThrough(p, q Vec2) Line {
	return Line{Base: p, Direction: q.Sub(p)}
}

// NormalizeDirection scales Direction to unit length in place. Some formulas
// are scale-invariant and some are not; the caller decides when this is
// needed.
func (l *Line) NormalizeDirection() {
	l.Direction = l.Direction.Normalized()
}

// Normalized returns a copy of the line with a unit direction.
func (l Line) Normalized() Line {
	return Line{Base: l.Base, Direction: l.Direction.Normalized()}
}

// End returns Base + Direction, the far endpoint when the line is read as a
// segment.
func (l Line) End() Vec2 {
	return l.Base.Add(l.Direction)
}

// Circle is a center and a non-negative radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// Rect is an axis-aligned rectangle given by two corners in no particular
// order. Normalize with Canon before doing ordered-bounds math.
type Rect struct {
	A, B Vec2
}

// Canon returns the rectangle's (min, max) corner pair.
func (r Rect) Canon() (min, max Vec2) {
	min = Vec2{minf(r.A.X, r.B.X), minf(r.A.Y, r.B.Y)}
	max = Vec2{maxf(r.A.X, r.B.X), maxf(r.A.Y, r.B.Y)}
	return min, max
}

// Contains reports whether p lies inside the rectangle, bounds inclusive.
// The corners may be in any order.
func (r Rect) Contains(p Vec2) bool {
	min, max := r.Canon()
	return PointInRect(min, max, p)
}

// AngleRange is a closed interval of angles in radians.
type AngleRange struct {
	Min, Max float64
}

// Contains reports whether the angle lies inside the range, inclusive.
func (r AngleRange) Contains(angle float64) bool {
	return r.Min <= angle && angle <= r.Max
}

// Pose is a 2D position with a heading, the usual robot-frame tuple.
type Pose struct {
	Translation Vec2
	Rotation    float64
}

// AngleTo returns the bearing of the point `to` as seen from the pose, in
// the pose's local frame.
func AngleTo(from Pose, to Vec2) float64 {
	rel := to.Sub(from.Translation)
	// Rotate into the local frame by -from.Rotation.
	c, s := math.Cos(from.Rotation), math.Sin(from.Rotation)
	local := Vec2{
		X: rel.X*c + rel.Y*s,
		Y: -rel.X*s + rel.Y*c,
	}
	return local.Angle()
}
