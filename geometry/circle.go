package geometry

import (
	"image"
	"math"
)

// Circumcircle fits the circle through three pixel coordinates, the way the
// field-line circle detector samples them. Collinear inputs have no
// circumcircle; the result is then a zero-radius circle at the origin.
// Callers who need to tell that apart from a genuine zero-radius circle at
// the origin should use CircumcircleKnown.
func Circumcircle(point1, point2, point3 image.Point) Circle {
	c, _ := CircumcircleKnown(point1, point2, point3)
	return c
}

// CircumcircleKnown is Circumcircle with an explicit degeneracy flag: ok is
// false iff the three points are collinear and the returned circle is the
// degenerate placeholder.
func CircumcircleKnown(point1, point2, point3 image.Point) (Circle, bool) {
	x1 := float64(point1.X)
	y1 := float64(point1.Y)
	x2 := float64(point2.X)
	y2 := float64(point2.Y)
	x3 := float64(point3.X)
	y3 := float64(point3.Y)

	// Twice the signed area of the triangle. Exactly zero for collinear
	// input, since the coordinates are integers.
	temp := x2*y1 - x3*y1 - x1*y2 + x3*y2 + x1*y3 - x2*y3
	if temp == 0 {
		return Circle{}, false
	}

	var circle Circle
	circle.Radius = 0.5 *
		math.Sqrt(((sqr(x1-x2)+sqr(y1-y2))*
			(sqr(x1-x3)+sqr(y1-y3))*
			(sqr(x2-x3)+sqr(y2-y3)))/
			sqr(temp))
	circle.Center.X = (sqr(x3)*(y1-y2) +
		(sqr(x1)+(y1-y2)*(y1-y3))*(y2-y3) +
		sqr(x2)*(-y1+y3)) /
		(-2.0 * temp)
	circle.Center.Y = (sqr(x1)*(x2-x3) +
		sqr(x2)*x3 +
		x3*(-sqr(y1)+sqr(y2)) -
		x2*(sqr(x3)-sqr(y1)+sqr(y3)) +
		x1*(-sqr(x2)+sqr(x3)-sqr(y2)+sqr(y3))) /
		(2.0 * temp)
	return circle, true
}

// IntersectCircles returns the 0, 1 or 2 points where two circle boundaries
// meet, via the radical-line construction. n is 0 when the circles are
// disjoint, when one contains the other, or when the centers coincide; n is
// 1 for a single tangential point (then p1 == p2).
func IntersectCircles(c0, c1 Circle) (p1, p2 Vec2, n int) {
	dx := c1.Center.X - c0.Center.X
	dy := c1.Center.Y - c0.Center.Y

	d := math.Sqrt(dy*dy + dx*dx)

	// Solvability. Concentric circles are rejected here as well: with d == 0
	// there is either no boundary point in common or infinitely many, and
	// the construction below would divide by d.
	if d > c0.Radius+c1.Radius {
		return Vec2{}, Vec2{}, 0
	}
	if d < math.Abs(c0.Radius-c1.Radius) {
		return Vec2{}, Vec2{}, 0
	}
	if d == 0 {
		return Vec2{}, Vec2{}, 0
	}

	// a is the distance from c0's center to the radical line along the
	// center line; h is the half-chord height perpendicular to it.
	a := (c0.Radius*c0.Radius - c1.Radius*c1.Radius + d*d) / (2.0 * d)
	x2 := c0.Center.X + dx*a/d
	y2 := c0.Center.Y + dy*a/d
	h := math.Sqrt(c0.Radius*c0.Radius - a*a)

	rx := -dy * (h / d)
	ry := dx * (h / d)

	p1 = Vec2{x2 + rx, y2 + ry}
	p2 = Vec2{x2 - rx, y2 - ry}
	if p1 == p2 {
		return p1, p2, 1
	}
	return p1, p2, 2
}

// IntersectLineCircle substitutes the line's parametric form into the circle
// equation and solves the resulting quadratic. n is 0 when the line misses
// the circle (or has a zero direction), 1 when it is tangent, 2 otherwise.
// The two points are returned in decreasing line parameter.
func IntersectLineCircle(line Line, circle Circle) (first, second Vec2, n int) {
	divisor := line.Direction.SquaredLength()
	if divisor == 0 {
		return Vec2{}, Vec2{}, 0
	}
	p := 2 * (line.Base.Dot(line.Direction) - circle.Center.Dot(line.Direction)) / divisor
	q := (line.Base.Sub(circle.Center).SquaredLength() - sqr(circle.Radius)) / divisor
	pHalf := p / 2.0
	radicand := sqr(pHalf) - q
	if radicand < 0 {
		return Vec2{}, Vec2{}, 0
	}
	radix := math.Sqrt(radicand)
	first = line.Base.Add(line.Direction.Mul(-pHalf + radix))
	second = line.Base.Add(line.Direction.Mul(-pHalf - radix))
	if radicand == 0 {
		return first, second, 1
	}
	return first, second, 2
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned
// rectangle given by two corners in any order. Overlap includes full
// containment either way.
func CircleIntersectsRect(center Vec2, radius float64, corner1, corner2 Vec2) bool {
	// The corners can come from different coordinate conventions, so sort
	// out the borders first.
	var xMin, xMax, yMin, yMax float64
	if corner1.X < corner2.X {
		xMin, xMax = corner1.X, corner2.X
	} else {
		xMin, xMax = corner2.X, corner1.X
	}
	if corner1.Y < corner2.Y {
		yMin, yMax = corner1.Y, corner2.Y
	} else {
		yMin, yMax = corner2.Y, corner1.Y
	}

	// A circle farther than radius from every edge cannot overlap.
	if center.X < xMin-radius ||
		center.X > xMax+radius ||
		center.Y < yMin-radius ||
		center.Y > yMax+radius {
		return false
	}

	// The box check above is a false positive near the corners, where both
	// coordinates can be within radius of the borders while the circle still
	// clears the corner diagonally. Check the actual corner distances there.
	rSquare := sqr(radius)
	if (center.X < xMin && center.Y < yMin && center.Sub(Vec2{xMin, yMin}).SquaredLength() > rSquare) ||
		(center.X < xMin && center.Y > yMax && center.Sub(Vec2{xMin, yMax}).SquaredLength() > rSquare) ||
		(center.X > xMax && center.Y < yMin && center.Sub(Vec2{xMax, yMin}).SquaredLength() > rSquare) ||
		(center.X > xMax && center.Y > yMax && center.Sub(Vec2{xMax, yMax}).SquaredLength() > rSquare) {
		return false
	}
	return true
}

// IsPointInArc reports whether p lies within the pie slice of the given
// radius around center whose bearings fall inside the angle range.
func IsPointInArc(p, center Vec2, angles AngleRange, radius float64) bool {
	pointToArc := p.Sub(center)
	return pointToArc.SquaredLength() <= sqr(radius) && angles.Contains(pointToArc.Angle())
}
