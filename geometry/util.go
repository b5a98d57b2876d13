package geometry

import "math"

func minf(a, b float64) float64 {
	return math.Min(a, b)
}

func maxf(a, b float64) float64 {
	return math.Max(a, b)
}

func sqr(x float64) float64 {
	return x * x
}

func sgn(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// The degeneracy guards below intentionally compare against zero exactly, no
// tolerance. Downstream consumers have been tuned around which near-parallel
// inputs get classified as solvable, so the tolerance question is isolated
// here rather than answered differently at every call site.

// isParallel reports whether two direction vectors are exactly parallel.
func isParallel(d1, d2 Vec2) bool {
	return d1.Y*d2.X == d1.X*d2.Y
}

// isDegenerate reports whether a direction vector is exactly zero, i.e. the
// line has collapsed to a point.
func isDegenerate(d Vec2) bool {
	return d.X == 0 && d.Y == 0
}

// CCW classifies the turn made by the three points. It returns +1 if p2 is
// left of the directed segment p0->p1, -1 if right. For collinear points the
// tie-break is: -1 if p2 is behind p0 or the vectors diverge, 0 if p2 lies
// between p0 and p1 inclusive, +1 if p2 is beyond p1. Every convex
// containment and segment test in this package leans on that exact ordering,
// so don't "simplify" it.
func CCW(p0, p1, p2 Vec2) int {
	dx1 := p1.X - p0.X
	dy1 := p1.Y - p0.Y
	dx2 := p2.X - p0.X
	dy2 := p2.Y - p0.Y
	if dx1*dy2 > dy1*dx2 {
		return 1
	}
	if dx1*dy2 < dy1*dx2 {
		return -1
	}
	// Now dx1*dy2 == dy1*dx2, so the points are collinear.
	if dx1*dx2 < 0 || dy1*dy2 < 0 {
		return -1
	}
	if dx1*dx1+dy1*dy1 >= dx2*dx2+dy2*dy2 {
		return 0
	}
	return 1
}

// IsPointLeftOfLine reports whether point is strictly left of the directed
// line from start to end. Points on the line count as not-left.
func IsPointLeftOfLine(start, end, point Vec2) bool {
	return (end.X-start.X)*(point.Y-start.Y)-(end.Y-start.Y)*(point.X-start.X) > 0
}

// SignedPolygonArea returns the shoelace area of the polygon: positive for
// counter-clockwise winding, negative for clockwise.
func SignedPolygonArea(polygon []Vec2) float64 {
	var sum float64
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		sum += polygon[j].Cross(polygon[i])
		j = i
	}
	return sum / 2
}

// PolygonIsCCW reports whether the polygon winds counter-clockwise. Handy
// for computing the winding flag IntersectLineConvexPolygon wants instead of
// guessing it.
func PolygonIsCCW(polygon []Vec2) bool {
	return SignedPolygonArea(polygon) > 0
}
