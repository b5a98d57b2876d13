package geometry

import "math"

// SignedDistanceToLine returns the distance from point to the infinite line,
// positive on the right of the direction, negative on the left. A line with
// a zero direction degrades to the plain distance to its base point.
func SignedDistanceToLine(line Line, point Vec2) float64 {
	if isDegenerate(line.Direction) {
		return Distance(point, line.Base)
	}

	normal := Vec2{line.Direction.Y, -line.Direction.X}.Normalized()
	c := normal.Dot(line.Base)
	return normal.Dot(point) - c
}

// DistanceToLine returns the unsigned distance from point to the infinite
// line.
func DistanceToLine(line Line, point Vec2) float64 {
	return math.Abs(SignedDistanceToLine(line, point))
}

// DistanceToEdge returns the distance from point to the segment covered by
// the line's [0,1] parameter range. Beyond either end the distance is to the
// respective endpoint.
func DistanceToEdge(line Line, point Vec2) float64 {
	if isDegenerate(line.Direction) {
		return Distance(point, line.Base)
	}

	d := point.Sub(line.Base).Dot(line.Direction) / line.Direction.Dot(line.Direction)

	if d < 0 {
		return Distance(point, line.Base)
	} else if d > 1.0 {
		return Distance(point, line.End())
	}
	return DistanceToLine(line, point)
}

// ProjectOntoLineDir drops point perpendicularly onto the line through base
// with unit direction dir. The direction must already be normalized; the
// Line flavor below takes care of that.
func ProjectOntoLineDir(base, dir, point Vec2) Vec2 {
	l := (point.X-base.X)*dir.X + (point.Y-base.Y)*dir.Y
	return base.Add(dir.Mul(l))
}

// ProjectOntoLine returns the point on the infinite line nearest to point.
func ProjectOntoLine(line Line, point Vec2) Vec2 {
	return ProjectOntoLineDir(line.Base, line.Direction.Normalized(), point)
}

// ProjectOntoEdgeDir returns the point of the segment from base to base+dir
// nearest to point. The same clamped-parameter rule as DistanceToEdge: past
// the ends you get the endpoints.
func ProjectOntoEdgeDir(base, dir, point Vec2) Vec2 {
	projection := ProjectOntoLineDir(base, dir.Normalized(), point)

	d := projection.Sub(base).Dot(dir) / dir.Dot(dir)

	if d < 0 {
		return base
	} else if d > 1.0 {
		return base.Add(dir)
	}
	return projection
}

// ProjectOntoEdge is ProjectOntoEdgeDir for a Line read as a segment.
func ProjectOntoEdge(line Line, point Vec2) Vec2 {
	return ProjectOntoEdgeDir(line.Base, line.Direction, point)
}
