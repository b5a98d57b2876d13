package geometry

import "image"

// IntersectLines returns the unique intersection point of two infinite
// lines. It reports false iff the directions are exactly parallel; there is
// no epsilon here (see the note in util.go).
func IntersectLines(line1, line2 Line) (Vec2, bool) {
	if isParallel(line1.Direction, line2.Direction) {
		return Vec2{}, false
	}

	x := line1.Base.X +
		line1.Direction.X*
			(line1.Base.Y*line2.Direction.X-
				line2.Base.Y*line2.Direction.X+
				(-line1.Base.X+line2.Base.X)*line2.Direction.Y)/
			(-line1.Direction.Y*line2.Direction.X+line1.Direction.X*line2.Direction.Y)

	y := line1.Base.Y +
		line1.Direction.Y*
			(-line1.Base.Y*line2.Direction.X+
				line2.Base.Y*line2.Direction.X+
				(line1.Base.X-line2.Base.X)*line2.Direction.Y)/
			(line1.Direction.Y*line2.Direction.X-line1.Direction.X*line2.Direction.Y)

	return Vec2{x, y}, true
}

// IntersectSegmentsFactor treats both lines as bounded segments (parameter
// range [0,1]) and returns the parameter along the first segment at which
// they cross. It reports false when the segments are parallel or the
// crossing falls outside either segment.
func IntersectSegmentsFactor(seg1, seg2 Line) (float64, bool) {
	divisor := seg2.Direction.X*seg1.Direction.Y - seg1.Direction.X*seg2.Direction.Y
	if divisor == 0 {
		return 0, false
	}
	k := (seg2.Direction.Y*seg1.Base.X - seg2.Direction.Y*seg2.Base.X - seg2.Direction.X*seg1.Base.Y + seg2.Direction.X*seg2.Base.Y) / divisor
	l := (seg1.Direction.Y*seg1.Base.X - seg1.Direction.Y*seg2.Base.X - seg1.Direction.X*seg1.Base.Y + seg1.Direction.X*seg2.Base.Y) / divisor
	if k >= 0 && l >= 0 && k <= 1 && l <= 1 {
		return k, true
	}
	return 0, false
}

// SegmentsIntersect reports whether the closed segments a1a2 and b1b2 touch
// or cross. Built entirely on CCW, so collinear overlaps count as
// intersecting.
func SegmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	return CCW(a1, a2, b1)*CCW(a1, a2, b2) <= 0 &&
		CCW(b1, b2, a1)*CCW(b1, b2, a2) <= 0
}

// IntersectLineConvexPolygon intersects an infinite line with the boundary
// of a convex polygon. ccwWinding tells the routine which way the polygon
// winds; combined with the side on which the line's reference points fall it
// selects the entry edge, so only one of the (up to) two boundary crossings
// is returned. The intersected edge is returned as a Line with its base at
// the edge's first vertex and a unit direction.
//
// Panics when the polygon has fewer than three vertices.
func IntersectLineConvexPolygon(polygon []Vec2, line Line, ccwWinding bool) (intersection Vec2, edge Line, ok bool) {
	if len(polygon) < 3 {
		fatalf("convex polygon needs at least 3 vertices, got %d", len(polygon))
	}
	for i := range polygon {
		p1 := polygon[i]
		p2 := polygon[(i+1)%len(polygon)]
		polygonLine := Line{Base: p1, Direction: p2.Sub(p1).Normalized()}
		isLeftP1 := IsPointLeftOfLine(line.Base, line.Base.Add(line.Direction), p1)
		isLeftP2 := IsPointLeftOfLine(line.Base, line.Base.Add(line.Direction), p2)
		hasIntersection := isLeftP1 != isLeftP2
		if ccwWinding {
			hasIntersection = hasIntersection && !isLeftP1
		} else {
			hasIntersection = hasIntersection && isLeftP1
		}
		if hasIntersection {
			if p, found := IntersectLines(line, polygonLine); found {
				return p, polygonLine, true
			}
		}
	}
	return Vec2{}, Line{}, false
}

// IntersectLineRect clips an infinite line against an axis-aligned rectangle
// given by ordered (min, max) corners. On success the two boundary crossings
// are returned ordered along the line's direction; a line that only grazes
// the border yields the same point twice. Near-duplicate corner hits are
// collapsed with a fixed 0.1 tolerance, which is fine at the millimeter
// scales this is used at.
func IntersectLineRect(min, max Vec2, line Line) (Vec2, Vec2, bool) {
	foundPoints := 0
	var point [2]Vec2
	if line.Direction.X != 0 {
		y1 := line.Base.Y + (min.X-line.Base.X)*line.Direction.Y/line.Direction.X
		if y1 >= min.Y && y1 <= max.Y {
			point[foundPoints] = Vec2{min.X, y1}
			foundPoints++
		}
		y2 := line.Base.Y + (max.X-line.Base.X)*line.Direction.Y/line.Direction.X
		if y2 >= min.Y && y2 <= max.Y {
			point[foundPoints] = Vec2{max.X, y2}
			foundPoints++
		}
	}
	if line.Direction.Y != 0 {
		x1 := line.Base.X + (min.Y-line.Base.Y)*line.Direction.X/line.Direction.Y
		if x1 >= min.X && x1 <= max.X && foundPoints < 2 {
			point[foundPoints] = Vec2{x1, min.Y}
			if foundPoints == 0 || point[0].Sub(point[1]).Length() > 0.1 {
				foundPoints++
			}
		}
		x2 := line.Base.X + (max.Y-line.Base.Y)*line.Direction.X/line.Direction.Y
		if x2 >= min.X && x2 <= max.X && foundPoints < 2 {
			point[foundPoints] = Vec2{x2, max.Y}
			if foundPoints == 0 || point[0].Sub(point[1]).Length() > 0.1 {
				foundPoints++
			}
		}
	}
	switch foundPoints {
	case 1:
		return point[0], point[0], true
	case 2:
		if point[1].Sub(point[0]).Dot(line.Direction) > 0 {
			return point[0], point[1], true
		}
		return point[1], point[0], true
	default:
		return Vec2{}, Vec2{}, false
	}
}

// IntersectLineRectPt is IntersectLineRect on pixel bounds. The crossings
// are truncated to integer pixel coordinates.
func IntersectLineRectPt(min, max image.Point, line Line) (image.Point, image.Point, bool) {
	p1, p2, ok := IntersectLineRect(FromPt(min), FromPt(max), line)
	if !ok {
		return image.Point{}, image.Point{}, false
	}
	return p1.Pt(), p2.Pt(), true
}
