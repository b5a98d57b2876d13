package geometry

import "image"

// PointInRect reports whether p lies in the rectangle spanned by ordered
// (min, max) corners, bounds inclusive. Use PointInRectCorners or
// Rect.Contains when the corners are unordered.
func PointInRect(min, max, p Vec2) bool {
	return min.X <= p.X && p.X <= max.X &&
		min.Y <= p.Y && p.Y <= max.Y
}

// PointInRectCorners is PointInRect for two corners in any order.
func PointInRectCorners(corner1, corner2, p Vec2) bool {
	min := Vec2{minf(corner1.X, corner2.X), minf(corner1.Y, corner2.Y)}
	max := Vec2{maxf(corner1.X, corner2.X), maxf(corner1.Y, corner2.Y)}
	return PointInRect(min, max, p)
}

// PointInRectPt is the pixel-coordinate flavor of PointInRect.
func PointInRectPt(min, max, p image.Point) bool {
	return min.X <= p.X && p.X <= max.X &&
		min.Y <= p.Y && p.Y <= max.Y
}

// PointInConvexPolygon reports whether p lies inside a convex polygon,
// boundary inclusive: a point exactly on an edge counts as inside, which is
// what the CCW zero case detects. The polygon may wind either way, but must
// actually be convex; the test only checks that every edge sees the point on
// the same side.
func PointInConvexPolygon(polygon []Vec2, p Vec2) bool {
	orientation := CCW(polygon[0], polygon[1], p)
	if orientation == 0 {
		return true
	}
	for i := 1; i < len(polygon); i++ {
		currentOrientation := CCW(polygon[i], polygon[(i+1)%len(polygon)], p)
		if currentOrientation == 0 {
			return true
		}
		if currentOrientation != orientation {
			return false
		}
	}
	return true
}

// PointInPolygon reports whether p lies inside a simple polygon by the
// even-odd crossing rule. Winding order does not matter and the polygon need
// not be convex, only non-self-intersecting.
func PointInPolygon(polygon []Vec2, p Vec2) bool {
	j := len(polygon) - 1
	oddNodes := false

	for i := 0; i < len(polygon); i++ {
		if (polygon[i].Y < p.Y && polygon[j].Y >= p.Y) || (polygon[j].Y < p.Y && polygon[i].Y >= p.Y) {
			if polygon[i].X+(p.Y-polygon[i].Y)/(polygon[j].Y-polygon[i].Y)*(polygon[j].X-polygon[i].X) < p.X {
				oddNodes = !oddNodes
			}
		}
		j = i
	}
	return oddNodes
}

// PointInPolygon3 runs the same even-odd rule on the x/y components of 3D
// points. The z components are carried by the caller (typically a polygon
// already projected onto a plane) and ignored here.
func PointInPolygon3(polygon []Vec3, p Vec3) bool {
	j := len(polygon) - 1
	oddNodes := false

	for i := 0; i < len(polygon); i++ {
		if (polygon[i].Y < p.Y && polygon[j].Y >= p.Y) || (polygon[j].Y < p.Y && polygon[i].Y >= p.Y) {
			if polygon[i].X+(p.Y-polygon[i].Y)/(polygon[j].Y-polygon[i].Y)*(polygon[j].X-polygon[i].X) < p.X {
				oddNodes = !oddNodes
			}
		}
		j = i
	}
	return oddNodes
}
