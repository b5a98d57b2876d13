package geometry

import "image"

// ClipToRect clamps each coordinate of p into the rectangle spanned by
// ordered (min, max) corners. The flag reports whether any clamping
// happened.
func ClipToRect(min, max, p Vec2) (Vec2, bool) {
	clipped := false
	if p.X < min.X {
		p.X = min.X
		clipped = true
	}
	if p.X > max.X {
		p.X = max.X
		clipped = true
	}
	if p.Y < min.Y {
		p.Y = min.Y
		clipped = true
	}
	if p.Y > max.Y {
		p.Y = max.Y
		clipped = true
	}
	return p, clipped
}

// ClipToRectPt is the pixel-coordinate flavor of ClipToRect.
func ClipToRectPt(min, max, p image.Point) (image.Point, bool) {
	clipped := false
	if p.X < min.X {
		p.X = min.X
		clipped = true
	}
	if p.X > max.X {
		p.X = max.X
		clipped = true
	}
	if p.Y < min.Y {
		p.Y = min.Y
		clipped = true
	}
	if p.Y > max.Y {
		p.Y = max.Y
		clipped = true
	}
	return p, clipped
}

// ClipToPolygonBorder projects p onto the nearest edge of the polygon.
// The flag is false when p already sits exactly on an edge (minimum distance
// zero), in which case p is returned unchanged.
//
// Panics when the polygon has fewer than three vertices.
func ClipToPolygonBorder(polygon []Vec2, p Vec2) (Vec2, bool) {
	if len(polygon) < 3 {
		fatalf("polygon needs at least 3 vertices, got %d", len(polygon))
	}
	// Compare the distance to every edge and remember the nearest one,
	// starting with the closing edge from the last vertex back to the first.
	min := DistanceToEdge(LineThrough(polygon[0], polygon[len(polygon)-1]), p)
	n := len(polygon) - 1
	for j := 0; j < len(polygon)-1; j++ {
		if d := DistanceToEdge(LineThrough(polygon[j], polygon[j+1]), p); d < min {
			min = d
			n = j
		}
	}
	if min == 0 {
		return p, false
	}

	next := 0
	if n != len(polygon)-1 {
		next = n + 1
	}
	return ProjectOntoEdgeDir(polygon[n], polygon[next].Sub(polygon[n]), p), true
}

// ClipIntoPolygon moves p onto the border of a simple polygon unless it is
// already inside by the even-odd rule. The flag reports whether p moved.
func ClipIntoPolygon(polygon []Vec2, p Vec2) (Vec2, bool) {
	if PointInPolygon(polygon, p) {
		return p, false
	}
	clipped, _ := ClipToPolygonBorder(polygon, p)
	return clipped, true
}

// ClipIntoConvexPolygon is ClipIntoPolygon with the convex containment test.
// Only the inside check differs; the clip target is the nearest border edge
// either way.
func ClipIntoConvexPolygon(polygon []Vec2, p Vec2) (Vec2, bool) {
	if PointInConvexPolygon(polygon, p) {
		return p, false
	}
	clipped, _ := ClipToPolygonBorder(polygon, p)
	return clipped, true
}
