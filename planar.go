// Package planar is a stateless 2D computational-geometry toolkit for
// perception and localization code: intersections of lines, circles, rays
// and polygons; distances and projections; point containment; clipping into
// bounded regions; and rasterization of segments into pixel runs.
//
// Everything is a pure function over value types. The geometry subpackage
// holds the full API and signals precondition violations (degenerate
// polygons, non-positive raster steps) by panicking; this package wraps the
// panicking entry points into error-returning ones for callers who would
// rather branch than recover.
package planar

import (
	"image"

	"github.com/ysynoya/planar/geometry"
)

type Vec2 = geometry.Vec2
type Vec3 = geometry.Vec3
type Line = geometry.Line
type Circle = geometry.Circle
type Rect = geometry.Rect
type PixeledLine = geometry.PixeledLine

// IntersectLineConvexPolygon intersects a line with a convex polygon's
// boundary, selecting the entry edge for the given winding. It returns an
// error instead of panicking when the polygon has fewer than three vertices.
func IntersectLineConvexPolygon(polygon []Vec2, line Line, ccwWinding bool) (intersection Vec2, edge Line, found bool, err error) {
	defer func() {
		if recoveredErr := geometry.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
			found = false
		}
	}()
	intersection, edge, found = geometry.IntersectLineConvexPolygon(polygon, line, ccwWinding)
	return intersection, edge, found, nil
}

// ClipIntoPolygon moves the point onto the border of a simple polygon unless
// it is already inside. The boolean reports whether the point moved.
func ClipIntoPolygon(polygon []Vec2, p Vec2) (clipped Vec2, moved bool, err error) {
	defer func() {
		if recoveredErr := geometry.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	clipped, moved = geometry.ClipIntoPolygon(polygon, p)
	return clipped, moved, nil
}

// ClipIntoConvexPolygon is ClipIntoPolygon with the convex containment test.
func ClipIntoConvexPolygon(polygon []Vec2, p Vec2) (clipped Vec2, moved bool, err error) {
	defer func() {
		if recoveredErr := geometry.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	clipped, moved = geometry.ClipIntoConvexPolygon(polygon, p)
	return clipped, moved, nil
}

// NewPixeledLine rasterizes the segment between two pixels, returning an
// error instead of panicking on a non-positive step.
func NewPixeledLine(from, to image.Point, step int) (line PixeledLine, err error) {
	defer func() {
		if recoveredErr := geometry.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
			line = nil
		}
	}()
	return geometry.NewPixeledLine(from, to, step), nil
}
