package geometry

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectLines(t *testing.T) {
	t.Run("parallel lines never intersect", func(t *testing.T) {
		// Regardless of base points
		bases := [][2]Vec2{
			{{0, 0}, {0, 1}},
			{{5, 5}, {-3, 2}},
			{{0, 0}, {0, 0}}, // identical lines count as parallel too
		}
		for _, b := range bases {
			_, ok := IntersectLines(NewLine(b[0], V2(1, 0)), NewLine(b[1], V2(1, 0)))
			assert.False(t, ok)
		}
	})

	t.Run("perpendicular lines", func(t *testing.T) {
		p, ok := IntersectLines(
			NewLine(V2(0, 0), V2(1, 0)),
			NewLine(V2(0, -1), V2(0, 1)),
		)
		require.True(t, ok)
		assert.Equal(t, V2(0, 0), p)
	})

	t.Run("oblique lines", func(t *testing.T) {
		// y = x and y = -x + 2 meet at (1, 1)
		p, ok := IntersectLines(
			NewLine(V2(0, 0), V2(1, 1)),
			NewLine(V2(2, 0), V2(-1, 1)),
		)
		require.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("scaling a direction changes nothing", func(t *testing.T) {
		l1 := NewLine(V2(-3, 4), V2(2, 1))
		l2 := NewLine(V2(5, -1), V2(0, 3))
		p, ok := IntersectLines(l1, l2)
		require.True(t, ok)
		l1.Direction = l1.Direction.Mul(17)
		q, ok := IntersectLines(l1, l2)
		require.True(t, ok)
		assert.InDelta(t, p.X, q.X, 1e-9)
		assert.InDelta(t, p.Y, q.Y, 1e-9)
	})
}

func TestIntersectSegmentsFactor(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		factor, ok := IntersectSegmentsFactor(
			LineThrough(V2(0, 0), V2(2, 0)),
			LineThrough(V2(1, -1), V2(1, 1)),
		)
		require.True(t, ok)
		assert.InDelta(t, 0.5, factor, 1e-12)
	})

	t.Run("crossing beyond the first segment", func(t *testing.T) {
		_, ok := IntersectSegmentsFactor(
			LineThrough(V2(0, 0), V2(2, 0)),
			LineThrough(V2(5, -1), V2(5, 1)),
		)
		assert.False(t, ok)
	})

	t.Run("crossing beyond the second segment", func(t *testing.T) {
		_, ok := IntersectSegmentsFactor(
			LineThrough(V2(0, 0), V2(2, 0)),
			LineThrough(V2(1, 1), V2(1, 3)),
		)
		assert.False(t, ok)
	})

	t.Run("parallel segments", func(t *testing.T) {
		_, ok := IntersectSegmentsFactor(
			LineThrough(V2(0, 0), V2(2, 0)),
			LineThrough(V2(0, 1), V2(2, 1)),
		)
		assert.False(t, ok)
	})

	t.Run("touching endpoints", func(t *testing.T) {
		factor, ok := IntersectSegmentsFactor(
			LineThrough(V2(0, 0), V2(2, 0)),
			LineThrough(V2(2, 0), V2(2, 2)),
		)
		require.True(t, ok)
		assert.InDelta(t, 1.0, factor, 1e-12)
	})
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(V2(0, 0), V2(2, 2), V2(0, 2), V2(2, 0)))
	assert.False(t, SegmentsIntersect(V2(0, 0), V2(1, 0), V2(0, 1), V2(1, 1)))
	// Shared endpoint counts as intersecting
	assert.True(t, SegmentsIntersect(V2(0, 0), V2(1, 0), V2(1, 0), V2(1, 1)))
	// Collinear overlap counts as intersecting
	assert.True(t, SegmentsIntersect(V2(0, 0), V2(2, 0), V2(1, 0), V2(3, 0)))
}

func TestIntersectLineConvexPolygon(t *testing.T) {
	square := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}} // CCW

	t.Run("CCW winding picks the edge ahead", func(t *testing.T) {
		p, edge, ok := IntersectLineConvexPolygon(square, NewLine(V2(0.5, 0.5), V2(1, 0)), true)
		require.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 0.5, p.Y, 1e-12)
		assert.Equal(t, V2(1, 0), edge.Base)
	})

	t.Run("CW winding flips the selected edge", func(t *testing.T) {
		p, edge, ok := IntersectLineConvexPolygon(square, NewLine(V2(0.5, 0.5), V2(1, 0)), false)
		require.True(t, ok)
		assert.InDelta(t, 0, p.X, 1e-12)
		assert.InDelta(t, 0.5, p.Y, 1e-12)
		assert.Equal(t, V2(0, 1), edge.Base)
	})

	t.Run("line missing the polygon", func(t *testing.T) {
		_, _, ok := IntersectLineConvexPolygon(square, NewLine(V2(0, 5), V2(1, 0)), true)
		assert.False(t, ok)
	})

	t.Run("degenerate polygon panics", func(t *testing.T) {
		assert.Panics(t, func() {
			IntersectLineConvexPolygon([]Vec2{{0, 0}, {1, 1}}, NewLine(V2(0, 0), V2(1, 0)), true)
		})
	})

	t.Run("pentagon fixture", func(t *testing.T) {
		pentagon := LoadFixture("pentagon")
		line := NewLine(V2(2, 2), V2(1, 0))
		p, _, ok := IntersectLineConvexPolygon(pentagon, line, true)
		require.True(t, ok)
		assert.Greater(t, p.X, 2.0)
	})
}

func TestIntersectLineRect(t *testing.T) {
	min := V2(0, 0)
	max := V2(10, 10)

	t.Run("horizontal line", func(t *testing.T) {
		p1, p2, ok := IntersectLineRect(min, max, NewLine(V2(5, 5), V2(1, 0)))
		require.True(t, ok)
		assert.Equal(t, V2(0, 5), p1)
		assert.Equal(t, V2(10, 5), p2)
	})

	t.Run("points come back ordered along the direction", func(t *testing.T) {
		p1, p2, ok := IntersectLineRect(min, max, NewLine(V2(5, 5), V2(-1, 0)))
		require.True(t, ok)
		assert.Equal(t, V2(10, 5), p1)
		assert.Equal(t, V2(0, 5), p2)
	})

	t.Run("vertical line", func(t *testing.T) {
		p1, p2, ok := IntersectLineRect(min, max, NewLine(V2(3, -5), V2(0, 1)))
		require.True(t, ok)
		assert.Equal(t, V2(3, 0), p1)
		assert.Equal(t, V2(3, 10), p2)
	})

	t.Run("diagonal through corners", func(t *testing.T) {
		p1, p2, ok := IntersectLineRect(min, max, NewLine(V2(0, 0), V2(1, 1)))
		require.True(t, ok)
		assert.Equal(t, V2(0, 0), p1)
		assert.Equal(t, V2(10, 10), p2)
	})

	t.Run("miss", func(t *testing.T) {
		_, _, ok := IntersectLineRect(min, max, NewLine(V2(0, 20), V2(1, 0)))
		assert.False(t, ok)
	})

	t.Run("pixel flavor truncates", func(t *testing.T) {
		p1, p2, ok := IntersectLineRectPt(image.Pt(0, 0), image.Pt(10, 10), NewLine(V2(3.5, -5), V2(0, 1)))
		require.True(t, ok)
		assert.Equal(t, image.Pt(3, 0), p1)
		assert.Equal(t, image.Pt(3, 10), p2)
	})
}
