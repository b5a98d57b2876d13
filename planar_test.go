package planar

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectLineConvexPolygon(t *testing.T) {
	square := []Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	t.Run("valid polygon", func(t *testing.T) {
		p, _, found, err := IntersectLineConvexPolygon(square, Line{Base: Vec2{X: 0.5, Y: 0.5}, Direction: Vec2{X: 1}}, true)
		require.NoError(t, err)
		require.True(t, found)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 0.5, p.Y, 1e-12)
	})

	t.Run("degenerate polygon becomes an error", func(t *testing.T) {
		_, _, found, err := IntersectLineConvexPolygon([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, Line{Direction: Vec2{X: 1}}, true)
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestClipIntoPolygon(t *testing.T) {
	square := []Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}

	t.Run("outside point is clipped", func(t *testing.T) {
		p, moved, err := ClipIntoPolygon(square, Vec2{X: 3, Y: 1})
		require.NoError(t, err)
		assert.True(t, moved)
		assert.InDelta(t, 2, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("too few vertices becomes an error", func(t *testing.T) {
		_, _, err := ClipIntoPolygon([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, Vec2{X: 3, Y: 1})
		assert.Error(t, err)
	})

	t.Run("convex variant", func(t *testing.T) {
		p, moved, err := ClipIntoConvexPolygon(square, Vec2{X: 1, Y: 1})
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, Vec2{X: 1, Y: 1}, p)
	})
}

func TestNewPixeledLine(t *testing.T) {
	t.Run("valid step", func(t *testing.T) {
		line, err := NewPixeledLine(image.Pt(0, 0), image.Pt(2, 0), 1)
		require.NoError(t, err)
		assert.Equal(t, PixeledLine{image.Pt(0, 0), image.Pt(1, 0), image.Pt(2, 0)}, line)
	})

	t.Run("zero step becomes an error", func(t *testing.T) {
		line, err := NewPixeledLine(image.Pt(0, 0), image.Pt(2, 0), 0)
		assert.Error(t, err)
		assert.Nil(t, line)
	})
}
