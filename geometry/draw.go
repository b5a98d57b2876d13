package geometry

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Visual debugging. DrawScene renders a bag of geometry onto a PNG so you
// can eyeball what a localization routine is actually being fed. Not part of
// any perception path.

const drawPadding = 20

// Scene is a collection of shapes to render together. Lines are drawn as
// segments over their [0,1] parameter range.
type Scene struct {
	Polygons [][]Vec2
	Circles  []Circle
	Lines    []Line
	Pixels   []image.Point
}

func (s *Scene) bounds() (min, max Vec2) {
	min = Vec2{math.Inf(1), math.Inf(1)}
	max = Vec2{math.Inf(-1), math.Inf(-1)}
	grow := func(p Vec2) {
		min.X = minf(min.X, p.X)
		min.Y = minf(min.Y, p.Y)
		max.X = maxf(max.X, p.X)
		max.Y = maxf(max.Y, p.Y)
	}
	for _, poly := range s.Polygons {
		for _, p := range poly {
			grow(p)
		}
	}
	for _, c := range s.Circles {
		grow(c.Center.Sub(Vec2{c.Radius, c.Radius}))
		grow(c.Center.Add(Vec2{c.Radius, c.Radius}))
	}
	for _, l := range s.Lines {
		grow(l.Base)
		grow(l.End())
	}
	for _, p := range s.Pixels {
		grow(FromPt(p))
	}
	return min, max
}

// DrawPNG renders the scene to a PNG file at the given scale. When out is
// non-nil the image is also catted to it inline (iTerm2-style), which is
// handy when poking at a scene from a terminal.
func (s *Scene) DrawPNG(path string, scale float64, out io.Writer) error {
	min, max := s.bounds()

	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip so the origin sits at the bottom left, then scale into view.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	for _, poly := range s.Polygons {
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, circle := range s.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	c.SetRGB(1, 0, 1)
	for _, line := range s.Lines {
		end := line.End()
		c.DrawLine(line.Base.X, line.Base.Y, end.X, end.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range s.Pixels {
		c.DrawPoint(float64(p.X), float64(p.Y), 1)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		return err
	}
	if out != nil {
		imgcat.CatFile(path, out)
	}
	return nil
}
