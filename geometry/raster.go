package geometry

import "image"

// PixeledLine is a line segment discretized into pixel coordinates. It is
// built once by NewPixeledLine and is just a slice afterwards; iterate it as
// often as you like.
type PixeledLine []image.Point

// NewPixeledLine walks from one pixel to the other along the dominant axis
// (the one with the larger absolute delta), advancing step pixels at a time
// and deriving the minor coordinate by truncating integer division. Identical
// endpoints produce a single pixel. A step below 1 would never terminate and
// panics instead.
func NewPixeledLine(from, to image.Point, step int) PixeledLine {
	if step < 1 {
		fatalf("pixel step must be positive, got %d", step)
	}
	if from == to {
		return PixeledLine{from}
	}

	var pixels PixeledLine
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) > abs(dy) {
		sign := sgn(dx)
		numberOfPixels := abs(dx) + 1
		pixels = make(PixeledLine, 0, numberOfPixels/step)
		for x := 0; x < numberOfPixels; x += step {
			y := x * dy / dx
			pixels = append(pixels, image.Pt(from.X+x*sign, from.Y+y*sign))
		}
	} else {
		sign := sgn(dy)
		numberOfPixels := abs(dy) + 1
		pixels = make(PixeledLine, 0, numberOfPixels/step)
		for y := 0; y < numberOfPixels; y += step {
			x := y * dx / dy
			pixels = append(pixels, image.Pt(from.X+x*sign, from.Y+y*sign))
		}
	}
	return pixels
}
