package geometry

import (
	"image"
	"math"
)

// Vec2 is a 2D point or displacement. It is a plain value; all arithmetic
// returns new values and nothing in this package ever aliases one.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product with z=0. Its sign
// tells you which side of v the vector w lies on.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SquaredLength avoids the square root when only comparisons are needed.
func (v Vec2) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction, or the zero vector
// if v has zero length.
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{v.X / length, v.Y / length}
}

// Angle returns the bearing of v in radians, measured from the positive x
// axis.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) DistanceTo(w Vec2) float64 {
	return w.Sub(v).Length()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Pt truncates to an integer pixel coordinate.
func (v Vec2) Pt() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// FromPt converts an integer pixel coordinate into a Vec2.
func FromPt(p image.Point) Vec2 {
	return Vec2{float64(p.X), float64(p.Y)}
}

// Vec3 is a 3D point. Only the handful of operations the containment
// routines need are provided.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// XY projects onto the z=0 plane.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Distance returns the Euclidean distance between two points.
func Distance(p, q Vec2) float64 {
	return q.Sub(p).Length()
}

// DistancePt is the pixel-coordinate flavor of Distance.
func DistancePt(p, q image.Point) float64 {
	return FromPt(q).Sub(FromPt(p)).Length()
}
