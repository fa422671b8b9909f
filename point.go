package mathil

import (
	"fmt"
	"math"
)

// Point represents a location (or a displacement) in the continuous plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pts builds a slice of points from coordinate pairs.
func Pts(pairs ...[2]float64) []Point {
	points := make([]Point, len(pairs))
	for i, p := range pairs {
		points[i] = Point{X: p[0], Y: p[1]}
	}
	return points
}

// Origin returns (0, 0).
func Origin() Point {
	return Point{}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg negates both coordinates.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// NegateX negates the x coordinate.
func (p Point) NegateX() Point {
	return Point{X: -p.X, Y: p.Y}
}

// NegateY negates the y coordinate.
func (p Point) NegateY() Point {
	return Point{X: p.X, Y: -p.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Scale multiplies the two points element-wise.
func (p Point) Scale(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Length returns the distance from the point to the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Gradient returns the slope of the segment from the origin to p.
func (p Point) Gradient() float64 {
	return p.Y / p.X
}

// NormalGradient returns the slope of the normal to the segment from the
// origin to p.
func (p Point) NormalGradient() float64 {
	return -p.X / p.Y
}

// RotateCW rotates the point 90 degrees clockwise about the origin.
func (p Point) RotateCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// RotateCCW rotates the point 90 degrees counter-clockwise about the origin.
func (p Point) RotateCCW() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns a, t=1 returns b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
	}
}

// lerp is the scalar form of Lerp.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
