package plot

import "math"

// Number is the constraint on axis value types: any ordered numeric type
// that supports linear interpolation after conversion to float64.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point represents a 2D point in screen/logical space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Point2 represents a 2D point in data space. It has no identity and is
// copied freely.
type Point2[X, Y Number] struct {
	X X
	Y Y
}

// Pt2 is a convenience function to create a data-space point.
func Pt2[X, Y Number](x X, y Y) Point2[X, Y] {
	return Point2[X, Y]{X: x, Y: y}
}
