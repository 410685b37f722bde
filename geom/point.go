package geom

import (
	"math"

	"github.com/quartzgl/vmath"
)

// Point represents a 2D position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromVec converts a displacement vector into a position.
func PointFromVec(v vmath.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddVec returns the point displaced by v.
func (p Point) AddVec(v vmath.Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// SubVec returns the point displaced by -v.
func (p Point) SubVec(v vmath.Vec2) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q; t outside [0, 1] extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vec returns the point as a displacement vector from the origin.
func (p Point) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// Approx returns true if two points are componentwise equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Size represents a 2D extent. Negative dimensions are permitted and mark
// a degenerate size; IsEmpty reports them.
type Size struct {
	W, H float64
}

// Add returns the componentwise sum of two sizes.
func (s Size) Add(t Size) Size {
	return Size{W: s.W + t.W, H: s.H + t.H}
}

// Sub returns the componentwise difference of two sizes.
func (s Size) Sub(t Size) Size {
	return Size{W: s.W - t.W, H: s.H - t.H}
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(k float64) Size {
	return Size{W: s.W * k, H: s.H * k}
}

// Div returns the size divided by a scalar.
func (s Size) Div(k float64) Size {
	return Size{W: s.W / k, H: s.H / k}
}

// Union returns the componentwise maximum of two sizes: the smallest size
// covering both.
func (s Size) Union(t Size) Size {
	return Size{W: math.Max(s.W, t.W), H: math.Max(s.H, t.H)}
}

// IsEmpty returns true if the size has no area.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}
