package geom

import (
	"math"

	"github.com/quartzgl/vmath"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectFromPointSize creates a rectangle with the given top-left corner and
// size. A negative dimension produces a non-canonical rectangle; call Canon
// to normalize it.
func RectFromPointSize(p Point, s Size) Rect {
	return Rect{
		Min: p,
		Max: Point{X: p.X + s.W, Y: p.Y + s.H},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// IsEmpty returns true if the rectangle has no area. A degenerate rectangle
// still contains its boundary points under the closed-interval convention
// but covers nothing.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Canon returns the canonical form of the rectangle, swapping coordinates
// so Min <= Max.
func (r Rect) Canon() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains returns true if the point is inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect returns true if every point of s is inside r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.Min.X >= r.Min.X && s.Max.X <= r.Max.X &&
		s.Min.Y >= r.Min.Y && s.Max.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing both r and other.
// Operands are taken literally: the zero Rect is a point at the origin,
// not a neutral element.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Intersect returns the largest rectangle contained in both r and other.
// When the rectangles share no points the zero Rect is returned; touching
// edges intersect in a degenerate rectangle.
func (r Rect) Intersect(other Rect) Rect {
	i := Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
	if i.Max.X < i.Min.X || i.Max.Y < i.Min.Y {
		return Rect{}
	}
	return i
}

// Overlaps returns true if the rectangles share any point, edges included.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Translate returns the rectangle displaced by v.
func (r Rect) Translate(v vmath.Vec2) Rect {
	return Rect{
		Min: r.Min.AddVec(v),
		Max: r.Max.AddVec(v),
	}
}

// Corners returns the four corners in drawing order: top-left, top-right,
// bottom-right, bottom-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}
