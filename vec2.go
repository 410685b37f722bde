package vmath

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector with double-precision components.
// It is an immutable value type: every operation returns a new vector and
// the receiver is never modified. NaN and Inf components propagate through
// all operations; finiteness is never enforced.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
// Division by zero yields IEEE infinities or NaN, not an error.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// MulComp returns the componentwise product of two vectors.
func (v Vec2) MulComp(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// DivComp returns the componentwise quotient of two vectors.
// Zero components in w yield IEEE infinities or NaN, not an error.
func (v Vec2) DivComp(w Vec2) Vec2 {
	return Vec2{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Abs returns the vector with each component replaced by its absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Useful for determining the sign of the angle between vectors.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector yields NaN components; callers that cannot
// tolerate NaN propagation must guard against zero-length input themselves.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec2) DistanceSq(w Vec2) float64 {
	d := v.Sub(w)
	return d.Dot(d)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w. t is not clamped: values outside [0,1]
// extrapolate beyond the endpoints.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Reflect returns the vector reflected off the surface with the given
// normal: v - 2*Dot(v,n)*n. The normal is assumed to be unit length and is
// not verified.
func (v Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * v.Dot(n)
	return Vec2{X: v.X - d*n.X, Y: v.Y - d*n.Y}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y)}
}

// Clamp returns the vector clamped componentwise to [lo, hi].
// Each component is clamped to hi first and then to lo, so when
// lo > hi for a component the result is lo (the same priority order as
// HLSL-style shader clamps).
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return v.Min(hi).Max(lo)
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Atan2 returns the angle of the vector in radians.
func (v Vec2) Atan2() float64 {
	return math.Atan2(v.Y, v.X)
}

// Angle returns the angle between two vectors in radians.
func (v Vec2) Angle(w Vec2) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
// Exact comparison is the == operator.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// Vec3 extends the vector to 3D with z=0.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// CopyTo copies the components into dst in X, Y order.
// It returns ErrNilDest or ErrDestTooSmall on argument-shape violations.
func (v Vec2) CopyTo(dst []float64) error {
	return v.CopyToAt(dst, 0)
}

// CopyToAt copies the components into dst starting at index i.
// It returns ErrNilDest when dst is nil, ErrIndexOutOfRange when i is not a
// valid position in dst, and ErrDestTooSmall when fewer than 2 slots remain
// at i.
func (v Vec2) CopyToAt(dst []float64, i int) error {
	if dst == nil {
		return ErrNilDest
	}
	if i < 0 || i >= len(dst) {
		return fmt.Errorf("%w: index %d with destination length %d", ErrIndexOutOfRange, i, len(dst))
	}
	if len(dst)-i < 2 {
		return fmt.Errorf("%w: need 2 floats at index %d, have %d", ErrDestTooSmall, i, len(dst)-i)
	}
	dst[i] = v.X
	dst[i+1] = v.Y
	return nil
}
