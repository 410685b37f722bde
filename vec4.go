package vmath

import (
	"fmt"
	"math"
)

// Vec4 represents a 4D vector with double-precision components.
// Like Vec2 and Vec3 it is an immutable value type with NaN/Inf propagation.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the vector divided by a scalar.
// Division by zero yields IEEE infinities or NaN, not an error.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// MulComp returns the componentwise product of two vectors.
func (v Vec4) MulComp(w Vec4) Vec4 {
	return Vec4{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// DivComp returns the componentwise quotient of two vectors.
// Zero components in w yield IEEE infinities or NaN, not an error.
func (v Vec4) DivComp(w Vec4) Vec4 {
	return Vec4{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// Neg returns the negation of the vector.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Abs returns the vector with each component replaced by its absolute value.
func (v Vec4) Abs() Vec4 {
	return Vec4{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z), W: math.Abs(v.W)}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns the length (magnitude) of the vector.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec4) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector yields NaN components; callers that cannot
// tolerate NaN propagation must guard against zero-length input themselves.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	return Vec4{X: v.X / length, Y: v.Y / length, Z: v.Z / length, W: v.W / length}
}

// Distance returns the distance between two points.
func (v Vec4) Distance(w Vec4) float64 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec4) DistanceSq(w Vec4) float64 {
	d := v.Sub(w)
	return d.Dot(d)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w. t is not clamped: values outside [0,1]
// extrapolate beyond the endpoints.
func (v Vec4) Lerp(w Vec4, t float64) Vec4 {
	return Vec4{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
		W: v.W + (w.W-v.W)*t,
	}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec4) Min(w Vec4) Vec4 {
	return Vec4{
		X: math.Min(v.X, w.X),
		Y: math.Min(v.Y, w.Y),
		Z: math.Min(v.Z, w.Z),
		W: math.Min(v.W, w.W),
	}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec4) Max(w Vec4) Vec4 {
	return Vec4{
		X: math.Max(v.X, w.X),
		Y: math.Max(v.Y, w.Y),
		Z: math.Max(v.Z, w.Z),
		W: math.Max(v.W, w.W),
	}
}

// Clamp returns the vector clamped componentwise to [lo, hi].
// Each component is clamped to hi first and then to lo, so when
// lo > hi for a component the result is lo (the same priority order as
// HLSL-style shader clamps).
func (v Vec4) Clamp(lo, hi Vec4) Vec4 {
	return v.Min(hi).Max(lo)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
// Exact comparison is the == operator.
func (v Vec4) Approx(w Vec4, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon &&
		math.Abs(v.W-w.W) < epsilon
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// CopyTo copies the components into dst in X, Y, Z, W order.
// It returns ErrNilDest or ErrDestTooSmall on argument-shape violations.
func (v Vec4) CopyTo(dst []float64) error {
	return v.CopyToAt(dst, 0)
}

// CopyToAt copies the components into dst starting at index i.
// It returns ErrNilDest when dst is nil, ErrIndexOutOfRange when i is not a
// valid position in dst, and ErrDestTooSmall when fewer than 4 slots remain
// at i.
func (v Vec4) CopyToAt(dst []float64, i int) error {
	if dst == nil {
		return ErrNilDest
	}
	if i < 0 || i >= len(dst) {
		return fmt.Errorf("%w: index %d with destination length %d", ErrIndexOutOfRange, i, len(dst))
	}
	if len(dst)-i < 4 {
		return fmt.Errorf("%w: need 4 floats at index %d, have %d", ErrDestTooSmall, i, len(dst)-i)
	}
	dst[i] = v.X
	dst[i+1] = v.Y
	dst[i+2] = v.Z
	dst[i+3] = v.W
	return nil
}
