package vmath

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector with double-precision components.
// Like Vec2 it is an immutable value type with NaN/Inf propagation.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// UnitX3 returns the unit vector along the positive X axis.
func UnitX3() Vec3 { return Vec3{X: 1} }

// UnitY3 returns the unit vector along the positive Y axis.
func UnitY3() Vec3 { return Vec3{Y: 1} }

// UnitZ3 returns the unit vector along the positive Z axis.
func UnitZ3() Vec3 { return Vec3{Z: 1} }

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
// Division by zero yields IEEE infinities or NaN, not an error.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// MulComp returns the componentwise product of two vectors.
func (v Vec3) MulComp(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// DivComp returns the componentwise quotient of two vectors.
// Zero components in w yield IEEE infinities or NaN, not an error.
func (v Vec3) DivComp(w Vec3) Vec3 {
	return Vec3{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs returns the vector with each component replaced by its absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product of two vectors.
// The result is the zero vector for parallel or anti-parallel inputs.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector yields NaN components; callers that cannot
// tolerate NaN propagation must guard against zero-length input themselves.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec3) DistanceSq(w Vec3) float64 {
	d := v.Sub(w)
	return d.Dot(d)
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w. t is not clamped: values outside [0,1]
// extrapolate beyond the endpoints.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Reflect returns the vector reflected off the surface with the given
// normal: v - 2*Dot(v,n)*n. The normal is assumed to be unit length and is
// not verified.
func (v Vec3) Reflect(n Vec3) Vec3 {
	d := 2 * v.Dot(n)
	return Vec3{X: v.X - d*n.X, Y: v.Y - d*n.Y, Z: v.Z - d*n.Z}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y), Z: math.Min(v.Z, w.Z)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y), Z: math.Max(v.Z, w.Z)}
}

// Clamp returns the vector clamped componentwise to [lo, hi].
// Each component is clamped to hi first and then to lo, so when
// lo > hi for a component the result is lo (the same priority order as
// HLSL-style shader clamps).
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return v.Min(hi).Max(lo)
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
// Exact comparison is the == operator.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// Vec2 drops the z component.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec4 extends the vector to 4D with the given w component.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// CopyTo copies the components into dst in X, Y, Z order.
// It returns ErrNilDest or ErrDestTooSmall on argument-shape violations.
func (v Vec3) CopyTo(dst []float64) error {
	return v.CopyToAt(dst, 0)
}

// CopyToAt copies the components into dst starting at index i.
// It returns ErrNilDest when dst is nil, ErrIndexOutOfRange when i is not a
// valid position in dst, and ErrDestTooSmall when fewer than 3 slots remain
// at i.
func (v Vec3) CopyToAt(dst []float64, i int) error {
	if dst == nil {
		return ErrNilDest
	}
	if i < 0 || i >= len(dst) {
		return fmt.Errorf("%w: index %d with destination length %d", ErrIndexOutOfRange, i, len(dst))
	}
	if len(dst)-i < 3 {
		return fmt.Errorf("%w: need 3 floats at index %d, have %d", ErrDestTooSmall, i, len(dst)-i)
	}
	dst[i] = v.X
	dst[i+1] = v.Y
	dst[i+2] = v.Z
	return nil
}
