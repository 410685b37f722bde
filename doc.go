// Package vmath provides double-precision vector algebra and quaternion
// rotations for 2D drawing code.
//
// # Overview
//
// vmath is a Pure Go math library built around float64 value types: Vec2,
// Vec3 and Vec4 vectors, the Quat rotation quaternion, and the row-major
// Mat4 transform matrix. Every operation returns a new value; nothing is
// mutated in place, so values can be shared freely across goroutines.
//
// # Quick Start
//
//	import "github.com/quartzgl/vmath"
//
//	// Rotate a point 90 degrees about the Z axis.
//	q := vmath.QuatFromAxisAngle(vmath.UnitZ3(), math.Pi/2)
//	p := q.TransformVec2(vmath.V2(1, 0)) // (0, 1)
//
//	// Interpolate smoothly between two orientations.
//	mid := a.Slerp(b, 0.5)
//
// # Error Policy
//
// Degenerate numeric input is not an error: normalizing a zero vector or
// inverting a zero quaternion yields NaN components, which propagate through
// subsequent arithmetic the way IEEE 754 intends. The only operations that
// return errors are the buffer copies (CopyTo, CopyToAt), whose sentinel
// errors are declared in errors.go.
//
// # Conventions
//
//   - Angles in radians throughout.
//   - Right-handed 3D axes; 2D rotation about Z is counter-clockwise.
//   - Quat follows w = cos(θ/2), (x, y, z) = axis·sin(θ/2); q and -q are
//     the same rotation.
//   - Mat4 is row-major with row-vector multiplication (v' = v·M), so the
//     translation occupies the fourth row.
//
// # Sub-packages
//
//   - geom: Point, Size and Rect value types for drawing geometry.
//   - surface: a transform-stack wrapper that feeds final coordinates to a
//     pluggable Driver.
//   - backend/ebitengine: a surface.Driver drawing through Ebitengine.
//   - backend/recording: a surface.Driver capturing primitives as commands
//     for tests and diagnostics.
//
// # Interop
//
// Conversions are provided for golang.org/x/image/math/f64 and math/fixed,
// and for gonum's spatial/r2, spatial/r3 and num/quat types.
package vmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
