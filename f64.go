package vmath

import "golang.org/x/image/math/f64"

// Conversions to and from the golang.org/x/image/math/f64 array types, the
// exchange format used by image transformers and raster pipelines. Both
// sides are row-major, so the matrix conversions are pure copies.

// F64 returns the vector as an f64.Vec2.
func (v Vec2) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// Vec2FromF64 converts an f64.Vec2.
func Vec2FromF64(a f64.Vec2) Vec2 {
	return Vec2{X: a[0], Y: a[1]}
}

// F64 returns the vector as an f64.Vec3.
func (v Vec3) F64() f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromF64 converts an f64.Vec3.
func Vec3FromF64(a f64.Vec3) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// F64 returns the vector as an f64.Vec4.
func (v Vec4) F64() f64.Vec4 {
	return f64.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vec4FromF64 converts an f64.Vec4.
func Vec4FromF64(a f64.Vec4) Vec4 {
	return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// F64 returns the matrix as a row-major f64.Mat4.
func (m Mat4) F64() f64.Mat4 {
	return f64.Mat4{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// Mat4FromF64 converts a row-major f64.Mat4.
func Mat4FromF64(a f64.Mat4) Mat4 {
	return Mat4{
		M11: a[0], M12: a[1], M13: a[2], M14: a[3],
		M21: a[4], M22: a[5], M23: a[6], M24: a[7],
		M31: a[8], M32: a[9], M33: a[10], M34: a[11],
		M41: a[12], M42: a[13], M43: a[14], M44: a[15],
	}
}
