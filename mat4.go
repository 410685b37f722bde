package vmath

import (
	"fmt"
	"math"
)

// Mat4 is a row-major 4x4 transform matrix. MRC names row R, column C.
//
// Vectors multiply on the left as rows: v' = v·M, so the translation lives
// in the fourth row (M41, M42, M43) and composing "first a, then b" is the
// product a.Mul(b).
type Mat4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Mat4FromQuat builds the rotation matrix for a unit quaternion.
// Row vectors multiplied by the result rotate exactly like TransformVec3
// with the same quaternion.
func Mat4FromQuat(q Quat) Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Mat4{
		M11: 1 - 2*(yy+zz),
		M12: 2 * (xy + wz),
		M13: 2 * (xz - wy),
		M21: 2 * (xy - wz),
		M22: 1 - 2*(xx+zz),
		M23: 2 * (yz + wx),
		M31: 2 * (xz + wy),
		M32: 2 * (yz - wx),
		M33: 1 - 2*(xx+yy),
		M44: 1,
	}
}

// Mat4FromAxisAngle builds the rotation matrix for angle radians about a
// unit axis.
func Mat4FromAxisAngle(axis Vec3, angle float64) Mat4 {
	return Mat4FromQuat(QuatFromAxisAngle(axis, angle))
}

// Mat4RotationX builds the matrix rotating by angle radians about the
// X axis.
func Mat4RotationX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		M11: 1,
		M22: cos, M23: sin,
		M32: -sin, M33: cos,
		M44: 1,
	}
}

// Mat4RotationY builds the matrix rotating by angle radians about the
// Y axis.
func Mat4RotationY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		M11: cos, M13: -sin,
		M22: 1,
		M31: sin, M33: cos,
		M44: 1,
	}
}

// Mat4RotationZ builds the matrix rotating by angle radians about the
// Z axis.
func Mat4RotationZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
		M33: 1,
		M44: 1,
	}
}

// Mat4FromTranslation builds a matrix that translates points by t.
func Mat4FromTranslation(t Vec3) Mat4 {
	m := Mat4Identity()
	m.M41 = t.X
	m.M42 = t.Y
	m.M43 = t.Z
	return m
}

// Mat4FromScale builds a matrix that scales each axis independently.
func Mat4FromScale(s Vec3) Mat4 {
	return Mat4{
		M11: s.X,
		M22: s.Y,
		M33: s.Z,
		M44: 1,
	}
}

// Mul returns the matrix product m·n. With row vectors, m.Mul(n) transforms
// by m first and n second.
func (m Mat4) Mul(n Mat4) Mat4 {
	return Mat4{
		M11: m.M11*n.M11 + m.M12*n.M21 + m.M13*n.M31 + m.M14*n.M41,
		M12: m.M11*n.M12 + m.M12*n.M22 + m.M13*n.M32 + m.M14*n.M42,
		M13: m.M11*n.M13 + m.M12*n.M23 + m.M13*n.M33 + m.M14*n.M43,
		M14: m.M11*n.M14 + m.M12*n.M24 + m.M13*n.M34 + m.M14*n.M44,

		M21: m.M21*n.M11 + m.M22*n.M21 + m.M23*n.M31 + m.M24*n.M41,
		M22: m.M21*n.M12 + m.M22*n.M22 + m.M23*n.M32 + m.M24*n.M42,
		M23: m.M21*n.M13 + m.M22*n.M23 + m.M23*n.M33 + m.M24*n.M43,
		M24: m.M21*n.M14 + m.M22*n.M24 + m.M23*n.M34 + m.M24*n.M44,

		M31: m.M31*n.M11 + m.M32*n.M21 + m.M33*n.M31 + m.M34*n.M41,
		M32: m.M31*n.M12 + m.M32*n.M22 + m.M33*n.M32 + m.M34*n.M42,
		M33: m.M31*n.M13 + m.M32*n.M23 + m.M33*n.M33 + m.M34*n.M43,
		M34: m.M31*n.M14 + m.M32*n.M24 + m.M33*n.M34 + m.M34*n.M44,

		M41: m.M41*n.M11 + m.M42*n.M21 + m.M43*n.M31 + m.M44*n.M41,
		M42: m.M41*n.M12 + m.M42*n.M22 + m.M43*n.M32 + m.M44*n.M42,
		M43: m.M41*n.M13 + m.M42*n.M23 + m.M43*n.M33 + m.M44*n.M43,
		M44: m.M41*n.M14 + m.M42*n.M24 + m.M43*n.M34 + m.M44*n.M44,
	}
}

// Transpose returns the matrix flipped across its diagonal.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		M11: m.M11, M12: m.M21, M13: m.M31, M14: m.M41,
		M21: m.M12, M22: m.M22, M23: m.M32, M24: m.M42,
		M31: m.M13, M32: m.M23, M33: m.M33, M34: m.M43,
		M41: m.M14, M42: m.M24, M43: m.M34, M44: m.M44,
	}
}

// Translation returns the translation stored in the fourth row.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m.M41, Y: m.M42, Z: m.M43}
}

// TransformPoint transforms v as a point: the row vector (v, 1) times m,
// so the translation row applies. The projective column M14, M24, M34,
// M44 is ignored; use TransformVec4 for full projective transforms.
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformVector transforms v as a direction: the row vector (v, 0)
// times m, so the translation row does not apply.
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformVec2 transforms a 2D point through the matrix's x and y rows
// plus translation, treating z as zero.
func (m Mat4) TransformVec2(v Vec2) Vec2 {
	return Vec2{
		X: v.X*m.M11 + v.Y*m.M21 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// TransformVec4 returns the full product of the row vector v and m.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		W: v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// IsIdentity returns true if the matrix is exactly the identity.
// No epsilon is applied.
func (m Mat4) IsIdentity() bool {
	return m == Mat4Identity()
}

// Approx returns true if two matrices are elementwise equal within epsilon.
func (m Mat4) Approx(n Mat4, epsilon float64) bool {
	return math.Abs(m.M11-n.M11) < epsilon && math.Abs(m.M12-n.M12) < epsilon &&
		math.Abs(m.M13-n.M13) < epsilon && math.Abs(m.M14-n.M14) < epsilon &&
		math.Abs(m.M21-n.M21) < epsilon && math.Abs(m.M22-n.M22) < epsilon &&
		math.Abs(m.M23-n.M23) < epsilon && math.Abs(m.M24-n.M24) < epsilon &&
		math.Abs(m.M31-n.M31) < epsilon && math.Abs(m.M32-n.M32) < epsilon &&
		math.Abs(m.M33-n.M33) < epsilon && math.Abs(m.M34-n.M34) < epsilon &&
		math.Abs(m.M41-n.M41) < epsilon && math.Abs(m.M42-n.M42) < epsilon &&
		math.Abs(m.M43-n.M43) < epsilon && math.Abs(m.M44-n.M44) < epsilon
}

// CopyTo writes the sixteen elements into dst in row-major order.
// It returns ErrNilDest for a nil slice and ErrDestTooSmall when dst holds
// fewer than 16 elements.
func (m Mat4) CopyTo(dst []float64) error {
	if dst == nil {
		return ErrNilDest
	}
	if len(dst) < 16 {
		return fmt.Errorf("%w: need 16 floats, have %d", ErrDestTooSmall, len(dst))
	}
	dst[0], dst[1], dst[2], dst[3] = m.M11, m.M12, m.M13, m.M14
	dst[4], dst[5], dst[6], dst[7] = m.M21, m.M22, m.M23, m.M24
	dst[8], dst[9], dst[10], dst[11] = m.M31, m.M32, m.M33, m.M34
	dst[12], dst[13], dst[14], dst[15] = m.M41, m.M42, m.M43, m.M44
	return nil
}
