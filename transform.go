package vmath

// Quaternion-vector transforms in closed form.
//
// Rotating v by a unit quaternion q is the conjugation q·(v,0)·q⁻¹. The
// methods below expand that product into nine shared terms instead of
// performing two quaternion multiplications, which halves the work and
// matches the rotation matrix Mat4FromQuat term for term.

// TransformVec3 rotates v by the quaternion. q is assumed to be unit
// length and is not verified; normalize non-unit quaternions first.
func (q Quat) TransformVec3(v Vec3) Vec3 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	wx2 := q.W * x2
	wy2 := q.W * y2
	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	xz2 := q.X * z2
	yy2 := q.Y * y2
	yz2 := q.Y * z2
	zz2 := q.Z * z2

	return Vec3{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		Z: v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

// TransformVec2 rotates v by the quaternion, treating it as (x, y, 0) and
// dropping the rotated z. Unless the rotation axis is the Z axis, part of
// the vector leaves the plane and the result shortens accordingly.
func (q Quat) TransformVec2(v Vec2) Vec2 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	yy2 := q.Y * y2
	zz2 := q.Z * z2

	return Vec2{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2),
	}
}

// TransformVec4 rotates the xyz part of v by the quaternion and passes the
// w component through unchanged.
func (q Quat) TransformVec4(v Vec4) Vec4 {
	r := q.TransformVec3(Vec3{X: v.X, Y: v.Y, Z: v.Z})
	return Vec4{X: r.X, Y: r.Y, Z: r.Z, W: v.W}
}

// Mat4 returns the rotation matrix equivalent to the quaternion.
// Mat4FromQuat is the same conversion as a constructor.
func (q Quat) Mat4() Mat4 {
	return Mat4FromQuat(q)
}
