package vmath

import "math"

// Quat represents a rotation as a unit quaternion with double-precision
// components: W = cos(θ/2) and (X, Y, Z) = axis·sin(θ/2) for a rotation of
// θ radians about a unit axis.
//
// Unit length is a convention, not an enforced invariant: operations such as
// Normalize and Inverse exist precisely because callers may hold non-unit
// quaternions. Note that q and q.Neg() represent the same rotation; no
// canonical sign is imposed, and round-trips through other representations
// may return either sign.
type Quat struct {
	X, Y, Z, W float64
}

// Q is a convenience function to create a Quat from raw components.
func Q(x, y, z, w float64) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle creates a quaternion rotating by angle radians about the
// given axis. The axis is assumed to be unit length and is not verified.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	sin, cos := math.Sincos(angle * 0.5)
	return Quat{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}
}

// QuatFromYawPitchRoll creates a quaternion from yaw (about Y), pitch
// (about X), and roll (about Z), all in radians. The rotations compose in
// the fixed intrinsic order roll, then pitch, then yaw; swapping that order
// produces a different rotation.
func QuatFromYawPitchRoll(yaw, pitch, roll float64) Quat {
	sr, cr := math.Sincos(roll * 0.5)
	sp, cp := math.Sincos(pitch * 0.5)
	sy, cy := math.Sincos(yaw * 0.5)

	return Quat{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuatFromMat4 extracts the rotation from a row-major rotation matrix.
//
// It uses the trace-based branch selection: when the trace M11+M22+M33 is
// positive the W component is solved directly by square root; otherwise the
// branch belonging to the largest diagonal element solves that axis
// component first and derives the rest by division. Solving the largest
// component first keeps the square root away from small or negative
// arguments where the direct form is unstable.
//
// The result has the same rotation as m up to quaternion sign: callers
// comparing against a known quaternion must accept q or q.Neg().
func QuatFromMat4(m Mat4) Quat {
	trace := m.M11 + m.M22 + m.M33

	switch {
	case trace > 0:
		s := math.Sqrt(trace + 1)
		w := s * 0.5
		s = 0.5 / s
		return Quat{
			X: (m.M23 - m.M32) * s,
			Y: (m.M31 - m.M13) * s,
			Z: (m.M12 - m.M21) * s,
			W: w,
		}
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := math.Sqrt(1 + m.M11 - m.M22 - m.M33)
		invS := 0.5 / s
		return Quat{
			X: 0.5 * s,
			Y: (m.M12 + m.M21) * invS,
			Z: (m.M13 + m.M31) * invS,
			W: (m.M23 - m.M32) * invS,
		}
	case m.M22 > m.M33:
		s := math.Sqrt(1 + m.M22 - m.M11 - m.M33)
		invS := 0.5 / s
		return Quat{
			X: (m.M21 + m.M12) * invS,
			Y: 0.5 * s,
			Z: (m.M32 + m.M23) * invS,
			W: (m.M31 - m.M13) * invS,
		}
	default:
		s := math.Sqrt(1 + m.M33 - m.M11 - m.M22)
		invS := 0.5 / s
		return Quat{
			X: (m.M31 + m.M13) * invS,
			Y: (m.M32 + m.M23) * invS,
			Z: 0.5 * s,
			W: (m.M12 - m.M21) * invS,
		}
	}
}

// IsIdentity returns true if the quaternion is exactly the identity
// (0, 0, 0, 1). No epsilon is applied.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// Add returns the componentwise sum of two quaternions.
func (q Quat) Add(r Quat) Quat {
	return Quat{X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z, W: q.W + r.W}
}

// Sub returns the componentwise difference of two quaternions.
func (q Quat) Sub(r Quat) Quat {
	return Quat{X: q.X - r.X, Y: q.Y - r.Y, Z: q.Z - r.Z, W: q.W - r.W}
}

// Neg returns the componentwise negation. q and q.Neg() represent the same
// rotation.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Scale returns the quaternion with every component multiplied by s.
// The result is no longer a unit rotation unless renormalized.
func (q Quat) Scale(s float64) Quat {
	return Quat{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Dot returns the dot product of two quaternions. A negative dot product
// means the operands lie in opposite hemispheres: they rotate to the same
// orientations the long way around from each other.
func (q Quat) Dot(r Quat) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Length returns the quaternion's magnitude over all four components.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// LengthSq returns the squared magnitude. LengthSq(q) == Dot(q, q).
func (q Quat) LengthSq() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize returns the quaternion scaled to unit length.
// Normalizing the zero quaternion yields NaN components; callers that cannot
// tolerate NaN propagation must guard against zero-length input themselves.
func (q Quat) Normalize() Quat {
	length := q.Length()
	return Quat{X: q.X / length, Y: q.Y / length, Z: q.Z / length, W: q.W / length}
}

// Conj returns the conjugate (-x, -y, -z, w). For a unit quaternion the
// conjugate is also the inverse.
func (q Quat) Conj() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse Conj(q)/LengthSq(q), which is
// correct for non-unit quaternions too. The zero quaternion has no inverse
// and yields NaN components.
func (q Quat) Inverse() Quat {
	invLenSq := 1 / q.LengthSq()
	return Quat{
		X: -q.X * invLenSq,
		Y: -q.Y * invLenSq,
		Z: -q.Z * invLenSq,
		W: q.W * invLenSq,
	}
}

// Mul returns the Hamilton product q*r.
//
// As a rotation, the product applies r first and then q: transforming a
// vector by q.Mul(r) equals transforming it by r and then transforming the
// result by q. Use Concat for left-to-right reading order.
func (q Quat) Mul(r Quat) Quat {
	// (q.W*r.V + r.W*q.V + q.V×r.V, q.W*r.W - q.V·r.V)
	cx := q.Y*r.Z - q.Z*r.Y
	cy := q.Z*r.X - q.X*r.Z
	cz := q.X*r.Y - q.Y*r.X
	dot := q.X*r.X + q.Y*r.Y + q.Z*r.Z

	return Quat{
		X: q.X*r.W + r.X*q.W + cx,
		Y: q.Y*r.W + r.Y*q.W + cy,
		Z: q.Z*r.W + r.Z*q.W + cz,
		W: q.W*r.W - dot,
	}
}

// Concat returns the rotation that applies q (the receiver) first and then
// r. It is the Hamilton product with the operands swapped: r.Mul(q).
// Transforming a vector by q.Concat(r) equals transforming it by q and then
// transforming the result by r.
func (q Quat) Concat(r Quat) Quat {
	return r.Mul(q)
}

// Div returns q multiplied by the inverse of r. The inverse is folded into
// the product rather than computed separately, but the result matches
// q.Mul(r.Inverse()) to floating-point accuracy. Dividing by the zero
// quaternion yields NaN components.
func (q Quat) Div(r Quat) Quat {
	invLenSq := 1 / r.LengthSq()
	rx := -r.X * invLenSq
	ry := -r.Y * invLenSq
	rz := -r.Z * invLenSq
	rw := r.W * invLenSq

	cx := q.Y*rz - q.Z*ry
	cy := q.Z*rx - q.X*rz
	cz := q.X*ry - q.Y*rx
	dot := q.X*rx + q.Y*ry + q.Z*rz

	return Quat{
		X: q.X*rw + rx*q.W + cx,
		Y: q.Y*rw + ry*q.W + cy,
		Z: q.Z*rw + rz*q.W + cz,
		W: q.W*rw - dot,
	}
}

// slerpEpsilon is the parallelism threshold below which Slerp falls back to
// linear coefficient blending: past this point sin(omega) is too close to
// zero to divide by safely.
const slerpEpsilon = 1e-6

// Slerp performs spherical linear interpolation from q (t=0) to r (t=1)
// along the shortest great-circle arc.
//
// When the operands lie in opposite hemispheres (negative dot product), r's
// contribution is negated so the interpolation takes the short path; q and
// q.Neg() are the same rotation, so this changes only the route, not the
// endpoints. Nearly parallel operands blend linearly to avoid dividing by a
// vanishing sin(omega). The result is not renormalized: for unit inputs it
// already has length ≈ 1.
func (q Quat) Slerp(r Quat, t float64) Quat {
	cosOmega := q.Dot(r)

	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}

	var s1, s2 float64
	if cosOmega > 1-slerpEpsilon {
		// Too parallel for the spherical form; blend coefficients linearly.
		s1 = 1 - t
		s2 = t
		if flip {
			s2 = -t
		}
	} else {
		omega := math.Acos(cosOmega)
		invSinOmega := 1 / math.Sin(omega)
		s1 = math.Sin((1-t)*omega) * invSinOmega
		s2 = math.Sin(t*omega) * invSinOmega
		if flip {
			s2 = -s2
		}
	}

	return Quat{
		X: s1*q.X + s2*r.X,
		Y: s1*q.Y + s2*r.Y,
		Z: s1*q.Z + s2*r.Z,
		W: s1*q.W + s2*r.W,
	}
}

// Lerp performs normalized linear interpolation from q (t=0) to r (t=1).
//
// Like Slerp it negates r's contribution when the dot product is negative so
// the blend takes the shortest path. Unlike Slerp the straight-line blend
// leaves the unit sphere, so the result is always renormalized. Lerp is
// cheaper than Slerp but sweeps at a non-constant angular velocity.
func (q Quat) Lerp(r Quat, t float64) Quat {
	t1 := 1 - t

	var out Quat
	if q.Dot(r) >= 0 {
		out = Quat{
			X: t1*q.X + t*r.X,
			Y: t1*q.Y + t*r.Y,
			Z: t1*q.Z + t*r.Z,
			W: t1*q.W + t*r.W,
		}
	} else {
		out = Quat{
			X: t1*q.X - t*r.X,
			Y: t1*q.Y - t*r.Y,
			Z: t1*q.Z - t*r.Z,
			W: t1*q.W - t*r.W,
		}
	}
	return out.Normalize()
}

// AxisAngle extracts the rotation axis and angle in radians.
// The identity rotation has no defined axis and yields NaN axis components;
// for a quaternion with negative w, the returned angle lands in (π, 2π].
func (q Quat) AxisAngle() (Vec3, float64) {
	s := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	axis := Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}
	angle := 2 * math.Acos(q.W)
	return axis, angle
}

// Approx returns true if two quaternions are componentwise equal within
// epsilon. Exact comparison is the == operator. Note q and q.Neg() are the
// same rotation but are not Approx-equal; use ApproxRotation to compare
// rotations regardless of sign.
func (q Quat) Approx(r Quat, epsilon float64) bool {
	return math.Abs(q.X-r.X) < epsilon &&
		math.Abs(q.Y-r.Y) < epsilon &&
		math.Abs(q.Z-r.Z) < epsilon &&
		math.Abs(q.W-r.W) < epsilon
}

// ApproxRotation returns true if two quaternions represent approximately the
// same rotation, accepting either sign of r.
func (q Quat) ApproxRotation(r Quat, epsilon float64) bool {
	return q.Approx(r, epsilon) || q.Approx(r.Neg(), epsilon)
}

// Vec4 reinterprets the quaternion as a plain 4D vector.
func (q Quat) Vec4() Vec4 {
	return Vec4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuatFromVec4 reinterprets a 4D vector as a quaternion.
func QuatFromVec4(v Vec4) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}
