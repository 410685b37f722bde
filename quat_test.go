package vmath

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("QuatIdentity() = %v, want (0, 0, 0, 1)", q)
	}
	if !q.IsIdentity() {
		t.Error("QuatIdentity().IsIdentity() = false, want true")
	}
}

func TestQuat_IsIdentityExact(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		want bool
	}{
		{"identity", Q(0, 0, 0, 1), true},
		{"negated identity", Q(0, 0, 0, -1), false},
		{"tiny x", Q(1e-300, 0, 0, 1), false},
		{"w off by ulp", Q(0, 0, 0, 1 - 1e-16), false},
		{"zero", Q(0, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// IsIdentity is an exact comparison, not an epsilon test.
			if got := tt.q.IsIdentity(); got != tt.want {
				t.Errorf("%v.IsIdentity() = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	tests := []struct {
		name   string
		axis   Vec3
		angle  float64
		expect Quat
	}{
		{"zero angle", UnitZ3(), 0, Q(0, 0, 0, 1)},
		{"90 about z", UnitZ3(), math.Pi / 2, Q(0, 0, math.Sqrt2 / 2, math.Sqrt2 / 2)},
		{"180 about z", UnitZ3(), math.Pi, Q(0, 0, 1, 0)},
		{"180 about x", UnitX3(), math.Pi, Q(1, 0, 0, 0)},
		{"90 about y", UnitY3(), math.Pi / 2, Q(0, math.Sqrt2 / 2, 0, math.Sqrt2 / 2)},
		{"negative angle", UnitZ3(), -math.Pi / 2, Q(0, 0, -math.Sqrt2 / 2, math.Sqrt2 / 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuatFromAxisAngle(tt.axis, tt.angle)
			if !result.Approx(tt.expect, 1e-12) {
				t.Errorf("QuatFromAxisAngle(%v, %v) = %v, want %v", tt.axis, tt.angle, result, tt.expect)
			}
			if math.Abs(result.Length()-1) > 1e-12 {
				t.Errorf("QuatFromAxisAngle length = %v, want 1", result.Length())
			}
		})
	}
}

func TestQuat_AxisAngleRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
	}{
		{"quarter about z", UnitZ3(), math.Pi / 2},
		{"tilted axis", V3(1, 2, 3).Normalize(), 1.0},
		{"diagonal", V3(1, 1, 1).Normalize(), 2 * math.Pi / 3},
		{"small angle", UnitX3(), 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			axis, angle := q.AxisAngle()
			if !axis.Approx(tt.axis, 1e-9) {
				t.Errorf("AxisAngle() axis = %v, want %v", axis, tt.axis)
			}
			if math.Abs(angle-tt.angle) > 1e-9 {
				t.Errorf("AxisAngle() angle = %v, want %v", angle, tt.angle)
			}
		})
	}
}

func TestQuatFromYawPitchRoll(t *testing.T) {
	// The combined form must equal rotating about Z by roll, then about X
	// by pitch, then about Y by yaw.
	tests := []struct {
		name             string
		yaw, pitch, roll float64
	}{
		{"yaw only", 1.2, 0, 0},
		{"pitch only", 0, 0.7, 0},
		{"roll only", 0, 0, -0.4},
		{"combined", 0.3, -0.8, 1.1},
		{"gimbal pitch", 0.5, math.Pi / 2, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromYawPitchRoll(tt.yaw, tt.pitch, tt.roll)

			composed := QuatFromAxisAngle(UnitY3(), tt.yaw).
				Mul(QuatFromAxisAngle(UnitX3(), tt.pitch)).
				Mul(QuatFromAxisAngle(UnitZ3(), tt.roll))
			if !got.Approx(composed, 1e-12) {
				t.Errorf("QuatFromYawPitchRoll(%v, %v, %v) = %v, want %v",
					tt.yaw, tt.pitch, tt.roll, got, composed)
			}
		})
	}
}

func TestQuatFromYawPitchRoll_OrderMatters(t *testing.T) {
	// Composing in the reverse order (yaw first) is a different rotation;
	// the fixed roll-pitch-yaw order is part of the contract.
	yaw, pitch, roll := 0.3, -0.8, 1.1
	got := QuatFromYawPitchRoll(yaw, pitch, roll)
	reversed := QuatFromAxisAngle(UnitZ3(), roll).
		Mul(QuatFromAxisAngle(UnitX3(), pitch)).
		Mul(QuatFromAxisAngle(UnitY3(), yaw))
	if got.ApproxRotation(reversed, 1e-9) {
		t.Errorf("reversed composition unexpectedly equals QuatFromYawPitchRoll: %v", got)
	}
}

func TestQuat_DotLength(t *testing.T) {
	q := Q(1, 2, 3, 4)
	r := Q(5, 6, 7, 8)

	if got := q.Dot(r); math.Abs(got-70) > 1e-12 {
		t.Errorf("%v.Dot(%v) = %v, want 70", q, r, got)
	}
	// Dot(q, q) is exactly LengthSq(q).
	if q.Dot(q) != q.LengthSq() {
		t.Errorf("Dot(q, q) = %v, LengthSq = %v, want equal", q.Dot(q), q.LengthSq())
	}
	if got := q.Length(); math.Abs(got-math.Sqrt(30)) > 1e-12 {
		t.Errorf("%v.Length() = %v, want sqrt(30)", q, got)
	}
}

func TestQuat_Normalize(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
	}{
		{"already unit", QuatFromAxisAngle(UnitZ3(), 1)},
		{"double length", Q(0, 0, 0, 2)},
		{"arbitrary", Q(1, 2, 3, 4)},
		{"tiny", Q(1e-8, 0, 0, 1e-8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.q.Normalize()
			if math.Abs(n.Length()-1) > 1e-12 {
				t.Errorf("%v.Normalize().Length() = %v, want 1", tt.q, n.Length())
			}
		})
	}

	nan := Quat{}.Normalize()
	if !math.IsNaN(nan.X) || !math.IsNaN(nan.W) {
		t.Errorf("zero Normalize() = %v, want NaN components", nan)
	}
}

func TestQuat_ConjInverse(t *testing.T) {
	q := Q(1, 2, 3, 4)

	if got, want := q.Conj(), Q(-1, -2, -3, 4); got != want {
		t.Errorf("%v.Conj() = %v, want %v", q, got, want)
	}

	// For a unit quaternion the inverse equals the conjugate.
	u := QuatFromAxisAngle(V3(1, 2, 3).Normalize(), 0.9)
	if !u.Inverse().Approx(u.Conj(), 1e-12) {
		t.Errorf("unit Inverse() = %v, want Conj() = %v", u.Inverse(), u.Conj())
	}

	// For any non-degenerate quaternion, q * Inverse(q) is the identity.
	for _, v := range []Quat{u, q, Q(0.5, 0, 0, 0.1)} {
		got := v.Mul(v.Inverse())
		if !got.Approx(QuatIdentity(), 1e-12) {
			t.Errorf("%v.Mul(Inverse()) = %v, want identity", v, got)
		}
	}

	// The zero quaternion has no inverse; NaN propagates.
	nan := Quat{}.Inverse()
	if !math.IsNaN(nan.W) {
		t.Errorf("zero Inverse() = %v, want NaN components", nan)
	}
}

func TestQuat_Mul(t *testing.T) {
	// Multiplying by the identity changes nothing.
	q := QuatFromAxisAngle(V3(1, 2, 3).Normalize(), 0.9)
	if got := q.Mul(QuatIdentity()); !got.Approx(q, 1e-12) {
		t.Errorf("q.Mul(identity) = %v, want %v", got, q)
	}
	if got := QuatIdentity().Mul(q); !got.Approx(q, 1e-12) {
		t.Errorf("identity.Mul(q) = %v, want %v", got, q)
	}

	// Two quarter turns about Z make a half turn.
	z90 := QuatFromAxisAngle(UnitZ3(), math.Pi/2)
	z180 := QuatFromAxisAngle(UnitZ3(), math.Pi)
	if got := z90.Mul(z90); !got.Approx(z180, 1e-12) {
		t.Errorf("z90.Mul(z90) = %v, want %v", got, z180)
	}

	// Rotations about different axes do not commute.
	x90 := QuatFromAxisAngle(UnitX3(), math.Pi/2)
	if x90.Mul(z90).ApproxRotation(z90.Mul(x90), 1e-9) {
		t.Error("x90.Mul(z90) should differ from z90.Mul(x90)")
	}

	// The product of unit quaternions stays unit length.
	p := x90.Mul(z90)
	if math.Abs(p.Length()-1) > 1e-12 {
		t.Errorf("product length = %v, want 1", p.Length())
	}
}

func TestQuat_ConcatOperandOrder(t *testing.T) {
	a := QuatFromAxisAngle(UnitX3(), 0.6)
	b := QuatFromAxisAngle(UnitZ3(), -1.3)

	// Concat applies the receiver first: a.Concat(b) == b.Mul(a).
	if got, want := a.Concat(b), b.Mul(a); !got.Approx(want, 1e-15) {
		t.Errorf("a.Concat(b) = %v, want b.Mul(a) = %v", got, want)
	}

	// The vector form of the same contract: transforming by a then by b
	// equals one transform by a.Concat(b).
	v := V3(0.3, -1.2, 2)
	twoStep := b.TransformVec3(a.TransformVec3(v))
	oneStep := a.Concat(b).TransformVec3(v)
	if !twoStep.Approx(oneStep, 1e-12) {
		t.Errorf("two-step = %v, Concat one-step = %v", twoStep, oneStep)
	}
}

func TestQuat_ScaleAddSubNeg(t *testing.T) {
	q := Q(1, -2, 3, -4)
	r := Q(0.5, 0.5, 0.5, 0.5)

	if got, want := q.Scale(2), Q(2, -4, 6, -8); got != want {
		t.Errorf("%v.Scale(2) = %v, want %v", q, got, want)
	}
	if got, want := q.Add(r), Q(1.5, -1.5, 3.5, -3.5); got != want {
		t.Errorf("%v.Add(%v) = %v, want %v", q, r, got, want)
	}
	if got, want := q.Sub(r), Q(0.5, -2.5, 2.5, -4.5); got != want {
		t.Errorf("%v.Sub(%v) = %v, want %v", q, r, got, want)
	}
	if got, want := q.Neg(), Q(-1, 2, -3, 4); got != want {
		t.Errorf("%v.Neg() = %v, want %v", q, got, want)
	}

	// Scaling leaves the rotation axis but not the unit length.
	u := QuatFromAxisAngle(UnitZ3(), 1).Scale(3)
	if math.Abs(u.Length()-3) > 1e-12 {
		t.Errorf("scaled length = %v, want 3", u.Length())
	}
}

func TestQuat_Div(t *testing.T) {
	tests := []struct {
		name string
		q, r Quat
	}{
		{"unit by unit", QuatFromAxisAngle(UnitX3(), 0.7), QuatFromAxisAngle(UnitZ3(), -0.4)},
		{"non-unit operands", Q(1, 2, 3, 4), Q(-2, 1, 0.5, 3)},
		{"self", Q(1, 2, 3, 4), Q(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Div is the inlined form of multiplying by the inverse.
			got := tt.q.Div(tt.r)
			want := tt.q.Mul(tt.r.Inverse())
			if !got.Approx(want, 1e-12) {
				t.Errorf("%v.Div(%v) = %v, want %v", tt.q, tt.r, got, want)
			}
		})
	}

	// q / q is the identity.
	q := Q(1, 2, 3, 4)
	if got := q.Div(q); !got.Approx(QuatIdentity(), 1e-12) {
		t.Errorf("q.Div(q) = %v, want identity", got)
	}

	// Dividing by the zero quaternion propagates NaN.
	nan := q.Div(Quat{})
	if !math.IsNaN(nan.W) {
		t.Errorf("q.Div(zero) = %v, want NaN components", nan)
	}
}

func TestQuatFromMat4_Branches(t *testing.T) {
	// Each case lands in a distinct branch of the trace decision table.
	tests := []struct {
		name   string
		m      Mat4
		expect Quat
	}{
		// trace > 0: identity and small rotations.
		{"identity", Mat4Identity(), QuatIdentity()},
		{"trace branch 90 about z", Mat4RotationZ(math.Pi / 2), QuatFromAxisAngle(UnitZ3(), math.Pi / 2)},
		// trace = -1 for 180 degree turns; the largest diagonal picks the branch.
		{"m11 branch 180 about x", Mat4RotationX(math.Pi), Q(1, 0, 0, 0)},
		{"m22 branch 180 about y", Mat4RotationY(math.Pi), Q(0, 1, 0, 0)},
		{"m33 branch 180 about z", Mat4RotationZ(math.Pi), Q(0, 0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromMat4(tt.m)
			// Sign ambiguity is inherent: q and -q describe the same matrix.
			if !got.ApproxRotation(tt.expect, 1e-12) {
				t.Errorf("QuatFromMat4() = %v, want ±%v", got, tt.expect)
			}
			if math.Abs(got.Length()-1) > 1e-12 {
				t.Errorf("QuatFromMat4() length = %v, want 1", got.Length())
			}
		})
	}
}

func TestQuat_MatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
	}{
		{"zero", UnitZ3(), 0},
		{"90 about x", UnitX3(), math.Pi / 2},
		{"90 about y", UnitY3(), math.Pi / 2},
		{"90 about z", UnitZ3(), math.Pi / 2},
		{"180 about x", UnitX3(), math.Pi},
		{"180 about y", UnitY3(), math.Pi},
		{"180 about z", UnitZ3(), math.Pi},
		{"arbitrary tilt", V3(1, 2, 3).Normalize(), 1.0},
		{"near 180 tilt", V3(-2, 1, 4).Normalize(), math.Pi - 0.01},
		{"small angle", V3(0, 1, 1).Normalize(), 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			back := QuatFromMat4(q.Mat4())
			if !back.ApproxRotation(q, 1e-9) {
				t.Errorf("round trip of %v returned %v, want ±%v", q, back, q)
			}
		})
	}
}

func TestQuat_SlerpEndpoints(t *testing.T) {
	q1 := QuatFromAxisAngle(V3(1, 2, 3).Normalize(), 0.9)
	q2 := QuatFromAxisAngle(V3(-1, 0.5, 2).Normalize(), -1.7)

	if got := q1.Slerp(q2, 0); !got.Approx(q1, 1e-12) {
		t.Errorf("Slerp(q1, q2, 0) = %v, want %v", got, q1)
	}
	if got := q1.Slerp(q2, 1); !got.ApproxRotation(q2, 1e-12) {
		t.Errorf("Slerp(q1, q2, 1) = %v, want ±%v", got, q2)
	}
}

func TestQuat_SlerpMidpoint(t *testing.T) {
	// Halfway from identity to a half turn about Z is a quarter turn.
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(UnitZ3(), math.Pi)

	mid := q1.Slerp(q2, 0.5)
	want := QuatFromAxisAngle(UnitZ3(), math.Pi/2)
	if !mid.ApproxRotation(want, 1e-12) {
		t.Errorf("Slerp(identity, z180, 0.5) = %v, want ±%v", mid, want)
	}

	// The interpolant rotates (1, 0, 0) onto (0, 1, 0).
	v := mid.TransformVec3(V3(1, 0, 0))
	if !v.Approx(V3(0, 1, 0), 1e-9) {
		t.Errorf("midpoint transform = %v, want (0, 1, 0)", v)
	}
}

func TestQuat_SlerpConstantSpeed(t *testing.T) {
	// Slerp sweeps angle linearly in t: each quarter of t covers the same
	// fraction of the full rotation angle.
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(UnitY3(), 2)

	for _, tt := range []float64{0.25, 0.5, 0.75} {
		got := q1.Slerp(q2, tt)
		want := QuatFromAxisAngle(UnitY3(), 2*tt)
		if !got.ApproxRotation(want, 1e-12) {
			t.Errorf("Slerp t=%v = %v, want ±%v", tt, got, want)
		}
	}
}

func TestQuat_SlerpHemisphereFlip(t *testing.T) {
	// Interpolating toward -q must take the same short path as toward q:
	// the negative dot product triggers the flip.
	q1 := QuatFromAxisAngle(UnitZ3(), 0.2)
	q2 := QuatFromAxisAngle(UnitZ3(), 0.8)
	if q1.Dot(q2.Neg()) >= 0 {
		t.Fatal("test setup: expected opposite-hemisphere operands")
	}

	direct := q1.Slerp(q2, 0.25)
	flipped := q1.Slerp(q2.Neg(), 0.25)
	if !direct.Approx(flipped, 1e-12) {
		t.Errorf("Slerp toward -q = %v, want %v", flipped, direct)
	}
}

func TestQuat_SlerpNearParallel(t *testing.T) {
	// Operands closer than the sin(omega) threshold blend linearly instead
	// of dividing by a vanishing sine.
	q := QuatFromAxisAngle(UnitZ3(), 0.5)
	r := QuatFromAxisAngle(UnitZ3(), 0.5+1e-9)

	got := q.Slerp(r, 0.5)
	if !got.ApproxRotation(q, 1e-6) {
		t.Errorf("near-parallel Slerp = %v, want ≈%v", got, q)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.W) {
		t.Errorf("near-parallel Slerp produced NaN: %v", got)
	}

	// Identical operands reproduce the input exactly at any t.
	if got := q.Slerp(q, 0.3); !got.Approx(q, 1e-15) {
		t.Errorf("Slerp(q, q, 0.3) = %v, want %v", got, q)
	}
}

func TestQuat_SlerpStaysUnit(t *testing.T) {
	q1 := QuatFromAxisAngle(V3(1, 1, 0).Normalize(), 0.3)
	q2 := QuatFromAxisAngle(V3(0, -1, 2).Normalize(), 2.9)
	for _, tt := range []float64{0, 0.1, 0.4, 0.7, 1} {
		got := q1.Slerp(q2, tt)
		if math.Abs(got.Length()-1) > 1e-12 {
			t.Errorf("Slerp(t=%v) length = %v, want 1", tt, got.Length())
		}
	}
}

func TestQuat_Lerp(t *testing.T) {
	q1 := QuatFromAxisAngle(UnitZ3(), 0.2)
	q2 := QuatFromAxisAngle(UnitZ3(), 1.4)

	if got := q1.Lerp(q2, 0); !got.Approx(q1, 1e-12) {
		t.Errorf("Lerp(q1, q2, 0) = %v, want %v", got, q1)
	}
	if got := q1.Lerp(q2, 1); !got.Approx(q2, 1e-12) {
		t.Errorf("Lerp(q1, q2, 1) = %v, want %v", got, q2)
	}

	// The blend is renormalized: length 1 even mid-arc.
	mid := q1.Lerp(q2, 0.5)
	if math.Abs(mid.Length()-1) > 1e-12 {
		t.Errorf("Lerp midpoint length = %v, want 1", mid.Length())
	}
	// Same-axis blends land on the same rotation Slerp finds.
	if !mid.ApproxRotation(QuatFromAxisAngle(UnitZ3(), 0.8), 1e-9) {
		t.Errorf("Lerp midpoint = %v, want ≈ 0.8 rad about Z", mid)
	}
}

func TestQuat_LerpHemisphereFlip(t *testing.T) {
	// Opposite-hemisphere operands must blend against -r: compare with the
	// sign-flipped blend computed by hand.
	q := QuatFromAxisAngle(UnitZ3(), 0.3)
	r := QuatFromAxisAngle(UnitZ3(), 0.9).Neg()
	if q.Dot(r) >= 0 {
		t.Fatal("test setup: expected negative dot product")
	}

	tt := 0.25
	manual := Quat{
		X: (1-tt)*q.X - tt*r.X,
		Y: (1-tt)*q.Y - tt*r.Y,
		Z: (1-tt)*q.Z - tt*r.Z,
		W: (1-tt)*q.W - tt*r.W,
	}.Normalize()

	got := q.Lerp(r, tt)
	if !got.Approx(manual, 1e-15) {
		t.Errorf("Lerp opposite hemisphere = %v, want manual flip %v", got, manual)
	}
	// And the flip lands on the short path: same rotation as blending
	// toward r.Neg() directly.
	if !got.ApproxRotation(q.Lerp(r.Neg(), tt), 1e-12) {
		t.Errorf("Lerp flip should match blending toward -r")
	}
}

func TestQuat_ApproxRotation(t *testing.T) {
	q := QuatFromAxisAngle(V3(2, -1, 1).Normalize(), 1.1)

	if !q.ApproxRotation(q.Neg(), 1e-15) {
		t.Error("q and -q are the same rotation; ApproxRotation should accept")
	}
	if q.Approx(q.Neg(), 1e-15) {
		t.Error("Approx is componentwise; q and -q must differ")
	}
	r := QuatFromAxisAngle(V3(2, -1, 1).Normalize(), 1.2)
	if q.ApproxRotation(r, 1e-9) {
		t.Error("distinct rotations should not be ApproxRotation-equal")
	}
}

func TestQuat_Vec4RoundTrip(t *testing.T) {
	q := Q(1, 2, 3, 4)
	if got := QuatFromVec4(q.Vec4()); got != q {
		t.Errorf("QuatFromVec4(q.Vec4()) = %v, want %v", got, q)
	}
}
