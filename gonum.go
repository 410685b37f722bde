package vmath

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the gonum spatial and quaternion-number types,
// so results can flow into gonum's statistics, fitting, and spatial index
// packages without hand-copied fields.

// R2 returns the vector as a gonum r2.Vec.
func (v Vec2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Vec2FromR2 converts a gonum r2.Vec.
func Vec2FromR2(a r2.Vec) Vec2 {
	return Vec2{X: a.X, Y: a.Y}
}

// R3 returns the vector as a gonum r3.Vec.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec3FromR3 converts a gonum r3.Vec.
func Vec3FromR3(a r3.Vec) Vec3 {
	return Vec3{X: a.X, Y: a.Y, Z: a.Z}
}

// Number returns the quaternion as a gonum quat.Number. W maps to the real
// part and X, Y, Z to the i, j, k imaginary parts.
func (q Quat) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// QuatFromNumber converts a gonum quat.Number.
func QuatFromNumber(n quat.Number) Quat {
	return Quat{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}
