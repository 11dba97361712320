package rotations

import (
	"math"

	"github.com/golang/geo/r3"
)

// AxisAngle represents a rotation of Angle radians around Axis. By
// convention the axis has unit length and the angle lies in [0, π), but no
// function in this package assumes that: Norm reduces any representation to
// canonical form first.
type AxisAngle struct {
	Axis  r3.Vector
	Angle float64
}

// CompactAxisAngle folds axis and angle into a single vector whose direction
// is the rotation axis and whose norm is the angle.
type CompactAxisAngle r3.Vector

// NormAngle wraps an angle to [-π, π).
func NormAngle(a float64) float64 {
	m := math.Mod(a+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return -math.Pi + m
}

// Norm returns the canonical representative: unit axis and angle in (0, π].
// The identity rotation maps to axis (1, 0, 0) with angle 0.
func (a AxisAngle) Norm() AxisAngle {
	n := a.Axis.Norm()
	if a.Angle == 0 || n == 0 {
		return AxisAngle{Axis: r3.Vector{X: 1}}
	}
	res := AxisAngle{Axis: a.Axis.Mul(1 / n), Angle: NormAngle(a.Angle)}
	if res.Angle < 0 {
		res.Angle = -res.Angle
		res.Axis = res.Axis.Mul(-1)
	}
	return res
}

// Compact returns the compact form angle·axis.
func (a AxisAngle) Compact() CompactAxisAngle {
	return CompactAxisAngle(a.Axis.Mul(a.Angle))
}

// Matrix returns the rotation matrix of the axis-angle.
func (a AxisAngle) Matrix() Matrix {
	return FromAxisAngle(a)
}

// Vector returns the compact form as a plain vector.
func (c CompactAxisAngle) Vector() r3.Vector {
	return r3.Vector(c)
}

// Angle returns the rotation angle, the norm of the vector.
func (c CompactAxisAngle) Angle() float64 {
	return r3.Vector(c).Norm()
}

// AxisAngle splits the compact form into a unit axis and an angle.
func (c CompactAxisAngle) AxisAngle() AxisAngle {
	angle := c.Angle()
	if angle == 0 {
		return AxisAngle{Axis: r3.Vector{X: 1}}
	}
	return AxisAngle{Axis: r3.Vector(c).Mul(1 / angle), Angle: angle}
}

// Norm returns the canonical representative with angle magnitude in [0, π].
// The identity rotation maps to the zero vector.
func (c CompactAxisAngle) Norm() CompactAxisAngle {
	a := c.AxisAngle()
	if a.Angle == 0 {
		return CompactAxisAngle{}
	}
	return a.Norm().Compact()
}

// Matrix returns the rotation matrix of the compact axis-angle.
func (c CompactAxisAngle) Matrix() Matrix {
	return FromAxisAngle(c.AxisAngle())
}
