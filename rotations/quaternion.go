package rotations

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternions are gonum quat.Number values with the scalar part in Real, so
// the component order is (w, x, y, z). A quaternion and its negation
// describe the identical rotation.

// QuaternionFromAxisAngle converts an axis-angle to a unit quaternion. The
// axis does not have to be normalized; a zero axis maps to the identity.
func QuaternionFromAxisAngle(a AxisAngle) quat.Number {
	u := a.Axis.Normalize()
	if u == (r3.Vector{}) {
		return quat.Number{Real: 1}
	}
	s := math.Sin(a.Angle / 2)
	return quat.Number{
		Real: math.Cos(a.Angle / 2),
		Imag: u.X * s,
		Jmag: u.Y * s,
		Kmag: u.Z * s,
	}
}

// Quaternion returns the unit quaternion of the axis-angle.
func (a AxisAngle) Quaternion() quat.Number {
	return QuaternionFromAxisAngle(a)
}

// AxisAngleFromQuaternion converts a unit quaternion to the canonical
// axis-angle representation.
func AxisAngleFromQuaternion(q quat.Number) AxisAngle {
	v := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	n := v.Norm()
	if n == 0 {
		return AxisAngle{Axis: r3.Vector{X: 1}}
	}
	a := AxisAngle{Axis: v.Mul(1 / n), Angle: 2 * math.Atan2(n, q.Real)}
	return a.Norm()
}

// Canonical flips the sign of q if needed so that the scalar part is
// non-negative, picking one representative of the {q, -q} pair.
func Canonical(q quat.Number) quat.Number {
	switch {
	case q.Real < 0:
		return quat.Scale(-1, q)
	case q.Real == 0 && (q.Imag < 0 || (q.Imag == 0 && (q.Jmag < 0 || (q.Jmag == 0 && q.Kmag < 0)))):
		return quat.Scale(-1, q)
	}
	return q
}

// RotateVector rotates v by the unit quaternion q, computing q · v · q*.
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
