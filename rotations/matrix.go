// Package rotations implements representations of rotations in 3D Euclidean
// space: rotation matrices, axis-angle (full and compact), quaternions and
// intrinsic Euler angles, with conversions between them and canonicalization
// of the ambiguous forms.
package rotations

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Matrix is a 3×3 rotation matrix stored row-major:
// m[3*r+c] is the element in row r, column c. Value type for zero heap
// allocation.
type Matrix [9]float64

// Identity returns the identity rotation.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// RotX returns the active rotation around the X axis. Angle in radians.
func RotX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns the active rotation around the Y axis.
func RotY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns the active rotation around the Z axis.
func RotZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul returns m × n.
func (m Matrix) Mul(n Matrix) Matrix {
	var p Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[r*3+c] = m[r*3+0]*n[0*3+c] + m[r*3+1]*n[1*3+c] + m[r*3+2]*n[2*3+c]
		}
	}
	return p
}

// MulVec returns M × v.
func (m Matrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Matrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Row returns row r as a vector.
func (m Matrix) Row(r int) r3.Vector {
	return r3.Vector{X: m[3*r], Y: m[3*r+1], Z: m[3*r+2]}
}

// Dense returns the matrix as a 3×3 gonum dense matrix.
func (m Matrix) Dense() *mat.Dense {
	d := make([]float64, 9)
	copy(d, m[:])
	return mat.NewDense(3, 3, d)
}

// FromEulerXYZ returns the matrix of intrinsic rotations around the x-, y'-
// and z''-axes: Rx(α) · Ry(β) · Rz(γ).
func FromEulerXYZ(e EulerXYZ) Matrix {
	return RotX(e[0]).Mul(RotY(e[1])).Mul(RotZ(e[2]))
}

// FromEulerZYX returns the matrix of intrinsic rotations around the z-, y'-
// and x''-axes: Rz(α) · Ry(β) · Rx(γ).
func FromEulerZYX(e EulerZYX) Matrix {
	return RotZ(e[0]).Mul(RotY(e[1])).Mul(RotX(e[2]))
}

// FromAxisAngle converts an axis-angle to a matrix with Rodrigues' formula.
// The axis does not have to be normalized. A zero axis maps to the identity.
func FromAxisAngle(a AxisAngle) Matrix {
	u := a.Axis.Normalize()
	if u == (r3.Vector{}) {
		return Identity()
	}
	c, s := math.Cos(a.Angle), math.Sin(a.Angle)
	ci := 1 - c
	x, y, z := u.X, u.Y, u.Z
	return Matrix{
		c + x*x*ci, x*y*ci - z*s, x*z*ci + y*s,
		y*x*ci + z*s, c + y*y*ci, y*z*ci - x*s,
		z*x*ci - y*s, z*y*ci + x*s, c + z*z*ci,
	}
}

// FromQuaternion converts a unit quaternion (w = Real) to a matrix.
func FromQuaternion(q quat.Number) Matrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Quaternion returns the unit quaternion of the rotation matrix.
// reference: http://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/index.htm
func (m Matrix) Quaternion() quat.Number {
	var q quat.Number
	if tr := m[0] + m[4] + m[8]; tr > 0 {
		s := 0.5 / math.Sqrt(tr+1.0)
		q = quat.Number{Real: 0.25 / s, Imag: (m[7] - m[5]) * s, Jmag: (m[2] - m[6]) * s, Kmag: (m[3] - m[1]) * s}
	} else if (m[0] > m[4]) && (m[0] > m[8]) {
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		q = quat.Number{Real: (m[7] - m[5]) / s, Imag: 0.25 * s, Jmag: (m[1] + m[3]) / s, Kmag: (m[2] + m[6]) / s}
	} else if m[4] > m[8] {
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		q = quat.Number{Real: (m[2] - m[6]) / s, Imag: (m[1] + m[3]) / s, Jmag: 0.25 * s, Kmag: (m[5] + m[7]) / s}
	} else {
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		q = quat.Number{Real: (m[3] - m[1]) / s, Imag: (m[2] + m[6]) / s, Jmag: (m[5] + m[7]) / s, Kmag: 0.25 * s}
	}

	// guarantee a unit quaternion
	return quat.Scale(1/quat.Abs(q), q)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
