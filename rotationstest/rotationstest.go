// Package rotationstest provides equality assertions for rotation
// representations. Several representations are ambiguous: a quaternion and
// its negation are the same rotation, and so are (axis, angle) and
// (-axis, -angle). The assertions normalize both operands before comparing,
// so unnormalized inputs are accepted.
package rotationstest

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"rigid3d/rotations"
)

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func signsDiffer(a, b []float64) bool {
	for i := range a {
		if sign(a[i]) != sign(b[i]) {
			return true
		}
	}
	return false
}

func axisAngleComponents(a rotations.AxisAngle) []float64 {
	return []float64{a.Axis.X, a.Axis.Y, a.Axis.Z, a.Angle}
}

func quaternionComponents(q quat.Number) []float64 {
	return []float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}

// AssertAxisAngleEqual fails the test when the two axis-angle representations
// do not describe the same rotation. The usual constraints (unit axis, angle
// in [0, π)) are not assumed; both operands are normalized first.
func AssertAxisAngleEqual(t testing.TB, a1, a2 rotations.AxisAngle, opts ...Option) {
	t.Helper()
	// Required despite normalization in case of a 180 degree rotation.
	if signsDiffer(axisAngleComponents(a1), axisAngleComponents(a2)) {
		a1 = rotations.AxisAngle{Axis: a1.Axis.Mul(-1), Angle: -a1.Angle}
	}
	n1 := a1.Norm()
	n2 := a2.Norm()
	if !newTolerance(opts).equal(axisAngleComponents(n1), axisAngleComponents(n2)) {
		t.Fatalf("axis-angles are not equal:\n a1 = %+v (normalized %+v)\n a2 = %+v (normalized %+v)",
			a1, n1, a2, n2)
	}
}

// AssertCompactAxisAngleEqual fails the test when the two compact axis-angle
// vectors do not describe the same rotation. The angle (the vector norm) is
// not assumed to lie in [0, π]; both operands are normalized first.
func AssertCompactAxisAngleEqual(t testing.TB, a1, a2 rotations.CompactAxisAngle, opts ...Option) {
	t.Helper()
	angle1 := a1.Angle()
	angle2 := a2.Angle()
	v1 := []float64{a1.X, a1.Y, a1.Z}
	v2 := []float64{a2.X, a2.Y, a2.Z}
	// Required despite normalization in case of a 180 degree rotation. The
	// norms are compared to π exactly: callers pass the canonical boundary
	// value when they mean a half turn.
	if angle1 == math.Pi && angle2 == math.Pi && signsDiffer(v1, v2) {
		a1 = rotations.CompactAxisAngle(r3.Vector(a1).Mul(-1))
	}
	n1 := a1.Norm()
	n2 := a2.Norm()
	if !newTolerance(opts).equal([]float64{n1.X, n1.Y, n1.Z}, []float64{n2.X, n2.Y, n2.Z}) {
		t.Fatalf("compact axis-angles are not equal:\n a1 = %+v (normalized %+v)\n a2 = %+v (normalized %+v)",
			r3.Vector(a1), r3.Vector(n1), r3.Vector(a2), r3.Vector(n2))
	}
}

// AssertQuaternionEqual fails the test unless q1 ≈ q2 or q1 ≈ -q2: a unit
// quaternion and its negation represent the identical rotation.
func AssertQuaternionEqual(t testing.TB, q1, q2 quat.Number, opts ...Option) {
	t.Helper()
	tol := newTolerance(opts)
	if tol.equal(quaternionComponents(q1), quaternionComponents(q2)) {
		return
	}
	if tol.equal(quaternionComponents(q1), quaternionComponents(quat.Scale(-1, q2))) {
		return
	}
	t.Fatalf("quaternions are not equal:\n q1 = %+v\n q2 = %+v (nor its negation)", q1, q2)
}

// AssertMatrixEqual fails the test when two rotation matrices differ beyond
// the tolerance.
func AssertMatrixEqual(t testing.TB, m1, m2 rotations.Matrix, opts ...Option) {
	t.Helper()
	if !newTolerance(opts).equal(m1[:], m2[:]) {
		t.Fatalf("rotation matrices are not equal:\n m1 = %v\n m2 = %v", m1, m2)
	}
}

// AssertEulerXYZEqual compares two intrinsic xyz Euler triples through their
// rotation matrices: outside the canonical ranges several triples describe
// the same rotation, so the angles themselves cannot be compared.
//
// Deprecated: convert with rotations.FromEulerXYZ and use AssertMatrixEqual.
func AssertEulerXYZEqual(t testing.TB, e1, e2 rotations.EulerXYZ, opts ...Option) {
	t.Helper()
	t.Logf("AssertEulerXYZEqual is deprecated and will be removed; use rotations.FromEulerXYZ with AssertMatrixEqual")
	AssertMatrixEqual(t, e1.Matrix(), e2.Matrix(), opts...)
}

// AssertEulerZYXEqual compares two intrinsic zyx Euler triples through their
// rotation matrices.
//
// Deprecated: convert with rotations.FromEulerZYX and use AssertMatrixEqual.
func AssertEulerZYXEqual(t testing.TB, e1, e2 rotations.EulerZYX, opts ...Option) {
	t.Helper()
	t.Logf("AssertEulerZYXEqual is deprecated and will be removed; use rotations.FromEulerZYX with AssertMatrixEqual")
	AssertMatrixEqual(t, e1.Matrix(), e2.Matrix(), opts...)
}

// AssertRotationMatrix fails the test unless m is a valid rotation matrix:
// R·Rᵀ must be the identity and det(R) must be 1, which rules out
// reflections.
func AssertRotationMatrix(t testing.TB, m rotations.Matrix, opts ...Option) {
	t.Helper()
	tol := newTolerance(opts)
	rrt := m.Mul(m.Transpose())
	id := rotations.Identity()
	if !tol.equal(rrt[:], id[:]) {
		t.Fatalf("matrix is not orthogonal: R·Rᵀ = %v, want identity", rrt)
	}
	if !tol.equal([]float64{m.Det()}, []float64{1}) {
		t.Fatalf("matrix determinant is %v, want 1", m.Det())
	}
}
