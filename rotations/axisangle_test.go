package rotations_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"

	"rigid3d/rotations"
	"rigid3d/rotationstest"
)

func TestNormAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, -math.Pi},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		if got := rotations.NormAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("NormAngle(%.6g) = %.6g, want %.6g", c.in, got, c.want)
		}
	}
}

func TestAxisAngleNorm(t *testing.T) {
	// Zero rotation maps to the fixed representative.
	n := rotations.AxisAngle{Axis: r3.Vector{X: 0.3, Y: -2}, Angle: 0}.Norm()
	if n.Axis != (r3.Vector{X: 1}) || n.Angle != 0 {
		t.Fatalf("zero rotation normalized to %+v", n)
	}

	// Negative angle flips the axis.
	n = rotations.AxisAngle{Axis: r3.Vector{Z: 1}, Angle: -math.Pi / 3}.Norm()
	if math.Abs(n.Angle-math.Pi/3) > 1e-12 || math.Abs(n.Axis.Z+1) > 1e-12 {
		t.Fatalf("negative angle normalized to %+v", n)
	}

	// Angles beyond π wrap around and flip.
	n = rotations.AxisAngle{Axis: r3.Vector{Z: 1}, Angle: 3 * math.Pi / 2}.Norm()
	if math.Abs(n.Angle-math.Pi/2) > 1e-12 || math.Abs(n.Axis.Z+1) > 1e-12 {
		t.Fatalf("3π/2 normalized to %+v", n)
	}

	// The axis is scaled to unit length.
	n = rotations.AxisAngle{Axis: r3.Vector{X: 3, Y: 4}, Angle: 1}.Norm()
	if math.Abs(n.Axis.Norm()-1) > 1e-12 || math.Abs(n.Axis.X-0.6) > 1e-12 {
		t.Fatalf("axis not normalized: %+v", n)
	}
}

func TestAxisAngleNorm_PreservesRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		a := rotations.RandomAxisAngle(rng)
		a.Angle = (rng.Float64()*4 - 2) * math.Pi
		rotationstest.AssertMatrixEqual(t, a.Matrix(), a.Norm().Matrix(), rotationstest.Decimal(9))
	}
}

func TestCompactAxisAngle_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		a := rotations.RandomAxisAngle(rng)
		back := a.Compact().AxisAngle()
		rotationstest.AssertAxisAngleEqual(t, back, a, rotationstest.Decimal(9))
	}
}

func TestCompactAxisAngleNorm(t *testing.T) {
	// Magnitude 3π/2 around +Z reduces to π/2 around -Z.
	n := rotations.CompactAxisAngle{Z: 3 * math.Pi / 2}.Norm()
	if math.Abs(n.Z+math.Pi/2) > 1e-12 || math.Abs(n.X) > 1e-12 || math.Abs(n.Y) > 1e-12 {
		t.Fatalf("compact 3π/2 normalized to %+v", n)
	}

	if n := (rotations.CompactAxisAngle{}).Norm(); n != (rotations.CompactAxisAngle{}) {
		t.Fatalf("zero compact normalized to %+v", n)
	}
}
