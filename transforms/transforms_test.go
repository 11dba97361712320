package transforms_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"rigid3d/rotations"
	"rigid3d/transforms"
)

func randomTransform(rng *rand.Rand) *mat.Dense {
	R := rotations.FromAxisAngle(rotations.RandomAxisAngle(rng))
	return transforms.From(R, rotations.RandomVector(rng))
}

func TestFrom_Layout(t *testing.T) {
	R := rotations.RotZ(0.5)
	p := r3.Vector{X: 1, Y: 2, Z: 3}
	a2b := transforms.From(R, p)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a2b.At(i, j) != R[3*i+j] {
				t.Fatalf("rotation block differs at (%d,%d)", i, j)
			}
		}
	}
	if a2b.At(0, 3) != 1 || a2b.At(1, 3) != 2 || a2b.At(2, 3) != 3 {
		t.Fatalf("translation column wrong: %v", mat.Formatted(a2b))
	}
	for j, want := range []float64{0, 0, 0, 1} {
		if a2b.At(3, j) != want {
			t.Fatalf("bottom row wrong at %d: %g", j, a2b.At(3, j))
		}
	}
}

func TestVectorToPoint(t *testing.T) {
	p := transforms.VectorToPoint(r3.Vector{X: 1, Y: 2, Z: 3})
	want := mat.NewVecDense(4, []float64{1, 2, 3, 1})
	if !mat.EqualApprox(p, want, 1e-12) {
		t.Fatalf("VectorToPoint = %v", mat.Formatted(p))
	}

	rng := rand.New(rand.NewSource(0))
	if _, err := transforms.ApplyPoint(randomTransform(rng), p); err != nil {
		t.Fatalf("transforming an embedded point failed: %v", err)
	}
}

func TestInvert_MatchesGeneralInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 5; i++ {
		a2b := randomTransform(rng)
		b2a, err := transforms.Invert(a2b)
		if err != nil {
			t.Fatalf("invert: %v", err)
		}

		var want mat.Dense
		if err := want.Inverse(a2b); err != nil {
			t.Fatalf("general inverse: %v", err)
		}
		if !mat.EqualApprox(b2a, &want, 1e-9) {
			t.Fatalf("rigid inverse differs from general inverse:\n%v\nvs\n%v",
				mat.Formatted(b2a), mat.Formatted(&want))
		}
	}
}

func TestInvert_RejectsNon4x4(t *testing.T) {
	eye3 := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if _, err := transforms.Invert(eye3); err == nil {
		t.Fatal("expected an error for a 3x3 input")
	}
}

func TestConcat_ComposesAndInverts(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 5; i++ {
		a2b := randomTransform(rng)
		b2c := randomTransform(rng)

		a2c, err := transforms.Concat(a2b, b2c)
		if err != nil {
			t.Fatalf("concat: %v", err)
		}

		pA := mat.NewVecDense(4, []float64{0.3, -0.2, 0.9, 1.0})

		// Concatenation equals applying the parts in sequence.
		pC, err := transforms.ApplyPoint(a2c, pA)
		if err != nil {
			t.Fatalf("apply A2C: %v", err)
		}
		pB, _ := transforms.ApplyPoint(a2b, pA)
		pC2, _ := transforms.ApplyPoint(b2c, pB)
		if !mat.EqualApprox(pC, pC2, 1e-9) {
			t.Fatalf("A2C·p != B2C·(A2B·p): %v vs %v", mat.Formatted(pC), mat.Formatted(pC2))
		}

		// Inverting the concatenation recovers the original point.
		c2a, err := transforms.Invert(a2c)
		if err != nil {
			t.Fatalf("invert A2C: %v", err)
		}
		pA2, _ := transforms.ApplyPoint(c2a, pC)
		if !mat.EqualApprox(pA, pA2, 1e-9) {
			t.Fatalf("inverse of concat did not recover the point: %v", mat.Formatted(pA2))
		}

		// So does concatenating the inverses in reverse order.
		invB2C, _ := transforms.Invert(b2c)
		invA2B, _ := transforms.Invert(a2b)
		c2a2, err := transforms.Concat(invB2C, invA2B)
		if err != nil {
			t.Fatalf("concat of inverses: %v", err)
		}
		pA3, _ := transforms.ApplyPoint(c2a2, pC)
		if !mat.EqualApprox(pA, pA3, 1e-9) {
			t.Fatalf("concat of inverses did not recover the point: %v", mat.Formatted(pA3))
		}
	}
}

func TestApply_BatchMatchesSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	a2b := randomTransform(rng)

	pts := mat.NewDense(2, 4, []float64{
		1, 2, 3, 1,
		2, 3, 4, 1,
	})
	batch, err := transforms.Apply(a2b, pts)
	if err != nil {
		t.Fatalf("apply batch: %v", err)
	}

	for r := 0; r < 2; r++ {
		row := mat.NewVecDense(4, mat.Row(nil, r, pts))
		single, err := transforms.ApplyPoint(a2b, row)
		if err != nil {
			t.Fatalf("apply row %d: %v", r, err)
		}
		for c := 0; c < 4; c++ {
			if math.Abs(batch.At(r, c)-single.AtVec(c)) > 1e-9 {
				t.Fatalf("batch row %d differs from single transform at %d: %.12g vs %.12g",
					r, c, batch.At(r, c), single.AtVec(c))
			}
		}
	}
}

func TestApply_RejectsMalformedShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	a2b := randomTransform(rng)

	if _, err := transforms.Apply(a2b, mat.NewDense(2, 3, nil)); err == nil {
		t.Fatal("expected an error for a 2x3 point matrix")
	}
	if _, err := transforms.Apply(a2b, mat.NewVecDense(4, nil)); err == nil {
		t.Fatal("expected an error for a bare vector batch")
	}
	if _, err := transforms.ApplyPoint(a2b, mat.NewVecDense(3, nil)); err == nil {
		t.Fatal("expected an error for a length-3 point")
	}
	if _, err := transforms.ApplyPoint(mat.NewDense(3, 3, nil), mat.NewVecDense(4, nil)); err == nil {
		t.Fatal("expected an error for a 3x3 transform")
	}
}

func TestRotationTranslation_Extractors(t *testing.T) {
	R := rotations.RotY(1.1)
	p := r3.Vector{X: -1, Y: 0.5, Z: 2}
	a2b := transforms.From(R, p)

	gotR, err := transforms.Rotation(a2b)
	if err != nil {
		t.Fatalf("rotation: %v", err)
	}
	if gotR != R {
		t.Fatalf("extracted rotation differs: %v vs %v", gotR, R)
	}

	gotP, err := transforms.Translation(a2b)
	if err != nil {
		t.Fatalf("translation: %v", err)
	}
	if gotP != p {
		t.Fatalf("extracted translation differs: %+v vs %+v", gotP, p)
	}

	if _, err := transforms.Rotation(mat.NewDense(2, 2, nil)); err == nil {
		t.Fatal("expected an error for a 2x2 input")
	}
}
