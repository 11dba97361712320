// Package transforms implements rigid-body transformations between cartesian
// coordinate frames as homogeneous 4×4 matrices. Transforms are gonum dense
// matrices; every function that consumes one validates its shape at run time
// and returns an invalid-argument error for anything that is not 4×4.
package transforms

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"rigid3d/rotations"
)

// From builds the homogeneous transform [[R, p], [0 0 0 1]] from a rotation
// matrix and a translation. R is used as given; whether it actually is a
// rotation is the caller's concern (see rotationstest.AssertRotationMatrix).
func From(r rotations.Matrix, p r3.Vector) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		r[0], r[1], r[2], p.X,
		r[3], r[4], r[5], p.Y,
		r[6], r[7], r[8], p.Z,
		0, 0, 0, 1,
	})
}

// VectorToPoint embeds a 3-vector into homogeneous coordinates: (x, y, z, 1).
func VectorToPoint(v r3.Vector) *mat.VecDense {
	return mat.NewVecDense(4, []float64{v.X, v.Y, v.Z, 1})
}

func checkTransform(a2b mat.Matrix) error {
	r, c := a2b.Dims()
	if r != 4 || c != 4 {
		return errors.Errorf("transforms: expected 4x4 transformation matrix, got %dx%d", r, c)
	}
	return nil
}

// Rotation extracts the top-left 3×3 rotation block of a transform.
func Rotation(a2b mat.Matrix) (rotations.Matrix, error) {
	if err := checkTransform(a2b); err != nil {
		return rotations.Matrix{}, err
	}
	var m rotations.Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = a2b.At(i, j)
		}
	}
	return m, nil
}

// Translation extracts the translation column of a transform.
func Translation(a2b mat.Matrix) (r3.Vector, error) {
	if err := checkTransform(a2b); err != nil {
		return r3.Vector{}, err
	}
	return r3.Vector{X: a2b.At(0, 3), Y: a2b.At(1, 3), Z: a2b.At(2, 3)}, nil
}

// Invert computes B2A from A2B. The rigid structure makes the inverse exact
// without a general matrix inversion: the result has rotation Rᵀ and
// translation -Rᵀ·p.
func Invert(a2b mat.Matrix) (*mat.Dense, error) {
	r, err := Rotation(a2b)
	if err != nil {
		return nil, errors.Wrap(err, "invert")
	}
	p, err := Translation(a2b)
	if err != nil {
		return nil, errors.Wrap(err, "invert")
	}
	rt := r.Transpose()
	return From(rt, rt.MulVec(p).Mul(-1)), nil
}

// Concat composes A2B and B2C into A2C. The matrix product is B2C · A2B,
// matching the right-to-left order in which the result is applied to points.
func Concat(a2b, b2c mat.Matrix) (*mat.Dense, error) {
	if err := checkTransform(a2b); err != nil {
		return nil, errors.Wrap(err, "concat: A2B")
	}
	if err := checkTransform(b2c); err != nil {
		return nil, errors.Wrap(err, "concat: B2C")
	}
	var a2c mat.Dense
	a2c.Mul(b2c, a2b)
	return &a2c, nil
}

// ApplyPoint transforms a single homogeneous point of length 4.
func ApplyPoint(a2b mat.Matrix, p mat.Vector) (*mat.VecDense, error) {
	if err := checkTransform(a2b); err != nil {
		return nil, errors.Wrap(err, "apply")
	}
	if p.Len() != 4 {
		return nil, errors.Errorf("transforms: expected homogeneous point of length 4, got %d", p.Len())
	}
	var out mat.VecDense
	out.MulVec(a2b, p)
	return &out, nil
}

// Apply transforms a batch of homogeneous points, one point per row of an
// n×4 matrix. The result is row-for-row identical to calling ApplyPoint on
// each row. Anything that is not an n×4 matrix, including a bare vector, is
// rejected with an invalid-argument error.
func Apply(a2b mat.Matrix, points mat.Matrix) (*mat.Dense, error) {
	if err := checkTransform(a2b); err != nil {
		return nil, errors.Wrap(err, "apply")
	}
	if _, ok := points.(mat.Vector); ok {
		return nil, errors.New("transforms: point batch must be an nx4 matrix; use ApplyPoint for a single point")
	}
	n, c := points.Dims()
	if c != 4 {
		return nil, errors.Errorf("transforms: cannot transform point matrix with shape %dx%d", n, c)
	}
	// (T · Pᵀ)ᵀ = P · Tᵀ keeps the one-point-per-row layout.
	var out mat.Dense
	out.Mul(points, a2b.T())
	return &out, nil
}
