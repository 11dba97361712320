package rotations

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RandomVector returns a vector with standard-normal components.
func RandomVector(rng *rand.Rand) r3.Vector {
	return r3.Vector{
		X: rng.NormFloat64(),
		Y: rng.NormFloat64(),
		Z: rng.NormFloat64(),
	}
}

// RandomAxisAngle returns a uniformly distributed unit axis and an angle in
// [0, π).
func RandomAxisAngle(rng *rand.Rand) AxisAngle {
	axis := RandomVector(rng).Normalize()
	for axis == (r3.Vector{}) {
		axis = RandomVector(rng).Normalize()
	}
	return AxisAngle{Axis: axis, Angle: math.Pi * rng.Float64()}
}

// RandomQuaternion returns a uniformly distributed unit quaternion.
func RandomQuaternion(rng *rand.Rand) quat.Number {
	q := quat.Number{
		Real: rng.NormFloat64(),
		Imag: rng.NormFloat64(),
		Jmag: rng.NormFloat64(),
		Kmag: rng.NormFloat64(),
	}
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}
