package rotationstest

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// tolerance controls the approximate element-wise comparison underneath every
// assertion. The default requires agreement to 6 decimal places.
type tolerance struct {
	abs float64
	rel float64
}

// Option adjusts the tolerance of a comparison.
type Option func(*tolerance)

// Decimal requires element-wise agreement to d decimal places, an absolute
// tolerance of 1.5·10⁻ᵈ.
func Decimal(d int) Option {
	return func(t *tolerance) { t.abs = 1.5 * math.Pow(10, -float64(d)) }
}

// AbsTol sets the absolute tolerance directly.
func AbsTol(a float64) Option {
	return func(t *tolerance) { t.abs = a }
}

// RelTol sets the relative tolerance. Zero (the default) disables the
// relative check.
func RelTol(r float64) Option {
	return func(t *tolerance) { t.rel = r }
}

func newTolerance(opts []Option) tolerance {
	t := tolerance{abs: 1.5e-6}
	for _, o := range opts {
		o(&t)
	}
	return t
}

// equal reports whether got and want agree element-wise within the tolerance.
func (t tolerance) equal(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !scalar.EqualWithinAbsOrRel(got[i], want[i], t.abs, t.rel) {
			return false
		}
	}
	return true
}
