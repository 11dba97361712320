package rotations

// EulerXYZ holds intrinsic rotation angles around the x-, y'- and z''-axes,
// in radians. The triple is unique only within the canonical ranges
// [-π, π], [-π/2, π/2] and [-π, π].
type EulerXYZ [3]float64

// EulerZYX holds intrinsic rotation angles around the z-, y'- and x''-axes.
type EulerZYX [3]float64

// Matrix returns the rotation matrix of the angle triple.
func (e EulerXYZ) Matrix() Matrix {
	return FromEulerXYZ(e)
}

// Matrix returns the rotation matrix of the angle triple.
func (e EulerZYX) Matrix() Matrix {
	return FromEulerZYX(e)
}
