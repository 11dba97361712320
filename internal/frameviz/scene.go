// Package frameviz renders coordinate frames and point clouds to images. A
// scene is a JSON-loadable set of frames, each placed by a rigid transform
// whose rotation may be given in any supported representation.
package frameviz

import (
	"encoding/json"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"rigid3d/rotations"
	"rigid3d/transforms"
)

// Frame is one coordinate frame in the scene. At most one rotation field may
// be set; none means identity. The frame is drawn as an RGB axis triad, plus
// any attached points.
type Frame struct {
	Name        string       `json:"name"`
	EulerXYZ    *[3]float64  `json:"euler_xyz,omitempty"`
	EulerZYX    *[3]float64  `json:"euler_zyx,omitempty"`
	AxisAngle   *[4]float64  `json:"axis_angle,omitempty"` // x, y, z, angle
	Quaternion  *[4]float64  `json:"quaternion,omitempty"` // w, x, y, z
	Translation [3]float64   `json:"translation"`
	Points      [][3]float64 `json:"points,omitempty"`
	AxisLength  float64      `json:"axis_length,omitempty"`
}

// Scene describes one render: the frames, the camera and the output settings.
type Scene struct {
	Frames       []Frame `json:"frames"`
	ElevationDeg float64 `json:"elevation_deg"`
	AzimuthDeg   float64 `json:"azimuth_deg"`
	Size         int     `json:"size"`
	Supersample  int     `json:"supersample"`
	Output       string  `json:"output"`
}

// Load reads a JSON scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, errors.Wrapf(err, "scene: read %s", path)
	}
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, errors.Wrapf(err, "scene: parse %s", path)
	}
	return s, nil
}

// Flags are CLI overrides applied on top of the scene file.
type Flags struct {
	Output      string
	Size        int
	Supersample int
}

// Resolve applies flag overrides (flags win when set) and fills remaining
// empty fields with defaults.
func (s *Scene) Resolve(flags Flags) {
	if flags.Output != "" {
		s.Output = flags.Output
	}
	if flags.Size > 0 {
		s.Size = flags.Size
	}
	if flags.Supersample > 0 {
		s.Supersample = flags.Supersample
	}

	if s.Size == 0 {
		s.Size = 512
	}
	if s.Supersample == 0 {
		s.Supersample = 2
	}
	if s.Output == "" {
		s.Output = "frames.webp"
	}
	for i := range s.Frames {
		if s.Frames[i].AxisLength == 0 {
			s.Frames[i].AxisLength = 1
		}
	}
}

// Transform builds the frame's homogeneous transform from whichever rotation
// representation is present.
func (f *Frame) Transform() (*mat.Dense, error) {
	set := 0
	for _, present := range []bool{f.EulerXYZ != nil, f.EulerZYX != nil, f.AxisAngle != nil, f.Quaternion != nil} {
		if present {
			set++
		}
	}
	if set > 1 {
		return nil, errors.Errorf("frame %q: more than one rotation representation set", f.Name)
	}

	var r rotations.Matrix
	switch {
	case f.EulerXYZ != nil:
		r = rotations.FromEulerXYZ(rotations.EulerXYZ(*f.EulerXYZ))
	case f.EulerZYX != nil:
		r = rotations.FromEulerZYX(rotations.EulerZYX(*f.EulerZYX))
	case f.AxisAngle != nil:
		a := *f.AxisAngle
		r = rotations.FromAxisAngle(rotations.AxisAngle{
			Axis:  r3.Vector{X: a[0], Y: a[1], Z: a[2]},
			Angle: a[3],
		})
	case f.Quaternion != nil:
		q := *f.Quaternion
		r = rotations.FromQuaternion(quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]})
	default:
		r = rotations.Identity()
	}

	p := r3.Vector{X: f.Translation[0], Y: f.Translation[1], Z: f.Translation[2]}
	return transforms.From(r, p), nil
}
