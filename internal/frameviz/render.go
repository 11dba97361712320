package frameviz

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"rigid3d/rotations"
	"rigid3d/transforms"
)

// Axis and point colors. X/Y/Z follow the usual RGB convention.
var (
	colorX      = color.NRGBA{R: 230, G: 60, B: 60, A: 255}
	colorY      = color.NRGBA{R: 60, G: 200, B: 60, A: 255}
	colorZ      = color.NRGBA{R: 70, G: 110, B: 240, A: 255}
	colorPoints = color.NRGBA{R: 190, G: 190, B: 190, A: 255}
)

// frameBuffer holds the render target as flat slices for cache locality.
type frameBuffer struct {
	w, h  int
	color []uint8   // RGBA interleaved, len = w*h*4
	zbuf  []float64 // depth per pixel, len = w*h, initialized to -inf
}

func newFrameBuffer(w, h int) *frameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &frameBuffer{w: w, h: h, color: make([]uint8, n*4), zbuf: zbuf}
}

// set writes one pixel if it is in bounds and not behind what is already
// there. Larger z is closer to the camera.
func (fb *frameBuffer) set(x, y int, z float64, c color.NRGBA) {
	if x < 0 || x >= fb.w || y < 0 || y >= fb.h {
		return
	}
	i := y*fb.w + x
	if z < fb.zbuf[i] {
		return
	}
	fb.zbuf[i] = z
	fb.color[i*4+0] = c.R
	fb.color[i*4+1] = c.G
	fb.color[i*4+2] = c.B
	fb.color[i*4+3] = c.A
}

// line draws a depth-interpolated line between two screen points.
func (fb *frameBuffer) line(x0, y0, z0, x1, y1, z1 float64, c color.NRGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fb.set(
			int(x0+t*(x1-x0)+0.5),
			int(y0+t*(y1-y0)+0.5),
			z0+t*(z1-z0),
			c,
		)
	}
}

// dot draws a small filled square centered on a screen point.
func (fb *frameBuffer) dot(x, y int, z float64, r int, c color.NRGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			fb.set(x+dx, y+dy, z, c)
		}
	}
}

func (fb *frameBuffer) image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.w, fb.h))
	copy(img.Pix, fb.color)
	return img
}

type segment struct {
	a, b r3.Vector
	col  color.NRGBA
}

type point struct {
	p   r3.Vector
	col color.NRGBA
}

// rowVec reads row r of an n×4 homogeneous point matrix as a 3-vector.
func rowVec(m *mat.Dense, r int) r3.Vector {
	return r3.Vector{X: m.At(r, 0), Y: m.At(r, 1), Z: m.At(r, 2)}
}

// collect turns the scene's frames into world-space line segments and points.
func collect(s *Scene) ([]segment, []point, error) {
	var segs []segment
	var dots []point
	for i := range s.Frames {
		f := &s.Frames[i]
		a2w, err := f.Transform()
		if err != nil {
			return nil, nil, err
		}

		l := f.AxisLength
		triad := mat.NewDense(4, 4, []float64{
			0, 0, 0, 1,
			l, 0, 0, 1,
			0, l, 0, 1,
			0, 0, l, 1,
		})
		world, err := transforms.Apply(a2w, triad)
		if err != nil {
			return nil, nil, err
		}
		origin := rowVec(world, 0)
		segs = append(segs,
			segment{origin, rowVec(world, 1), colorX},
			segment{origin, rowVec(world, 2), colorY},
			segment{origin, rowVec(world, 3), colorZ},
		)

		if len(f.Points) == 0 {
			continue
		}
		pts := mat.NewDense(len(f.Points), 4, nil)
		for r, p := range f.Points {
			pts.SetRow(r, []float64{p[0], p[1], p[2], 1})
		}
		worldPts, err := transforms.Apply(a2w, pts)
		if err != nil {
			return nil, nil, err
		}
		for r := range f.Points {
			dots = append(dots, point{rowVec(worldPts, r), colorPoints})
		}
	}
	return segs, dots, nil
}

// Render draws the scene into a Size×Size image, rasterizing at
// Size·Supersample and downsampling the result.
func Render(s *Scene) (*image.NRGBA, error) {
	size := s.Size
	if size <= 0 {
		size = 512
	}
	supersample := s.Supersample
	if supersample <= 0 {
		supersample = 1
	}

	segs, dots, err := collect(s)
	if err != nil {
		return nil, err
	}

	cam := rotations.RotX(rotations.Deg2Rad(-s.ElevationDeg)).
		Mul(rotations.RotY(rotations.Deg2Rad(s.AzimuthDeg)))

	// Bounding box of all camera-space endpoints, for auto-fit.
	min := r3.Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := r3.Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	grow := func(v r3.Vector) {
		t := cam.MulVec(v)
		min = r3.Vector{X: math.Min(min.X, t.X), Y: math.Min(min.Y, t.Y), Z: math.Min(min.Z, t.Z)}
		max = r3.Vector{X: math.Max(max.X, t.X), Y: math.Max(max.Y, t.Y), Z: math.Max(max.Z, t.Z)}
	}
	for _, sg := range segs {
		grow(sg.a)
		grow(sg.b)
	}
	for _, d := range dots {
		grow(d.p)
	}
	if len(segs) == 0 && len(dots) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size)), nil
	}

	center := min.Add(max).Mul(0.5)
	halfExtent := math.Max(max.X-min.X, max.Y-min.Y) / 2
	if halfExtent < 1e-9 {
		halfExtent = 1
	}

	renderSize := size * supersample
	half := float64(renderSize) / 2
	scale := half * 0.9 / halfExtent

	// Orthographic projection, screen Y pointing down.
	project := func(v r3.Vector) (float64, float64, float64) {
		t := cam.MulVec(v)
		return (t.X-center.X)*scale + half, -(t.Y-center.Y)*scale + half, t.Z
	}

	fb := newFrameBuffer(renderSize, renderSize)
	for _, sg := range segs {
		x0, y0, z0 := project(sg.a)
		x1, y1, z1 := project(sg.b)
		fb.line(x0, y0, z0, x1, y1, z1, sg.col)
	}
	dotRadius := supersample
	for _, d := range dots {
		x, y, z := project(d.p)
		fb.dot(int(x+0.5), int(y+0.5), z, dotRadius, d.col)
	}

	return Downsample(fb.image(), size), nil
}
