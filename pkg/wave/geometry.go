package wave

import (
	"fmt"
	"math"

	vmath "github.com/Faultbox/waveview/pkg/math"
)

// Outline is a closed polygon bounding one wave layer: the sampled surface
// from left to right, then down the right edge, across the bottom, up the
// left edge and back to the first sample.
type Outline struct {
	Points  []vmath.Vec2
	samples int
}

// Samples returns the surface part of the outline, left to right.
func (o Outline) Samples() []vmath.Vec2 {
	return o.Points[:o.samples]
}

// Closed reports whether the last point repeats the first.
func (o Outline) Closed() bool {
	n := len(o.Points)
	return n > 1 && o.Points[0] == o.Points[n-1]
}

// Generator samples the wave surface. The zero value samples every pixel
// and keeps sub-pixel heights.
type Generator struct {
	// Stride is the horizontal distance between samples in pixels.
	// Zero means 1. The right edge is always sampled.
	Stride int

	// Truncate drops the fractional part of each sampled height, which
	// keeps edges on whole pixels.
	Truncate bool
}

// Generate builds both wave layers with the default Generator.
func Generate(width, height int, p Params) (Outline, Outline, error) {
	return Generator{}.Generate(width, height, p)
}

// Generate returns the back layer (no extra phase) and the front layer,
// which lags by a quarter of the rendered wave length.
func (g Generator) Generate(width, height int, p Params) (Outline, Outline, error) {
	stride := g.Stride
	if stride == 0 {
		stride = 1
	}
	if stride < 0 {
		return Outline{}, Outline{}, fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
	}

	d, err := p.Derive(width, height)
	if err != nil {
		return Outline{}, Outline{}, err
	}

	xs := sampleXs(width, stride)
	a := g.layer(d, xs, 0)
	b := g.layer(d, xs, d.QuarterWaveLength())
	return a, b, nil
}

func (g Generator) layer(d Derived, xs []float64, phase float64) Outline {
	pts := make([]vmath.Vec2, 0, len(xs)+4)
	for _, x := range xs {
		y := d.SurfaceY(x, phase)
		if g.Truncate {
			y = math.Trunc(y)
		}
		pts = append(pts, vmath.Vec2{X: x, Y: y})
	}
	pts = append(pts,
		vmath.Vec2{X: d.Width, Y: d.Height},
		vmath.Vec2{X: 0, Y: d.Height},
		vmath.Vec2{X: 0, Y: 0},
		pts[0],
	)
	return Outline{Points: pts, samples: len(xs)}
}

// sampleXs returns 0, stride, 2·stride, … and always ends exactly at width.
func sampleXs(width, stride int) []float64 {
	xs := make([]float64, 0, width/stride+2)
	for x := 0; x < width; x += stride {
		xs = append(xs, float64(x))
	}
	return append(xs, float64(width))
}
