package waveview

import (
	"github.com/Faultbox/waveview/pkg/raster"
	"github.com/Faultbox/waveview/pkg/wave"
)

// Frame is everything one render pass needs.
type Frame struct {
	Show   bool
	Back   wave.Outline
	Front  wave.Outline
	Mask   wave.Mask
	Styles Styles
	Border *Border
}

// Render composites f onto c: clear, back layer, front layer, circular
// mask, then the border ring. The border is not clipped by the mask.
// With Show false the canvas is left fully transparent.
func Render(c *raster.Canvas, f Frame) {
	c.Clear()
	if !f.Show {
		return
	}

	c.Fill(f.Styles.Behind, f.Back.Points)
	c.Fill(f.Styles.Front, f.Front.Points)
	c.Erase(f.Mask.Contours...)

	if f.Border != nil && f.Border.Width > 0 {
		bw := float64(f.Border.Width)
		// Keeps the ring inside the face: (diameter − width) / 2.
		radius := (2*f.Mask.Radius - bw) / 2
		c.StrokeCircle(f.Mask.Center, radius, bw, f.Border.Color)
	}
}
