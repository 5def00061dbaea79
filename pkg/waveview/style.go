package waveview

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Layer alphas used by the classic widget: the back layer is fainter so
// the front layer reads as nearer water.
const (
	DefaultBehindAlpha = 40
	DefaultFrontAlpha  = 60
)

// DefaultWaveColor is the classic green.
var DefaultWaveColor = color.NRGBA{R: 0x33, G: 0xCC, B: 0x55, A: 0xFF}

// Styles holds the fill colors of the two wave layers.
type Styles struct {
	Behind color.NRGBA // back layer, drawn first
	Front  color.NRGBA // front layer, drawn on top
}

// NewStyles derives both layer colors from one hue. The alpha of c is
// ignored; the layers use behindAlpha and frontAlpha instead.
func NewStyles(c color.Color, behindAlpha, frontAlpha uint8) Styles {
	base, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent input carries no hue.
		base = colorful.Color{}
	}
	r, g, b := base.Clamped().RGB255()
	return Styles{
		Behind: color.NRGBA{R: r, G: g, B: b, A: behindAlpha},
		Front:  color.NRGBA{R: r, G: g, B: b, A: frontAlpha},
	}
}

// DefaultStyles returns the classic green layers.
func DefaultStyles() Styles {
	return NewStyles(DefaultWaveColor, DefaultBehindAlpha, DefaultFrontAlpha)
}

// Border describes the optional ring drawn around the wave face.
type Border struct {
	Width int
	Color color.NRGBA
}
