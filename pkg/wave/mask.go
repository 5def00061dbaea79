package wave

import (
	"math"

	vmath "github.com/Faultbox/waveview/pkg/math"
)

// Mask is the circular window the wave layers are clipped to.
//
// Contours hold the region outside the circle: the viewport rectangle
// traced clockwise on screen and the circle traced counter-clockwise.
// Filling them with the non-zero rule covers exactly what must be erased.
type Mask struct {
	Width, Height int
	Center        vmath.Vec2
	Radius        float64
	Contours      [][]vmath.Vec2
}

// BuildMask returns the mask for a width×height viewport. The circle is
// centered in the viewport and touches its shorter side.
func BuildMask(width, height int) Mask {
	w := float64(width)
	h := float64(height)
	m := Mask{
		Width:  width,
		Height: height,
		Center: vmath.Vec2{X: w / 2, Y: h / 2},
		Radius: math.Min(w, h) / 2,
	}

	rect := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h / 2},
		{X: w, Y: h},
		{X: 0, Y: h},
		{X: 0, Y: 0},
	}
	m.Contours = [][]vmath.Vec2{rect, vmath.Circle(m.Center, m.Radius, false)}
	return m
}

// Contains reports whether p lies strictly inside the circle.
func (m Mask) Contains(p vmath.Vec2) bool {
	return p.Distance(m.Center) < m.Radius
}

// MaskCache rebuilds the mask only when the viewport size changes.
type MaskCache struct {
	mask   Mask
	valid  bool
	builds int
}

// Get returns the mask for width×height, reusing the last one when the size matches.
func (c *MaskCache) Get(width, height int) Mask {
	if !c.valid || c.mask.Width != width || c.mask.Height != height {
		c.mask = BuildMask(width, height)
		c.valid = true
		c.builds++
	}
	return c.mask
}

// Builds returns how many times the mask has been rebuilt.
func (c *MaskCache) Builds() int {
	return c.builds
}

// Reset drops the cached mask.
func (c *MaskCache) Reset() {
	c.valid = false
}
