// Package raster draws anti-aliased polygons into an RGBA image.
//
// Contours are closed point lists in pixel space. Several contours passed
// together are filled with the non-zero rule, so a contour traced against
// the winding of an enclosing one cuts a hole.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	vmath "github.com/Faultbox/waveview/pkg/math"
)

// Canvas is a drawing surface backed by a premultiplied RGBA image.
type Canvas struct {
	img      *image.RGBA
	ras      vector.Rasterizer
	coverage *image.Alpha
}

// NewCanvas allocates a transparent width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return Wrap(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// Wrap draws directly into img. The image origin must be (0, 0).
func Wrap(img *image.RGBA) *Canvas {
	return &Canvas{img: img}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image when the size changes.
// The contents are not preserved.
func (c *Canvas) Resize(width, height int) {
	if w, h := c.Size(); w == width && h == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.coverage = nil
}

// Clear sets every pixel to fully transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Fill composites col over the area enclosed by the contours.
func (c *Canvas) Fill(col color.Color, contours ...[]vmath.Vec2) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	c.trace(w, h, contours)
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Erase scales every pixel by one minus its coverage by the contours:
// fully covered pixels become transparent, uncovered pixels are untouched.
func (c *Canvas) Erase(contours ...[]vmath.Vec2) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	cov := c.rasterCoverage(w, h, contours)

	for y := 0; y < h; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		crow := cov.Pix[y*cov.Stride : y*cov.Stride+w]
		for x, a := range crow {
			if a == 0 {
				continue
			}
			keep := uint32(255 - a)
			px := row[x*4 : x*4+4]
			for i := range px {
				px[i] = uint8((uint32(px[i])*keep + 127) / 255)
			}
		}
	}
}

// StrokeCircle draws a ring of the given stroke width centered on the
// circle of the given radius.
func (c *Canvas) StrokeCircle(center vmath.Vec2, radius, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	outer := radius + width/2
	inner := radius - width/2
	if outer <= 0 {
		return
	}

	contours := [][]vmath.Vec2{vmath.Circle(center, outer, true)}
	if inner > 0 {
		contours = append(contours, vmath.Circle(center, inner, false))
	}
	c.Fill(col, contours...)
}

// Coverage returns the anti-aliased coverage of the contours without
// touching the canvas. The returned image is reused by later calls.
func (c *Canvas) Coverage(contours ...[]vmath.Vec2) *image.Alpha {
	w, h := c.Size()
	return c.rasterCoverage(w, h, contours)
}

func (c *Canvas) rasterCoverage(w, h int, contours [][]vmath.Vec2) *image.Alpha {
	if c.coverage == nil || c.coverage.Bounds().Dx() != w || c.coverage.Bounds().Dy() != h {
		c.coverage = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(c.coverage.Pix)
	}
	if w == 0 || h == 0 {
		return c.coverage
	}
	c.trace(w, h, contours)
	c.ras.DrawOp = draw.Src
	c.ras.Draw(c.coverage, c.coverage.Bounds(), image.Opaque, image.Point{})
	return c.coverage
}

func (c *Canvas) trace(w, h int, contours [][]vmath.Vec2) {
	c.ras.Reset(w, h)
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		c.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			c.ras.LineTo(float32(p.X), float32(p.Y))
		}
		c.ras.ClosePath()
	}
}
