package raster

import (
	"image"
	"image/color"
	"testing"

	vmath "github.com/Faultbox/waveview/pkg/math"
)

var opaqueRed = color.RGBA{R: 255, A: 255}

func rect(x0, y0, x1, y1 float64) []vmath.Vec2 {
	return []vmath.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}}
}

func fillOpaque(c *Canvas) {
	for i := range c.Image().Pix {
		c.Image().Pix[i] = 255
	}
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(30, 20)
	w, h := c.Size()
	if w != 30 || h != 20 {
		t.Errorf("expected size 30x20, got %dx%d", w, h)
	}
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected a transparent canvas")
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(8, 8)
	fillOpaque(c)
	c.Clear()
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected every pixel transparent after Clear")
		}
	}
}

func TestResize(t *testing.T) {
	c := NewCanvas(10, 10)
	img := c.Image()

	c.Resize(10, 10)
	if c.Image() != img {
		t.Error("expected same image when size is unchanged")
	}

	c.Resize(40, 25)
	w, h := c.Size()
	if w != 40 || h != 25 {
		t.Errorf("expected size 40x25, got %dx%d", w, h)
	}
}

func TestWrap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	c := Wrap(img)
	c.Fill(opaqueRed, rect(0, 0, 16, 16))
	if got := img.RGBAAt(8, 8); got != opaqueRed {
		t.Errorf("expected wrapped image to be drawn into, got %v", got)
	}
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Fill(opaqueRed, rect(5, 5, 15, 15))

	img := c.Image()
	if got := img.RGBAAt(10, 10); got != opaqueRed {
		t.Errorf("expected red inside rect, got %v", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("expected transparent outside rect, got %v", got)
	}
	if got := img.RGBAAt(15, 10); got.A != 0 {
		t.Errorf("expected pixel at right edge to be outside, got %v", got)
	}
}

func TestFillBlendsOver(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Fill(opaqueRed, rect(0, 0, 10, 10))
	c.Fill(color.NRGBA{B: 255, A: 128}, rect(0, 0, 10, 10))

	got := c.Image().RGBAAt(5, 5)
	if got.A != 255 {
		t.Errorf("expected opaque result, got alpha %d", got.A)
	}
	if got.R < 125 || got.R > 129 || got.B < 126 || got.B > 130 {
		t.Errorf("expected roughly half red and half blue, got %v", got)
	}
}

func TestFillWithHole(t *testing.T) {
	c := NewCanvas(40, 40)
	center := vmath.Vec2{X: 20, Y: 20}
	c.Fill(opaqueRed, vmath.Circle(center, 18, true), vmath.Circle(center, 8, false))

	img := c.Image()
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("expected hole in the middle, got %v", got)
	}
	if got := img.RGBAAt(20+12, 20); got != opaqueRed {
		t.Errorf("expected filled ring, got %v", got)
	}
}

func TestFillIgnoresDegenerateContours(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Fill(opaqueRed, []vmath.Vec2{{X: 1, Y: 1}, {X: 5, Y: 5}})
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected nothing drawn for a two-point contour")
		}
	}
}

func TestErase(t *testing.T) {
	c := NewCanvas(20, 20)
	fillOpaque(c)
	c.Erase(rect(0, 0, 10, 20))

	img := c.Image()
	if got := img.RGBAAt(4, 10); got.A != 0 || got.R != 0 {
		t.Errorf("expected erased pixel, got %v", got)
	}
	if got := img.RGBAAt(15, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected untouched pixel, got %v", got)
	}
}

func TestErasePartialCoverage(t *testing.T) {
	c := NewCanvas(4, 4)
	fillOpaque(c)
	c.Erase(rect(0, 0, 1.5, 4))

	got := c.Image().RGBAAt(1, 1)
	if got.A < 126 || got.A > 129 {
		t.Errorf("expected half-erased edge pixel, got alpha %d", got.A)
	}
}

func TestStrokeCircle(t *testing.T) {
	c := NewCanvas(200, 200)
	black := color.RGBA{A: 255}
	c.StrokeCircle(vmath.Vec2{X: 100, Y: 100}, 98, 4, black)

	img := c.Image()
	if got := img.RGBAAt(198, 100); got != black {
		t.Errorf("expected ring at radius 98, got %v", got)
	}
	if got := img.RGBAAt(100, 1); got != black {
		t.Errorf("expected ring at top, got %v", got)
	}
	if got := img.RGBAAt(100, 100); got.A != 0 {
		t.Errorf("expected empty center, got %v", got)
	}
	if got := img.RGBAAt(190, 100); got.A != 0 {
		t.Errorf("expected empty inside ring, got %v", got)
	}
}

func TestStrokeCircleZeroWidth(t *testing.T) {
	c := NewCanvas(20, 20)
	c.StrokeCircle(vmath.Vec2{X: 10, Y: 10}, 8, 0, opaqueRed)
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected nothing drawn for zero stroke width")
		}
	}
}

func TestCoverage(t *testing.T) {
	c := NewCanvas(10, 10)
	cov := c.Coverage(rect(0, 0, 5, 10))
	if got := cov.AlphaAt(2, 2).A; got != 255 {
		t.Errorf("expected full coverage, got %d", got)
	}
	if got := cov.AlphaAt(7, 2).A; got != 0 {
		t.Errorf("expected no coverage, got %d", got)
	}
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("expected Coverage to leave the canvas untouched")
		}
	}
}
