package snapshot

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/pkg/waveview"
)

func TestFrameName(t *testing.T) {
	w := NewWriter("out", "wave")
	if got, want := w.FrameName(7), filepath.Join("out", "wave_0007.png"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	bare := NewWriter("", "wave")
	if got := bare.FrameName(12); got != "wave_0012.png" {
		t.Errorf("expected wave_0012.png, got %s", got)
	}
}

func TestCaptureName(t *testing.T) {
	w := NewWriter("shots", "wave")
	w.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	want := filepath.Join("shots", "wave_2026-03-04_05-06-07.png")
	if got := w.CaptureName(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	w := NewWriter(dir, "wave")

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	name, err := w.Capture(img)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	decoded := decodePNG(t, name)
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("expected 4x3 image, got %v", decoded.Bounds())
	}
}

func TestRender(t *testing.T) {
	v, err := waveview.New(waveview.WithShowWave(true))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d, err := anim.New(anim.Config{
		ShiftPeriod:    time.Second,
		WaterLevelFrom: 0.5,
		WaterLevelTo:   0.5,
		AmplitudeFrom:  0.05,
		AmplitudeTo:    0.05,
	}, nil)
	if err != nil {
		t.Fatalf("anim.New failed: %v", err)
	}

	dir := t.TempDir()
	names, err := Render(v, Sequence{Width: 20, Height: 20, Frames: 3, FPS: 10, Driver: d}, NewWriter(dir, "wave"), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(names) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(names))
	}
	if d.Elapsed() != 200*time.Millisecond {
		t.Errorf("expected driver at 200ms after 3 frames, got %v", d.Elapsed())
	}
	if got := v.WaveShiftRatio(); got < 0.199 || got > 0.201 {
		t.Errorf("expected shift 0.2, got %f", got)
	}

	img := decodePNG(t, names[2])
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Fatalf("expected 20x20 frame, got %v", img.Bounds())
	}
	if _, _, _, a := img.At(10, 16).RGBA(); a == 0 {
		t.Error("expected water below the surface")
	}
	if _, _, _, a := img.At(10, 3).RGBA(); a != 0 {
		t.Error("expected empty space above the surface")
	}
	if _, _, _, a := img.At(0, 19).RGBA(); a != 0 {
		t.Error("expected corner outside the circle to be clear")
	}
}

func TestRenderRejectsFPS(t *testing.T) {
	v, _ := waveview.New()
	if _, err := Render(v, Sequence{Width: 10, Height: 10, Frames: 1}, NewWriter(t.TempDir(), "wave"), nil); err == nil {
		t.Error("expected error for zero fps, got nil")
	}
}

func decodePNG(t *testing.T, name string) image.Image {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("failed to open %s: %v", name, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", name, err)
	}
	return img
}
