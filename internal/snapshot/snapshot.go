// Package snapshot writes rendered wave frames to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/pkg/raster"
	"github.com/Faultbox/waveview/pkg/waveview"
)

// Writer names and writes PNG files under one directory.
type Writer struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewWriter creates a writer. An empty dir writes to the working directory.
func NewWriter(outputDir, prefix string) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FrameName returns the file name for sequence frame i.
func (w *Writer) FrameName(i int) string {
	return w.path(fmt.Sprintf("%s_%04d.png", w.prefix, i))
}

// CaptureName returns a timestamped file name.
func (w *Writer) CaptureName() string {
	return w.path(fmt.Sprintf("%s_%s.png", w.prefix, w.now().Format("2006-01-02_15-04-05")))
}

func (w *Writer) path(name string) string {
	if w.outputDir == "" {
		return name
	}
	return filepath.Join(w.outputDir, name)
}

// WriteFrame writes img as sequence frame i and returns the file name.
func (w *Writer) WriteFrame(i int, img image.Image) (string, error) {
	name := w.FrameName(i)
	return name, w.write(name, img)
}

// Capture writes img under a timestamped name.
func (w *Writer) Capture(img image.Image) (string, error) {
	name := w.CaptureName()
	return name, w.write(name, img)
}

func (w *Writer) write(filename string, img image.Image) error {
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

// Sequence describes a headless render run.
type Sequence struct {
	Width, Height int
	Frames        int
	FPS           int
	Driver        *anim.Driver // nil renders the view as configured
}

// Render draws seq.Frames frames of v, advancing the driver by one frame
// interval between them, and writes each one through w. It returns the
// written file names.
func Render(v *waveview.View, seq Sequence, w *Writer, log *zap.Logger) ([]string, error) {
	if seq.FPS <= 0 {
		return nil, fmt.Errorf("snapshot: fps must be positive, got %d", seq.FPS)
	}
	if log == nil {
		log = zap.NewNop()
	}

	canvas := raster.NewCanvas(seq.Width, seq.Height)
	v.SizeChanged(seq.Width, seq.Height)
	step := time.Second / time.Duration(seq.FPS)

	names := make([]string, 0, seq.Frames)
	for i := 0; i < seq.Frames; i++ {
		if seq.Driver != nil {
			var err error
			if i == 0 {
				err = seq.Driver.Apply(v)
			} else {
				err = seq.Driver.Advance(v, step)
			}
			if err != nil {
				return names, fmt.Errorf("frame %d: %w", i, err)
			}
		}

		if err := v.Draw(canvas); err != nil {
			return names, fmt.Errorf("frame %d: %w", i, err)
		}

		name, err := w.WriteFrame(i, canvas.Image())
		if err != nil {
			return names, fmt.Errorf("frame %d: %w", i, err)
		}
		names = append(names, name)
		log.Debug("frame written", zap.Int("index", i), zap.String("file", name))
	}
	return names, nil
}
