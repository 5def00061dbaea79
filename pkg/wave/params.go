// Package wave generates the geometry of the double-layer water wave and
// the circular mask that frames it.
//
//	+------------------------+
//	|<--wave length->        |______
//	|   /\          |   /\   |  |
//	|  /  \         |  /  \  | amplitude
//	| /    \        | /    \ |  |
//	|/      \       |/      \|__|____
//	|        \      /        |  |
//	|         \    /         |  |
//	|          \  /          |  |
//	|           \/           | water level
//	|                        |  |
//	|                        |  |
//	+------------------------+__|____
package wave

import (
	"errors"
	"fmt"
	"math"
)

// Default ratios for a freshly created wave.
const (
	DefaultAmplitudeRatio  = 0.05
	DefaultWaterLevelRatio = 0.5
	DefaultWaveLengthRatio = 1.0
	DefaultWaveShiftRatio  = 0.0
)

var (
	ErrInvalidAmplitude  = errors.New("wave: amplitude ratio must be finite and in [0, 1)")
	ErrInvalidWaveLength = errors.New("wave: wave length ratio must be finite and greater than 0")
	ErrInvalidWaterLevel = errors.New("wave: water level ratio must be finite and in [0, 1]")
	ErrInvalidShift      = errors.New("wave: wave shift ratio must be finite")
	ErrEmptyViewport     = errors.New("wave: viewport width and height must be greater than 0")
	ErrInvalidStride     = errors.New("wave: sample stride must be at least 1")
)

// Params is the per-frame snapshot of the wave configuration.
// All ratios are relative to the viewport (see package doc).
type Params struct {
	AmplitudeRatio  float64
	WaveLengthRatio float64
	WaterLevelRatio float64
	WaveShiftRatio  float64
}

// DefaultParams returns the resting configuration: a gentle wave half full.
func DefaultParams() Params {
	return Params{
		AmplitudeRatio:  DefaultAmplitudeRatio,
		WaveLengthRatio: DefaultWaveLengthRatio,
		WaterLevelRatio: DefaultWaterLevelRatio,
		WaveShiftRatio:  DefaultWaveShiftRatio,
	}
}

// Validate checks every ratio, returning the first violation.
func (p Params) Validate() error {
	if err := ValidateAmplitude(p.AmplitudeRatio); err != nil {
		return err
	}
	if err := ValidateWaveLength(p.WaveLengthRatio); err != nil {
		return err
	}
	if err := ValidateWaterLevel(p.WaterLevelRatio); err != nil {
		return err
	}
	return ValidateShift(p.WaveShiftRatio)
}

// ValidateAmplitude accepts 0 (flat surface) up to but excluding 1.
func ValidateAmplitude(v float64) error {
	if !finite(v) || v < 0 || v >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidAmplitude, v)
	}
	return nil
}

// ValidateWaveLength rejects zero and negative lengths, which would make
// the angular frequency infinite.
func ValidateWaveLength(v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWaveLength, v)
	}
	return nil
}

// ValidateWaterLevel accepts the closed range [0, 1].
func ValidateWaterLevel(v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidWaterLevel, v)
	}
	return nil
}

// ValidateShift accepts any finite value; the phase wraps naturally.
func ValidateShift(v float64) error {
	if !finite(v) {
		return fmt.Errorf("%w: got %v", ErrInvalidShift, v)
	}
	return nil
}

// Derived holds the pixel-space constants computed from Params for one viewport size.
type Derived struct {
	Width, Height    float64
	AngularFrequency float64 // ω = 2π / (waveLengthRatio · width)
	Amplitude        float64 // A = height · amplitudeRatio
	WaterLevel       float64 // L = height · (1 − waterLevelRatio)
	WaveLength       float64 // waveLengthRatio · width
	XOffset          float64 // waveShiftRatio · width
}

// Derive computes the pixel constants for a width×height viewport.
func (p Params) Derive(width, height int) (Derived, error) {
	if width <= 0 || height <= 0 {
		return Derived{}, fmt.Errorf("%w: got %dx%d", ErrEmptyViewport, width, height)
	}
	if err := p.Validate(); err != nil {
		return Derived{}, err
	}

	w := float64(width)
	h := float64(height)
	waveLength := p.WaveLengthRatio * w
	return Derived{
		Width:            w,
		Height:           h,
		AngularFrequency: 2 * math.Pi / waveLength,
		Amplitude:        h * p.AmplitudeRatio,
		WaterLevel:       h * (1 - p.WaterLevelRatio),
		WaveLength:       waveLength,
		XOffset:          p.WaveShiftRatio * w,
	}, nil
}

// QuarterWaveLength is the phase lag of the second layer, in pixels.
func (d Derived) QuarterWaveLength() float64 {
	return d.WaveLength / 4
}

// SurfaceY returns the surface height at x for a layer lagging by phase pixels.
func (d Derived) SurfaceY(x, phase float64) float64 {
	return d.WaterLevel + d.Amplitude*math.Sin(d.AngularFrequency*(x-d.XOffset-phase))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
