// Package config handles waveview configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/waveview/pkg/wave"
)

// Config holds all waveview settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Wave      WaveConfig      `yaml:"wave"`
	Border    BorderConfig    `yaml:"border"`
	Animation AnimationConfig `yaml:"animation"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds window and presentation settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
	Background string `yaml:"background"` // hex color behind the widget
}

// WaveConfig holds the initial wave ratios and layer styling.
type WaveConfig struct {
	AmplitudeRatio  float64 `yaml:"amplitude_ratio"`
	WaveLengthRatio float64 `yaml:"wave_length_ratio"`
	WaterLevelRatio float64 `yaml:"water_level_ratio"`
	WaveShiftRatio  float64 `yaml:"wave_shift_ratio"`
	Show            bool    `yaml:"show"`
	Color           string  `yaml:"color"`
	BehindAlpha     uint8   `yaml:"behind_alpha"`
	FrontAlpha      uint8   `yaml:"front_alpha"`
	Stride          int     `yaml:"stride"`   // Sample spacing in pixels
	Truncate        bool    `yaml:"truncate"` // Snap surface heights to whole pixels
}

// BorderConfig holds the border ring settings. Width 0 disables the ring.
type BorderConfig struct {
	Width int    `yaml:"width"`
	Color string `yaml:"color"`
}

// AnimationConfig holds the host animation driver settings.
type AnimationConfig struct {
	Enabled            bool          `yaml:"enabled"`
	ShiftPeriod        time.Duration `yaml:"shift_period"`
	WaterLevelFrom     float64       `yaml:"water_level_from"`
	WaterLevelTo       float64       `yaml:"water_level_to"`
	WaterLevelDuration time.Duration `yaml:"water_level_duration"`
	AmplitudeFrom      float64       `yaml:"amplitude_from"`
	AmplitudeTo        float64       `yaml:"amplitude_to"`
	AmplitudePeriod    time.Duration `yaml:"amplitude_period"`
}

// SnapshotConfig holds headless rendering settings.
type SnapshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Frames int    `yaml:"frames"`
	FPS    int    `yaml:"fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      400,
			Height:     400,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
			Background: "#1A1A26",
		},
		Wave: WaveConfig{
			AmplitudeRatio:  wave.DefaultAmplitudeRatio,
			WaveLengthRatio: wave.DefaultWaveLengthRatio,
			WaterLevelRatio: wave.DefaultWaterLevelRatio,
			WaveShiftRatio:  wave.DefaultWaveShiftRatio,
			Show:            true,
			Color:           "#33CC55",
			BehindAlpha:     40,
			FrontAlpha:      60,
			Stride:          1,
			Truncate:        false,
		},
		Border: BorderConfig{
			Width: 4,
			Color: "#33CC55",
		},
		Animation: AnimationConfig{
			Enabled:            true,
			ShiftPeriod:        time.Second,
			WaterLevelFrom:     0,
			WaterLevelTo:       0.5,
			WaterLevelDuration: 10 * time.Second,
			AmplitudeFrom:      0.0001,
			AmplitudeTo:        0.05,
			AmplitudePeriod:    5 * time.Second,
		},
		Snapshot: SnapshotConfig{
			Dir:    "snapshots",
			Prefix: "wave",
			Frames: 30,
			FPS:    30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params returns the configured ratios as a wave snapshot.
func (w WaveConfig) Params() wave.Params {
	return wave.Params{
		AmplitudeRatio:  w.AmplitudeRatio,
		WaveLengthRatio: w.WaveLengthRatio,
		WaterLevelRatio: w.WaterLevelRatio,
		WaveShiftRatio:  w.WaveShiftRatio,
	}
}

// ParseColor parses a "#RRGGBB" hex color into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Validate checks that every setting can be applied.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: fps_limit must not be negative, got %d", c.Graphics.FPSLimit))
	}
	if _, err := ParseColor(c.Graphics.Background); err != nil {
		errs = append(errs, fmt.Errorf("graphics: %w", err))
	}

	if err := c.Wave.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseColor(c.Wave.Color); err != nil {
		errs = append(errs, fmt.Errorf("wave: %w", err))
	}
	if c.Wave.Stride < 0 {
		errs = append(errs, fmt.Errorf("wave: %w: got %d", wave.ErrInvalidStride, c.Wave.Stride))
	}

	if c.Border.Width < 0 {
		errs = append(errs, fmt.Errorf("border: width must not be negative, got %d", c.Border.Width))
	}
	if c.Border.Width > 0 {
		if _, err := ParseColor(c.Border.Color); err != nil {
			errs = append(errs, fmt.Errorf("border: %w", err))
		}
	}

	if c.Animation.Enabled {
		errs = append(errs, c.Animation.validate()...)
	}

	if c.Snapshot.Frames < 0 || c.Snapshot.FPS <= 0 {
		errs = append(errs, fmt.Errorf("snapshot: frames must not be negative and fps must be positive, got %d frames at %d fps", c.Snapshot.Frames, c.Snapshot.FPS))
	}

	return errors.Join(errs...)
}

func (a AnimationConfig) validate() []error {
	var errs []error
	if a.ShiftPeriod <= 0 {
		errs = append(errs, fmt.Errorf("animation: shift_period must be positive, got %v", a.ShiftPeriod))
	}
	if a.WaterLevelDuration < 0 || a.AmplitudePeriod < 0 {
		errs = append(errs, errors.New("animation: durations must not be negative"))
	}
	for _, v := range []float64{a.WaterLevelFrom, a.WaterLevelTo} {
		if err := wave.ValidateWaterLevel(v); err != nil {
			errs = append(errs, fmt.Errorf("animation: %w", err))
		}
	}
	for _, v := range []float64{a.AmplitudeFrom, a.AmplitudeTo} {
		if err := wave.ValidateAmplitude(v); err != nil {
			errs = append(errs, fmt.Errorf("animation: %w", err))
		}
	}
	return errs
}
