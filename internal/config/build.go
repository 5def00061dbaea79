package config

import (
	"fmt"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/pkg/wave"
	"github.com/Faultbox/waveview/pkg/waveview"
)

// ViewOptions turns the wave and border sections into View options.
func (c *Config) ViewOptions() ([]waveview.Option, error) {
	waveColor, err := ParseColor(c.Wave.Color)
	if err != nil {
		return nil, fmt.Errorf("wave: %w", err)
	}

	opts := []waveview.Option{
		waveview.WithParams(c.Wave.Params()),
		waveview.WithShowWave(c.Wave.Show),
		waveview.WithStyles(waveview.NewStyles(waveColor, c.Wave.BehindAlpha, c.Wave.FrontAlpha)),
		waveview.WithGenerator(wave.Generator{Stride: c.Wave.Stride, Truncate: c.Wave.Truncate}),
	}

	if c.Border.Width > 0 {
		b, err := c.Border.Border()
		if err != nil {
			return nil, err
		}
		opts = append(opts, waveview.WithBorder(b))
	}
	return opts, nil
}

// Border returns the configured ring.
func (b BorderConfig) Border() (waveview.Border, error) {
	col, err := ParseColor(b.Color)
	if err != nil {
		return waveview.Border{}, fmt.Errorf("border: %w", err)
	}
	return waveview.Border{Width: b.Width, Color: col}, nil
}

// DriverConfig returns the animation tracks.
func (a AnimationConfig) DriverConfig() anim.Config {
	return anim.Config{
		ShiftPeriod:        a.ShiftPeriod,
		WaterLevelFrom:     a.WaterLevelFrom,
		WaterLevelTo:       a.WaterLevelTo,
		WaterLevelDuration: a.WaterLevelDuration,
		AmplitudeFrom:      a.AmplitudeFrom,
		AmplitudeTo:        a.AmplitudeTo,
		AmplitudePeriod:    a.AmplitudePeriod,
	}
}
