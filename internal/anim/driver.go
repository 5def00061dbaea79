// Package anim drives the wave ratios over time for interactive and
// headless hosts.
//
// Three independent tracks run off one clock: the horizontal shift loops
// forever, the water level eases once from a start to an end value and then
// holds, and the amplitude ping-pongs between two values.
package anim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// Target receives driven ratios. *waveview.View satisfies it.
type Target interface {
	SetWaveShiftRatio(ratio float64) error
	SetWaterLevelRatio(ratio float64) error
	SetAmplitudeRatio(ratio float64) error
}

// Config holds the track settings.
type Config struct {
	ShiftPeriod        time.Duration // one full wavelength of travel
	WaterLevelFrom     float64
	WaterLevelTo       float64
	WaterLevelDuration time.Duration // zero jumps straight to WaterLevelTo
	AmplitudeFrom      float64
	AmplitudeTo        float64
	AmplitudePeriod    time.Duration // one leg; zero holds AmplitudeTo
}

// ErrInvalidPeriod is returned when the shift period is not positive.
var ErrInvalidPeriod = errors.New("anim: shift period must be positive")

// Sample holds the ratios for one instant.
type Sample struct {
	Shift      float64
	WaterLevel float64
	Amplitude  float64
}

// Driver advances a clock and pushes the sampled ratios into a Target.
type Driver struct {
	cfg     Config
	elapsed time.Duration
	paused  bool
	held    bool // water level under manual control
	filled  bool
	log     *zap.Logger
}

// New creates a driver at time zero.
func New(cfg Config, log *zap.Logger) (*Driver, error) {
	if cfg.ShiftPeriod <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPeriod, cfg.ShiftPeriod)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{cfg: cfg, log: log}, nil
}

// Elapsed returns the driver clock.
func (d *Driver) Elapsed() time.Duration { return d.elapsed }

// Paused reports whether the clock is stopped.
func (d *Driver) Paused() bool { return d.paused }

// SetPaused stops or restarts the clock.
func (d *Driver) SetPaused(paused bool) {
	if d.paused == paused {
		return
	}
	d.paused = paused
	d.log.Debug("animation paused", zap.Bool("paused", paused), zap.Duration("elapsed", d.elapsed))
}

// TogglePause flips the paused state and returns the new one.
func (d *Driver) TogglePause() bool {
	d.SetPaused(!d.paused)
	return d.paused
}

// HoldWaterLevel stops the driver from writing the water level, leaving it
// to the caller. The other tracks keep running.
func (d *Driver) HoldWaterLevel() {
	d.held = true
}

// WaterLevelHeld reports whether HoldWaterLevel was called.
func (d *Driver) WaterLevelHeld() bool { return d.held }

// Advance moves the clock by dt and applies the new sample to t. While
// paused the clock stays put and nothing is written.
func (d *Driver) Advance(t Target, dt time.Duration) error {
	if d.paused {
		return nil
	}
	if dt > 0 {
		d.elapsed += dt
	}
	return d.Apply(t)
}

// Apply writes the sample at the current clock to t.
func (d *Driver) Apply(t Target) error {
	s := d.Sample(d.elapsed)

	var errs []error
	if err := t.SetWaveShiftRatio(s.Shift); err != nil {
		errs = append(errs, err)
	}
	if err := t.SetAmplitudeRatio(s.Amplitude); err != nil {
		errs = append(errs, err)
	}
	if !d.held {
		if err := t.SetWaterLevelRatio(s.WaterLevel); err != nil {
			errs = append(errs, err)
		}
		if !d.filled && d.elapsed >= d.cfg.WaterLevelDuration {
			d.filled = true
			d.log.Info("water level reached", zap.Float64("ratio", s.WaterLevel))
		}
	}
	return errors.Join(errs...)
}

// Sample returns the ratios at elapsed time e.
func (d *Driver) Sample(e time.Duration) Sample {
	return Sample{
		Shift:      Shift(e, d.cfg.ShiftPeriod),
		WaterLevel: Ease(e, d.cfg.WaterLevelDuration, d.cfg.WaterLevelFrom, d.cfg.WaterLevelTo),
		Amplitude:  PingPong(e, d.cfg.AmplitudePeriod, d.cfg.AmplitudeFrom, d.cfg.AmplitudeTo),
	}
}

// Shift returns the fraction of period covered by e, in [0, 1).
func Shift(e, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(e%period) / float64(period)
}

// Ease interpolates linearly from a to b over duration and holds b after.
func Ease(e, duration time.Duration, a, b float64) float64 {
	if duration <= 0 || e >= duration {
		return b
	}
	if e <= 0 {
		return a
	}
	return a + (b-a)*float64(e)/float64(duration)
}

// PingPong moves linearly from a to b over one leg, back to a over the
// next, and repeats.
func PingPong(e, leg time.Duration, a, b float64) float64 {
	if leg <= 0 {
		return b
	}
	if e <= 0 {
		return a
	}
	u := math.Mod(float64(e)/float64(leg), 2)
	if u > 1 {
		u = 2 - u
	}
	return a + (b-a)*u
}
