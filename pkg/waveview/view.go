// Package waveview is the host-facing water level indicator: a parameter
// store with change-detecting setters, redraw coalescing and a draw entry
// point that regenerates the wave every frame.
package waveview

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Faultbox/waveview/pkg/raster"
	"github.com/Faultbox/waveview/pkg/wave"
)

// ErrInvalidBorder is returned for negative border widths.
var ErrInvalidBorder = errors.New("waveview: border width must not be negative")

// View owns the mutable wave state. It is not safe for concurrent use;
// mutate and draw from the rendering goroutine only.
type View struct {
	params   wave.Params
	show     bool
	styles   Styles
	border   Border
	bordered bool

	width, height int

	gen   wave.Generator
	masks wave.MaskCache
	inval *Coalescer
}

// Option configures a View at construction.
type Option func(*View)

// WithParams sets the initial ratios. They are validated by New.
func WithParams(p wave.Params) Option {
	return func(v *View) { v.params = p }
}

// WithGenerator sets the sampling stride and truncation.
func WithGenerator(g wave.Generator) Option {
	return func(v *View) { v.gen = g }
}

// WithStyles sets the layer colors.
func WithStyles(s Styles) Option {
	return func(v *View) { v.styles = s }
}

// WithShowWave sets whether the wave is visible initially.
func WithShowWave(show bool) Option {
	return func(v *View) { v.show = show }
}

// WithBorder configures the initial border ring.
func WithBorder(b Border) Option {
	return func(v *View) {
		v.border = b
		v.bordered = true
	}
}

// WithInvalidate installs the host redraw hook.
func WithInvalidate(request func()) Option {
	return func(v *View) { v.inval.SetRequest(request) }
}

// New creates a hidden View with the default ratios and colors.
func New(opts ...Option) (*View, error) {
	v := &View{
		params: wave.DefaultParams(),
		styles: DefaultStyles(),
		inval:  NewCoalescer(nil),
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := v.params.Validate(); err != nil {
		return nil, err
	}
	if v.bordered && v.border.Width < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBorder, v.border.Width)
	}
	if stride := v.gen.Stride; stride < 0 {
		return nil, fmt.Errorf("%w: got %d", wave.ErrInvalidStride, stride)
	}
	return v, nil
}

// OnInvalidate replaces the host redraw hook.
func (v *View) OnInvalidate(request func()) {
	v.inval.SetRequest(request)
}

// Dirty reports whether a redraw is pending.
func (v *View) Dirty() bool {
	return v.inval.Pending()
}

// Invalidate requests a redraw, coalesced with any request already pending.
func (v *View) Invalidate() {
	v.inval.Invalidate()
}

// Params returns the current ratios.
func (v *View) Params() wave.Params { return v.params }

// AmplitudeRatio returns the wave amplitude relative to the viewport height.
func (v *View) AmplitudeRatio() float64 { return v.params.AmplitudeRatio }

// WaveLengthRatio returns the wave length relative to the viewport width.
func (v *View) WaveLengthRatio() float64 { return v.params.WaveLengthRatio }

// WaterLevelRatio returns the fill level relative to the viewport height.
func (v *View) WaterLevelRatio() float64 { return v.params.WaterLevelRatio }

// WaveShiftRatio returns the horizontal phase shift relative to the viewport width.
func (v *View) WaveShiftRatio() float64 { return v.params.WaveShiftRatio }

// ShowWave reports whether the wave is drawn.
func (v *View) ShowWave() bool { return v.show }

// Styles returns the layer colors.
func (v *View) Styles() Styles { return v.styles }

// Border returns the border ring and whether one is configured.
func (v *View) Border() (Border, bool) { return v.border, v.bordered }

// Size returns the last known viewport size.
func (v *View) Size() (int, int) { return v.width, v.height }

// SetAmplitudeRatio sets the crest height. amplitude + water level should
// stay below 1 to keep the crest inside the viewport.
func (v *View) SetAmplitudeRatio(ratio float64) error {
	return v.setRatio(&v.params.AmplitudeRatio, ratio, wave.ValidateAmplitude)
}

// SetWaveLengthRatio sets the period; 1 draws one full wave across the view.
func (v *View) SetWaveLengthRatio(ratio float64) error {
	return v.setRatio(&v.params.WaveLengthRatio, ratio, wave.ValidateWaveLength)
}

// SetWaterLevelRatio sets the fill level: 0 is empty, 1 is full.
func (v *View) SetWaterLevelRatio(ratio float64) error {
	return v.setRatio(&v.params.WaterLevelRatio, ratio, wave.ValidateWaterLevel)
}

// SetWaveShiftRatio shifts the wave horizontally by ratio × width.
// Animating it from 0 to 1 makes the water flow one view width.
func (v *View) SetWaveShiftRatio(ratio float64) error {
	return v.setRatio(&v.params.WaveShiftRatio, ratio, wave.ValidateShift)
}

// SetParams replaces all ratios at once. Nothing changes if any ratio is invalid.
func (v *View) SetParams(p wave.Params) error {
	if p == v.params {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	v.params = p
	v.inval.Invalidate()
	return nil
}

func (v *View) setRatio(dst *float64, ratio float64, validate func(float64) error) error {
	if *dst == ratio {
		return nil
	}
	if err := validate(ratio); err != nil {
		return err
	}
	*dst = ratio
	v.inval.Invalidate()
	return nil
}

// SetShowWave toggles the wave. A hidden wave renders nothing, border included.
func (v *View) SetShowWave(show bool) {
	if v.show == show {
		return
	}
	v.show = show
	v.inval.Invalidate()
}

// SetBorder draws a ring of the given width and color around the face.
func (v *View) SetBorder(width int, c color.Color) error {
	if width < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBorder, width)
	}
	b := Border{Width: width, Color: color.NRGBAModel.Convert(c).(color.NRGBA)}
	if v.bordered && v.border == b {
		return nil
	}
	v.border = b
	v.bordered = true
	v.inval.Invalidate()
	return nil
}

// ClearBorder removes the border ring.
func (v *View) ClearBorder() {
	if !v.bordered {
		return
	}
	v.border = Border{}
	v.bordered = false
	v.inval.Invalidate()
}

// SetStyles replaces both layer colors.
func (v *View) SetStyles(s Styles) {
	if v.styles == s {
		return
	}
	v.styles = s
	v.inval.Invalidate()
}

// SetWaveColor recolors both layers, keeping their alphas.
func (v *View) SetWaveColor(c color.Color) {
	v.SetStyles(NewStyles(c, v.styles.Behind.A, v.styles.Front.A))
}

// SizeChanged tells the view its viewport was resized. The mask is
// rebuilt only when the size actually differs.
func (v *View) SizeChanged(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.resize(width, height)
	v.inval.Invalidate()
}

func (v *View) resize(width, height int) {
	v.width, v.height = width, height
	if width > 0 && height > 0 {
		v.masks.Get(width, height)
	}
}

// MaskBuilds returns how many times the mask has been rebuilt.
func (v *View) MaskBuilds() int {
	return v.masks.Builds()
}

// Draw renders the current state into c. The canvas size is taken as the
// viewport size. The pending redraw flag is cleared before drawing.
func (v *View) Draw(c *raster.Canvas) error {
	v.inval.BeginFrame()

	w, h := c.Size()
	if w != v.width || h != v.height {
		v.resize(w, h)
	}
	if !v.show {
		Render(c, Frame{})
		return nil
	}
	if w <= 0 || h <= 0 {
		c.Clear()
		return fmt.Errorf("%w: got %dx%d", wave.ErrEmptyViewport, w, h)
	}

	back, front, err := v.gen.Generate(w, h, v.params)
	if err != nil {
		c.Clear()
		return fmt.Errorf("generating wave: %w", err)
	}

	f := Frame{
		Show:   true,
		Back:   back,
		Front:  front,
		Mask:   v.masks.Get(w, h),
		Styles: v.styles,
	}
	if v.bordered {
		b := v.border
		f.Border = &b
	}
	Render(c, f)
	return nil
}
