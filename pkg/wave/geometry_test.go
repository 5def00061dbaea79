package wave

import (
	"errors"
	"math"
	"reflect"
	"testing"

	vmath "github.com/Faultbox/waveview/pkg/math"
)

const eps = 1e-9

func scenarioParams() Params {
	return Params{
		AmplitudeRatio:  0.05,
		WaveLengthRatio: 1.0,
		WaterLevelRatio: 0.5,
		WaveShiftRatio:  0,
	}
}

func TestGenerateScenario(t *testing.T) {
	a, _, err := Generate(200, 100, scenarioParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	s := a.Samples()
	if got := s[0].Y; math.Abs(got-50) > eps {
		t.Errorf("expected y_A(0) = 50, got %v", got)
	}
	if got := s[50].Y; math.Abs(got-55) > eps {
		t.Errorf("expected y_A(50) = 55, got %v", got)
	}
	if got := s[150].Y; math.Abs(got-45) > eps {
		t.Errorf("expected y_A(150) = 45, got %v", got)
	}
}

func TestGenerateOutlineShape(t *testing.T) {
	sizes := [][2]int{{1, 1}, {10, 20}, {200, 100}, {333, 333}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		a, b, err := Generate(w, h, DefaultParams())
		if err != nil {
			t.Fatalf("Generate(%d, %d) failed: %v", w, h, err)
		}

		for name, o := range map[string]Outline{"A": a, "B": b} {
			if !o.Closed() {
				t.Errorf("%dx%d layer %s: expected closed outline", w, h, name)
			}
			if got := len(o.Samples()); got != w+1 {
				t.Errorf("%dx%d layer %s: expected %d samples, got %d", w, h, name, w+1, got)
			}
			if got := len(o.Points); got != w+5 {
				t.Errorf("%dx%d layer %s: expected %d points, got %d", w, h, name, w+5, got)
			}

			n := len(o.Samples())
			corners := o.Points[n : n+3]
			want := []vmath.Vec2{
				{X: float64(w), Y: float64(h)},
				{X: 0, Y: float64(h)},
				{X: 0, Y: 0},
			}
			if !reflect.DeepEqual(corners, want) {
				t.Errorf("%dx%d layer %s: expected corners %v, got %v", w, h, name, want, corners)
			}

			for i, p := range o.Samples() {
				if p.X != float64(i) {
					t.Fatalf("%dx%d layer %s: sample %d at x=%v", w, h, name, i, p.X)
				}
				if !p.IsFinite() {
					t.Fatalf("%dx%d layer %s: sample %d not finite: %v", w, h, name, i, p)
				}
			}
		}
	}
}

func TestGeneratePeriodicity(t *testing.T) {
	p := DefaultParams()
	p.WaveLengthRatio = 0.25
	p.WaveShiftRatio = 0.37

	a, b, err := Generate(200, 120, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	period := 50 // 0.25 · 200
	for _, o := range []Outline{a, b} {
		s := o.Samples()
		for x := 0; x+period < len(s); x++ {
			if math.Abs(s[x].Y-s[x+period].Y) > 1e-6 {
				t.Fatalf("y(%d) = %v but y(%d) = %v", x, s[x].Y, x+period, s[x+period].Y)
			}
		}
	}
}

func TestGenerateQuarterPhase(t *testing.T) {
	p := DefaultParams()
	p.WaveShiftRatio = 0.1
	p.AmplitudeRatio = 0.2

	width, height := 240, 160
	_, b, err := Generate(width, height, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	d, err := p.Derive(width, height)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	q := d.QuarterWaveLength()
	for _, pt := range b.Samples() {
		want := d.SurfaceY(pt.X-q, 0)
		if math.Abs(pt.Y-want) > 1e-6 {
			t.Fatalf("y_B(%v) = %v, want y_A(x - %v) = %v", pt.X, pt.Y, q, want)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	p := DefaultParams()
	p.WaveShiftRatio = 0.6

	a1, b1, err := Generate(128, 96, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	a2, b2, err := Generate(128, 96, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a1, a2) || !reflect.DeepEqual(b1, b2) {
		t.Error("expected identical outlines for identical inputs")
	}
}

func TestGenerateFlatSurface(t *testing.T) {
	p := DefaultParams()
	p.AmplitudeRatio = 0
	p.WaterLevelRatio = 0.25

	a, b, err := Generate(50, 80, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, o := range []Outline{a, b} {
		for _, pt := range o.Samples() {
			if pt.Y != 60 {
				t.Fatalf("expected flat surface at y=60, got %v at x=%v", pt.Y, pt.X)
			}
		}
	}
}

func TestGeneratorStride(t *testing.T) {
	g := Generator{Stride: 4}
	a, _, err := g.Generate(10, 10, DefaultParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var xs []float64
	for _, p := range a.Samples() {
		xs = append(xs, p.X)
	}
	want := []float64{0, 4, 8, 10}
	if !reflect.DeepEqual(xs, want) {
		t.Errorf("expected sample xs %v, got %v", want, xs)
	}
	if !a.Closed() {
		t.Error("expected closed outline")
	}
}

func TestGeneratorTruncate(t *testing.T) {
	g := Generator{Truncate: true}
	a, b, err := g.Generate(200, 100, scenarioParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, o := range []Outline{a, b} {
		for _, p := range o.Samples() {
			if p.Y != math.Trunc(p.Y) {
				t.Fatalf("expected whole-pixel height, got %v at x=%v", p.Y, p.X)
			}
		}
	}
	if got := a.Samples()[50].Y; got != 55 {
		t.Errorf("expected truncated y_A(50) = 55, got %v", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	bad := DefaultParams()
	bad.WaveLengthRatio = 0

	tests := []struct {
		name   string
		gen    Generator
		width  int
		height int
		params Params
		want   error
	}{
		{"zero width", Generator{}, 0, 100, DefaultParams(), ErrEmptyViewport},
		{"zero height", Generator{}, 100, 0, DefaultParams(), ErrEmptyViewport},
		{"zero wave length", Generator{}, 100, 100, bad, ErrInvalidWaveLength},
		{"negative stride", Generator{Stride: -1}, 100, 100, DefaultParams(), ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.gen.Generate(tt.width, tt.height, tt.params)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
