// Package app runs the interactive waveview window.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/internal/config"
	"github.com/Faultbox/waveview/internal/engine/input"
	"github.com/Faultbox/waveview/internal/engine/present"
	"github.com/Faultbox/waveview/internal/engine/window"
	"github.com/Faultbox/waveview/internal/logger"
	"github.com/Faultbox/waveview/internal/snapshot"
	"github.com/Faultbox/waveview/pkg/raster"
	"github.com/Faultbox/waveview/pkg/wave"
	"github.com/Faultbox/waveview/pkg/waveview"
)

// App is the interactive host.
type App struct {
	cfg     *config.Config
	running bool

	window    *window.Window
	presenter *present.Presenter
	input     *input.Input

	view       *waveview.View
	driver     *anim.Driver
	controller *Controller
	canvas     *raster.Canvas
	shots      *snapshot.Writer

	redraws int
	log     *zap.Logger
}

// New creates the window, GL pipeline and view from cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("animation", cfg.Animation.Enabled),
	)

	opts, err := cfg.ViewOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, waveview.WithInvalidate(func() { a.redraws++ }))
	a.view, err = waveview.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating view: %w", err)
	}

	if cfg.Animation.Enabled {
		a.driver, err = anim.New(cfg.Animation.DriverConfig(), logger.Named("anim"))
		if err != nil {
			return nil, fmt.Errorf("creating animation driver: %w", err)
		}
	}

	border, _ := cfg.Border.Border()
	a.controller = NewController(a.view, a.driver, border, a.log)
	a.shots = snapshot.NewWriter(cfg.Snapshot.Dir, cfg.Snapshot.Prefix)

	// Window first, the GL context must exist before the presenter
	a.window, err = window.New(window.Config{
		Title:      "waveview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	bg, _ := config.ParseColor(cfg.Graphics.Background)
	a.presenter, err = present.New(bg)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	a.input = input.New()
	a.canvas = raster.NewCanvas(a.window.DrawableSize())
	a.view.SizeChanged(a.canvas.Size())

	a.log.Info("initialized successfully")
	return a, nil
}

// Run starts the frame loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	var frameBudget time.Duration
	if !a.cfg.Graphics.VSync && a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	if a.driver != nil {
		if err := a.driver.Apply(a.view); err != nil {
			return fmt.Errorf("animation error: %w", err)
		}
	}

	a.log.Info("starting frame loop")

	for a.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime)
		lastTime = frameStart

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.resize()
			case input.EventKeyDown:
				a.handle(a.input.Action(event))
			}
		}

		// 2. Advance animation
		if a.driver != nil {
			if err := a.driver.Advance(a.view, dt); err != nil {
				return fmt.Errorf("animation error: %w", err)
			}
		}

		// 3. Redraw only when something changed
		if a.view.Dirty() {
			if err := a.view.Draw(a.canvas); err != nil && !errors.Is(err, wave.ErrEmptyViewport) {
				return fmt.Errorf("render error: %w", err)
			}
			a.presenter.Upload(a.canvas.Image())
		}

		// 4. Present
		a.presenter.Present(a.window.DrawableSize())
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("redraw_requests", a.redraws),
				zap.Duration("dt", dt),
			)
			frameCount = 0
			a.redraws = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(frameStart); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	return nil
}

func (a *App) handle(action input.Action) {
	if action == input.ActionNone {
		return
	}
	a.log.Debug("action", zap.Stringer("action", action))

	if action == input.ActionScreenshot {
		name, err := a.shots.Capture(a.canvas.Image())
		if err != nil {
			a.log.Warn("screenshot failed", zap.Error(err))
			return
		}
		a.log.Info("screenshot written", zap.String("file", name))
		return
	}

	if a.controller.Handle(action) {
		a.running = false
	}
}

func (a *App) resize() {
	w, h := a.window.DrawableSize()
	if cw, ch := a.canvas.Size(); cw == w && ch == h {
		return
	}
	a.canvas.Resize(w, h)
	a.view.SizeChanged(w, h)
	a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
}

// Close releases the window and GL resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.presenter != nil {
		a.presenter.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
