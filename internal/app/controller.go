package app

import (
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/internal/engine/input"
	"github.com/Faultbox/waveview/pkg/waveview"
)

// LevelStep is how far one key press moves the water level.
const LevelStep = 0.05

// Controller applies key actions to the view and the animation driver.
type Controller struct {
	view   *waveview.View
	driver *anim.Driver // nil when animation is off
	border waveview.Border
	log    *zap.Logger
}

// NewController creates a controller. border is the ring restored when the
// border is toggled back on.
func NewController(v *waveview.View, d *anim.Driver, border waveview.Border, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if border.Width <= 0 {
		border = waveview.Border{Width: 4, Color: v.Styles().Front}
		border.Color.A = 0xFF
	}
	return &Controller{view: v, driver: d, border: border, log: log}
}

// Handle applies a and reports whether the host should quit.
func (c *Controller) Handle(a input.Action) bool {
	switch a {
	case input.ActionQuit:
		return true

	case input.ActionToggleWave:
		c.view.SetShowWave(!c.view.ShowWave())
		c.log.Debug("wave toggled", zap.Bool("show", c.view.ShowWave()))

	case input.ActionToggleBorder:
		if _, ok := c.view.Border(); ok {
			c.view.ClearBorder()
		} else if err := c.view.SetBorder(c.border.Width, c.border.Color); err != nil {
			c.log.Warn("border rejected", zap.Error(err))
		}

	case input.ActionLevelUp:
		c.nudgeLevel(LevelStep)

	case input.ActionLevelDown:
		c.nudgeLevel(-LevelStep)

	case input.ActionTogglePause:
		if c.driver != nil {
			c.driver.TogglePause()
		}
	}
	return false
}

func (c *Controller) nudgeLevel(delta float64) {
	if c.driver != nil {
		c.driver.HoldWaterLevel()
	}
	// Round to the step grid so repeated presses land on exact values.
	level := math.Round((c.view.WaterLevelRatio()+delta)/LevelStep) * LevelStep
	level = math.Max(0, math.Min(1, level))
	if err := c.view.SetWaterLevelRatio(level); err != nil {
		c.log.Warn("water level rejected", zap.Float64("ratio", level), zap.Error(err))
		return
	}
	c.log.Debug("water level set", zap.Float64("ratio", level))
}
