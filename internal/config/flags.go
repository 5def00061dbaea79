package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Viewport width")
	flagHeight     = flag.Int("height", 0, "Viewport height")
	flagHideWave   = flag.Bool("hide-wave", false, "Start with the wave hidden")
	flagStill      = flag.Bool("still", false, "Disable the animation driver")
	flagBorder     = flag.Int("border", -1, "Border ring width in pixels (0 disables)")
	flagLevel      = flag.Float64("level", -1, "Initial water level ratio (0..1)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagHideWave {
		cfg.Wave.Show = false
	}
	if *flagStill {
		cfg.Animation.Enabled = false
	}
	if *flagBorder >= 0 {
		cfg.Border.Width = *flagBorder
	}
	if *flagLevel >= 0 {
		cfg.Wave.WaterLevelRatio = *flagLevel
		// An explicit level also pins the fill animation there.
		cfg.Animation.WaterLevelFrom = *flagLevel
		cfg.Animation.WaterLevelTo = *flagLevel
	}
}
