// Package main renders waveview frames to PNG files without a window.
//
// Usage:
//
//	wavesnap [flags]
//
// Frames are written as <prefix>_0000.png, <prefix>_0001.png, ... into the
// snapshot directory. All waveview config flags apply.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/waveview/internal/anim"
	"github.com/Faultbox/waveview/internal/config"
	"github.com/Faultbox/waveview/internal/logger"
	"github.com/Faultbox/waveview/internal/snapshot"
	"github.com/Faultbox/waveview/pkg/waveview"
)

var (
	flagSingle = flag.Bool("single", false, "Write only the first frame")
	flagOut    = flag.String("out", "", "Output directory (overrides snapshot.dir)")
	flagFrames = flag.Int("frames", 0, "Number of frames (overrides snapshot.frames)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *flagOut != "" {
		cfg.Snapshot.Dir = *flagOut
	}
	if *flagFrames > 0 {
		cfg.Snapshot.Frames = *flagFrames
	}
	if *flagSingle {
		cfg.Snapshot.Frames = 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.Named("wavesnap")

	opts, err := cfg.ViewOptions()
	if err != nil {
		return err
	}
	v, err := waveview.New(opts...)
	if err != nil {
		return fmt.Errorf("creating view: %w", err)
	}

	seq := snapshot.Sequence{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		Frames: cfg.Snapshot.Frames,
		FPS:    cfg.Snapshot.FPS,
	}
	if cfg.Animation.Enabled {
		seq.Driver, err = anim.New(cfg.Animation.DriverConfig(), logger.Named("anim"))
		if err != nil {
			return fmt.Errorf("creating animation driver: %w", err)
		}
	}

	names, err := snapshot.Render(v, seq, snapshot.NewWriter(cfg.Snapshot.Dir, cfg.Snapshot.Prefix), log)
	if err != nil {
		return err
	}

	log.Info("frames written",
		zap.Int("count", len(names)),
		zap.String("dir", cfg.Snapshot.Dir),
		zap.Int("width", seq.Width),
		zap.Int("height", seq.Height),
	)
	return nil
}
