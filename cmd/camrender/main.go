// Package main renders a cam mechanism animation to PNG frames.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/camkinetics/camrender/internal/animation"
	"github.com/camkinetics/camrender/internal/config"
	"github.com/camkinetics/camrender/internal/engine/capture"
	"github.com/camkinetics/camrender/internal/engine/offscreen"
	"github.com/camkinetics/camrender/internal/engine/renderer"
	"github.com/camkinetics/camrender/internal/logger"
	"github.com/camkinetics/camrender/internal/scenario"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log.Info("=== camrender ===",
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.Int("frames", cfg.Capture.Frames))

	if err := run(cfg, log); err != nil {
		log.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	scn, err := loadScenario(cfg, log)
	if err != nil {
		return err
	}

	glCtx, err := offscreen.New(log)
	if err != nil {
		return fmt.Errorf("creating GL context: %w", err)
	}
	defer glCtx.Close()

	rend, err := renderer.New(cfg.Render.Width, cfg.Render.Height, log)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	anim := animation.New(rend, log)
	defer anim.Close()

	if err := anim.UpdateData(scn.Profile()); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	anim.Play()

	writer := capture.NewFrameWriter(cfg.Capture.OutputDir, "frame")
	for i := 0; i < cfg.Capture.Frames; i++ {
		anim.Render()

		pixels := rend.ReadPixels()
		w, h := rend.Size()
		path, err := writer.Write(pixels, w, h)
		if err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		log.Debug("frame written",
			zap.Int("index", i),
			zap.Int("animation_frame", anim.CurrentFrame()),
			zap.String("path", path))
	}

	log.Info("capture complete",
		zap.Int("frames", cfg.Capture.Frames),
		zap.String("dir", cfg.Capture.OutputDir))
	return nil
}

func loadScenario(cfg *config.Config, log *zap.Logger) (*scenario.Scenario, error) {
	if cfg.Scenario.Path != "" {
		scn, err := scenario.Load(cfg.Scenario.Path)
		if err != nil {
			return nil, fmt.Errorf("loading scenario: %w", err)
		}
		log.Info("scenario loaded",
			zap.String("path", cfg.Scenario.Path),
			zap.String("name", scn.Name),
			zap.Int("frames", len(scn.PhiArray)))
		return scn, nil
	}

	scn, err := scenario.Synthesize(scenario.DefaultSynthesis())
	if err != nil {
		return nil, fmt.Errorf("synthesizing scenario: %w", err)
	}
	log.Info("no scenario given, synthesized default",
		zap.Int("frames", len(scn.PhiArray)))
	return scn, nil
}
