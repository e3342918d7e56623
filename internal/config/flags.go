package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagWidth    = flag.Int("width", 0, "Render target width")
	flagHeight   = flag.Int("height", 0, "Render target height")
	flagFrames   = flag.Int("frames", 0, "Number of frames to render")
	flagOut      = flag.String("out", "", "Frame capture output directory")
	flagScenario = flag.String("scenario", "", "Path to scenario YAML file")
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
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagFrames > 0 {
		cfg.Capture.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Capture.OutputDir = *flagOut
	}
	if *flagScenario != "" {
		cfg.Scenario.Path = *flagScenario
	}
}
