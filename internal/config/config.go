// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Capture  CaptureConfig  `yaml:"capture"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RenderConfig holds offscreen target settings.
type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CaptureConfig holds PNG sequence output settings.
type CaptureConfig struct {
	OutputDir string `yaml:"output_dir"`
	Frames    int    `yaml:"frames"`
}

// ScenarioConfig selects the mechanism dataset. An empty path means a
// dataset is synthesized from default motion-law parameters.
type ScenarioConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:  800,
			Height: 600,
		},
		Capture: CaptureConfig{
			OutputDir: "frames",
			Frames:    60,
		},
		Scenario: ScenarioConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
