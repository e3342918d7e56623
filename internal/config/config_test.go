package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Render.Height)
	}
	if cfg.Capture.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", cfg.Capture.Frames)
	}
	if cfg.Capture.OutputDir != "frames" {
		t.Errorf("expected output dir 'frames', got %s", cfg.Capture.OutputDir)
	}
	if cfg.Scenario.Path != "" {
		t.Errorf("expected empty scenario path, got %s", cfg.Scenario.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "camrender.yaml")

	yamlContent := `
render:
  width: 1024
  height: 768

capture:
  output_dir: /tmp/cam-frames
  frames: 120

scenario:
  path: scenarios/demo.yaml

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Render.Width != 1024 || cfg.Render.Height != 768 {
		t.Errorf("render size = %dx%d, want 1024x768", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Capture.Frames != 120 {
		t.Errorf("frames = %d, want 120", cfg.Capture.Frames)
	}
	if cfg.Capture.OutputDir != "/tmp/cam-frames" {
		t.Errorf("output dir = %q", cfg.Capture.OutputDir)
	}
	if cfg.Scenario.Path != "scenarios/demo.yaml" {
		t.Errorf("scenario path = %q", cfg.Scenario.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  width: 320\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Render.Width != 320 {
		t.Errorf("width = %d, want 320", cfg.Render.Width)
	}
	if cfg.Render.Height != 600 {
		t.Errorf("height = %d, want default 600", cfg.Render.Height)
	}
	if cfg.Capture.Frames != 60 {
		t.Errorf("frames = %d, want default 60", cfg.Capture.Frames)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "camrender.yaml")

	cfg := Default()
	cfg.Render.Width = 512
	cfg.Logging.Level = "warn"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Render.Width != 512 || loaded.Logging.Level != "warn" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
