// Package scenario persists complete mechanism datasets as YAML files and
// synthesizes them from motion-law parameters.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/camkinetics/camrender/internal/mechanism"
)

// Scenario is the on-disk form of one mechanism dataset.
type Scenario struct {
	Name string `yaml:"name"`

	BaseCamTheta []float32 `yaml:"base_cam_theta"`
	BaseCamR     []float32 `yaml:"base_cam_r"`
	BaseCamX     []float32 `yaml:"base_cam_x,omitempty"`
	BaseCamY     []float32 `yaml:"base_cam_y,omitempty"`

	InnerEnvelopeTheta []float32 `yaml:"inner_envelope_theta"`
	InnerEnvelopeR     []float32 `yaml:"inner_envelope_r"`

	PhiArray     []float32 `yaml:"phi_array"`
	CenterRArray []float32 `yaml:"center_r_array"`

	N                   float32 `yaml:"n"`
	Stroke              float32 `yaml:"stroke"`
	TDCOffset           float32 `yaml:"tdc_offset"`
	OuterBoundaryRadius float32 `yaml:"outer_boundary_radius"`
	RodLength           float32 `yaml:"rod_length"`
	CycleRatio          float32 `yaml:"cycle_ratio"`
}

// Profile converts the scenario into a mechanism dataset.
func (s *Scenario) Profile() mechanism.Profile {
	return mechanism.Profile{
		BaseCamTheta:        s.BaseCamTheta,
		BaseCamR:            s.BaseCamR,
		BaseCamX:            s.BaseCamX,
		BaseCamY:            s.BaseCamY,
		InnerEnvelopeTheta:  s.InnerEnvelopeTheta,
		InnerEnvelopeR:      s.InnerEnvelopeR,
		PhiArray:            s.PhiArray,
		CenterRArray:        s.CenterRArray,
		N:                   s.N,
		Stroke:              s.Stroke,
		TDCOffset:           s.TDCOffset,
		OuterBoundaryRadius: s.OuterBoundaryRadius,
		RodLength:           s.RodLength,
		CycleRatio:          s.CycleRatio,
	}
}

// Load reads a scenario from a YAML file and validates its parameters.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	p := s.Profile()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario as YAML, creating parent directories as needed.
func (s *Scenario) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
