package scenario

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/camkinetics/camrender/internal/motion"
)

// SynthesisParams drives dataset generation from a motion law.
type SynthesisParams struct {
	Name   string        `yaml:"name"`
	Motion motion.Params `yaml:"motion"`

	// Cam pitch curve: r(theta) = CamR0 + CamKPerUnit * normalized
	// velocity.
	CamR0       float32 `yaml:"cam_r0"`
	CamKPerUnit float32 `yaml:"cam_k_per_unit"`

	// Follower center distance about which the displacement swings.
	CenterBias float32 `yaml:"center_distance_bias"`

	N            float32 `yaml:"n"`
	RodLength    float32 `yaml:"rod_length"`
	TDCOffsetDeg float32 `yaml:"tdc_offset_deg"`
	CycleRatio   float32 `yaml:"cycle_ratio"`
}

// DefaultSynthesis returns parameters that produce a readable animation.
func DefaultSynthesis() SynthesisParams {
	return SynthesisParams{
		Name:        "generated",
		Motion:      motion.DefaultParams(),
		CamR0:       40,
		CamKPerUnit: 8,
		CenterBias:  50,
		N:           1,
		RodLength:   60,
		CycleRatio:  1,
	}
}

// Synthesize builds a complete scenario: the motion law supplies the phase
// grid and follower path, the cam pitch curve is shaped from the normalized
// velocity, and the envelope is the follower's own locus.
func Synthesize(sp SynthesisParams) (*Scenario, error) {
	if sp.CamR0 <= 0 {
		return nil, fmt.Errorf("cam base radius must be positive, got %v", sp.CamR0)
	}
	if sp.CenterBias <= 0 {
		return nil, fmt.Errorf("center distance bias must be positive, got %v", sp.CenterBias)
	}
	if sp.RodLength < 0 {
		return nil, fmt.Errorf("rod length must be non-negative, got %v", sp.RodLength)
	}

	law, err := motion.Generate(sp.Motion)
	if err != nil {
		return nil, fmt.Errorf("generating motion law: %w", err)
	}

	n := law.NumSamples()
	var vMax float32 = 1e-12
	for _, v := range law.V {
		vMax = math32.Max(vMax, math32.Abs(v))
	}

	s := &Scenario{
		Name:               sp.Name,
		BaseCamTheta:       make([]float32, n),
		BaseCamR:           make([]float32, n),
		InnerEnvelopeTheta: make([]float32, n),
		InnerEnvelopeR:     make([]float32, n),
		PhiArray:           make([]float32, n),
		CenterRArray:       make([]float32, n),
		N:                  sp.N,
		Stroke:             sp.Motion.Stroke,
		TDCOffset:          sp.TDCOffsetDeg * math32.Pi / 180,
		RodLength:          sp.RodLength,
		CycleRatio:         sp.CycleRatio,
	}

	var maxR float32
	for i := 0; i < n; i++ {
		thetaRad := law.ThetaDeg[i] * math32.Pi / 180
		s.BaseCamTheta[i] = thetaRad
		s.BaseCamR[i] = math32.Max(sp.CamR0+sp.CamKPerUnit*law.V[i]/vMax, 1e-6)
		s.PhiArray[i] = thetaRad
		s.CenterRArray[i] = sp.CenterBias + law.X[i]
		s.InnerEnvelopeTheta[i] = thetaRad
		s.InnerEnvelopeR[i] = s.CenterRArray[i]
		maxR = math32.Max(maxR, s.BaseCamR[i])
		maxR = math32.Max(maxR, s.CenterRArray[i])
	}
	maxR = math32.Max(maxR, sp.Motion.Stroke+sp.RodLength)
	s.OuterBoundaryRadius = maxR * 1.1

	return s, nil
}
