package motion

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Params describes one displacement cycle: dwells at top and bottom dead
// center, profiled ramps on both sides of each dwell, and constant-velocity
// strokes between them. Angles are in cam degrees.
type Params struct {
	DwellTDCDeg      float32     `yaml:"dwell_tdc_deg"`
	DwellBDCDeg      float32     `yaml:"dwell_bdc_deg"`
	RampBeforeTDCDeg float32     `yaml:"ramp_before_tdc_deg"`
	RampAfterTDCDeg  float32     `yaml:"ramp_after_tdc_deg"`
	RampBeforeBDCDeg float32     `yaml:"ramp_before_bdc_deg"`
	RampAfterBDCDeg  float32     `yaml:"ramp_after_bdc_deg"`
	Ramp             RampProfile `yaml:"ramp_profile"`
	Stroke           float32     `yaml:"stroke"`
	SamplingStepDeg  float32     `yaml:"sampling_step_deg"`
}

// DefaultParams returns a moderate cycle that renders well.
func DefaultParams() Params {
	return Params{
		DwellTDCDeg:      20,
		DwellBDCDeg:      20,
		RampBeforeTDCDeg: 10,
		RampAfterTDCDeg:  10,
		RampBeforeBDCDeg: 10,
		RampAfterBDCDeg:  10,
		Ramp:             RampS5,
		Stroke:           20,
		SamplingStepDeg:  2,
	}
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	if p.SamplingStepDeg <= 0 || p.SamplingStepDeg > 360 {
		return fmt.Errorf("sampling step must be in (0, 360], got %v", p.SamplingStepDeg)
	}
	if p.Stroke < 0 {
		return fmt.Errorf("stroke must be non-negative, got %v", p.Stroke)
	}
	if !p.Ramp.valid() {
		return fmt.Errorf("unknown ramp profile %q", p.Ramp)
	}
	for _, span := range []float32{
		p.DwellTDCDeg, p.DwellBDCDeg,
		p.RampBeforeTDCDeg, p.RampAfterTDCDeg,
		p.RampBeforeBDCDeg, p.RampAfterBDCDeg,
	} {
		if span < 0 {
			return fmt.Errorf("segment spans must be non-negative, got %v", span)
		}
	}
	return nil
}

// Law is a sampled motion law over one rotation: a uniform angle grid in
// [0, 360) with displacement, per-omega velocity and acceleration at each
// sample. Displacement is centered about zero.
type Law struct {
	ThetaDeg []float32
	X        []float32
	V        []float32
	A        []float32
}

// NumSamples returns the grid size.
func (l *Law) NumSamples() int {
	return len(l.ThetaDeg)
}

// Generate builds the 8-segment motion law: TDC dwell, ramp up, constant
// velocity, ramp down, BDC dwell, ramp, constant velocity, ramp back to
// TDC. Displacement is integrated with the trapezoidal rule.
func Generate(p Params) (*Law, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var thetaDeg []float32
	for t := float32(0); t < 360-1e-6; t += p.SamplingStepDeg {
		thetaDeg = append(thetaDeg, t)
	}
	n := len(thetaDeg)
	if n < 3 {
		return nil, fmt.Errorf("sampling grid too small: %d points", n)
	}
	stepRad := p.SamplingStepDeg * math32.Pi / 180

	// Segment boundaries in degrees, BDC dwell anchored opposite TDC.
	bdcStart := 180 - p.DwellBDCDeg/2
	bdcEnd := 180 + p.DwellBDCDeg/2
	b1 := p.DwellTDCDeg                 // TDC dwell end
	b2 := b1 + p.RampAfterTDCDeg        // ramp up end
	b3 := bdcStart - p.RampBeforeBDCDeg // constant V up end
	b4 := bdcStart                      // ramp down end
	b5 := bdcEnd                        // BDC dwell end
	b6 := bdcEnd + p.RampAfterBDCDeg    // ramp end
	b7 := 360 - p.RampBeforeTDCDeg      // constant V down end
	b8 := float32(360)

	deg2rad := func(d float32) float32 { return d * math32.Pi / 180 }

	// Constant-velocity magnitudes sized so each half-cycle covers the
	// stroke including the ramp contributions.
	iRamp := p.Ramp.Integral(1)
	denomUp := deg2rad(p.RampAfterTDCDeg)*iRamp + deg2rad(maxf(b3-b2, 0)) + deg2rad(p.RampBeforeBDCDeg)*(1-iRamp)
	denomDn := deg2rad(p.RampAfterBDCDeg)*iRamp + deg2rad(maxf(b7-b6, 0)) + deg2rad(p.RampBeforeTDCDeg)*(1-iRamp)
	var vUp, vDn float32
	if denomUp > 0 {
		vUp = p.Stroke / denomUp
	}
	if denomDn > 0 {
		vDn = p.Stroke / denomDn
	}

	// rampV evaluates one ramp segment: velocity magnitude plus the
	// per-omega acceleration from the profile slope over the span.
	rampV := func(start, end, th, vMag float32, up, rising bool) (v, a float32) {
		span := end - start
		if span <= 0 {
			return 0, 0
		}
		t := clamp01((th - start) / span)
		eval := p.Ramp.Eval(t)
		s := eval.S
		if !rising {
			s = 1 - s
		}
		v = vMag * s
		a = vMag * eval.DS / deg2rad(span)
		if !rising {
			a = -a
		}
		if !up {
			v, a = -v, -a
		}
		return v, a
	}

	law := &Law{
		ThetaDeg: thetaDeg,
		X:        make([]float32, n),
		V:        make([]float32, n),
		A:        make([]float32, n),
	}

	var xAccum, prevV float32
	for k, th := range thetaDeg {
		var v, a float32
		switch {
		case th < b1: // TDC dwell
		case th < b2:
			v, a = rampV(b1, b2, th, vUp, true, true)
		case th < b3:
			v = vUp
		case th < b4:
			v, a = rampV(b3, b4, th, vUp, true, false)
		case th < b5: // BDC dwell
		case th < b6:
			v, a = rampV(b5, b6, th, vDn, false, true)
		case th < b7:
			v = -vDn
		case th < b8:
			v, a = rampV(b7, b8, th, vDn, false, false)
		}

		if k > 0 {
			xAccum += 0.5 * (prevV + v) * stepRad
		}
		prevV = v
		law.X[k] = xAccum
		law.V[k] = v
		law.A[k] = a
	}

	// Center displacement about zero so the synthesized follower path is
	// symmetric around its mean radius.
	if p.Stroke > 0 {
		xMin, xMax := law.X[0], law.X[0]
		for _, x := range law.X {
			xMin = minf(xMin, x)
			xMax = maxf(xMax, x)
		}
		offset := (xMin + xMax) / 2
		for k := range law.X {
			law.X[k] -= offset
		}
	}

	return law, nil
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
