package motion

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRampProfilesEndpoints(t *testing.T) {
	for _, profile := range []RampProfile{RampCycloidal, RampS5, RampS7} {
		t.Run(string(profile), func(t *testing.T) {
			start := profile.Eval(0)
			end := profile.Eval(1)

			if math32.Abs(start.S) > 1e-6 {
				t.Errorf("S(0) = %v, want 0", start.S)
			}
			if math32.Abs(end.S-1) > 1e-5 {
				t.Errorf("S(1) = %v, want 1", end.S)
			}
			if math32.Abs(start.DS) > 1e-4 || math32.Abs(end.DS) > 1e-4 {
				t.Errorf("DS at endpoints = %v, %v, want 0, 0", start.DS, end.DS)
			}
		})
	}

	// The smoothsteps are additionally C2: zero acceleration at the ends.
	for _, profile := range []RampProfile{RampS5, RampS7} {
		start := profile.Eval(0)
		end := profile.Eval(1)
		if math32.Abs(start.D2S) > 1e-3 || math32.Abs(end.D2S) > 1e-3 {
			t.Errorf("%s: D2S at endpoints = %v, %v, want 0, 0", profile, start.D2S, end.D2S)
		}
	}
}

func TestRampEvalClampsT(t *testing.T) {
	p := RampS5
	if got := p.Eval(-0.5); got != p.Eval(0) {
		t.Errorf("Eval(-0.5) = %+v, want Eval(0)", got)
	}
	if got := p.Eval(2); got != p.Eval(1) {
		t.Errorf("Eval(2) = %+v, want Eval(1)", got)
	}
}

func TestRampIntegralMonotone(t *testing.T) {
	for _, profile := range []RampProfile{RampCycloidal, RampS5, RampS7} {
		prev := float32(0)
		for i := 1; i <= 10; i++ {
			v := profile.Integral(float32(i) / 10)
			if v < prev-1e-6 {
				t.Errorf("%s: Integral not monotone at t=%v", profile, float32(i)/10)
			}
			prev = v
		}
		if full := profile.Integral(1); full <= 0 || full >= 1 {
			t.Errorf("%s: Integral(1) = %v, want in (0, 1)", profile, full)
		}
	}
}

func TestParseRamp(t *testing.T) {
	if _, err := ParseRamp("s7"); err != nil {
		t.Errorf("ParseRamp(s7) failed: %v", err)
	}
	if _, err := ParseRamp("sinusoidal"); err == nil {
		t.Error("ParseRamp accepted an unknown profile")
	}
}

func TestGenerateSpansStroke(t *testing.T) {
	p := DefaultParams()
	p.Stroke = 20

	law, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var xMin, xMax float32 = law.X[0], law.X[0]
	for _, x := range law.X {
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
	}

	span := xMax - xMin
	if math32.Abs(span-p.Stroke) > 0.5 {
		t.Errorf("displacement span = %v, want ~%v", span, p.Stroke)
	}
	// Centered about zero.
	if math32.Abs(xMax+xMin) > 0.1 {
		t.Errorf("displacement not centered: min %v, max %v", xMin, xMax)
	}
}

func TestGeneratePeriodic(t *testing.T) {
	law, err := Generate(DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	n := law.NumSamples()
	// Velocity is zero in both dwells, so the cycle closes: the last
	// sample's displacement matches the first within integration error.
	if d := math32.Abs(law.X[n-1] - law.X[0]); d > 0.2 {
		t.Errorf("cycle does not close: |x(end) - x(0)| = %v", d)
	}
	if law.V[0] != 0 {
		t.Errorf("V(0) = %v, want 0 (TDC dwell)", law.V[0])
	}
}

func TestGenerateDwellsAreFlat(t *testing.T) {
	p := DefaultParams()
	law, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, th := range law.ThetaDeg {
		inTDCDwell := th < p.DwellTDCDeg
		inBDCDwell := th >= 180-p.DwellBDCDeg/2 && th < 180+p.DwellBDCDeg/2
		if (inTDCDwell || inBDCDwell) && (law.V[i] != 0 || law.A[i] != 0) {
			t.Errorf("sample %d (theta %v) inside dwell has v=%v a=%v", i, th, law.V[i], law.A[i])
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	p := DefaultParams()
	p.SamplingStepDeg = 0
	if _, err := Generate(p); err == nil {
		t.Error("zero sampling step accepted")
	}

	p = DefaultParams()
	p.SamplingStepDeg = 200 // grid of 2 points
	if _, err := Generate(p); err == nil {
		t.Error("tiny sampling grid accepted")
	}

	p = DefaultParams()
	p.Ramp = "bogus"
	if _, err := Generate(p); err == nil {
		t.Error("unknown ramp profile accepted")
	}

	p = DefaultParams()
	p.Stroke = -1
	if _, err := Generate(p); err == nil {
		t.Error("negative stroke accepted")
	}
}
