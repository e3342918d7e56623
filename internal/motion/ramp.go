// Package motion generates follower motion laws: piecewise dwell/ramp/
// constant-velocity displacement cycles over one cam rotation, used to
// synthesize render datasets.
package motion

import (
	"fmt"

	"github.com/chewxy/math32"
)

// RampProfile selects the normalized shape used for velocity ramps.
type RampProfile string

const (
	// RampCycloidal is the classic cosine ramp, C1 at the endpoints.
	RampCycloidal RampProfile = "cycloidal"
	// RampS5 is the quintic smoothstep, zero first and second derivative
	// at the endpoints (C2).
	RampS5 RampProfile = "s5"
	// RampS7 is the septic smoothstep, additionally zero third derivative
	// at the endpoints (C3).
	RampS7 RampProfile = "s7"
)

// ProfileEval holds the normalized position, velocity and acceleration of a
// ramp profile at t in [0,1].
type ProfileEval struct {
	S   float32
	DS  float32
	D2S float32
}

// Eval evaluates the profile at t, clamped into [0,1].
func (p RampProfile) Eval(t float32) ProfileEval {
	t = clamp01(t)
	switch p {
	case RampCycloidal:
		s, c := math32.Sincos(math32.Pi * t)
		return ProfileEval{
			S:   0.5 * (1 - c),
			DS:  0.5 * math32.Pi * s,
			D2S: 0.5 * math32.Pi * math32.Pi * c,
		}
	case RampS7:
		t2 := t * t
		t3 := t2 * t
		t4 := t3 * t
		t5 := t4 * t
		t6 := t5 * t
		t7 := t6 * t
		return ProfileEval{
			S:   35*t4 - 84*t5 + 70*t6 - 20*t7,
			DS:  140*t3 - 420*t4 + 420*t5 - 140*t6,
			D2S: 420*t2 - 1680*t3 + 2100*t4 - 840*t5,
		}
	default: // RampS5
		t2 := t * t
		t3 := t2 * t
		t4 := t3 * t
		t5 := t4 * t
		return ProfileEval{
			S:   10*t3 - 15*t4 + 6*t5,
			DS:  30*t2 - 60*t3 + 30*t4,
			D2S: 60*t - 180*t2 + 120*t3,
		}
	}
}

// Integral returns the analytic integral of S over [0, t], used to size
// constant-velocity spans so the full cycle hits the target stroke.
func (p RampProfile) Integral(t float32) float32 {
	t = clamp01(t)
	switch p {
	case RampCycloidal:
		return 0.5 * (t - math32.Sin(math32.Pi*t)/math32.Pi)
	case RampS7:
		t5 := t * t * t * t * t
		t6 := t5 * t
		t7 := t6 * t
		t8 := t7 * t
		return 7*t5 - 14*t6 + 10*t7 - 2.5*t8
	default: // RampS5
		t4 := t * t * t * t
		t5 := t4 * t
		t6 := t5 * t
		return 2.5*t4 - 3*t5 + t6
	}
}

func (p RampProfile) valid() bool {
	switch p {
	case RampCycloidal, RampS5, RampS7:
		return true
	}
	return false
}

// ParseRamp converts a config string into a RampProfile.
func ParseRamp(s string) (RampProfile, error) {
	p := RampProfile(s)
	if !p.valid() {
		return "", fmt.Errorf("unknown ramp profile %q", s)
	}
	return p, nil
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
