package mechanism

import (
	"math"
	"testing"
)

func TestValidateRejectsNegativeLengths(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"zero values ok", Profile{CycleRatio: 1}, false},
		{"negative rod length", Profile{RodLength: -1}, true},
		{"negative outer boundary", Profile{OuterBoundaryRadius: -0.5}, true},
		{"nan stroke", Profile{Stroke: float32(math.NaN())}, true},
		{"inf cycle ratio", Profile{CycleRatio: float32(math.Inf(1))}, true},
		{"positive lengths ok", Profile{RodLength: 2, OuterBoundaryRadius: 3, CycleRatio: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNumFrames(t *testing.T) {
	p := &Profile{PhiArray: []float32{0, 1, 2}}
	if p.NumFrames() != 3 {
		t.Errorf("NumFrames() = %d, want 3", p.NumFrames())
	}

	var nilProfile *Profile
	if nilProfile.NumFrames() != 0 {
		t.Errorf("nil profile NumFrames() = %d, want 0", nilProfile.NumFrames())
	}
}

func TestFrameStateWrapsIndependently(t *testing.T) {
	p := &Profile{
		PhiArray:     []float32{0, 1, 2, 3},
		CenterRArray: []float32{10, 20},
	}

	phi, r := p.FrameState(3)
	if phi != 3 || r != 20 {
		t.Errorf("FrameState(3) = (%v, %v), want (3, 20)", phi, r)
	}

	// Frame 5 wraps to phi[1] and centerR[1].
	phi, r = p.FrameState(5)
	if phi != 1 || r != 20 {
		t.Errorf("FrameState(5) = (%v, %v), want (1, 20)", phi, r)
	}
}

func TestFrameStateEmptyArrays(t *testing.T) {
	p := &Profile{}
	phi, r := p.FrameState(7)
	if phi != 0 || r != 0 {
		t.Errorf("FrameState on empty profile = (%v, %v), want (0, 0)", phi, r)
	}
}

func TestCurvePairing(t *testing.T) {
	p := &Profile{
		BaseCamTheta: []float32{0, 1},
		BaseCamR:     []float32{1, 1},
		BaseCamX:     []float32{1, 0},
		BaseCamY:     []float32{0, 1, 2}, // mismatched
	}
	if !p.HasPolarCam() {
		t.Error("HasPolarCam() = false, want true")
	}
	if p.HasCartesianCam() {
		t.Error("HasCartesianCam() = true for mismatched arrays, want false")
	}
	if p.HasEnvelope() {
		t.Error("HasEnvelope() = true for empty arrays, want false")
	}
}
