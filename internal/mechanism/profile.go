// Package mechanism holds the cam/follower dataset supplied by the host.
package mechanism

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Profile is one complete mechanism dataset. It is replaced wholesale on
// every host update; nothing mutates it between updates.
type Profile struct {
	// Base cam profile in polar form, paired by index.
	BaseCamTheta []float32
	BaseCamR     []float32

	// Optional Cartesian form of the same profile. When both arrays are
	// present and paired, they take precedence over the polar form for
	// rendering; the polar form is retained for reference.
	BaseCamX []float32
	BaseCamY []float32

	// Inner envelope curve in polar form, paired by index. Static in
	// world space.
	InnerEnvelopeTheta []float32
	InnerEnvelopeR     []float32

	// Per-frame phase angle and follower center radius, paired by index.
	// len(PhiArray) defines the frame count.
	PhiArray     []float32
	CenterRArray []float32

	// Scalar mechanism parameters.
	N                   float32
	Stroke              float32
	TDCOffset           float32
	OuterBoundaryRadius float32
	RodLength           float32
	CycleRatio          float32
}

// NumFrames returns the animation frame count defined by the phase array.
func (p *Profile) NumFrames() int {
	if p == nil {
		return 0
	}
	return len(p.PhiArray)
}

// Validate checks the scalar parameters. Length parameters must be
// non-negative and every scalar finite. Array length mismatches are not
// errors; mismatched curves evaluate to empty geometry instead.
func (p *Profile) Validate() error {
	if p.RodLength < 0 {
		return fmt.Errorf("rod length must be non-negative, got %v", p.RodLength)
	}
	if p.OuterBoundaryRadius < 0 {
		return fmt.Errorf("outer boundary radius must be non-negative, got %v", p.OuterBoundaryRadius)
	}
	scalars := map[string]float32{
		"n":                     p.N,
		"stroke":                p.Stroke,
		"tdc_offset":            p.TDCOffset,
		"outer_boundary_radius": p.OuterBoundaryRadius,
		"rod_length":            p.RodLength,
		"cycle_ratio":           p.CycleRatio,
	}
	for name, v := range scalars {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	return nil
}

// HasCartesianCam reports whether the Cartesian cam arrays are usable:
// both present and paired.
func (p *Profile) HasCartesianCam() bool {
	return len(p.BaseCamX) > 0 && len(p.BaseCamX) == len(p.BaseCamY)
}

// HasPolarCam reports whether the polar cam arrays are usable.
func (p *Profile) HasPolarCam() bool {
	return len(p.BaseCamTheta) > 0 && len(p.BaseCamTheta) == len(p.BaseCamR)
}

// HasEnvelope reports whether the envelope arrays are usable.
func (p *Profile) HasEnvelope() bool {
	return len(p.InnerEnvelopeTheta) > 0 && len(p.InnerEnvelopeTheta) == len(p.InnerEnvelopeR)
}

// FrameState returns the phase angle and follower center radius for the
// given frame. Each array wraps independently so mismatched lengths are
// tolerated. Returns zeros when either array is empty.
func (p *Profile) FrameState(frame int) (phi, rCenter float32) {
	if frame < 0 {
		frame = 0
	}
	if len(p.PhiArray) > 0 {
		phi = p.PhiArray[frame%len(p.PhiArray)]
	}
	if len(p.CenterRArray) > 0 {
		rCenter = p.CenterRArray[frame%len(p.CenterRArray)]
	}
	return phi, rCenter
}
