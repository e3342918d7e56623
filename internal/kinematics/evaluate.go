// Package kinematics converts a mechanism dataset and a frame's phase state
// into world-space vertex positions. It is pure: no GL calls, no mutation of
// the profile, deterministic for identical inputs.
package kinematics

import (
	"github.com/chewxy/math32"

	"github.com/camkinetics/camrender/internal/mechanism"
	"github.com/camkinetics/camrender/pkg/geom"
)

// FrameGeometry is the per-frame vertex output. It is recomputed on every
// render and never persisted.
type FrameGeometry struct {
	// Cam is the rotating cam profile, drawn as a closed loop.
	Cam []geom.Vec2
	// Envelope is the fixed boundary curve, drawn as a closed loop.
	Envelope []geom.Vec2
	// Rod is the pivot-to-follower segment: empty or exactly two points.
	Rod []geom.Vec2
}

// Evaluate computes the frame geometry for the given phase angle and
// follower center radius. Degenerate input (empty or mismatched curve
// arrays) yields empty slices, never an error.
func Evaluate(p *mechanism.Profile, phi, rCenter float32) FrameGeometry {
	if p == nil {
		return FrameGeometry{}
	}

	// The cam body rotates with phase; the cycle ratio scales how far one
	// mechanism cycle turns the cam, and the TDC offset anchors the
	// reference position.
	shift := phi*p.CycleRatio + p.TDCOffset

	return FrameGeometry{
		Cam:      camVertices(p, shift),
		Envelope: envelopeVertices(p),
		Rod:      rodVertices(p, rCenter),
	}
}

// camVertices builds the rotated cam profile. The Cartesian form takes
// precedence when both representations are supplied.
func camVertices(p *mechanism.Profile, shift float32) []geom.Vec2 {
	switch {
	case p.HasCartesianCam():
		verts := make([]geom.Vec2, len(p.BaseCamX))
		for i := range p.BaseCamX {
			verts[i] = geom.Vec2{X: p.BaseCamX[i], Y: p.BaseCamY[i]}.Rotate(shift)
		}
		return verts
	case p.HasPolarCam():
		verts := make([]geom.Vec2, len(p.BaseCamTheta))
		for i := range p.BaseCamTheta {
			verts[i] = geom.FromPolar(p.BaseCamR[i], p.BaseCamTheta[i]+shift)
		}
		return verts
	default:
		return nil
	}
}

// envelopeVertices builds the inner envelope. The envelope is the boundary
// the follower must stay within; it does not rotate with phase.
func envelopeVertices(p *mechanism.Profile) []geom.Vec2 {
	if !p.HasEnvelope() {
		return nil
	}
	verts := make([]geom.Vec2, len(p.InnerEnvelopeTheta))
	for i := range p.InnerEnvelopeTheta {
		verts[i] = geom.FromPolar(p.InnerEnvelopeR[i], p.InnerEnvelopeTheta[i])
	}
	return verts
}

// rodVertices builds the two-point connecting rod. The follower rides the
// stroke axis at the current center radius; the pivot sits one rod length
// beyond the full stroke on the same axis, so the segment length stays near
// the nominal rod length. The follower distance is clamped so the rod never
// inverts through the pivot.
func rodVertices(p *mechanism.Profile, rCenter float32) []geom.Vec2 {
	if p.RodLength <= 0 {
		return nil
	}

	reach := p.Stroke + p.RodLength
	d := rCenter
	if d < 0 {
		d = 0
	}
	if d > reach {
		d = reach
	}

	sin, cos := math32.Sincos(p.TDCOffset)
	axis := geom.Vec2{X: cos, Y: sin}
	follower := axis.Scale(d)
	pivot := axis.Scale(reach)
	return []geom.Vec2{pivot, follower}
}
