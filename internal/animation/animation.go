// Package animation orchestrates one mechanism animation: it owns the
// dataset snapshot and the playback cursor, and drives geometry evaluation
// and drawing for each rendered frame.
package animation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/camkinetics/camrender/internal/kinematics"
	"github.com/camkinetics/camrender/internal/mechanism"
	"github.com/camkinetics/camrender/internal/playback"
	"github.com/camkinetics/camrender/pkg/geom"
)

// Surface is the draw target for one frame. The GL renderer implements it;
// tests substitute a recording fake.
type Surface interface {
	// Begin binds the target and clears it to the given color.
	Begin(r, g, b, a float32)
	// SetView fits a square world region of the given radius into the
	// target, aspect corrected.
	SetView(radius float32)
	// DrawLineLoop draws a closed polyline, uploading the vertices to the
	// shared dynamic buffer first.
	DrawLineLoop(pts []geom.Vec2, r, g, b, a float32)
	// DrawLineStrip draws an open polyline the same way.
	DrawLineStrip(pts []geom.Vec2, r, g, b, a float32)
	// End unbinds the target.
	End()
	// TextureID returns the color texture backing the target.
	TextureID() uint32
	// Release destroys the surface's resources. Idempotent.
	Release()
}

// Fixed element styling, back-to-front: envelope, cam profile, rod.
var (
	backgroundColor = [4]float32{0, 0, 0, 1}
	envelopeColor   = [4]float32{0.25, 0.8, 0.3, 1}
	camColor        = [4]float32{0.9, 0.2, 0.15, 1}
	rodColor        = [4]float32{0.3, 0.55, 1, 1}
)

// Context is one live animation instance: dataset, playback state and draw
// surface. All methods must be called from the thread owning the surface's
// GL context; there is no internal locking.
type Context struct {
	surface Surface
	profile *mechanism.Profile
	ctrl    *playback.Controller
	log     *zap.Logger
}

// New creates a context drawing onto surface. The context takes ownership
// of the surface and releases it on Close. A nil logger disables logging.
func New(surface Surface, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		surface: surface,
		profile: &mechanism.Profile{},
		ctrl:    playback.NewController(0),
		log:     log,
	}
}

// UpdateData replaces the mechanism dataset wholesale and resets playback
// to frame 0, paused. Invalid scalar parameters reject the update and keep
// the prior dataset.
func (c *Context) UpdateData(p mechanism.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("rejecting mechanism data: %w", err)
	}
	c.profile = &p
	c.ctrl.SetNumFrames(p.NumFrames())
	c.log.Debug("mechanism data updated",
		zap.Int("frames", p.NumFrames()),
		zap.Int("cam_points", len(p.BaseCamTheta)),
		zap.Int("envelope_points", len(p.InnerEnvelopeTheta)),
	)
	return nil
}

// Render draws one frame into the surface. When playing, the cursor
// advances first. With no frames the target is cleared to the background
// color only.
func (c *Context) Render() {
	c.ctrl.Advance()

	phi, rCenter := c.profile.FrameState(c.ctrl.Frame())
	geo := kinematics.Evaluate(c.profile, phi, rCenter)

	c.surface.Begin(backgroundColor[0], backgroundColor[1], backgroundColor[2], backgroundColor[3])
	c.surface.SetView(c.viewRadius(geo))

	// Back-to-front: fixed boundary, rotating body, rod on top.
	if len(geo.Envelope) >= 2 {
		c.surface.DrawLineLoop(geo.Envelope, envelopeColor[0], envelopeColor[1], envelopeColor[2], envelopeColor[3])
	}
	if len(geo.Cam) >= 2 {
		c.surface.DrawLineLoop(geo.Cam, camColor[0], camColor[1], camColor[2], camColor[3])
	}
	if len(geo.Rod) == 2 {
		c.surface.DrawLineStrip(geo.Rod, rodColor[0], rodColor[1], rodColor[2], rodColor[3])
	}

	c.surface.End()
}

// viewRadius picks the world extent to fit into the target: the configured
// outer boundary when present, otherwise the furthest vertex this frame.
func (c *Context) viewRadius(geo kinematics.FrameGeometry) float32 {
	if r := c.profile.OuterBoundaryRadius; r > 0 {
		return r * 1.05
	}
	var max float32
	for _, pts := range [][]geom.Vec2{geo.Envelope, geo.Cam, geo.Rod} {
		for _, p := range pts {
			if l := p.Length(); l > max {
				max = l
			}
		}
	}
	if max == 0 {
		return 1
	}
	return max * 1.05
}

// Play starts playback.
func (c *Context) Play() { c.ctrl.Play() }

// Pause stops playback.
func (c *Context) Pause() { c.ctrl.Pause() }

// Reset seeks to frame 0 and pauses.
func (c *Context) Reset() { c.ctrl.Reset() }

// CurrentFrame returns the playback cursor.
func (c *Context) CurrentFrame() int { return c.ctrl.Frame() }

// SetCurrentFrame seeks to the given frame, clamped into range.
func (c *Context) SetCurrentFrame(f int) { c.ctrl.SetFrame(f) }

// TextureID returns the color texture the host displays.
func (c *Context) TextureID() uint32 { return c.surface.TextureID() }

// Close releases the surface. Safe to call more than once.
func (c *Context) Close() {
	c.surface.Release()
}
