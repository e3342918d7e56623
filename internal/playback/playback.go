// Package playback implements the play/pause/seek state machine over a
// bounded frame range.
package playback

// Controller owns the animation cursor and play state. It is the only
// component that mutates them.
type Controller struct {
	frame     int
	playing   bool
	numFrames int
}

// NewController returns a paused controller at frame 0 over numFrames
// frames. A non-positive frame count leaves the controller in the
// unrenderable state: the cursor stays at 0 and Advance is a no-op.
func NewController(numFrames int) *Controller {
	c := &Controller{}
	c.SetNumFrames(numFrames)
	return c
}

// SetNumFrames rebinds the frame range and resets the controller, matching
// the wholesale dataset replacement semantics.
func (c *Controller) SetNumFrames(n int) {
	if n < 0 {
		n = 0
	}
	c.numFrames = n
	c.Reset()
}

// NumFrames returns the bound frame count.
func (c *Controller) NumFrames() int {
	return c.numFrames
}

// Play starts playback. No-op when already playing or when there are no
// frames to play.
func (c *Controller) Play() {
	if c.numFrames == 0 {
		return
	}
	c.playing = true
}

// Pause stops playback, keeping the cursor.
func (c *Controller) Pause() {
	c.playing = false
}

// Playing reports whether playback is running.
func (c *Controller) Playing() bool {
	return c.playing
}

// Reset moves the cursor to frame 0 and pauses, from any state.
func (c *Controller) Reset() {
	c.frame = 0
	c.playing = false
}

// Frame returns the current cursor position.
func (c *Controller) Frame() int {
	return c.frame
}

// SetFrame seeks to frame f, clamped into [0, numFrames-1]. Out-of-range
// input is clamped, never an error. The play state is unchanged.
func (c *Controller) SetFrame(f int) {
	if c.numFrames == 0 {
		c.frame = 0
		return
	}
	if f < 0 {
		f = 0
	}
	if f > c.numFrames-1 {
		f = c.numFrames - 1
	}
	c.frame = f
}

// Advance steps the cursor forward one frame with wraparound when playing.
// No-op while paused or with no frames.
func (c *Controller) Advance() {
	if !c.playing || c.numFrames == 0 {
		return
	}
	c.frame = (c.frame + 1) % c.numFrames
}
