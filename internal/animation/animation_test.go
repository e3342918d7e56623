package animation

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/camkinetics/camrender/internal/mechanism"
	"github.com/camkinetics/camrender/pkg/geom"
)

// recordingSurface captures draw calls for assertions.
type recordingSurface struct {
	begun    int
	ended    int
	released int
	view     float32
	draws    []drawCall
}

type drawCall struct {
	kind  string // "loop" or "strip"
	count int
	color [4]float32
}

func (s *recordingSurface) Begin(r, g, b, a float32) {
	s.begun++
	s.draws = nil
}

func (s *recordingSurface) SetView(radius float32) { s.view = radius }

func (s *recordingSurface) DrawLineLoop(pts []geom.Vec2, r, g, b, a float32) {
	s.draws = append(s.draws, drawCall{"loop", len(pts), [4]float32{r, g, b, a}})
}

func (s *recordingSurface) DrawLineStrip(pts []geom.Vec2, r, g, b, a float32) {
	s.draws = append(s.draws, drawCall{"strip", len(pts), [4]float32{r, g, b, a}})
}

func (s *recordingSurface) End()              { s.ended++ }
func (s *recordingSurface) TextureID() uint32 { return 42 }
func (s *recordingSurface) Release()          { s.released++ }

func testProfile(frames int) mechanism.Profile {
	p := mechanism.Profile{
		Stroke:              1,
		RodLength:           3,
		OuterBoundaryRadius: 5,
		CycleRatio:          1,
	}
	for i := 0; i < 16; i++ {
		theta := 2 * math32.Pi * float32(i) / 16
		p.BaseCamTheta = append(p.BaseCamTheta, theta)
		p.BaseCamR = append(p.BaseCamR, 2)
		p.InnerEnvelopeTheta = append(p.InnerEnvelopeTheta, theta)
		p.InnerEnvelopeR = append(p.InnerEnvelopeR, 4)
	}
	for i := 0; i < frames; i++ {
		p.PhiArray = append(p.PhiArray, float32(i)*0.1)
		p.CenterRArray = append(p.CenterRArray, 2+float32(i)*0.01)
	}
	return p
}

func TestRenderDrawOrder(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	if err := c.UpdateData(testProfile(10)); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}

	c.Render()

	if s.begun != 1 || s.ended != 1 {
		t.Fatalf("begin/end = %d/%d, want 1/1", s.begun, s.ended)
	}
	if len(s.draws) != 3 {
		t.Fatalf("got %d draws, want 3", len(s.draws))
	}
	if s.draws[0].kind != "loop" || s.draws[0].color != envelopeColor {
		t.Errorf("draw 0 = %+v, want envelope loop", s.draws[0])
	}
	if s.draws[1].kind != "loop" || s.draws[1].color != camColor {
		t.Errorf("draw 1 = %+v, want cam loop", s.draws[1])
	}
	if s.draws[2].kind != "strip" || s.draws[2].count != 2 || s.draws[2].color != rodColor {
		t.Errorf("draw 2 = %+v, want 2-point rod strip", s.draws[2])
	}
}

func TestRenderAdvancesOnlyWhenPlaying(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	if err := c.UpdateData(testProfile(4)); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}

	c.Render()
	if c.CurrentFrame() != 0 {
		t.Errorf("paused render moved cursor to %d", c.CurrentFrame())
	}

	c.Play()
	c.Render()
	if c.CurrentFrame() != 1 {
		t.Errorf("playing render: cursor = %d, want 1", c.CurrentFrame())
	}

	// Wraps back to 0 after the last frame.
	c.Render()
	c.Render()
	c.Render()
	if c.CurrentFrame() != 0 {
		t.Errorf("cursor after full cycle = %d, want 0", c.CurrentFrame())
	}
}

func TestRenderEmptyDatasetClearsOnly(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)

	c.Play()
	c.Render()

	if s.begun != 1 || s.ended != 1 {
		t.Fatalf("begin/end = %d/%d, want 1/1", s.begun, s.ended)
	}
	if len(s.draws) != 0 {
		t.Errorf("empty dataset produced %d draws, want 0", len(s.draws))
	}
	if c.CurrentFrame() != 0 {
		t.Errorf("cursor = %d, want 0", c.CurrentFrame())
	}
}

func TestUpdateDataResetsPlayback(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	if err := c.UpdateData(testProfile(8)); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}
	c.SetCurrentFrame(5)
	c.Play()

	if err := c.UpdateData(testProfile(8)); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}
	if c.CurrentFrame() != 0 {
		t.Errorf("frame after update = %d, want 0", c.CurrentFrame())
	}

	c.Render()
	if c.CurrentFrame() != 0 {
		t.Error("playback kept running across update")
	}
}

func TestUpdateDataRejectsInvalidScalars(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	good := testProfile(6)
	if err := c.UpdateData(good); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}

	bad := testProfile(2)
	bad.RodLength = -1
	if err := c.UpdateData(bad); err == nil {
		t.Fatal("negative rod length accepted")
	}

	// Prior dataset stays live.
	c.Play()
	c.Render()
	if got := len(s.draws); got != 3 {
		t.Errorf("render after rejected update: %d draws, want 3", got)
	}
}

func TestViewRadiusFallsBackToGeometry(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	p := testProfile(2)
	p.OuterBoundaryRadius = 0
	if err := c.UpdateData(p); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}

	c.Render()
	// Furthest geometry is the envelope at radius 4, plus margin.
	if s.view < 4 || s.view > 4.5 {
		t.Errorf("view radius = %v, want ~4.2", s.view)
	}
}

func TestCloseReleasesSurface(t *testing.T) {
	s := &recordingSurface{}
	c := New(s, nil)
	c.Close()
	c.Close()
	if s.released != 2 {
		t.Errorf("Release called %d times, want 2 (idempotence is the surface's job)", s.released)
	}
	if c.TextureID() != 42 {
		t.Errorf("TextureID() = %d, want 42", c.TextureID())
	}
}
