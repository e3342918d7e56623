package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/camkinetics/camrender/internal/mechanism"
)

// Factory creates the instance behind a new handle. The GL-backed factory
// lives in glfactory.go; tests inject a fake.
type Factory func(width, height int) (Instance, error)

// Bridge is the host-facing API surface. All operations run synchronously
// on the calling thread; the host is expected to serialize its calls.
// Invalid or stale handles are logged and ignored, never fatal.
type Bridge struct {
	reg         registry
	newInstance Factory
	log         *zap.Logger
}

// New creates a bridge using the given instance factory. A nil logger
// disables logging.
func New(factory Factory, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{newInstance: factory, log: log}
}

// CreateContext creates a new animation instance rendering at width x
// height and returns its handle. On failure no handle is allocated.
func (b *Bridge) CreateContext(width, height int) (Handle, error) {
	if width < 1 || height < 1 {
		return 0, fmt.Errorf("invalid context size %dx%d", width, height)
	}
	inst, err := b.newInstance(width, height)
	if err != nil {
		b.log.Error("failed to create animation context", zap.Error(err))
		return 0, err
	}
	h := b.reg.insert(inst)
	b.log.Info("created animation context",
		zap.Int64("handle", int64(h)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return h, nil
}

// DestroyContext closes the instance and invalidates the handle. Unknown
// handles are logged and ignored.
func (b *Bridge) DestroyContext(h Handle) {
	inst, ok := b.reg.remove(h)
	if !ok {
		b.warnInvalid("DestroyContext", h)
		return
	}
	inst.Close()
	b.log.Info("destroyed animation context", zap.Int64("handle", int64(h)))
}

// UpdateData replaces the mechanism dataset for a context. The float slices
// come straight from the host call and are copied before storing, so the
// host may reuse its buffers. Validation failures keep the prior dataset.
func (b *Bridge) UpdateData(
	h Handle,
	baseCamTheta, baseCamR, baseCamX, baseCamY []float32,
	phiArray, centerRArray []float32,
	n, stroke, tdcOffset float32,
	innerEnvelopeTheta, innerEnvelopeR []float32,
	outerBoundaryRadius, rodLength, cycleRatio float32,
) {
	inst, ok := b.reg.get(h)
	if !ok {
		b.warnInvalid("UpdateData", h)
		return
	}

	p := mechanism.Profile{
		BaseCamTheta:        cloneFloats(baseCamTheta),
		BaseCamR:            cloneFloats(baseCamR),
		BaseCamX:            cloneFloats(baseCamX),
		BaseCamY:            cloneFloats(baseCamY),
		PhiArray:            cloneFloats(phiArray),
		CenterRArray:        cloneFloats(centerRArray),
		InnerEnvelopeTheta:  cloneFloats(innerEnvelopeTheta),
		InnerEnvelopeR:      cloneFloats(innerEnvelopeR),
		N:                   n,
		Stroke:              stroke,
		TDCOffset:           tdcOffset,
		OuterBoundaryRadius: outerBoundaryRadius,
		RodLength:           rodLength,
		CycleRatio:          cycleRatio,
	}
	if err := inst.UpdateData(p); err != nil {
		b.log.Warn("mechanism data rejected",
			zap.Int64("handle", int64(h)),
			zap.Error(err),
		)
	}
}

// Render draws one frame for the context. Errors never propagate to the
// host.
func (b *Bridge) Render(h Handle) {
	inst, ok := b.reg.get(h)
	if !ok {
		b.warnInvalid("Render", h)
		return
	}
	inst.Render()
}

// TextureHandle returns the GL texture identifier backing a context's
// render target, or 0 for an unknown handle.
func (b *Bridge) TextureHandle(h Handle) uint32 {
	inst, ok := b.reg.get(h)
	if !ok {
		b.warnInvalid("TextureHandle", h)
		return 0
	}
	return inst.TextureID()
}

// Play starts playback for a context.
func (b *Bridge) Play(h Handle) {
	if inst, ok := b.reg.get(h); ok {
		inst.Play()
		return
	}
	b.warnInvalid("Play", h)
}

// Pause stops playback for a context.
func (b *Bridge) Pause(h Handle) {
	if inst, ok := b.reg.get(h); ok {
		inst.Pause()
		return
	}
	b.warnInvalid("Pause", h)
}

// Reset seeks a context to frame 0, paused.
func (b *Bridge) Reset(h Handle) {
	if inst, ok := b.reg.get(h); ok {
		inst.Reset()
		return
	}
	b.warnInvalid("Reset", h)
}

// CurrentFrame returns a context's playback cursor, or 0 for an unknown
// handle.
func (b *Bridge) CurrentFrame(h Handle) int {
	inst, ok := b.reg.get(h)
	if !ok {
		b.warnInvalid("CurrentFrame", h)
		return 0
	}
	return inst.CurrentFrame()
}

// SetCurrentFrame seeks a context to the given frame, clamped into range.
func (b *Bridge) SetCurrentFrame(h Handle, frame int) {
	if inst, ok := b.reg.get(h); ok {
		inst.SetCurrentFrame(frame)
		return
	}
	b.warnInvalid("SetCurrentFrame", h)
}

// Close destroys every remaining context. For host shutdown paths that do
// not destroy handles individually.
func (b *Bridge) Close() {
	b.reg.each(func(inst Instance) { inst.Close() })
	b.reg = registry{}
}

func (b *Bridge) warnInvalid(op string, h Handle) {
	b.log.Warn("invalid animation context handle",
		zap.String("op", op),
		zap.Int64("handle", int64(h)),
	)
}

func cloneFloats(s []float32) []float32 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}
