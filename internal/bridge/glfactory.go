package bridge

import (
	"go.uber.org/zap"

	"github.com/camkinetics/camrender/internal/animation"
	"github.com/camkinetics/camrender/internal/engine/offscreen"
	"github.com/camkinetics/camrender/internal/engine/renderer"
)

// GLFactory returns the production factory: each instance gets its own
// hidden-window GL context and renderer, exclusively owned for its
// lifetime.
func GLFactory(log *zap.Logger) Factory {
	return func(width, height int) (Instance, error) {
		ctx, err := offscreen.New(log)
		if err != nil {
			return nil, err
		}
		rend, err := renderer.New(width, height, log)
		if err != nil {
			ctx.Close()
			return nil, err
		}
		return &glInstance{
			Context: animation.New(rend, log),
			gl:      ctx,
		}, nil
	}
}

// glInstance ties an animation context to the GL context backing it so both
// are torn down together.
type glInstance struct {
	*animation.Context
	gl *offscreen.Context
}

func (g *glInstance) Close() {
	g.Context.Close()
	if g.gl != nil {
		g.gl.Close()
		g.gl = nil
	}
}
