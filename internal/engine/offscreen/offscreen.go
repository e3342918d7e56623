// Package offscreen creates the hidden SDL2 window whose OpenGL context
// backs offscreen rendering. No window is ever shown; the host only sees
// the rendered texture.
package offscreen

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Context owns one hidden window and its OpenGL context.
type Context struct {
	window    *sdl.Window
	glContext sdl.GLContext
	log       *zap.Logger
}

// New initializes SDL2 video, creates a hidden 1x1 window and makes its
// OpenGL 4.1 core context current. Any failure tears down what was already
// created.
func New(log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow(
		"camrender",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		1, 1,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("offscreen GL context created",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return &Context{window: window, glContext: glContext, log: log}, nil
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() error {
	return c.window.GLMakeCurrent(c.glContext)
}

// Close destroys the GL context, the hidden window and shuts down SDL.
func (c *Context) Close() {
	c.log.Debug("closing offscreen GL context")
	if c.glContext != nil {
		sdl.GLDeleteContext(c.glContext)
		c.glContext = nil
	}
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	sdl.Quit()
}
