// Package renderer owns the GPU resources for mechanism drawing: the
// offscreen framebuffer, the flat-color line shader and one dynamic vertex
// buffer shared by all draws.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/camkinetics/camrender/internal/engine/framebuffer"
	"github.com/camkinetics/camrender/internal/engine/shader"
	"github.com/camkinetics/camrender/pkg/geom"
)

// Minimal 2D transform + flat-color program. Vertices are world-space
// positions; the transform maps them to clip space.
const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec2 position;

uniform mat4 transform;

void main() {
	gl_Position = transform * vec4(position, 0.0, 1.0);
}
`

const fragmentShaderSource = `
#version 410 core

uniform vec4 color;

out vec4 fragColor;

void main() {
	fragColor = color;
}
`

// Renderer holds exactly one framebuffer/program/buffer set. It implements
// the animation draw surface.
type Renderer struct {
	fb      *framebuffer.Framebuffer
	program uint32
	vao     uint32
	vbo     uint32

	transformLoc int32
	colorLoc     int32

	width  int
	height int

	log *zap.Logger
}

// New creates all GPU resources for an offscreen target of the given size.
// Must be called with a current OpenGL context. Any failure releases the
// resources already created before returning.
func New(width, height int, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{width: width, height: height, log: log}

	var err error
	r.fb, err = framebuffer.New(int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("creating render target: %w", err)
	}

	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("creating line shader: %w", err)
	}
	r.transformLoc = shader.GetUniform(r.program, "transform")
	r.colorLoc = shader.GetUniform(r.program, "color")

	// One dynamic buffer, re-filled immediately before every draw call.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	log.Debug("renderer created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Uint32("texture", r.fb.ColorTexture()),
	)
	return r, nil
}

// Begin binds the offscreen target and clears it.
func (r *Renderer) Begin(cr, cg, cb, ca float32) {
	r.fb.Bind()
	r.fb.Clear(cr, cg, cb, ca)
	gl.UseProgram(r.program)
}

// SetView fits a square world region of the given radius into the target,
// padding the longer screen axis to preserve aspect.
func (r *Renderer) SetView(radius float32) {
	if radius <= 0 {
		radius = 1
	}
	rx, ry := radius, radius
	if r.width >= r.height && r.height > 0 {
		rx = radius * float32(r.width) / float32(r.height)
	} else if r.width > 0 {
		ry = radius * float32(r.height) / float32(r.width)
	}
	m := geom.Ortho(-rx, rx, -ry, ry, -1, 1)
	gl.UniformMatrix4fv(r.transformLoc, 1, false, m.Ptr())
}

// DrawLineLoop draws a closed polyline in the given color.
func (r *Renderer) DrawLineLoop(pts []geom.Vec2, cr, cg, cb, ca float32) {
	r.draw(pts, gl.LINE_LOOP, cr, cg, cb, ca)
}

// DrawLineStrip draws an open polyline in the given color.
func (r *Renderer) DrawLineStrip(pts []geom.Vec2, cr, cg, cb, ca float32) {
	r.draw(pts, gl.LINE_STRIP, cr, cg, cb, ca)
}

func (r *Renderer) draw(pts []geom.Vec2, mode uint32, cr, cg, cb, ca float32) {
	if len(pts) < 2 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(pts)*int(unsafe.Sizeof(geom.Vec2{})),
		unsafe.Pointer(&pts[0]), gl.DYNAMIC_DRAW)
	gl.Uniform4f(r.colorLoc, cr, cg, cb, ca)
	gl.DrawArrays(mode, 0, int32(len(pts)))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// End unbinds the offscreen target.
func (r *Renderer) End() {
	r.fb.Unbind()
}

// TextureID returns the color texture the host displays. Valid until
// Release.
func (r *Renderer) TextureID() uint32 {
	if r.fb == nil {
		return 0
	}
	return r.fb.ColorTexture()
}

// ReadPixels returns the current target contents as RGBA bytes, bottom row
// first.
func (r *Renderer) ReadPixels() []byte {
	if r.fb == nil {
		return nil
	}
	return r.fb.ReadPixels()
}

// Size returns the target dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Release destroys the framebuffer, program and buffers. Safe to call
// repeatedly or before anything was created.
func (r *Renderer) Release() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.fb != nil {
		r.fb.Destroy()
		r.fb = nil
	}
}
