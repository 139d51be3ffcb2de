// Package gldraw renders debugdraw batches with OpenGL 4.1 core.
package gldraw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"navmeshviewer/debugdraw"
)

const floatSize = 4

// Vertex layout: pos(3) color(4) uv(2), interleaved floats.
const vertexStride = 9

var vertexShader = `
#version 330 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec4 color;
layout (location = 2) in vec2 uv;
uniform mat4 viewProj;
uniform float pointSize;
out vec4 fragColor;
out vec2 fragUV;
void main() {
	gl_Position = viewProj * vec4(position, 1.0);
	gl_PointSize = pointSize;
	fragColor = color;
	fragUV = uv;
}` + "\x00"

var fragShader = `
#version 330 core
in vec4 fragColor;
in vec2 fragUV;
uniform sampler2D tex;
uniform bool useTexture;
out vec4 color;
void main() {
	color = fragColor;
	if (useTexture) {
		color *= texture(tex, fragUV);
	}
}` + "\x00"

// Draw is a DebugDraw sink drawing each batch immediately at End. The
// caller must have a current GL context and set the view-projection
// matrix once per frame.
type Draw struct {
	program  uint32
	vao, vbo uint32
	texture  uint32

	locViewProj  int32
	locPointSize int32
	locUseTex    int32

	viewProj mgl32.Mat4

	textured bool
	prim     debugdraw.Primitive
	primSize float32
	verts    []float32
}

// New compiles the shader pair and allocates buffers. Requires a current
// GL context.
func New() (*Draw, error) {
	d := &Draw{
		viewProj: mgl32.Ident4(),
		primSize: 1,
	}

	var err error
	d.program, err = NewProgram(vertexShader, fragShader)
	if err != nil {
		return nil, err
	}
	d.locViewProj = gl.GetUniformLocation(d.program, gl.Str("viewProj\x00"))
	d.locPointSize = gl.GetUniformLocation(d.program, gl.Str("pointSize\x00"))
	d.locUseTex = gl.GetUniformLocation(d.program, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*floatSize, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, vertexStride*floatSize, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, vertexStride*floatSize, gl.PtrOffset(7*floatSize))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	d.texture = newCheckerTexture(64)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return d, nil
}

// SetViewProj sets the world-to-clip transform used for subsequent
// batches.
func (d *Draw) SetViewProj(m mgl32.Mat4) { d.viewProj = m }

func (d *Draw) DepthMask(state bool) { gl.DepthMask(state) }

func (d *Draw) Texture(state bool) { d.textured = state }

func (d *Draw) Begin(prim debugdraw.Primitive, size ...float32) {
	d.prim = prim
	d.primSize = 1
	if len(size) > 0 {
		d.primSize = size[0]
	}
	d.verts = d.verts[:0]
}

func (d *Draw) Vertex(x, y, z float32, color debugdraw.Colorb) {
	d.VertexUV(x, y, z, color, 0, 0)
}

func (d *Draw) VertexUV(x, y, z float32, color debugdraw.Colorb, u, v float32) {
	c := color.Vec4()
	d.verts = append(d.verts, x, y, z, c[0], c[1], c[2], c[3], u, v)
}

// End uploads the batch and issues the draw call. Trailing partial
// primitives are dropped; quads are expanded to triangles since the core
// profile has no quad mode.
func (d *Draw) End() {
	per := debugdraw.VertsPerPrim(d.prim)
	n := len(d.verts) / vertexStride
	n -= n % per
	if n == 0 {
		return
	}

	verts := d.verts[:n*vertexStride]
	mode := uint32(gl.TRIANGLES)
	switch d.prim {
	case debugdraw.DrawPoints:
		mode = gl.POINTS
	case debugdraw.DrawLines:
		mode = gl.LINES
		gl.LineWidth(d.primSize)
	case debugdraw.DrawQuads:
		verts = expandQuads(verts)
	}
	count := int32(len(verts) / vertexStride)

	gl.UseProgram(d.program)
	gl.UniformMatrix4fv(d.locViewProj, 1, false, &d.viewProj[0])
	gl.Uniform1f(d.locPointSize, d.primSize)
	useTex := int32(0)
	if d.textured {
		useTex = 1
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, d.texture)
	}
	gl.Uniform1i(d.locUseTex, useTex)

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*floatSize, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(mode, 0, count)
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (d *Draw) Close() {
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteProgram(d.program)
}

// expandQuads rewrites 4-vertex quads as two triangles each.
func expandQuads(verts []float32) []float32 {
	nquads := len(verts) / (4 * vertexStride)
	out := make([]float32, 0, nquads*6*vertexStride)
	for q := 0; q < nquads; q++ {
		base := q * 4 * vertexStride
		v := func(i int) []float32 {
			return verts[base+i*vertexStride : base+(i+1)*vertexStride]
		}
		out = append(out, v(0)...)
		out = append(out, v(1)...)
		out = append(out, v(2)...)
		out = append(out, v(0)...)
		out = append(out, v(2)...)
		out = append(out, v(3)...)
	}
	return out
}
