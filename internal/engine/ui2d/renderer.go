// Package ui2d draws screen-space overlays: translucent panels and bitmap text.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/labyrinth/internal/engine/shader"
)

// vertex format: x, y, u, v, r, g, b, a
const vertexFloats = 8

// Renderer batches quads for one frame and draws them with a single call.
// Solid quads and glyphs share the font atlas texture.
type Renderer struct {
	screenWidth  int
	screenHeight int

	program  *shader.Program
	vao, vbo uint32
	texture  uint32

	vertices []float32
}

// New creates a new 2D UI renderer. An OpenGL context must be current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:  width,
		screenHeight: height,
		vertices:     make([]float32, 0, 4096),
	}

	var err error
	r.program, err = shader.Compile(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	atlas := buildAtlas()
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, atlasWidth, atlasHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&atlas.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(vertexFloats * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// ScreenSize returns the current screen dimensions.
func (r *Renderer) ScreenSize() (float32, float32) {
	return float32(r.screenWidth), float32(r.screenHeight)
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.vertices = r.vertices[:0]
}

// End draws everything queued since Begin on top of the scene.
func (r *Renderer) End() {
	if len(r.vertices) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	r.program.Use()
	r.program.SetMat4("uProjection", mgl32.Ortho2D(0, float32(r.screenWidth), float32(r.screenHeight), 0))
	r.program.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.vertices)/vertexFloats))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	u, v := solidUV()
	r.vertices = appendQuad(r.vertices, x, y, w, h, u, v, u, v, c)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(x, y float32, text string, scale float32, c Color) {
	r.vertices = appendText(r.vertices, x, y, text, scale, c)
}

// DrawTextCentered draws text centred horizontally on the screen.
func (r *Renderer) DrawTextCentered(y float32, text string, scale float32, c Color) {
	w, _ := MeasureText(text, scale)
	r.DrawText((float32(r.screenWidth)-w)/2, y, text, scale, c)
}

func appendText(dst []float32, x, y float32, text string, scale float32, c Color) []float32 {
	gw, gh := GlyphSize()
	cw, ch := float32(gw)*scale, float32(gh)*scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += ch
			continue
		}
		if char != ' ' {
			u0, v0, u1, v1 := glyphUV(char)
			dst = appendQuad(dst, curX, y, cw, ch, u0, v0, u1, v1, c)
		}
		curX += cw
	}
	return dst
}

func appendQuad(dst []float32, x, y, w, h, u0, v0, u1, v1 float32, c Color) []float32 {
	return append(dst,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,

		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, u0, v1, c.R, c.G, c.B, c.A,
	)
}

const overlayVertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
    vTexCoord = aTexCoord;
    vColor = aColor;
}
`

const overlayFragmentShader = `#version 410 core
uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float alpha = texture(uTexture, vTexCoord).a;
    FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
