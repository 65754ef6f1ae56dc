// Package renderer draws the classified maze geometry and the exit marker.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/engine/shader"
	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// ExitMarkerScale is the edge length of the exit cube.
const ExitMarkerScale = 5

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	FarPlane float32
}

// Renderer handles all OpenGL rendering of the 3D scene.
type Renderer struct {
	config Config
	scene  *shader.Program
	log    *zap.Logger

	mazeVAO, mazeVBO uint32
	floorVertices    int32
	wallVertices     int32

	cubeVAO, cubeVBO uint32
	exit             math.Vec3
	showExit         bool
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.45, 0.6, 0.8, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.scene, err = shader.Compile(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	cube := CubeVertices(MarkerColor)
	r.cubeVAO, r.cubeVBO = upload(cube)

	return r, nil
}

// UploadMaze replaces the maze buffers with the geometry of m.
func (r *Renderer) UploadMaze(m *maze.Mesh) {
	r.deleteMaze()

	vertices, floorCount := MeshVertices(m)
	r.floorVertices = floorCount
	r.wallVertices = int32(len(vertices)/VertexStride) - floorCount
	if len(vertices) == 0 {
		r.log.Warn("no maze geometry to draw")
		return
	}

	r.mazeVAO, r.mazeVBO = upload(vertices)
	r.log.Debug("maze uploaded",
		zap.Int32("floor_vertices", r.floorVertices),
		zap.Int32("wall_vertices", r.wallVertices),
	)
}

// SetExitMarker places the exit cube.
func (r *Renderer) SetExitMarker(pos math.Vec3) {
	r.exit = pos
	r.showExit = true
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// FarPlane returns the far clipping distance.
func (r *Renderer) FarPlane() float32 {
	return r.config.FarPlane
}

// ReadPixels reads back the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws the maze and the exit marker.
func (r *Renderer) DrawScene(view, projection mgl32.Mat4) {
	r.scene.Use()
	r.scene.SetMat4("uView", view)
	r.scene.SetMat4("uProjection", projection)

	if r.mazeVAO != 0 {
		r.scene.SetMat4("uModel", mgl32.Ident4())
		gl.BindVertexArray(r.mazeVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, r.floorVertices+r.wallVertices)
	}

	if r.showExit {
		model := mgl32.Translate3D(r.exit.X, r.exit.Y, r.exit.Z).
			Mul4(mgl32.Scale3D(ExitMarkerScale, ExitMarkerScale, ExitMarkerScale))
		r.scene.SetMat4("uModel", model)
		gl.BindVertexArray(r.cubeVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 36)
	}

	gl.BindVertexArray(0)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.deleteMaze()
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.scene != nil {
		r.scene.Delete()
	}
}

func (r *Renderer) deleteMaze() {
	if r.mazeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.mazeVAO)
		gl.DeleteBuffers(1, &r.mazeVBO)
		r.mazeVAO, r.mazeVBO = 0, 0
	}
}

// upload creates a VAO/VBO pair for interleaved position/normal/color data.
func upload(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

const sceneVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vColor;
out float vDepth;

void main() {
    vec4 viewPos = uView * uModel * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
    vColor = aColor;
    vDepth = -viewPos.z;
    gl_Position = uProjection * viewPos;
}
`

const sceneFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vColor;
in float vDepth;

out vec4 FragColor;

const vec3 lightDir = normalize(vec3(0.3, 1.0, 0.2));
const vec3 fogColor = vec3(0.45, 0.6, 0.8);

void main() {
    float shade = 0.35 + 0.65 * abs(dot(normalize(vNormal), lightDir));
    float fog = clamp(vDepth / 4000.0, 0.0, 0.6);
    FragColor = vec4(mix(vColor * shade, fogColor, fog), 1.0);
}
`
