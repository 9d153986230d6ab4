package main

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stlkit/internal/config"
	"github.com/Faultbox/stlkit/internal/logger"
	"github.com/Faultbox/stlkit/internal/render/camera"
	"github.com/Faultbox/stlkit/internal/render/shader"
	"github.com/Faultbox/stlkit/internal/render/window"
	"github.com/Faultbox/stlkit/pkg/geom"
	"github.com/Faultbox/stlkit/pkg/stl"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 FragColor;

void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightDir);
    // STL winding is frequently inconsistent, so light both sides.
    float diff = abs(dot(normal, lightDir));
    vec3 result = uAmbient + diff * uDiffuse;
    FragColor = vec4(result, 1.0);
}
`

// viewer owns the window, GPU buffers, and camera for one decoded mesh.
type viewer struct {
	win *window.Window
	cfg *config.Config

	program       uint32
	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locAmbient    int32
	locDiffuse    int32

	vao         uint32
	vbo         uint32
	vertexCount int32

	cam    *camera.OrbitCamera
	bounds stl.Bounds
}

// newViewer decodes the STL file at path and brings up a window showing it.
func newViewer(cfg *config.Config, path string) (*viewer, error) {
	dec := stl.Decoder{
		Detector:  newDetector(cfg.Decode.Detector),
		Tolerance: cfg.Decode.Tolerance,
	}
	model, err := dec.ParseFile(path)
	if err != nil {
		return nil, err
	}

	// A degenerate facet reports its status twice (marker then payload),
	// so warnings are deduplicated by index.
	seen := make(map[int]bool)
	facets := stl.Collect(model.Facets, func(s stl.Status) {
		if s.Code == stl.StatusDegenerate && !seen[s.Index] {
			seen[s.Index] = true
			logger.Warn("skipping degenerate facet", zap.Int("facet", s.Index))
		}
	})

	bounds, ok := stl.BoundsOf(facets)
	if !ok {
		return nil, fmt.Errorf("no drawable facets in %s", path)
	}

	logger.Info("model decoded",
		zap.String("name", model.Name),
		zap.Int("facets", len(facets)),
		zap.Int("declared", model.FacetCount),
		zap.Int("degenerate", len(seen)),
	)

	win, err := window.New(window.Config{
		Title:  "stlview - " + model.Name,
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	// Initialize OpenGL (requires the context from window.New)
	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	v := &viewer{win: win, cfg: cfg, bounds: bounds}

	if err := v.createProgram(); err != nil {
		win.Close()
		return nil, err
	}
	v.uploadMesh(facets)

	v.cam = camera.New()
	v.cam.FitBounds(bounds.Min, bounds.Max)

	return v, nil
}

func newDetector(name string) stl.Detector {
	if name == "scan" {
		return stl.VertexScanDetector{}
	}
	return stl.StructureDetector{}
}

func (v *viewer) createProgram() error {
	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	v.program = program

	v.locModel = shader.MustGetUniform(program, "uModel")
	v.locView = shader.MustGetUniform(program, "uView")
	v.locProjection = shader.MustGetUniform(program, "uProjection")
	v.locLightDir = shader.MustGetUniform(program, "uLightDir")
	v.locAmbient = shader.MustGetUniform(program, "uAmbient")
	v.locDiffuse = shader.MustGetUniform(program, "uDiffuse")

	return nil
}

// uploadMesh builds the interleaved position+normal vertex buffer. Vertices
// are not shared between facets: each facet contributes three vertices
// carrying the facet normal, which is what flat shading needs.
func (v *viewer) uploadMesh(facets []stl.Facet) {
	verts := make([]float32, 0, len(facets)*18)
	for _, f := range facets {
		for _, p := range [3]geom.Vec3{f.A, f.B, f.C} {
			verts = append(verts, p.X, p.Y, p.Z, f.Normal.X, f.Normal.Y, f.Normal.Z)
		}
	}

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 24, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 24, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	v.vertexCount = int32(len(facets) * 3)
}

// Run drives the event loop until the window closes.
func (v *viewer) Run() error {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var dragging bool
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE:
					running = false
				case sdl.SCANCODE_R:
					v.cam.FitBounds(v.bounds.Min, v.bounds.Max)
				case sdl.SCANCODE_S:
					v.screenshot()
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}

			case *sdl.MouseMotionEvent:
				if dragging {
					v.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}

			case *sdl.MouseWheelEvent:
				v.cam.HandleZoom(float32(e.Y))
			}
		}

		v.drawFrame()
		v.win.SwapBuffers()
	}

	return nil
}

func (v *viewer) drawFrame() {
	width, height := v.win.GetSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	gl.ClearColor(0.15, 0.15, 0.2, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(v.program)

	// Clip planes scale with the camera so tiny and huge parts both work.
	aspect := float32(width) / float32(height)
	fov := v.cfg.Viewer.FOV * gomath.Pi / 180
	near := v.cam.Distance * 0.01
	far := v.cam.Distance * 100
	projection := geom.Perspective(fov, aspect, near, far)

	view := v.cam.ViewMatrix()
	model := geom.Identity()

	gl.UniformMatrix4fv(v.locProjection, 1, false, projection.Ptr())
	gl.UniformMatrix4fv(v.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(v.locModel, 1, false, model.Ptr())

	gl.Uniform3f(v.locLightDir, 0.5, 1.0, 0.5)
	gl.Uniform3f(v.locAmbient, 0.4, 0.4, 0.4)
	gl.Uniform3f(v.locDiffuse, 0.6, 0.6, 0.6)

	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, v.vertexCount)
	gl.BindVertexArray(0)
}

// Close releases GPU resources and the window.
func (v *viewer) Close() {
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
	}
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
	}
	if v.program != 0 {
		gl.DeleteProgram(v.program)
	}
	if v.win != nil {
		v.win.Close()
	}
}
