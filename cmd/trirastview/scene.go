package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/internal/mesh"
)

// spinSeconds is the duration of one full turn about Y.
const spinSeconds = 6

// scene is the viewer state that does not depend on the window.
type scene struct {
	canvas *trirast.Canvas
	mesh   *mesh.Mesh
	camera mesh.Camera
	tris   []trirast.Triangle

	rasterizers [3]trirast.Rasterizer
	algorithm   trirast.Algorithm
	shading     trirast.ShadingMode
	texture     *trirast.Texture
	textured    bool
	perspective bool
	wireframe   bool
	grid        bool

	spin     *gween.Tween
	tilt     *gween.Tween
	rotation mgl32.Vec3
	stats    trirast.Stats
}

func newScene(width, height int) *scene {
	s := &scene{
		canvas:      trirast.NewCanvas(width, height),
		mesh:        mesh.Cube(),
		camera:      mesh.DefaultCamera(),
		algorithm:   trirast.EdgeFunction,
		shading:     trirast.ShadingGouraud,
		texture:     trirast.Checkerboard(64, 64, 8, 0xFFE0E0E0, 0xFF303030),
		perspective: true,
		grid:        true,
	}
	s.rasterizers = [3]trirast.Rasterizer{
		trirast.ScanlineRasterizer{},
		trirast.EdgeFunctionRasterizer{},
		trirast.NewParallelEdgeRasterizer(0),
	}
	s.resetTweens()
	return s
}

func (s *scene) resetTweens() {
	s.spin = gween.New(0, 2*math.Pi, spinSeconds, ease.InOutSine)
	s.tilt = gween.New(-0.5, 0.5, spinSeconds/2, ease.InOutQuad)
}

// advance moves the animation forward by dt seconds.
func (s *scene) advance(dt float32) {
	y, spun := s.spin.Update(dt)
	x, tilted := s.tilt.Update(dt)
	s.rotation = mgl32.Vec3{x, y, 0}
	if spun {
		s.spin.Reset()
	}
	if tilted {
		// Swing back the other way.
		s.tilt = gween.New(x, -x, spinSeconds/2, ease.InOutQuad)
	}
}

func (s *scene) setAlgorithm(a trirast.Algorithm) {
	if int(a) < len(s.rasterizers) {
		s.algorithm = a
	}
}

// cycleShading steps none -> flat -> gouraud -> none.
func (s *scene) cycleShading() {
	s.shading = (s.shading + 1) % (trirast.ShadingGouraud + 1)
}

// render projects the mesh and draws a frame into the canvas.
func (s *scene) render() {
	opts := mesh.DefaultOptions()
	opts.Shading = s.shading
	s.tris = mesh.AppendProjected(s.tris[:0], s.mesh, s.rotation, s.camera,
		s.canvas.Width(), s.canvas.Height(), opts)

	frameOpts := []trirast.FrameOption{
		trirast.WithBackground(trirast.Background),
		trirast.WithRasterizer(s.rasterizers[s.algorithm]),
		trirast.WithPerspective(s.perspective),
	}
	if s.grid {
		frameOpts = append(frameOpts, trirast.WithGrid(50, trirast.Grid))
	}
	if s.textured {
		frameOpts = append(frameOpts, trirast.WithTexture(s.texture))
	}
	if s.wireframe {
		frameOpts = append(frameOpts, trirast.WithWireframe(trirast.Wireframe))
	}
	s.stats = trirast.RenderFrame(s.canvas.Buffer(), s.tris, frameOpts...)
}

func (s *scene) close() {
	if p, ok := s.rasterizers[trirast.ParallelEdgeFunction].(*trirast.ParallelEdgeRasterizer); ok {
		p.Close()
	}
}
