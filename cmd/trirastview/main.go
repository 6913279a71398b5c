// Command trirastview shows a spinning cube drawn by the trirast
// rasterizer in a window.
//
// Keys:
//
//	1, 2, 3  scanline, edge function, parallel edge function
//	S        cycle shading (none, flat, gouraud)
//	T        toggle the checkerboard texture
//	P        toggle perspective-correct texturing
//	W        toggle the wireframe overlay
//	G        toggle the grid
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/trirast"
)

const tps = 60

type game struct {
	scene *scene
	frame *ebiten.Image
	pix   []byte
}

func (g *game) Update() error {
	s := g.scene
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.setAlgorithm(trirast.Scanline)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.setAlgorithm(trirast.EdgeFunction)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.setAlgorithm(trirast.ParallelEdgeFunction)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.cycleShading()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.textured = !s.textured
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.perspective = !s.perspective
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.wireframe = !s.wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.grid = !s.grid
	}

	s.advance(1.0 / tps)
	s.render()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.scene
	w, h := s.canvas.Width(), s.canvas.Height()
	if g.frame == nil {
		g.frame = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}
	s.canvas.CopyRGBA(g.pix)
	g.frame.WritePixels(g.pix)
	screen.DrawImage(g.frame, nil)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  shading=%s  texture=%v  perspective=%v  triangles=%d  fps=%.0f",
		s.algorithm, s.shading, s.textured, s.perspective, s.stats.Triangles, ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.canvas.Width(), g.scene.canvas.Height()
}

func main() {
	var (
		width   = flag.Int("width", 800, "frame width")
		height  = flag.Int("height", 600, "frame height")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s := newScene(*width, *height)
	defer s.close()

	ebiten.SetWindowTitle("trirast")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(&game{scene: s}); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}
