// Command trirast renders a rotated cube with the trirast rasterizer and
// writes the frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/trirast"
	"github.com/gogpu/trirast/internal/mesh"
)

func main() {
	var (
		width       = flag.Int("width", 800, "image width")
		height      = flag.Int("height", 600, "image height")
		output      = flag.String("output", "cube.png", "output file")
		algorithm   = flag.String("algorithm", "edge", "rasterizer: scanline, edge or parallel")
		sortMethod  = flag.String("sort", "quick", "depth sort: quick, merge or bubble")
		shading     = flag.String("shading", "gouraud", "shading: none, flat or gouraud")
		texture     = flag.String("texture", "", `texture file, or "checker" for a procedural checkerboard`)
		perspective = flag.Bool("perspective", true, "perspective-correct texturing")
		wireframe   = flag.Bool("wireframe", false, "draw triangle edges")
		vertices    = flag.Bool("vertices", false, "draw vertex markers")
		grid        = flag.Int("grid", 50, "grid spacing in pixels, 0 to disable")
		cull        = flag.Bool("cull", true, "drop back faces")
		rx          = flag.Float64("rx", 25, "rotation about X in degrees")
		ry          = flag.Float64("ry", 35, "rotation about Y in degrees")
		rz          = flag.Float64("rz", 0, "rotation about Z in degrees")
		label       = flag.Bool("label", true, "stamp a summary label on the image")
		lang        = flag.String("lang", "en", "language tag for number formatting")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	alg, err := trirast.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal(err)
	}
	sm, err := trirast.ParseSortMethod(*sortMethod)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := parseShading(*shading)
	if err != nil {
		log.Fatal(err)
	}
	tex, err := loadTexture(*texture)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}

	opts := mesh.DefaultOptions()
	opts.Cull = *cull
	opts.Shading = mode
	rotation := mgl32.Vec3{
		mgl32.DegToRad(float32(*rx)),
		mgl32.DegToRad(float32(*ry)),
		mgl32.DegToRad(float32(*rz)),
	}
	tris := mesh.Project(mesh.Cube(), rotation, mesh.DefaultCamera(), *width, *height, opts)

	frameOpts := []trirast.FrameOption{
		trirast.WithAlgorithm(alg),
		trirast.WithSortMethod(sm),
		trirast.WithPerspective(*perspective),
		trirast.WithGrid(*grid, trirast.Grid),
	}
	if tex != nil {
		frameOpts = append(frameOpts, trirast.WithTexture(tex))
	}
	if *wireframe {
		frameOpts = append(frameOpts, trirast.WithWireframe(trirast.Wireframe))
	}
	if *vertices {
		frameOpts = append(frameOpts, trirast.WithVertices(trirast.Vertex))
	}

	canvas := trirast.NewCanvas(*width, *height)
	start := time.Now()
	st := trirast.RenderFrame(canvas.Buffer(), tris, frameOpts...)
	elapsed := time.Since(start)

	p := message.NewPrinter(language.Make(*lang))
	summary := p.Sprintf("%d triangles, %d pixels, %s, %v", st.Triangles, (*width)*(*height), alg, elapsed.Round(time.Microsecond))

	img := canvas.Image()
	if *label {
		drawLabel(img, summary, 8, 18)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s: %s\n", *output, summary)
}

func parseShading(name string) (trirast.ShadingMode, error) {
	for _, m := range []trirast.ShadingMode{trirast.ShadingNone, trirast.ShadingFlat, trirast.ShadingGouraud} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown shading mode %q", name)
}

func loadTexture(path string) (*trirast.Texture, error) {
	switch path {
	case "":
		return nil, nil
	case "checker":
		return trirast.Checkerboard(64, 64, 8, 0xFFE0E0E0, 0xFF303030), nil
	}
	return trirast.LoadTexture(path)
}

// drawLabel writes text in a 7x13 bitmap font with its baseline at (x, y).
func drawLabel(img *image.RGBA, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
