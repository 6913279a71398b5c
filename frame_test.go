package trirast

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func square(x0, y0, x1, y1 float32, c Color, depth float32) []Triangle {
	return []Triangle{
		{Points: [3]Point{{X: x0, Y: y0, W: 1}, {X: x1, Y: y0, W: 1}, {X: x1, Y: y1, W: 1}}, Color: c, AvgDepth: depth},
		{Points: [3]Point{{X: x0, Y: y0, W: 1}, {X: x1, Y: y1, W: 1}, {X: x0, Y: y1, W: 1}}, Color: c, AvgDepth: depth},
	}
}

func TestRenderFrame_Defaults(t *testing.T) {
	buf := newTestBuffer(10, 10, Black)
	tris := square(2, 2, 8, 8, Red, 1)

	st := RenderFrame(buf, tris)
	if st.Triangles != 2 || st.Degenerate != 0 {
		t.Errorf("stats = %+v, want 2 triangles", st)
	}
	if p, _ := buf.Pixel(5, 5); p != Red {
		t.Errorf("center = %#08x, want red", uint32(p))
	}
	if p, _ := buf.Pixel(0, 0); p != Black {
		t.Errorf("corner = %#08x, want untouched", uint32(p))
	}
}

func TestRenderFrame_BackToFront(t *testing.T) {
	far := square(0, 0, 10, 10, Blue, 10)
	near := square(0, 0, 10, 10, Green, 1)

	for _, m := range []SortMethod{QuickSort, MergeSort, BubbleSort} {
		buf := newTestBuffer(10, 10, Black)
		tris := append(append([]Triangle{}, near...), far...)
		RenderFrame(buf, tris, WithSortMethod(m))
		if p, _ := buf.Pixel(5, 5); p != Green {
			t.Errorf("%v: nearest triangle not on top: %#08x", m, uint32(p))
		}
	}

	buf := newTestBuffer(10, 10, Black)
	tris := append(append([]Triangle{}, near...), far...)
	RenderFrame(buf, tris, WithoutSort())
	if p, _ := buf.Pixel(5, 5); p != Blue {
		t.Errorf("WithoutSort: last drawn should win, got %#08x", uint32(p))
	}
}

func TestRenderFrame_Algorithms(t *testing.T) {
	var want []Color
	for _, a := range []Algorithm{Scanline, EdgeFunction, ParallelEdgeFunction} {
		buf := newTestBuffer(64, 64, Black)
		RenderFrame(buf, square(4, 4, 60, 60, Fill, 0), WithAlgorithm(a))
		if want == nil {
			want = append([]Color(nil), buf.Pix()...)
			continue
		}
		for i, p := range buf.Pix() {
			if p != want[i] {
				t.Fatalf("%v differs from scanline at pixel %d", a, i)
			}
		}
	}
}

func TestRenderFrame_WithRasterizer(t *testing.T) {
	p := NewParallelEdgeRasterizer(2)
	defer p.Close()

	buf := newTestBuffer(8, 8, Black)
	RenderFrame(buf, square(0, 0, 8, 8, Red, 0), WithRasterizer(p), WithAlgorithm(Scanline))
	if px, _ := buf.Pixel(7, 7); px != Red {
		t.Errorf("pixel = %#08x, want red", uint32(px))
	}
	if !p.pool.IsRunning() {
		t.Error("RenderFrame closed a caller-owned rasterizer")
	}
}

func TestRenderFrame_Overlays(t *testing.T) {
	buf := newTestBuffer(12, 12, Black)
	tris := []Triangle{{Points: [3]Point{{X: 2, Y: 2}, {X: 9, Y: 2}, {X: 2, Y: 9}}, Color: Fill}}

	RenderFrame(buf, tris,
		WithBackground(Background),
		WithGrid(5, Grid),
		WithWireframe(Wireframe),
		WithVertices(Vertex))

	checks := []struct {
		x, y int
		want Color
	}{
		{0, 11, Grid},       // grid under everything
		{1, 11, Background}, // cleared
		{4, 4, Fill},        // interior
		{5, 2, Wireframe},   // top edge
		{2, 2, Vertex},      // marker on top of the wireframe
		{11, 11, Background},
	}
	for _, c := range checks {
		if got, _ := buf.Pixel(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %#08x, want %#08x", c.x, c.y, uint32(got), uint32(c.want))
		}
	}
}

func TestRenderFrame_WithoutFill(t *testing.T) {
	buf := newTestBuffer(10, 10, Black)
	tris := square(1, 1, 9, 9, Red, 0)

	st := RenderFrame(buf, tris, WithFill(false), WithWireframe(White))
	if st.Triangles != 2 {
		t.Errorf("stats = %+v", st)
	}
	if p, _ := buf.Pixel(5, 3); p != Black {
		t.Errorf("interior filled with fill disabled: %#08x", uint32(p))
	}
	if p, _ := buf.Pixel(1, 5); p != White {
		t.Errorf("wireframe missing: %#08x", uint32(p))
	}
}

func TestRenderFrame_Texture(t *testing.T) {
	tex := Checkerboard(2, 2, 1, Red, Blue)
	tri := Triangle{
		Points: [3]Point{{X: 0, Y: 0, W: 1}, {X: 32, Y: 0, W: 1}, {X: 0, Y: 32, W: 1}},
		UVs:    [3]UV{{0, 0}, {1, 0}, {0, 1}},
		Color:  Green,
	}

	for _, perspective := range []bool{false, true} {
		buf := newTestBuffer(32, 32, Black)
		RenderFrame(buf, []Triangle{tri}, WithTexture(tex), WithPerspective(perspective))
		if p, _ := buf.Pixel(2, 2); p != Red {
			t.Errorf("perspective=%v: texel (0,0) = %#08x, want red", perspective, uint32(p))
		}
		if p, _ := buf.Pixel(20, 2); p != Blue {
			t.Errorf("perspective=%v: texel (1,0) = %#08x, want blue", perspective, uint32(p))
		}
	}

	var none *Texture
	buf := newTestBuffer(32, 32, Black)
	RenderFrame(buf, []Triangle{tri}, WithTexture(none))
	if p, _ := buf.Pixel(2, 2); p != Green {
		t.Errorf("nil *Texture should fall back to flat color, got %#08x", uint32(p))
	}
}

func TestRenderFrame_Degenerate(t *testing.T) {
	buf := newTestBuffer(10, 10, Black)
	tris := []Triangle{
		{Points: [3]Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 9, Y: 9}}, Color: Red},
		{Points: [3]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 1, Y: 8}}, Color: Red},
	}
	st := RenderFrame(buf, tris)
	if st != (Stats{Triangles: 1, Degenerate: 1}) {
		t.Errorf("stats = %+v, want 1 drawn, 1 degenerate", st)
	}
}

func TestRenderFrame_WarnsOnUnknownShading(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn})))

	buf := newTestBuffer(10, 10, Black)
	tris := []Triangle{{Points: [3]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 1, Y: 8}}, Color: Red, Shading: 9}}
	RenderFrame(buf, tris)

	if !strings.Contains(out.String(), "unknown shading") {
		t.Errorf("expected a warning, got %q", out.String())
	}
	if p, _ := buf.Pixel(2, 2); p != Red {
		t.Errorf("unknown shading should draw flat, got %#08x", uint32(p))
	}
}
