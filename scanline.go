package trirast

import "math"

// ScanlineRasterizer fills triangles by flat-top / flat-bottom
// decomposition:
//
//  1. sort the vertices by y
//  2. split a general triangle at the middle vertex into a flat-bottom
//     upper half and a flat-top lower half
//  3. walk both edges of each half row by row and fill horizontal spans
//
// Flat shaders fill whole spans with Buffer.FillSpan. Gouraud shaders
// interpolate vertex colors down the edges and then across each span
// (vertical then horizontal), which is affine and cheaper than, but not
// identical to, barycentric interpolation. Any other shader receives
// barycentric weights computed against the triangle's original vertex
// order.
//
// Rows and spans are sampled at pixel centers, covering row y when
// y+0.5 lies in [top, bottom], so coverage matches EdgeFunctionRasterizer.
type ScanlineRasterizer struct{}

func (ScanlineRasterizer) rasterizer() {}

// Algorithm implements Rasterizer.
func (ScanlineRasterizer) Algorithm() Algorithm { return Scanline }

// spanMode selects how a scanline span is colored.
type spanMode uint8

const (
	spanFlat spanMode = iota
	spanGouraud
	spanShader
)

// scanFill carries the per-triangle state shared by both halves.
type scanFill struct {
	buf   *Buffer
	mode  spanMode
	color Color
	s     Shader
	edges edgeSetup
}

// scanVertex is a vertex with the color it carries down its edges.
type scanVertex struct {
	p Point
	c RGB
}

// FillTriangle implements Rasterizer.
func (ScanlineRasterizer) FillTriangle(t *Triangle, buf *Buffer, s Shader) {
	e, ok := newEdgeSetup(t)
	if !ok {
		return
	}

	f := scanFill{buf: buf, s: s, edges: e}
	v := [3]scanVertex{{p: t.Points[0]}, {p: t.Points[1]}, {p: t.Points[2]}}
	switch sh := s.(type) {
	case FlatShader:
		f.mode = spanFlat
		f.color = sh.Color
	case GouraudShader:
		f.mode = spanGouraud
		for i := range v {
			v[i].c = sh.colors[i]
		}
	default:
		f.mode = spanShader
	}

	// Sort by ascending y; colors travel with their vertex.
	if v[1].p.Y < v[0].p.Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[2].p.Y < v[1].p.Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[1].p.Y < v[0].p.Y {
		v[0], v[1] = v[1], v[0]
	}

	if nearlyEqual(v[1].p.Y, v[2].p.Y) {
		f.flatBottom(v[0], v[1], v[2], true)
		return
	}
	if nearlyEqual(v[0].p.Y, v[1].p.Y) {
		f.flatTop(v[0], v[1], v[2])
		return
	}

	// Split on the long edge v0->v2 at the height of v1.
	k := (v[1].p.Y - v[0].p.Y) / (v[2].p.Y - v[0].p.Y)
	split := scanVertex{
		p: Point{X: v[0].p.X + (v[2].p.X-v[0].p.X)*k, Y: v[1].p.Y},
		c: v[0].c.Lerp(v[2].c, k),
	}
	// The upper half stops short of the split row so that a pixel center
	// lying exactly on it is filled once, by the lower half.
	f.flatBottom(v[0], v[1], split, false)
	f.flatTop(v[1], split, v[2])
}

// flatBottom fills a triangle whose top vertex is a and whose bottom edge
// b-c is horizontal. includeBottom controls whether pixel centers on the
// bottom edge are covered.
func (f *scanFill) flatBottom(a, b, c scanVertex, includeBottom bool) {
	height := b.p.Y - a.p.Y
	if !(math.Abs(float64(height)) >= epsilon) {
		return
	}
	f.walk(a.p.Y, b.p.Y, includeBottom,
		a, (b.p.X-a.p.X)/height, a.c, b.c,
		a, (c.p.X-a.p.X)/height, a.c, c.c)
}

// flatTop fills a triangle whose top edge a-b is horizontal and whose
// bottom vertex is c.
func (f *scanFill) flatTop(a, b, c scanVertex) {
	height := c.p.Y - a.p.Y
	if !(math.Abs(float64(height)) >= epsilon) {
		return
	}
	f.walk(a.p.Y, c.p.Y, true,
		a, (c.p.X-a.p.X)/height, a.c, c.c,
		b, (c.p.X-b.p.X)/height, b.c, c.c)
}

// walk steps two edges that both start at row top. Each edge begins at
// start with slope dx/dy and carries a color from c0 at top to c1 at
// bottom.
func (f *scanFill) walk(top, bottom float32, includeBottom bool,
	startA scanVertex, slopeA float32, a0, a1 RGB,
	startB scanVertex, slopeB float32, b0, b1 RGB,
) {
	height := bottom - top
	y0 := clampInt(math.Ceil(float64(top)-0.5), 0, f.buf.height)
	last := math.Floor(float64(bottom) - 0.5)
	if !includeBottom {
		last = math.Ceil(float64(bottom)-0.5) - 1
	}
	y1 := clampInt(last, -1, f.buf.height-1)

	for y := y0; y <= y1; y++ {
		yc := float32(y) + 0.5
		dy := yc - top
		xl := startA.p.X + slopeA*dy
		xr := startB.p.X + slopeB*dy

		var cl, cr RGB
		if f.mode == spanGouraud {
			t := dy / height
			cl = a0.Lerp(a1, t)
			cr = b0.Lerp(b1, t)
		}
		if xl > xr {
			xl, xr = xr, xl
			cl, cr = cr, cl
		}
		f.span(y, xl, xr, cl, cr)
	}
}

// span fills the pixels of row y whose centers lie in [xl, xr].
func (f *scanFill) span(y int, xl, xr float32, cl, cr RGB) {
	x0 := clampInt(math.Ceil(float64(xl)-0.5), 0, f.buf.width)
	x1 := clampInt(math.Floor(float64(xr)-0.5), -1, f.buf.width-1)

	switch f.mode {
	case spanFlat:
		f.buf.FillSpan(y, x0, x1, f.color)

	case spanGouraud:
		if x0 > x1 {
			return
		}
		row := f.buf.pix[y*f.buf.width : (y+1)*f.buf.width]
		width := xr - xl
		for x := x0; x <= x1; x++ {
			var tx float32
			if math.Abs(float64(width)) >= epsilon {
				tx = (float32(x) + 0.5 - xl) / width
			}
			row[x] = cl.Lerp(cr, tx).Pack()
		}

	default:
		if x0 > x1 {
			return
		}
		row := f.buf.pix[y*f.buf.width : (y+1)*f.buf.width]
		e := &f.edges
		p := Point{Y: float32(y) + 0.5}
		for x := x0; x <= x1; x++ {
			p.X = float32(x) + 0.5
			w, _ := e.weights(p)
			row[x] = f.s.Shade([3]float32{w[0] * e.invArea, w[1] * e.invArea, w[2] * e.invArea})
		}
	}
}

func nearlyEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}
