package trirast

import "math"

// EdgeFunctionRasterizer fills triangles by evaluating three edge functions
// at every pixel center of the bounding box.
//
// Its cost is proportional to the bounding box area, not the triangle
// area. Pixels are independent, which makes the strategy trivially
// parallel (see ParallelEdgeRasterizer).
type EdgeFunctionRasterizer struct{}

func (EdgeFunctionRasterizer) rasterizer() {}

// Algorithm implements Rasterizer.
func (EdgeFunctionRasterizer) Algorithm() Algorithm { return EdgeFunction }

// FillTriangle implements Rasterizer.
func (EdgeFunctionRasterizer) FillTriangle(t *Triangle, buf *Buffer, s Shader) {
	e, ok := newEdgeSetup(t)
	if !ok {
		return
	}
	x0, y0, x1, y1 := t.bounds(buf.width, buf.height)
	e.fill(buf, s, x0, x1, y0, y1, 0)
}

// edgeSetup holds the per-triangle constants of the edge function loop.
type edgeSetup struct {
	v0, v1, v2 Point
	area       float32
	invArea    float32
}

// newEdgeSetup returns false for degenerate triangles.
func newEdgeSetup(t *Triangle) (edgeSetup, bool) {
	area := t.SignedArea()
	if !(math.Abs(float64(area)) >= epsilon) {
		return edgeSetup{}, false
	}
	return edgeSetup{
		v0:      t.Points[0],
		v1:      t.Points[1],
		v2:      t.Points[2],
		area:    area,
		invArea: 1 / area,
	}, true
}

// weights returns the edge function values of the pixel center p and
// whether p is inside or on the triangle.
func (e *edgeSetup) weights(p Point) (w [3]float32, inside bool) {
	w[0] = Edge(e.v1, e.v2, p)
	w[1] = Edge(e.v2, e.v0, p)
	w[2] = Edge(e.v0, e.v1, p)
	if e.area > 0 {
		return w, w[0] >= 0 && w[1] >= 0 && w[2] >= 0
	}
	return w, w[0] <= 0 && w[1] <= 0 && w[2] <= 0
}

// fill covers pixels [x0, x1] x [y0, y1] in triangle space. buf row 0
// corresponds to triangle-space row originY.
func (e *edgeSetup) fill(buf *Buffer, s Shader, x0, x1, y0, y1, originY int) {
	flat, isFlat := s.(FlatShader)
	for y := y0; y <= y1; y++ {
		row := buf.pix[(y-originY)*buf.width : (y-originY+1)*buf.width]
		p := Point{Y: float32(y) + 0.5}
		for x := x0; x <= x1; x++ {
			p.X = float32(x) + 0.5
			w, inside := e.weights(p)
			if !inside {
				continue
			}
			if isFlat {
				row[x] = flat.Color
				continue
			}
			row[x] = s.Shade([3]float32{w[0] * e.invArea, w[1] * e.invArea, w[2] * e.invArea})
		}
	}
}
