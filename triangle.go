package trirast

import "math"

// epsilon is the float32 machine epsilon. Areas, edge heights and span
// widths smaller than this are treated as zero.
const epsilon = 0x1p-23

// Point is a screen-space vertex.
// W is the perspective divisor stored by the projection stage; only the
// perspective-correct shaders read it.
type Point struct {
	X, Y, W float32
}

// UV is a normalized texture coordinate.
type UV struct {
	U, V float32
}

// ShadingMode selects how a triangle's color is computed.
type ShadingMode uint8

const (
	// ShadingNone fills with the triangle's flat color, unlit.
	ShadingNone ShadingMode = iota
	// ShadingFlat fills with the triangle's flat color, lit once per face.
	ShadingFlat
	// ShadingGouraud interpolates the three vertex colors.
	ShadingGouraud
)

// String returns the mode name.
func (m ShadingMode) String() string {
	switch m {
	case ShadingNone:
		return "none"
	case ShadingFlat:
		return "flat"
	case ShadingGouraud:
		return "gouraud"
	default:
		return "unknown"
	}
}

// Triangle is a screen-space triangle ready for rasterization.
//
// VertexColors are meaningful only for ShadingGouraud and UVs only when a
// texture shader is used. AvgDepth is used by the depth sorter and nothing
// else.
type Triangle struct {
	Points       [3]Point
	Color        Color
	Shading      ShadingMode
	VertexColors [3]Color
	UVs          [3]UV
	AvgDepth     float32
}

// SignedArea returns the edge function of the three points, which is twice
// the signed area of the triangle. It is positive for one winding and
// negative for the other.
func (t *Triangle) SignedArea() float32 {
	return Edge(t.Points[0], t.Points[1], t.Points[2])
}

// Degenerate reports whether the triangle has (near) zero area.
func (t *Triangle) Degenerate() bool {
	a := t.SignedArea()
	return !(math.Abs(float64(a)) >= epsilon) // NaN counts as degenerate
}

// Edge returns the edge function (p-a) x (b-a): the signed distance of p
// from the directed line a->b, scaled by the edge length. It is zero on the
// line and changes sign across it.
func Edge(a, b, p Point) float32 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// Barycentric returns the weights of p with respect to v0, v1 and v2.
// Inside the triangle all weights are in [0, 1] and sum to 1. ok is false
// for a degenerate triangle, in which case the weights are zero.
func Barycentric(p, v0, v1, v2 Point) (l [3]float32, ok bool) {
	area := Edge(v0, v1, v2)
	if !(math.Abs(float64(area)) >= epsilon) {
		return l, false
	}
	l[0] = Edge(v1, v2, p) / area
	l[1] = Edge(v2, v0, p) / area
	l[2] = Edge(v0, v1, p) / area
	return l, true
}

// bounds returns the integer bounding box of the triangle clamped to a
// width x height buffer. The box is empty when x0 > x1 or y0 > y1.
func (t *Triangle) bounds(width, height int) (x0, y0, x1, y1 int) {
	p := &t.Points
	minX := min(p[0].X, p[1].X, p[2].X)
	maxX := max(p[0].X, p[1].X, p[2].X)
	minY := min(p[0].Y, p[1].Y, p[2].Y)
	maxY := max(p[0].Y, p[1].Y, p[2].Y)

	x0 = clampInt(math.Floor(float64(minX)), 0, width)
	y0 = clampInt(math.Floor(float64(minY)), 0, height)
	x1 = clampInt(math.Ceil(float64(maxX)), -1, width-1)
	y1 = clampInt(math.Ceil(float64(maxY)), -1, height-1)
	return x0, y0, x1, y1
}

// clampInt converts v to int, clamped to [lo, hi]. NaN maps to lo.
func clampInt(v float64, lo, hi int) int {
	if !(v > float64(lo)) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(v)
}
