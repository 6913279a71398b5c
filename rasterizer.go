package trirast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("trirast: unknown rasterizer algorithm")

// Rasterizer fills a triangle into a buffer, asking a shader for the color
// of every covered pixel.
//
// The set of implementations is closed: ScanlineRasterizer,
// EdgeFunctionRasterizer and ParallelEdgeRasterizer. All of them cover the
// same pixels for the same triangle:
//
//   - a pixel is covered iff its center (x+0.5, y+0.5) lies inside the
//     triangle or on its boundary, for either winding order
//   - triangles with near-zero area cover nothing
//   - nothing is written outside the buffer
//
// A rasterizer writes each covered pixel exactly once per call.
type Rasterizer interface {
	FillTriangle(t *Triangle, buf *Buffer, s Shader)
	Algorithm() Algorithm

	rasterizer()
}

// Algorithm names a rasterization strategy.
type Algorithm uint8

const (
	// Scanline decomposes the triangle into flat-top and flat-bottom halves
	// and fills horizontal spans.
	Scanline Algorithm = iota
	// EdgeFunction tests every pixel center of the bounding box against
	// the three edge functions.
	EdgeFunction
	// ParallelEdgeFunction runs EdgeFunction on row bands in parallel.
	ParallelEdgeFunction
)

var algorithmNames = [...]string{
	Scanline:             "scanline",
	EdgeFunction:         "edge",
	ParallelEdgeFunction: "parallel",
}

// String returns the algorithm name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// ParseAlgorithm returns the algorithm with the given name.
// Names are case-insensitive; "edgefunction" is accepted for EdgeFunction.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scanline":
		return Scanline, nil
	case "edge", "edgefunction", "edge-function":
		return EdgeFunction, nil
	case "parallel":
		return ParallelEdgeFunction, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// NewRasterizer returns a rasterizer for the algorithm. Unknown values fall
// back to EdgeFunction. A ParallelEdgeRasterizer owns goroutines; callers
// that create one this way should release it with Close.
func NewRasterizer(a Algorithm) Rasterizer {
	switch a {
	case Scanline:
		return ScanlineRasterizer{}
	case ParallelEdgeFunction:
		return NewParallelEdgeRasterizer(0)
	default:
		return EdgeFunctionRasterizer{}
	}
}
