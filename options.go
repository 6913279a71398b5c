package trirast

// FrameOption configures a RenderFrame call.
// Use functional options to customize the pipeline.
//
// Example:
//
//	// Default: quicksort back to front, edge-function fill
//	trirast.RenderFrame(buf, tris)
//
//	// Textured, perspective-correct, with a wireframe overlay
//	trirast.RenderFrame(buf, tris,
//		trirast.WithTexture(tex),
//		trirast.WithPerspective(true),
//		trirast.WithWireframe(trirast.Wireframe))
type FrameOption func(*frameOptions)

// frameOptions holds the configuration of one frame.
type frameOptions struct {
	rasterizer  Rasterizer
	algorithm   Algorithm
	sort        bool
	sortMethod  SortMethod
	texture     Sampler
	perspective bool
	fill        bool

	background    Color
	hasBackground bool
	gridSpacing   int
	gridColor     Color
	wireframe     Color
	hasWireframe  bool
	vertices      Color
	hasVertices   bool
}

// defaultFrameOptions returns the default frame options.
func defaultFrameOptions() frameOptions {
	return frameOptions{
		algorithm:  EdgeFunction,
		sort:       true,
		sortMethod: QuickSort,
		fill:       true,
	}
}

// WithAlgorithm selects the rasterization strategy. The rasterizer is
// created for the frame and released when RenderFrame returns; to reuse a
// ParallelEdgeRasterizer across frames pass it with WithRasterizer.
func WithAlgorithm(a Algorithm) FrameOption {
	return func(o *frameOptions) {
		o.algorithm = a
	}
}

// WithRasterizer uses r for filling. It takes precedence over
// WithAlgorithm. The caller keeps ownership of r.
func WithRasterizer(r Rasterizer) FrameOption {
	return func(o *frameOptions) {
		o.rasterizer = r
	}
}

// WithSortMethod selects the back-to-front depth sort.
func WithSortMethod(m SortMethod) FrameOption {
	return func(o *frameOptions) {
		o.sort = true
		o.sortMethod = m
	}
}

// WithoutSort draws triangles in slice order.
func WithoutSort() FrameOption {
	return func(o *frameOptions) {
		o.sort = false
	}
}

// WithTexture binds a texture. Triangles are then drawn with a texture
// shader, modulated by vertex colors when their shading is Gouraud.
// A nil sampler, including a nil *Texture, unbinds the texture.
func WithTexture(s Sampler) FrameOption {
	return func(o *frameOptions) {
		if t, ok := s.(*Texture); ok && t == nil {
			s = nil
		}
		o.texture = s
	}
}

// WithPerspective enables perspective-correct texture coordinates.
// It has no effect without a texture.
func WithPerspective(enabled bool) FrameOption {
	return func(o *frameOptions) {
		o.perspective = enabled
	}
}

// WithFill enables or disables triangle filling. Overlays are still
// drawn when filling is off.
func WithFill(enabled bool) FrameOption {
	return func(o *frameOptions) {
		o.fill = enabled
	}
}

// WithWireframe outlines every triangle in c after filling.
func WithWireframe(c Color) FrameOption {
	return func(o *frameOptions) {
		o.wireframe = c
		o.hasWireframe = true
	}
}

// WithVertices marks every vertex with a VertexMarkerSize square.
func WithVertices(c Color) FrameOption {
	return func(o *frameOptions) {
		o.vertices = c
		o.hasVertices = true
	}
}

// WithGrid draws a grid with the given spacing under the triangles.
func WithGrid(spacing int, c Color) FrameOption {
	return func(o *frameOptions) {
		o.gridSpacing = spacing
		o.gridColor = c
	}
}

// WithBackground clears the buffer to c before drawing.
func WithBackground(c Color) FrameOption {
	return func(o *frameOptions) {
		o.background = c
		o.hasBackground = true
	}
}
