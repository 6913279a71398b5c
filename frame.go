package trirast

// VertexMarkerSize is the side of the square drawn by WithVertices.
const VertexMarkerSize = 4

// Stats reports the work done by RenderFrame.
type Stats struct {
	// Triangles is the number of triangles handed to the rasterizer.
	Triangles int
	// Degenerate is the number of triangles skipped for near-zero area.
	Degenerate int
}

// RenderFrame draws tris into buf in this order:
//
//  1. clear to the background color (WithBackground)
//  2. grid (WithGrid)
//  3. triangles, back to front unless WithoutSort is given
//  4. wireframe and vertex overlays (WithWireframe, WithVertices)
//
// Sorting reorders tris in place. Each triangle gets its shader from
// NewShader using the frame's texture and perspective settings.
func RenderFrame(buf *Buffer, tris []Triangle, opts ...FrameOption) Stats {
	o := defaultFrameOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := o.rasterizer
	if r == nil && o.fill {
		r = NewRasterizer(o.algorithm)
		if p, ok := r.(*ParallelEdgeRasterizer); ok {
			defer p.Close()
		}
	}

	if o.hasBackground {
		buf.Clear(o.background)
	}
	if o.gridSpacing > 0 {
		buf.DrawGrid(o.gridSpacing, o.gridColor)
	}
	if o.sort {
		SortByDepth(tris, o.sortMethod)
	}

	log := Logger()
	verbose := debugging(log)
	var st Stats
	for i := range tris {
		t := &tris[i]
		if t.Degenerate() {
			st.Degenerate++
			if verbose {
				log.Debug("trirast: degenerate triangle skipped", "index", i, "area", t.SignedArea())
			}
			continue
		}
		if t.Shading > ShadingGouraud {
			log.Warn("trirast: unknown shading mode, using flat", "index", i, "shading", t.Shading)
		}
		st.Triangles++
		if o.fill {
			r.FillTriangle(t, buf, NewShader(t, o.texture, o.perspective))
		}
	}

	if o.hasWireframe || o.hasVertices {
		for i := range tris {
			if o.hasWireframe {
				buf.DrawWireframe(&tris[i], o.wireframe)
			}
			if o.hasVertices {
				buf.DrawVertices(&tris[i], VertexMarkerSize, o.vertices)
			}
		}
	}

	log.Debug("trirast: frame rendered",
		"triangles", st.Triangles,
		"degenerate", st.Degenerate,
		"fill", o.fill,
		"sorted", o.sort)
	return st
}
