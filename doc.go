// Package trirast is a CPU triangle rasterizer.
//
// # Overview
//
// trirast decides which pixels of a frame a screen-space triangle covers
// and what color each covered pixel gets. Colors are packed ARGB8888
// values written into a Buffer, a bounds-checked view over caller-owned
// storage.
//
// # Quick Start
//
//	canvas := trirast.NewCanvas(800, 600)
//
//	tri := trirast.Triangle{
//		Points: [3]trirast.Point{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 200, Y: 300}},
//		Color:  trirast.Fill,
//	}
//	trirast.RenderFrame(canvas.Buffer(), []trirast.Triangle{tri},
//		trirast.WithWireframe(trirast.Wireframe))
//
//	canvas.SavePNG("triangle.png")
//
// # Rasterizers
//
// Two strategies cover exactly the same pixels:
//   - ScanlineRasterizer splits the triangle into flat-top and flat-bottom
//     halves and fills horizontal spans
//   - EdgeFunctionRasterizer tests every pixel center in the bounding box
//     against the triangle's three edge functions
//
// ParallelEdgeRasterizer runs the edge-function loop on row bands across a
// worker pool. A pixel is covered when its center (x+0.5, y+0.5) lies
// inside the triangle or on its boundary. Winding order does not matter and
// triangles with near-zero area draw nothing.
//
// # Shaders
//
// A Shader maps barycentric weights to a color. NewShader picks the
// variant for a triangle: FlatShader, GouraudShader, TextureShader,
// TextureModulateShader and their perspective-correct counterparts, which
// use the clip-space W stored in each Point.
//
// # Depth sorting
//
// Triangles carry an AvgDepth. SortQuick, SortMerge and SortBubble order a
// slice back to front so that nearer triangles overwrite farther ones
// (painter's algorithm).
//
// # Logging
//
// trirast is silent by default. Use SetLogger to route its log/slog
// records to a handler of your choice.
package trirast
