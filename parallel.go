package trirast

import (
	"sync"

	"github.com/gogpu/trirast/internal/parallel"
)

// MinBandRows is the smallest band of rows handed to a worker. Bounding
// boxes shorter than two bands are filled on the calling goroutine.
const MinBandRows = 16

// ParallelEdgeRasterizer runs the edge-function fill on horizontal bands
// of the bounding box, one band per job on a worker pool.
//
// Bands cover disjoint rows, so the output is identical to
// EdgeFunctionRasterizer for the same triangle and shader. Shaders must be
// safe to call from several goroutines; all shaders in this package are.
//
// A ParallelEdgeRasterizer owns goroutines. Call Close when done.
type ParallelEdgeRasterizer struct {
	pool *parallel.WorkerPool
	once sync.Once
}

// NewParallelEdgeRasterizer starts a rasterizer with the given number of
// workers. If workers is 0 or negative, GOMAXPROCS is used.
func NewParallelEdgeRasterizer(workers int) *ParallelEdgeRasterizer {
	pool := parallel.NewWorkerPool(workers)
	Logger().Info("trirast: parallel rasterizer started", "workers", pool.Workers())
	return &ParallelEdgeRasterizer{pool: pool}
}

func (*ParallelEdgeRasterizer) rasterizer() {}

// Algorithm implements Rasterizer.
func (*ParallelEdgeRasterizer) Algorithm() Algorithm { return ParallelEdgeFunction }

// Workers returns the number of worker goroutines.
func (r *ParallelEdgeRasterizer) Workers() int { return r.pool.Workers() }

// FillTriangle implements Rasterizer.
func (r *ParallelEdgeRasterizer) FillTriangle(t *Triangle, buf *Buffer, s Shader) {
	e, ok := newEdgeSetup(t)
	if !ok {
		return
	}
	x0, y0, x1, y1 := t.bounds(buf.width, buf.height)
	if x0 > x1 || y0 > y1 {
		return
	}

	if y1-y0+1 < MinBandRows*2 || r.pool.Workers() < 2 {
		e.fill(buf, s, x0, x1, y0, y1, 0)
		return
	}

	bands := parallel.SplitRows(y0, y1, r.pool.Workers(), MinBandRows)
	fillBand := func(i int) {
		b := bands[i]
		e.fill(buf.Rows(b.Y0, b.Y1+1), s, x0, x1, b.Y0, b.Y1, b.Y0)
	}
	if !r.pool.Run(len(bands), fillBand) {
		for i := range bands {
			fillBand(i)
		}
	}
}

// Close stops the worker pool. It must not be called concurrently with
// FillTriangle. FillTriangle calls made after Close returns still work but
// run on the calling goroutine.
func (r *ParallelEdgeRasterizer) Close() {
	r.once.Do(r.pool.Close)
}
