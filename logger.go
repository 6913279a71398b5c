package trirast

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent discards every record; its handler reports every level disabled.
var silent = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger routes trirast diagnostics to l. Pass nil to silence them
// again, which is also the initial state. It may be called while frames
// are being rendered on other goroutines.
//
// Records by level:
//   - [slog.LevelDebug]: skipped degenerate triangles, one summary per frame
//   - [slog.LevelInfo]: a parallel rasterizer starting its workers
//   - [slog.LevelWarn]: triangles with an unknown shading mode
//
// Nothing is logged per pixel.
//
//	trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugging reports whether l would emit debug records, so per-triangle
// attributes are only built when someone reads them.
func debugging(l *slog.Logger) bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}
