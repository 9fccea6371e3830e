package creatum

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so log calls
// return before any attribute is evaluated.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// activeLogger may be swapped while a stack logs from another goroutine.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silentLogger())
}

// SetLogger routes creatum diagnostics to l. A nil l silences them again,
// which is also the initial state.
//
// Records are emitted at two levels:
//   - [slog.LevelInfo]: a new base image replaces the document
//   - [slog.LevelDebug]: floating selection lifted, merged, copied,
//     pasted or discarded, and adjustments applied
//
// A command-line front-end typically does:
//
//	creatum.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	activeLogger.Store(l)
}

// Logger returns the logger creatum currently writes to.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
