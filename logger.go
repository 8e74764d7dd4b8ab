// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically: the window
// render thread and the drawing goroutine both log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sierpinski and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-call subdivision summaries, frame uploads
//   - [slog.LevelInfo]: window lifecycle
//   - [slog.LevelWarn]: non-fatal render errors
//
// Example:
//
//	sierpinski.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster/, window/) use
// it to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
