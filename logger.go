// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gloo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gloo and its sub-packages.
// By default gloo produces no log output. Pass nil to restore that.
//
// Log levels used by gloo:
//   - [slog.LevelDebug]: applied state, skipped device probes
//   - [slog.LevelInfo]: shared compute context created
//   - [slog.LevelWarn]: values rejected by the driver
//
// Example:
//
//	gloo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (opencl, opencl/halcl)
// call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
