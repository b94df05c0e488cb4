// Package cli implements the graphforge command-line interface.
//
// Commands load a graph from an interchange JSON document, run one of
// the library's analyses over it, and print the outcome. The CLI is
// built on cobra; all commands support --verbose (-v) for debug-level
// logging through charmbracelet/log, with the logger passed down via
// context.Context.
//
// Algorithm selection flags take strings ("dijkstra", "kruskal", ...)
// and are translated to the library's closed enums here; an unknown
// selector is rejected at this boundary so the library itself never
// sees untyped algorithm names.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtered at level, with
// millisecond timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is a distinct type to keep context keys collision-free.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default so commands always have
// a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
