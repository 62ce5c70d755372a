// Package cli implements the tsp command-line harness.
//
// The harness is an ordinary external caller of the core packages: it
// parses a cost-matrix instance, invokes the selected solver, and prints
// the resulting tour. All presentation concerns (flags, logging, output
// formatting) live here — the core stays silent and pure.
//
// # Commands
//
//	solve — run the approximate or exact solver on an instance file,
//	        or on the built-in 4-location demo instance.
//
// # Logging
//
// --verbose (-v) enables debug-level logging. Loggers are passed through
// context.Context so commands always have one available.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting, writing to w and
// filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package. A distinct
// type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
