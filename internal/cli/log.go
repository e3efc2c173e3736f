package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gauss/matrix"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Debug(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Microsecond))...)
}

// stepLogger returns an elimination hook that logs every row operation at debug level.
func stepLogger(l *log.Logger) matrix.Option {
	n := 0
	return matrix.WithOnOperation(func(s matrix.Step) {
		n++
		l.Debug("row operation", "n", n, "op", s.String())
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
