package geodeduce

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey distinguishes this package's context keys from any other
// package's: the engine itself holds no process-wide logger, preferring
// one carried explicitly through context.
type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l, retrievable with LoggerFrom.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom retrieves the logger carried by ctx, or log.Default() if
// none was attached.
func LoggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
