package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a logger context extractor adding "env" to
// records logged with a context that carries an environment.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", env.String()), true
		}
		return slog.Attr{}, false
	}
}
