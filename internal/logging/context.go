package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// WithContext attaches logger to ctx so downstream code can retrieve it
// with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
