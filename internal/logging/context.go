package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the context logger, or a disabled one when none is set.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every line logged through the returned context.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithURL adds the url field used by embed and locator logs.
func WithURL(ctx context.Context, url string) context.Context {
	return withStr(ctx, "url", url)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return FromContext(ctx).With().Str(key, value).Logger().WithContext(ctx)
}
