package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithFontID creates a child logger with a font_id field
func WithFontID(ctx context.Context, fontID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("font_id", fontID).Logger()
	return WithContext(ctx, childLogger)
}

// WithFamily creates a child logger with a family field
func WithFamily(ctx context.Context, family string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("family", family).Logger()
	return WithContext(ctx, childLogger)
}
