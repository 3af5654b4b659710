package prefs

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures how Open builds a store.
type Option func(*openConfig)

type openConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

func newOpenConfig(opts []Option) *openConfig {
	c := &openConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// WithLogger sets the logger used while opening the store.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *openConfig) {
		c.logger = logger
	}
}

// WithTracer wraps the opened store with Instrument, recording a span per
// store call.
//
// Example:
//
//	store, err := prefs.Open(ctx, cfg, prefs.WithTracer(otel.Tracer("prefs")))
func WithTracer(tracer trace.Tracer) Option {
	return func(c *openConfig) {
		c.tracer = tracer
	}
}

// WithMeter wraps the opened store with Instrument, counting lookups by
// result.
func WithMeter(meter metric.Meter) Option {
	return func(c *openConfig) {
		c.meter = meter
	}
}
