package prefs

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/plistkit/plist"
)

// Lookup results recorded on the prefs.lookups counter.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// instrumented decorates a Store with OpenTelemetry spans and a lookup
// counter. Close is passed through untraced.
type instrumented struct {
	Store
	tracer  trace.Tracer
	lookups metric.Int64Counter
}

// Instrument returns a Store that records a span for every get, set,
// delete and keys call and counts lookups by result (hit, miss, error).
// A nil tracer or meter falls back to the no-op implementation.
func Instrument(s Store, tracer trace.Tracer, meter metric.Meter) (Store, error) {
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer("plistkit/prefs")
	}
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("plistkit/prefs")
	}

	lookups, err := meter.Int64Counter(
		"prefs.lookups",
		metric.WithDescription("Number of preference lookups by result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create lookups counter: %w", err)
	}

	return &instrumented{Store: s, tracer: tracer, lookups: lookups}, nil
}

func (s *instrumented) start(ctx context.Context, op, key string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("prefs.op", op)}
	if key != "" {
		attrs = append(attrs, attribute.String("prefs.key", key))
	}
	return s.tracer.Start(ctx, "prefs."+op, trace.WithAttributes(attrs...))
}

func finish(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Get implements Store.
func (s *instrumented) Get(ctx context.Context, key string) (plist.Value, error) {
	ctx, span := s.start(ctx, "get", key)
	v, err := s.Store.Get(ctx, key)

	result := resultHit
	switch {
	case errors.Is(err, ErrNotFound):
		result = resultMiss
	case err != nil:
		result = resultError
	}
	span.SetAttributes(attribute.String("prefs.result", result))
	s.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))

	finish(span, err)
	return v, err
}

// Set implements Store.
func (s *instrumented) Set(ctx context.Context, key string, v plist.Value) error {
	ctx, span := s.start(ctx, "set", key)
	if v != nil {
		span.SetAttributes(attribute.String("prefs.kind", v.Kind().String()))
	}
	err := s.Store.Set(ctx, key, v)
	finish(span, err)
	return err
}

// Delete implements Store.
func (s *instrumented) Delete(ctx context.Context, key string) error {
	ctx, span := s.start(ctx, "delete", key)
	err := s.Store.Delete(ctx, key)
	finish(span, err)
	return err
}

// Keys implements Store.
func (s *instrumented) Keys(ctx context.Context) ([]string, error) {
	ctx, span := s.start(ctx, "keys", "")
	keys, err := s.Store.Keys(ctx)
	span.SetAttributes(attribute.Int("prefs.count", len(keys)))
	finish(span, err)
	return keys, err
}
