package store

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	metricsOnce     sync.Once
	storeOperations metric.Int64Counter
	storeDuration   metric.Float64Histogram
)

func initMetrics() {
	metricsOnce.Do(func() {
		meter := otel.Meter("github.com/merobox/authcache/internal/store")

		var err error
		storeOperations, err = meter.Int64Counter(
			"credential_store.operations",
			metric.WithDescription("Total credential store operations"),
		)
		if err != nil {
			otel.Handle(err)
		}

		storeDuration, err = meter.Float64Histogram(
			"credential_store.operation.duration",
			metric.WithDescription("Credential store operation duration"),
			metric.WithUnit("s"),
		)
		if err != nil {
			otel.Handle(err)
		}
	})
}

// Instrumented wraps a Store with metrics instrumentation.
type Instrumented[T any] struct {
	wrapped   Store[T]
	storeType string
}

// NewInstrumented creates an instrumented store wrapper.
func NewInstrumented[T any](store Store[T], storeType string) *Instrumented[T] {
	initMetrics()
	return &Instrumented[T]{
		wrapped:   store,
		storeType: storeType,
	}
}

// Save durably stores the record for the given node identifier.
func (i *Instrumented[T]) Save(ctx context.Context, nodeID string, record T) error {
	start := time.Now()

	err := i.wrapped.Save(ctx, nodeID, record)

	duration := time.Since(start)
	i.recordDuration(ctx, "save", duration)

	status := "success"
	if err != nil {
		status = "error"
	}
	i.recordOperation(ctx, "save", status)
	i.setSpanAttributes(ctx, "save", status, duration)

	return err
}

// Load retrieves the record for the given node identifier.
func (i *Instrumented[T]) Load(ctx context.Context, nodeID string) (T, bool, error) {
	start := time.Now()

	record, found, err := i.wrapped.Load(ctx, nodeID)

	duration := time.Since(start)
	i.recordDuration(ctx, "load", duration)

	status := "miss"
	if err != nil {
		status = "error"
	} else if found {
		status = "hit"
	}
	i.recordOperation(ctx, "load", status)
	i.setSpanAttributes(ctx, "load", status, duration)

	return record, found, err
}

// Remove deletes the record for the given node identifier.
func (i *Instrumented[T]) Remove(ctx context.Context, nodeID string) error {
	start := time.Now()

	err := i.wrapped.Remove(ctx, nodeID)

	duration := time.Since(start)
	i.recordDuration(ctx, "remove", duration)

	status := "success"
	if err != nil {
		status = "error"
	}
	i.recordOperation(ctx, "remove", status)
	i.setSpanAttributes(ctx, "remove", status, duration)

	return err
}

// Close releases any resources held by the store.
func (i *Instrumented[T]) Close() error {
	return i.wrapped.Close()
}

func (i *Instrumented[T]) recordOperation(ctx context.Context, operation, status string) {
	if storeOperations == nil {
		return
	}
	storeOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("store.type", i.storeType),
			attribute.String("store.operation", operation),
			attribute.String("store.status", status),
		),
	)
}

func (i *Instrumented[T]) recordDuration(ctx context.Context, operation string, duration time.Duration) {
	if storeDuration == nil {
		return
	}
	storeDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("store.type", i.storeType),
			attribute.String("store.operation", operation),
		),
	)
}

func (i *Instrumented[T]) setSpanAttributes(ctx context.Context, operation, status string, duration time.Duration) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("store.type", i.storeType),
		attribute.String("store."+operation+".status", status),
		attribute.Float64("store."+operation+".duration", duration.Seconds()),
	)
}
