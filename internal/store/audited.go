package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Audited wraps a Store, emitting one structured log event per operation: a
// local audit trail of credential access. Records that implement
// zerolog.LogObjectMarshaler control their own rendering, so token material
// stays out of the log stream.
type Audited[T any] struct {
	wrapped   Store[T]
	storeType string
}

// NewAudited creates an audit-logging store wrapper.
func NewAudited[T any](store Store[T], storeType string) *Audited[T] {
	return &Audited[T]{
		wrapped:   store,
		storeType: storeType,
	}
}

// Save durably stores the record for the given node identifier.
func (a *Audited[T]) Save(ctx context.Context, nodeID string, record T) error {
	start := time.Now()
	err := a.wrapped.Save(ctx, nodeID, record)

	ev := a.event(ctx, "save", nodeID, start, err)
	if m, ok := any(record).(zerolog.LogObjectMarshaler); ok {
		ev.Object("record", m)
	}
	ev.Msg("credential store operation")

	return err
}

// Load retrieves the record for the given node identifier.
func (a *Audited[T]) Load(ctx context.Context, nodeID string) (T, bool, error) {
	start := time.Now()
	record, found, err := a.wrapped.Load(ctx, nodeID)

	a.event(ctx, "load", nodeID, start, err).
		Bool("found", found).
		Msg("credential store operation")

	return record, found, err
}

// Remove deletes the record for the given node identifier.
func (a *Audited[T]) Remove(ctx context.Context, nodeID string) error {
	start := time.Now()
	err := a.wrapped.Remove(ctx, nodeID)

	a.event(ctx, "remove", nodeID, start, err).
		Msg("credential store operation")

	return err
}

// Close releases any resources held by the store.
func (a *Audited[T]) Close() error {
	return a.wrapped.Close()
}

func (a *Audited[T]) event(ctx context.Context, op, nodeID string, start time.Time, err error) *zerolog.Event {
	var ev *zerolog.Event
	if err != nil {
		ev = log.Ctx(ctx).Warn().Err(err)
	} else {
		ev = log.Ctx(ctx).Info()
	}

	return ev.
		Str("store_type", a.storeType).
		Str("operation", op).
		Str("node", nodeID).
		Dur("duration", time.Since(start))
}
