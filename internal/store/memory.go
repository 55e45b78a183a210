package store

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/maypok86/otter/v2/stats"
)

// Memory is a process-local store implementation using otter. Records do not
// survive the process: it serves ephemeral workflows and tests, where
// durable credentials on disk are unwanted.
type Memory[T any] struct {
	cache   *otter.Cache[string, T]
	ttl     time.Duration
	counter *stats.Counter
}

// NewMemory creates an in-memory store with the specified TTL and max size.
func NewMemory[T any](ttl time.Duration, maxSize int) (*Memory[T], error) {
	counter := stats.NewCounter()
	cache := otter.Must(&otter.Options[string, T]{
		MaximumSize:      maxSize,
		StatsRecorder:    counter,
		ExpiryCalculator: otter.ExpiryCreating[string, T](ttl),
	})

	return &Memory[T]{
		cache:   cache,
		ttl:     ttl,
		counter: counter,
	}, nil
}

// Save stores the record for the given node identifier.
func (m *Memory[T]) Save(ctx context.Context, nodeID string, record T) error {
	m.cache.Set(nodeID, record)
	return nil
}

// Load retrieves the record for the given node identifier.
// Returns the record, whether it was present, and any error.
func (m *Memory[T]) Load(ctx context.Context, nodeID string) (T, bool, error) {
	entry, ok := m.cache.GetEntry(nodeID)
	if !ok {
		var zero T
		return zero, false, nil
	}

	return entry.Value, true, nil
}

// Remove deletes the record for the given node identifier.
func (m *Memory[T]) Remove(ctx context.Context, nodeID string) error {
	m.cache.Invalidate(nodeID)
	return nil
}

// Close releases any resources held by the store.
func (m *Memory[T]) Close() error {
	return nil
}
