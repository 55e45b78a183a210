package store

import (
	"context"
)

// Store defines the interface for per-node credential persistence backends.
// The generic type T represents the credential record being stored.
type Store[T any] interface {
	// Save durably stores the record for the given node identifier,
	// replacing any previous record.
	Save(ctx context.Context, nodeID string, record T) error

	// Load retrieves the record for the given node identifier.
	// Returns the record, whether one was present, and any error.
	// Absence of a record is not an error.
	Load(ctx context.Context, nodeID string) (T, bool, error)

	// Remove deletes the record for the given node identifier.
	// Removing a node that has no record is a no-op.
	Remove(ctx context.Context, nodeID string) error

	// Close releases any resources held by the store.
	Close() error
}

// PathResolver yields the filesystem locations used by the file backend: the
// cache root directory and the per-node record path. Implementations must be
// deterministic, and distinct node identifiers must map to distinct paths.
type PathResolver interface {
	Root() string
	RecordPath(nodeID string) string
}
