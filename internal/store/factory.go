package store

import (
	"context"
	"fmt"
	"time"

	"github.com/merobox/authcache/internal/cachedir"
	"github.com/merobox/authcache/internal/config"
	"github.com/rs/zerolog/log"
)

// NewFromConfig creates a store implementation based on the provided
// configuration. It returns the store and any error encountered.
//
// The cache backend must be either "file" or "memory". Any other value
// returns an error. The returned store is wrapped with metrics
// instrumentation, and with audit logging when enabled.
func NewFromConfig[T any](ctx context.Context, cacheConfig config.CacheConfig) (Store[T], error) {
	var backing Store[T]

	switch cacheConfig.Backend {
	case "file":
		resolver, err := cachedir.NewResolver(cacheConfig.Dir)
		if err != nil {
			return nil, fmt.Errorf("resolving cache directory: %w", err)
		}

		serializer, err := SerializerFor[T](cacheConfig.Format)
		if err != nil {
			return nil, err
		}
		resolver = resolver.WithExtension(serializer.Ext())

		log.Ctx(ctx).Info().
			Str("store_backend", "file").
			Str("dir", resolver.Root()).
			Str("format", cacheConfig.Format).
			Msg("initializing disk-backed credential store")

		backing = NewFile[T](resolver, serializer)

	case "memory":
		log.Ctx(ctx).Info().
			Str("store_backend", "memory").
			Msg("initializing in-memory credential store")

		memory, err := NewMemory[T](
			time.Duration(cacheConfig.MemoryTTLMinutes)*time.Minute,
			cacheConfig.MemoryMaxEntries,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory store: %w", err)
		}
		backing = memory

	default:
		return nil, fmt.Errorf("invalid cache backend %q: must be either \"file\" or \"memory\"", cacheConfig.Backend)
	}

	if cacheConfig.Audit {
		backing = NewAudited(backing, cacheConfig.Backend)
	}

	return NewInstrumented(backing, cacheConfig.Backend), nil
}
