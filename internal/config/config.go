package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Cache   CacheConfig
	Observe ObserveConfig
}

// CacheConfig specifies credential cache configuration.
type CacheConfig struct {
	// Backend selects the store implementation: "file" (default) or "memory".
	Backend string `env:"AUTHCACHE_BACKEND, default=file"`

	// Dir overrides the cache root directory. Defaults to
	// ~/.merobox/auth_cache when empty.
	Dir string `env:"AUTHCACHE_DIR"`

	// Format selects the record encoding for the file backend:
	// "json" (default) or "yaml".
	Format string `env:"AUTHCACHE_FORMAT, default=json"`

	// Audit enables per-operation audit logging of credential access.
	Audit bool `env:"AUTHCACHE_AUDIT, default=true"`

	// MemoryTTLMinutes is the record lifetime for the memory backend.
	MemoryTTLMinutes int `env:"AUTHCACHE_MEMORY_TTL_MINS, default=45"`

	// MemoryMaxEntries caps the memory backend's record count.
	MemoryMaxEntries int `env:"AUTHCACHE_MEMORY_MAX_ENTRIES, default=10000"`
}

type ObserveConfig struct {
	Enabled                   bool   `env:"OBSERVE_ENABLED, default=false"`
	MetricsEnabled            bool   `env:"OBSERVE_METRICS_ENABLED, default=true"`
	ServiceName               string `env:"OBSERVE_SERVICE_NAME, default=authcache"`
	MetricReadIntervalSeconds int    `env:"OBSERVE_METRIC_READ_INTERVAL_SECS, default=60"`
}

func Load(ctx context.Context) (Config, error) {
	return load(ctx, nil) // load from OS environment
}

func load(ctx context.Context, lookup envconfig.Lookuper) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookup, // nil defaults to OS environment
	})
	if err != nil {
		return cfg, err
	}

	err = cfg.Cache.Validate()
	if err != nil {
		return cfg, fmt.Errorf("invalid cache configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case "file", "memory":
	default:
		return fmt.Errorf("invalid cache backend %q: must be either \"file\" or \"memory\"", c.Backend)
	}

	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid record format %q: must be either \"json\" or \"yaml\"", c.Format)
	}

	if c.MemoryTTLMinutes <= 0 {
		return fmt.Errorf("AUTHCACHE_MEMORY_TTL_MINS must be positive")
	}
	if c.MemoryMaxEntries <= 0 {
		return fmt.Errorf("AUTHCACHE_MEMORY_MAX_ENTRIES must be positive")
	}

	return nil
}
