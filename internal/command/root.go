package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merobox/authcache/internal/cachedir"
	"github.com/merobox/authcache/internal/config"
	"github.com/merobox/authcache/internal/credential"
	"github.com/merobox/authcache/internal/lifecycle"
	"github.com/merobox/authcache/internal/observe"
	"github.com/merobox/authcache/internal/store"
)

var (
	cacheDir string

	cfg        config.Config
	resolver   cachedir.Resolver
	serializer store.Serializer[credential.Token]
	records    store.Store[credential.Token]
)

// Execute runs the authcache CLI. Configuration is read from the
// environment, with the cache directory overridable by flag.
func Execute(ctx context.Context) error {
	hooks := &lifecycle.ShutdownHooks{}
	defer hooks.Execute(ctx)

	return newRoot(hooks).ExecuteContext(ctx)
}

func newRoot(hooks *lifecycle.ShutdownHooks) *cobra.Command {
	root := &cobra.Command{
		Use:           "authcache",
		Short:         "Inspect and manage locally cached node credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			cfg, err = config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("configuration load failed: %w", err)
			}
			if cacheDir != "" {
				cfg.Cache.Dir = cacheDir
			}

			shutdownTelemetry, err := observe.Configure(cmd.Context(), cfg.Observe)
			if err != nil {
				return fmt.Errorf("telemetry bootstrap failed: %w", err)
			}
			hooks.AddContext("telemetry", shutdownTelemetry)

			resolver, err = cachedir.NewResolver(cfg.Cache.Dir)
			if err != nil {
				return fmt.Errorf("cache directory resolution failed: %w", err)
			}

			serializer, err = store.SerializerFor[credential.Token](cfg.Cache.Format)
			if err != nil {
				return fmt.Errorf("record format resolution failed: %w", err)
			}
			resolver = resolver.WithExtension(serializer.Ext())

			records, err = store.NewFromConfig[credential.Token](cmd.Context(), cfg.Cache)
			if err != nil {
				return fmt.Errorf("store configuration failed: %w", err)
			}
			hooks.AddClose("credential store", records)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cacheDir, "dir", "", "cache directory (default ~/.merobox/auth_cache)")

	root.AddCommand(listCmd(), showCmd(), removeCmd(), purgeCmd(), pathCmd())
	return root
}
