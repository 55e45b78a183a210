package lifecycle

import (
	"context"

	"github.com/rs/zerolog/log"
)

type hook struct {
	name string
	fn   func(context.Context) error
}

// ShutdownHooks collects cleanup work to run when the process exits: store
// closure, telemetry flush. Hooks run in registration order, and a failing
// hook never prevents the remaining hooks from running.
type ShutdownHooks struct {
	hooks []hook
}

// AddContext registers a shutdown hook that receives the shutdown context.
// Nil hooks are ignored with a warning logged.
func (s *ShutdownHooks) AddContext(name string, fn func(context.Context) error) {
	if fn == nil {
		log.Warn().Str("hook", name).Msg("attempted to add nil shutdown hook; ignoring")
		return
	}

	log.Debug().Str("hook", name).Msg("adding shutdown hook")
	s.hooks = append(s.hooks, hook{name: name, fn: fn})
}

// AddClose registers a shutdown hook for a resource with a Close() error
// method. Nil closers are ignored with a warning logged.
func (s *ShutdownHooks) AddClose(name string, closer interface{ Close() error }) {
	if closer == nil {
		log.Warn().Str("hook", name).Msg("attempted to add nil shutdown hook; ignoring")
		return
	}

	s.AddContext(name, func(context.Context) error { return closer.Close() })
}

// Execute runs all registered hooks in order, logging each outcome.
func (s *ShutdownHooks) Execute(ctx context.Context) {
	l := log.Ctx(ctx)
	for _, h := range s.hooks {
		hookLog := l.With().Str("hook", h.name).Logger()

		if err := h.fn(ctx); err != nil {
			hookLog.Warn().Err(err).Msg("shutdown hook failed")
		} else {
			hookLog.Debug().Msg("shutdown hook complete")
		}
	}
}
