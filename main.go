package main

import (
	"context"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/merobox/authcache/internal/command"
)

func main() {
	configureLogging()

	logBuildInfo()

	if err := command.Execute(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func configureLogging() {
	// Set global level to the minimum: allows the Open Telemetry logging to
	// be configured separately. However, it means that any logger that sets
	// its level will log as this effectively disables the global level.
	zerolog.SetGlobalLevel(zerolog.Level(-128))

	// default level is Warn: this is an interactive tool, and routine
	// operation logging would drown the command output.
	log.Logger = log.Level(zerolog.WarnLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if os.Getenv("ENV") == "development" {
		log.Logger = log.Level(zerolog.DebugLevel)
	}

	zerolog.DefaultContextLogger = &log.Logger
}

func logBuildInfo() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	ev := log.Debug()
	for _, v := range buildInfo.Settings {
		if strings.HasPrefix(v.Key, "vcs.") ||
			strings.HasPrefix(v.Key, "GO") ||
			v.Key == "CGO_ENABLED" {
			ev = ev.Str(v.Key, v.Value)
		}
	}

	ev.Msg("build information")
}
