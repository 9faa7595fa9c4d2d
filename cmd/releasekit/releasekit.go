package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jyn514/releasekit/internal"
	"github.com/jyn514/releasekit/internal/cli"
)

// The entry point for the releasekit CLI.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero code.
func main() {
	zerolog.SetGlobalLevel(logLevel())
	log.Logger = log.With().Str("app", internal.Name).Logger()

	log.Debug().Str("version", internal.VersionString()).Msg("build")

	log.Debug().
		Int("pid", os.Getpid()).
		Str("cwd", cwd()).
		Strs("args", os.Args).
		Msg("releasekit is running")

	if err := cli.Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

// Returns the log level derived from build-time linker flags.
//
// The level is reconfigured after flag parsing via cli.Execute.
func logLevel() zerolog.Level {
	if internal.IsDebug() {
		return zerolog.DebugLevel
	}
	if internal.IsQuiet() {
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
