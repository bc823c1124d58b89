// Package main is the entry point for quarryconf, the Quarry configuration
// inspection tool.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quarrydb/quarry/cmd/quarryconf/commands"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := commands.Execute(version, commit); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
