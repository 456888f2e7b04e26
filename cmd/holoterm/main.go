package main

import (
	"os"

	"github.com/holoterm/holoterm/internal/cli"
	"github.com/holoterm/holoterm/internal/logging"
)

func main() {
	// Initialize structured logging early; the CLI re-initializes it
	// once the configuration is loaded.
	logging.Init(logging.DefaultConfig())

	if err := cli.Execute(); err != nil {
		logging.GetLogger().Error().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}
