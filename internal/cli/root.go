// Package cli wires the cobra command tree: the interactive terminal
// plus the config and auth maintenance commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/holoterm/holoterm/internal/app"
	"github.com/holoterm/holoterm/internal/auth"
	"github.com/holoterm/holoterm/internal/bridge"
	"github.com/holoterm/holoterm/internal/command"
	"github.com/holoterm/holoterm/internal/config"
	"github.com/holoterm/holoterm/internal/logging"
	"github.com/holoterm/holoterm/internal/version"
)

var (
	cfgFile     string
	debugMode   bool
	noSound     bool
	offline     bool
	showVersion bool
)

// rootCmd represents the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "holoterm",
	Short: "A novelty terminal with ASCII art and holograms",
	Long: `holoterm is a toy terminal for the easily amused.

It draws ASCII art, projects rotating 3D "holograms", solves math
expressions, computes physics formulas, looks up the periodic table,
and asks a search service about anything else.`,

	Example: `  holoterm                 # launch the terminal
  holoterm config init     # write a default config file
  holoterm auth set-key    # store the bridge API key`,

	RunE: runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.holoterm/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable the power-up bell")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "skip the bridge services, local answers only")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
}

// runRoot launches the interactive terminal.
func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		info := version.Get()
		fmt.Printf("holoterm version %s\n", info.Short())
		return nil
	}

	loader := config.NewLoader(cfgFile)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if noSound {
		cfg.UI.Sound = false
	}
	if offline {
		cfg.Bridge.Enabled = false
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel()
	if debugMode {
		logCfg.Level = logging.DebugLevel
	}
	if cfg.Logging.File != "" {
		logCfg.Filename = cfg.Logging.File
	}
	logging.Init(logCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	comp, search := buildCollaborators(cfg)

	holoApp, err := app.New(ctx, cfg, comp, search)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	loader.Watch(holoApp.ApplyConfig)

	errChan := make(chan error, 1)
	go func() {
		errChan <- holoApp.Run()
	}()

	select {
	case sig := <-sigChan:
		logging.Infof("Received signal: %v. Shutting down...", sig)
		holoApp.Stop()
		cancel()

	case err := <-errChan:
		holoApp.Stop()
		cancel()
		if err != nil {
			return fmt.Errorf("application error: %w", err)
		}
	}

	logging.Info("holoterm shutdown complete")
	return nil
}

// buildCollaborators creates the bridge client when the bridge is
// enabled and an API key is available. A missing key is not fatal;
// solve falls back to the local evaluator and search to the local
// database.
func buildCollaborators(cfg *config.Config) (command.Computation, command.Searcher) {
	if !cfg.Bridge.Enabled {
		logging.Info("Bridge disabled, running offline")
		return nil, bridge.NewLocalSearcher()
	}

	key, err := auth.NewKeyStore().Get()
	if err != nil {
		logging.WithError(err).Warn().Msg("Could not read bridge API key, running offline")
		return nil, bridge.NewLocalSearcher()
	}
	if key == "" {
		logging.Info("No bridge API key stored, running offline (holoterm auth set-key)")
		return nil, bridge.NewLocalSearcher()
	}

	client := bridge.NewClient(cfg.Bridge.BaseURL, key, cfg.BridgeTimeout())
	return client, client
}
