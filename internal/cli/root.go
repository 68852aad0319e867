// Package cli wires the atlasd commands: the HTTP API server, the interactive
// browser, the scripting-friendly countries queries, and dataset validation.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/atlasd/internal/config"
	"github.com/rshade/atlasd/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
//
//nolint:gochecknoglobals // Required for zerolog context integration.
var logger zerolog.Logger

// rootOptions holds the persistent flag values shared by all commands.
type rootOptions struct {
	configPath string
	debug      bool
}

// NewRootCmd creates the root Cobra command for the atlasd CLI. It wires up
// configuration loading, logging, and the serve/browse/countries/dataset
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "atlasd",
		Short:   "Country directory service and browser",
		Long:    "atlasd serves a static country dataset over HTTP and browses it from the terminal.",
		Version: ver,
		Example: rootCmdExample,
		// Runtime errors (dataset problems, API failures) are not usage errors.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			loggingCfg := logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				File:   cfg.Logging.File,
			}
			if opts.debug {
				loggingCfg.Level = "debug"
				loggingCfg.Format = "console"
			}

			base := logging.New(loggingCfg)
			logger = logging.ComponentLogger(base, "cli")

			traceID := logging.NewTraceID()
			ctx := logging.ContextWithTraceID(cmd.Context(), traceID)
			ctx = logger.WithContext(ctx)
			ctx = contextWithConfig(ctx, cfg)
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "atlasd.yaml", "path to config file")

	cmd.AddCommand(NewServeCmd(), NewBrowseCmd(), newCountriesCmd(), newDatasetCmd())

	return cmd
}

const rootCmdExample = `  # Serve the country API on the configured address
  atlasd serve

  # Serve a specific dataset on a specific port
  atlasd serve --addr :9090 --dataset ./data/countries.json

  # Browse the directory interactively
  atlasd browse

  # Browse a remote atlasd instance
  atlasd browse --api https://atlas.example.com

  # List every country, or show one with its borders expanded
  atlasd countries list
  atlasd countries show FRA

  # Check a dataset file for dangling border references
  atlasd dataset validate ./data/countries.json`
