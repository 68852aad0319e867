package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/atlasd/internal/directory"
	"github.com/rshade/atlasd/internal/logging"
	"github.com/rshade/atlasd/internal/server"
)

// NewServeCmd creates the serve command, which loads the dataset once and
// serves the country API until interrupted.
func NewServeCmd() *cobra.Command {
	var (
		addr        string
		datasetPath string
		corsOrigin  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the country directory API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())

			if addr == "" {
				addr = cfg.Server.Addr
			}
			if datasetPath == "" {
				datasetPath = cfg.Server.Dataset
			}
			if !cmd.Flags().Changed("cors-origin") {
				corsOrigin = cfg.Server.CORSAllowedOrigin
			}

			dir, err := directory.Load(datasetPath)
			if err != nil {
				return err
			}

			srvLogger := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "server")
			srvLogger.Info().
				Str("dataset", datasetPath).
				Int("countries", dir.Len()).
				Msg("dataset loaded")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(dir, srvLogger, server.Options{
				Addr:              addr,
				CORSAllowedOrigin: corsOrigin,
			})
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&datasetPath, "dataset", "", "dataset file path (overrides config)")
	cmd.Flags().StringVar(&corsOrigin, "cors-origin", "", "Access-Control-Allow-Origin value (overrides config)")

	return cmd
}
