package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pardna/pkg/devserver"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the in-memory dev GraphQL server",
		Long: `Start a local Pardna GraphQL server that keeps pardnas in memory.

Endpoints:
  POST /graphql   createPardna mutation and pardnas query
  GET  /metrics   Prometheus metrics
  GET  /healthz   liveness

Examples:
  pardna serve
  pardna serve --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := loadConfig(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}

			srv := devserver.New(devserver.Config{
				Address:          cfg.DevAddress(),
				Logger:           cfg.NewLogger(cmd.ErrOrStderr()),
				MetricsNamespace: cfg.Dev.MetricsNamespace,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(out, "Dev server listening on %s", cfg.DevURL())
			info(out, "Press Ctrl+C to stop")
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}
