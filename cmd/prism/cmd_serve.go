package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		listen string
		rps    float64
		burst  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the record store, field lists and charts over HTTP",
		Long: `Starts the JSON API (GET /api/jsondata, /api/fields, /api/chart,
/api/chart.svg) plus /healthz and /metrics. The record store is loaded once at
startup. SIGINT or SIGTERM shuts the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := opts.cfg.Listen
			if cmd.Flags().Changed("listen") {
				addr = listen
			}
			limit := opts.cfg.RateLimit
			if cmd.Flags().Changed("rate-limit") {
				limit.PerSecond = rps
			}
			if cmd.Flags().Changed("rate-burst") {
				limit.Burst = burst
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			view, err := loadView(ctx, opts.cfg.Data)
			if err != nil {
				return err
			}
			return server.New(view).LimitRate(limit.PerSecond, limit.Burst).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8080", "Address to listen on")
	cmd.Flags().Float64Var(&rps, "rate-limit", 0, "Chart requests per second across clients (0 = unlimited)")
	cmd.Flags().IntVar(&burst, "rate-burst", 10, "Chart request burst size when --rate-limit is set")
	return cmd
}
