package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		jnav.Init(cfg.Options)
		defer jnav.CloseLogger()
		logger := jnav.GetLogger()

		texts, err := NewTexts(cfg.Language)
		if err != nil {
			return err
		}

		ch := jnav.NewChannelFromOptions(cfg.Options)

		if cfg.MetricsAddr != "" {
			srv := newMetricsServer(cfg.MetricsAddr, ch)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server stopped", "error", err)
				}
			}()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		app := NewApp(ch, texts, cmd.OutOrStdout())
		logger.Info("starting navtest", "start", cfg.Start, "language", cfg.Language)

		if err := app.Run(ctx, cfg.Start, cmd.InOrStdin()); err != nil {
			return err
		}

		stats := ch.Stats()
		logger.Info("navtest finished", "sent", stats.Sent, "dropped", stats.Dropped, "delivered", stats.Delivered)
		return nil
	},
}

func init() {
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
}

func newMetricsServer(addr string, ch *jnav.Channel) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(jnav.NewCollector(ch))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &http.Server{Addr: addr, Handler: mux}
}
