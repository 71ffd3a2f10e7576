package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhenakh/kepler/internal/api"
	"github.com/akhenakh/kepler/internal/config"
	"github.com/akhenakh/kepler/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Long: `Start the HTTP API with Prometheus metrics on /metrics.

The listen address comes from --addr, then KEPLER_HTTP_ADDR, then the config
file. SIGINT or SIGTERM drains in-flight requests before exiting.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runServe(ctx, cfg, rootOpts); err != nil {
				return rootOpts.formatter(cmd).report(ErrCodeServer, ExitFailure, "serve", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe blocks until ctx is done or the listener fails.
func runServe(ctx context.Context, cfg config.Server, opts *RootOptions) error {
	logger := opts.Logger
	srv := api.NewServer(cfg, opts.Config.Solver, logger, metrics.New())

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.Error("server listen error", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
