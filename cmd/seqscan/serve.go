package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqscan/api"
	"github.com/aria-lang/seqscan/internal/config"
)

const shutdownTimeout = 30 * time.Second

func serveCmd(g *globals) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Environment variables:
  SEQSCAN_SERVER_HOST                 Host to bind to (default: localhost)
  SEQSCAN_SERVER_PORT                 Port to listen on (default: 8080)
  SEQSCAN_SERVER_MAX_SEQUENCE_LENGTH  Longest sequence accepted (default: 5000)
  SEQSCAN_SERVER_MAX_BODY_BYTES       Largest request body accepted (default: 1048576)

The SEQSCAN_REPEAT_* and SEQSCAN_PALINDROME_* variables set the default
thresholds for requests that do not supply their own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			cfg = applyServeOverrides(cfg, host, port)

			router := api.NewRouter(api.Settings{
				Options:           cfg.AnalysisOptions(),
				MaxSequenceLength: cfg.Server.MaxSequenceLength,
				MaxBodyBytes:      cfg.Server.MaxBodyBytes,
				Workers:           cfg.Workers,
			}, logger)

			addr := cfg.Addr()
			server := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 90 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "addr", "http://"+addr, "version", version)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- fmt.Errorf("listen on %s: %w", addr, err)
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("server is shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown: %w", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default: localhost)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default: 8080)")

	return cmd
}

// applyServeOverrides applies non-empty flag values over cfg.
func applyServeOverrides(cfg config.Config, host string, port int) config.Config {
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	return cfg
}
