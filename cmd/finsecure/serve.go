package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/finsecure-hub/internal/api"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve bundles over HTTP",
		Long: `Start the HTTP generation API.

  GET  /health
  GET  /api/v1/scenarios
  GET  /api/v1/scenarios/{name}
  GET  /api/v1/scenarios/{name}/bundle?seed=N
  POST /api/v1/bundles

POST bodies are partial scenario configs applied on top of the scenario
configured through flags, environment and config file.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	addScenarioFlags(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	base, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         viper.GetString("server.addr"),
		Handler:      api.NewRouter(api.NewHandler(base)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return serveUntilDone(cmd.Context(), srv)
}

// serveUntilDone runs srv until ctx is canceled, then shuts it down.
func serveUntilDone(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
