package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vilaca/release-dashboard/internal/config"
	"github.com/vilaca/release-dashboard/internal/dashboard"
	"github.com/vilaca/release-dashboard/internal/logging"
	"github.com/vilaca/release-dashboard/internal/prlink"
	"github.com/vilaca/release-dashboard/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := logging.Setup(cfg.Verbose)

	handler, err := buildServer(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting release dashboard", "addr", "http://localhost"+cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildServer wires up all dependencies and returns the configured HTTP handler.
// This is the composition root where all dependencies are created and injected.
func buildServer(cfg *config.Config, logger dashboard.Logger) (http.Handler, error) {
	catalog, err := service.NewCatalogFile(cfg.CatalogPath, logger).Load()
	if err != nil {
		return nil, err
	}

	registry := buildRegistry(cfg)
	logger.Printf("Pull request links enabled for: %s", strings.Join(registry.Providers(), ", "))

	links := prlink.NewRenderer(registry)
	releaseService := service.NewReleaseService(links)
	releaseService.Replace(catalog)

	handler := dashboard.NewHandler(dashboard.NewHTMLRenderer(), logger, releaseService)
	return dashboard.NewRouter(handler), nil
}
