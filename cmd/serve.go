package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinoosan/employees/internal/config"
	httpapi "github.com/tinoosan/employees/internal/httpapi/v1"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg())
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Bool("migrate", false, "apply postgres migrations before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, closeLog := buildLogger(cfg)
	defer closeLog()

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "store", cfg.Store, "err", err)
		return err
	}
	defer b.close()
	logger.Info("storage backend: " + b.name)

	if cfg.DevSeed {
		seeded, err := b.seedDev(ctx)
		if err != nil {
			logger.Error("dev seed failed", "err", err)
		} else {
			logDevSeed(logger, b.name, seeded)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(b.store, b.store, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("employees service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
			return err
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		logger.Error("server error", "err", err)
		return err
	}
}
