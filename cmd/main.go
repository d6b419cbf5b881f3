package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/config"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/app"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApplication(cfg, logger)
	if err := application.Initialize(ctx); err != nil {
		logger.Error(ctx, "failed to initialize application", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info(ctx, "starting HTTP server", "port", cfg.Port)
		if err := application.HTTP.Listen(":" + cfg.Port); err != nil {
			logger.Error(ctx, "HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info(shutdownCtx, "application gracefully stopped")
}
