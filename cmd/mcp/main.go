package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/observability"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.ServiceName == "football-stats-api" {
		cfg.ServiceName = "football-stats-mcp"
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
		Env:     cfg.AppEnv,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("mcp server stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	if strings.TrimSpace(cfg.MCPAPIKey) == "" {
		if cfg.AppEnv == config.EnvProd {
			return fmt.Errorf("MCP_API_KEY is required when APP_ENV=%s", config.EnvProd)
		}
		logger.Warn("MCP_API_KEY is empty, tool endpoint is unauthenticated")
	}

	telemetry, err := observability.Setup(context.Background(), cfg, logger, observability.WithoutProfiling())
	if err != nil {
		return fmt.Errorf("setup observability: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = telemetry.Shutdown(ctx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app dependencies failed", "error", err)
		}
	}()

	srv, err := application.MCPServer()
	if err != nil {
		return fmt.Errorf("build mcp server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("mcp server starting", "addr", cfg.MCPAddr, "path", "/mcp")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("mcp server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("mcp server stopped")
	return nil
}
