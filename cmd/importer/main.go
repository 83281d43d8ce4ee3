package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/football-stats/internal/app"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/infrastructure/csvimport"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const importTimeout = 5 * time.Minute

func main() {
	csvPath := flag.String("file", "player_stats.csv", "path to the FBref player stats CSV export")
	workers := flag.Int("workers", 0, "row parsing workers (0 uses GOMAXPROCS)")
	dryRun := flag.Bool("dry-run", false, "parse and report without replacing stored players")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "football-stats-importer",
		Env:     cfg.AppEnv,
	})
	logging.SetDefault(logger)

	if err := run(cfg, logger, *csvPath, *workers, *dryRun); err != nil {
		logger.Error("import failed", "file", *csvPath, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *logging.Logger, csvPath string, workers int, dryRun bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, importTimeout)
	defer cancel()

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csvimport.NewReader(csvimport.WithWorkers(workers), csvimport.WithLogger(logger))
	parsed, err := reader.Parse(ctx, file)
	if err != nil {
		return fmt.Errorf("parse csv: %w", err)
	}
	logger.Info("csv parsed", "file", csvPath, "rows", parsed.Rows, "players", len(parsed.Players), "skipped", parsed.Skipped)

	if dryRun {
		return nil
	}
	if cfg.StoreBackend != config.StorePostgres {
		logger.Warn("store backend is not persistent, imported rows live only for this process", "store", cfg.StoreBackend)
	}

	// The importer writes straight to storage; caches pick up the new dataset
	// version on their next read.
	cfg.CacheEnabled = false
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close app dependencies failed", "error", err)
		}
	}()

	result, err := application.Services().Import.ReplaceAll(ctx, parsed.Players)
	if err != nil {
		return err
	}

	logger.Info("import finished",
		"rows", parsed.Rows,
		"skipped", parsed.Skipped,
		"imported", result.Imported,
		"rejected", result.Rejected,
		"version", result.Version,
	)
	return nil
}
