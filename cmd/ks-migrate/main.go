package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
	"github.com/tuanvumaihuynh/korpstock/internal/log"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	logger.InfoContext(ctx, "starting database migration")

	versions, err := db.Migrate(ctx, pgxPool)
	if err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	if len(versions) == 0 {
		logger.InfoContext(ctx, "database schema is up to date")
		return nil
	}

	logger.InfoContext(ctx, "database migration completed successfully",
		slog.Any("applied_versions", versions))

	return nil
}
