package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
	"github.com/tuanvumaihuynh/korpstock/internal/http"
	"github.com/tuanvumaihuynh/korpstock/internal/log"
	"github.com/tuanvumaihuynh/korpstock/internal/repository"
	"github.com/tuanvumaihuynh/korpstock/internal/service"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/korpstock/internal/telemetry"
	"github.com/tuanvumaihuynh/korpstock/pkg/cmdutil"
	"github.com/tuanvumaihuynh/korpstock/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api application: %v\n", err)
		os.Exit(1)
	}
}

// run serves the REST API only. Product events are written to the outbox and
// left for ks-relay.
func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)
	queries := *sqlc.New()

	productRepository := repository.NewProductRepository(dbClient, queries)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient, queries)

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productService := service.NewProductService(dbClient, v, productRepository, outboxMsgRepository)

	svc := http.New(cfg.HTTP, logger, dbClient, productService)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
