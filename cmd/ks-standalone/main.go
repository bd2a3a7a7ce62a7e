package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
	"github.com/tuanvumaihuynh/korpstock/internal/event"
	"github.com/tuanvumaihuynh/korpstock/internal/http"
	"github.com/tuanvumaihuynh/korpstock/internal/log"
	"github.com/tuanvumaihuynh/korpstock/internal/relay"
	"github.com/tuanvumaihuynh/korpstock/internal/repository"
	"github.com/tuanvumaihuynh/korpstock/internal/service"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/mq"
	"github.com/tuanvumaihuynh/korpstock/internal/telemetry"
	"github.com/tuanvumaihuynh/korpstock/pkg/cmdutil"
	"github.com/tuanvumaihuynh/korpstock/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running standalone application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Relay    config.Relay
		Kafka    config.Kafka
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

	kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
	if err != nil {
		return fmt.Errorf("error creating kafka producer: %w", err)
	}
	defer kafkaProducer.Close()

	kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("error creating kafka consumer: %w", err)
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productRepository := repository.NewProductRepository(dbClient, queries)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient, queries)

	productService := service.NewProductService(dbClient, v, productRepository, outboxMsgRepository)

	eventSvc := event.New(logger, kafkaConsumer)
	cleanupEvent, err := eventSvc.Run(ctx)
	if err != nil {
		kafkaConsumer.Close()
		return fmt.Errorf("error running event service: %w", err)
	}
	logger.InfoContext(ctx, "event service started")

	httpSvc := http.New(cfg.HTTP, logger, dbClient, productService)
	cleanupHTTP, err := httpSvc.Run(ctx)
	if err != nil {
		cleanupEvent()
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	relaySvc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
	cleanupRelay := relaySvc.Run(ctx)
	logger.InfoContext(ctx, "relay service started")

	<-cmdutil.InterruptChan()

	var wg sync.WaitGroup

	wg.Go(func() {
		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanupHTTP(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}
		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Go(func() {
		logger.InfoContext(ctx, "relay service is shutting down")
		cleanupRelay()
		logger.InfoContext(ctx, "relay service is stopped")
	})

	wg.Go(func() {
		logger.InfoContext(ctx, "event service is shutting down")
		cleanupEvent()
		logger.InfoContext(ctx, "event service is stopped")
	})

	wg.Wait()

	return nil
}
