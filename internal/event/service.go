package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/korpstock/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := registerHandler(s.mqConsumer, TopicProductCreated, s.handleProductCreatedEvent); err != nil {
		return nil, err
	}
	if err := registerHandler(s.mqConsumer, TopicProductUpdated, s.handleProductUpdatedEvent); err != nil {
		return nil, err
	}
	if err := registerHandler(s.mqConsumer, TopicProductDeleted, s.handleProductDeletedEvent); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

// registerHandler decodes the JSON payload of topic into T before calling handle.
func registerHandler[T any](consumer mq.Consumer, topic string, handle func(context.Context, T) error) error {
	if err := consumer.RegisterHandler(
		topic,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev T
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal %s event: %w", topic, err)
			}

			if err := handle(ctx, ev); err != nil {
				return fmt.Errorf("handle %s event: %w", topic, err)
			}

			return nil
		},
	); err != nil {
		return fmt.Errorf("register %s event handler: %w", topic, err)
	}

	return nil
}
