package event

import (
	"context"
	"log/slog"
)

func (s *Service) handleProductCreatedEvent(ctx context.Context, ev ProductCreatedEvent) error {
	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", ev.ProductID),
		slog.String("sku", ev.Sku),
		slog.Int("quantity_in_stock", ev.QuantityInStock),
	)
	return nil
}

func (s *Service) handleProductUpdatedEvent(ctx context.Context, ev ProductUpdatedEvent) error {
	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", ev.ProductID),
		slog.String("sku", ev.Sku),
		slog.Int("quantity_in_stock", ev.QuantityInStock),
	)
	return nil
}

func (s *Service) handleProductDeletedEvent(ctx context.Context, ev ProductDeletedEvent) error {
	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", ev.ProductID),
		slog.String("sku", ev.Sku),
	)
	return nil
}
