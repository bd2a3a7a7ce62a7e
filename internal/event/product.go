package event

import (
	"time"

	"github.com/tuanvumaihuynh/korpstock/internal/model"
)

const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)

type ProductCreatedEvent struct {
	ProductID       string    `json:"product_id"`
	Sku             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	QuantityInStock int       `json:"quantity_in_stock"`
	LastUpdated     time.Time `json:"last_updated"`
}

// ProductUpdatedEvent carries the full state after the update.
type ProductUpdatedEvent struct {
	ProductID       string    `json:"product_id"`
	Sku             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	QuantityInStock int       `json:"quantity_in_stock"`
	LastUpdated     time.Time `json:"last_updated"`
}

type ProductDeletedEvent struct {
	ProductID string `json:"product_id"`
	Sku       string `json:"sku"`
}

func NewProductCreatedEvent(p model.Product) ProductCreatedEvent {
	return ProductCreatedEvent{
		ProductID:       p.ID.String(),
		Sku:             p.Sku,
		Name:            p.Name,
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
		LastUpdated:     p.LastUpdated,
	}
}

func NewProductUpdatedEvent(p model.Product) ProductUpdatedEvent {
	return ProductUpdatedEvent(NewProductCreatedEvent(p))
}

func NewProductDeletedEvent(p model.Product) ProductDeletedEvent {
	return ProductDeletedEvent{
		ProductID: p.ID.String(),
		Sku:       p.Sku,
	}
}
