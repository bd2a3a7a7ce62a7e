package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a stock keeping item. ID is assigned once by NewProduct; the other
// fields change only through Update.
type Product struct {
	ID              uuid.UUID `json:"id"`
	Sku             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	QuantityInStock int       `json:"quantity_in_stock"`
	LastUpdated     time.Time `json:"last_updated"`
}

// NewProduct creates a product with a fresh UUIDv7 and the current time.
func NewProduct(sku, name, description string, initialStock int) (Product, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	return Product{
		ID:              id,
		Sku:             sku,
		Name:            name,
		Description:     description,
		QuantityInStock: initialStock,
		LastUpdated:     now(),
	}, nil
}

// Update replaces every mutable field and refreshes LastUpdated.
func (p *Product) Update(sku, name, description string, quantityInStock int) {
	p.Sku = sku
	p.Name = name
	p.Description = description
	p.QuantityInStock = quantityInStock
	p.LastUpdated = now()
}

// Postgres stores microseconds; truncating here keeps the in-memory value equal to
// what a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
