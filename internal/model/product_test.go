package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/korpstock/internal/model"
)

func TestNewProduct(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Microsecond)

	p, err := model.NewProduct("A1", "Widget", "", 10)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, uuid.Version(7), p.ID.Version())
	assert.Equal(t, "A1", p.Sku)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 10, p.QuantityInStock)
	assert.False(t, p.LastUpdated.Before(before))
	assert.Equal(t, time.UTC, p.LastUpdated.Location())
}

func TestNewProductKeepsUncheckedValues(t *testing.T) {
	p, err := model.NewProduct("", "", "", -5)
	require.NoError(t, err)

	assert.Equal(t, -5, p.QuantityInStock)
	assert.Empty(t, p.Name)
}

func TestNewProductGeneratesDistinctIDs(t *testing.T) {
	a, err := model.NewProduct("A1", "Widget", "", 1)
	require.NoError(t, err)
	b, err := model.NewProduct("A1", "Widget", "", 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestProductUpdate(t *testing.T) {
	p, err := model.NewProduct("A1", "Widget", "", 10)
	require.NoError(t, err)

	id := p.ID
	created := p.LastUpdated
	time.Sleep(time.Millisecond)

	p.Update("A2", "Gadget", "x", 5)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "A2", p.Sku)
	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, "x", p.Description)
	assert.Equal(t, 5, p.QuantityInStock)
	assert.True(t, p.LastUpdated.After(created))
}
