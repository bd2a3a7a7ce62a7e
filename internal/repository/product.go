package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/korpstock/internal/model"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db/sqlc"
)

type CountProductsParams struct {
	// Filter is matched case-insensitively against name and sku. Empty matches all.
	Filter string
}

type ListProductsParams struct {
	Filter string
	Limit  int
	Offset int
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) error
	// GetProductByID reads a product without locking it.
	GetProductByID(ctx context.Context, id uuid.UUID) (model.Product, error)
	// GetProductByIDForUpdate reads a product and locks its row until the
	// surrounding transaction ends.
	GetProductByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context, params CountProductsParams) (int, error)
	// ListProducts returns matching products ordered by name.
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error)
}

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) error {
	quantity, err := toInt32("quantity in stock", product.QuantityInStock)
	if err != nil {
		return err
	}

	if err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
		ID:              product.ID,
		Sku:             product.Sku,
		Name:            product.Name,
		Description:     product.Description,
		QuantityInStock: quantity,
		LastUpdated:     product.LastUpdated,
	}); err != nil {
		if constraint, ok := db.IsUniqueViolation(err); ok {
			return fmt.Errorf("create product: sku %q violates %s: %w", product.Sku, constraint, err)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := r.queries.ProductGetByID(ctx, r.db, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product by id: %w", notFound(err))
	}

	return sqlcProductToModelProduct(product), nil
}

func (r productRepository) GetProductByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := r.queries.ProductGetByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product by id for update: %w", notFound(err))
	}

	return sqlcProductToModelProduct(product), nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	quantity, err := toInt32("quantity in stock", product.QuantityInStock)
	if err != nil {
		return err
	}

	if err := r.queries.ProductUpdate(ctx, r.db, sqlc.ProductUpdateParams{
		ID:              product.ID,
		Sku:             product.Sku,
		Name:            product.Name,
		Description:     product.Description,
		QuantityInStock: quantity,
		LastUpdated:     product.LastUpdated,
	}); err != nil {
		if constraint, ok := db.IsUniqueViolation(err); ok {
			return fmt.Errorf("update product: sku %q violates %s: %w", product.Sku, constraint, err)
		}
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.ProductDelete(ctx, r.db, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}

func (r productRepository) CountProducts(ctx context.Context, params CountProductsParams) (int, error) {
	count, err := r.queries.ProductCount(ctx, r.db, params.Filter)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return int(count), nil
}

func (r productRepository) ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, error) {
	limit, err := toInt32("limit", params.Limit)
	if err != nil {
		return nil, err
	}

	offset, err := toInt32("offset", params.Offset)
	if err != nil {
		return nil, err
	}

	products, err := r.queries.ProductList(ctx, r.db, sqlc.ProductListParams{
		Filter:     params.Filter,
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProducts = append(modelProducts, sqlcProductToModelProduct(product))
	}

	return modelProducts, nil
}

func sqlcProductToModelProduct(product sqlc.Product) model.Product {
	return model.Product{
		ID:              product.ID,
		Sku:             product.Sku,
		Name:            product.Name,
		Description:     product.Description,
		QuantityInStock: int(product.QuantityInStock),
		LastUpdated:     product.LastUpdated.UTC(),
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Join(ErrNotFound, err)
	}
	return err
}

func toInt32(field string, v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%s out of range: %d", field, v)
	}
	return int32(v), nil
}
