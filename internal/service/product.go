package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/korpstock/internal/apperr"
	"github.com/tuanvumaihuynh/korpstock/internal/event"
	"github.com/tuanvumaihuynh/korpstock/internal/model"
	"github.com/tuanvumaihuynh/korpstock/internal/repository"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
	"github.com/tuanvumaihuynh/korpstock/pkg/outbox"
	"github.com/tuanvumaihuynh/korpstock/pkg/ptr"
	"github.com/tuanvumaihuynh/korpstock/pkg/validator"
)

type CreateProductParams struct {
	Sku          string
	Name         string
	Description  string
	InitialStock int
}

type UpdateProductParams struct {
	ID              uuid.UUID
	Sku             string
	Name            string
	Description     string
	QuantityInStock int
}

type ListProductsParams struct {
	// Filter is a case-insensitive substring of the name or the sku.
	// Blank means no filter.
	Filter string `json:"filter"`
	// Page is 1-based. Values below 1 are treated as 1.
	Page int `json:"page"`
	// PageSize values below 1 fall back to DefaultPageSize.
	PageSize int `json:"pageSize" validate:"lte=100"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (uuid.UUID, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) (model.Page[model.Product], error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	db            db.DB
	validator     validator.Validator
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) ProductService {
	return &productService{
		db:            db,
		validator:     validator,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (uuid.UUID, error) {
	product, err := model.NewProduct(params.Sku, params.Name, params.Description, params.InitialStock)
	if err != nil {
		return uuid.Nil, fmt.Errorf("new product: %w", err)
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.
			WithDB(db).
			CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository create product: %w", err)
		}

		if err := s.publish(ctx, db, event.TopicProductCreated, product, event.NewProductCreatedEvent(product)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return uuid.Nil, fmt.Errorf("db with tx: %w", err)
	}

	return product.ID, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product by id: %w", mapNotFound(err))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) (model.Page[model.Product], error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Page[model.Product]{}, fmt.Errorf("validate list products params: %w", err)
	}

	page, pageSize := normalizePage(params.Page, params.PageSize)
	filter := params.Filter
	if strings.TrimSpace(filter) == "" {
		filter = ""
	}

	var result model.Page[model.Product]
	// count and page must observe the same snapshot
	txOpts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	if err := s.db.WithTxOptions(ctx, txOpts, func(db db.DB) error {
		count, err := s.productRepo.
			WithDB(db).
			CountProducts(ctx, repository.CountProductsParams{Filter: filter})
		if err != nil {
			return fmt.Errorf("product repository count products: %w", err)
		}

		products, err := s.productRepo.
			WithDB(db).
			ListProducts(ctx, repository.ListProductsParams{
				Filter: filter,
				Limit:  pageSize,
				Offset: pageOffset(page, pageSize),
			})
		if err != nil {
			return fmt.Errorf("product repository list products: %w", err)
		}

		result = model.Page[model.Product]{
			Items:      products,
			TotalCount: count,
		}
		return nil
	}); err != nil {
		return model.Page[model.Product]{}, fmt.Errorf("db with tx: %w", err)
	}

	return result, nil
}

func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		product, err := s.productRepo.
			WithDB(db).
			GetProductByIDForUpdate(ctx, params.ID)
		if err != nil {
			return fmt.Errorf("product repository get product by id for update: %w", mapNotFound(err))
		}

		product.Update(params.Sku, params.Name, params.Description, params.QuantityInStock)

		if err := s.productRepo.
			WithDB(db).
			UpdateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}

		return s.publish(ctx, db, event.TopicProductUpdated, product, event.NewProductUpdatedEvent(product))
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		product, err := s.productRepo.
			WithDB(db).
			GetProductByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository get product by id for update: %w", mapNotFound(err))
		}

		if err := s.productRepo.
			WithDB(db).
			DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}

		return s.publish(ctx, db, event.TopicProductDeleted, product, event.NewProductDeletedEvent(product))
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

// publish appends ev to the outbox within the caller's transaction. Events of one
// product share a partition key so consumers see them in order.
func (s *productService) publish(ctx context.Context, db db.DB, topic string, product model.Product, ev any) error {
	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	if err := s.outboxMsgRepo.
		WithDB(db).
		CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      evBytes,
			PartitionKey: ptr.New(product.ID.String()),
		}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.ProductNotFoundErr.WrapParent(err)
	}
	return err
}
