package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/korpstock/internal/http/gen"
	"github.com/tuanvumaihuynh/korpstock/internal/model"
	"github.com/tuanvumaihuynh/korpstock/internal/service"
	"github.com/tuanvumaihuynh/korpstock/pkg/ptr"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	params := service.ListProductsParams{
		Filter:   ptr.Deref(request.Params.Filter),
		Page:     ptr.Deref(request.Params.Page),
		PageSize: ptr.Deref(request.Params.PageSize),
	}
	page, err := h.productSvc.ListProducts(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}

	items := make([]gen.ProductResponse, 0, len(page.Items))
	for _, product := range page.Items {
		items = append(items, toProductResponse(product))
	}

	return gen.ListProducts200JSONResponse{
		Items:      items,
		TotalCount: page.TotalCount,
	}, nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	params := service.CreateProductParams{
		Sku:          request.Body.Sku,
		Name:         request.Body.Name,
		Description:  ptr.Deref(request.Body.Description),
		InitialStock: request.Body.InitialStock,
	}
	id, err := h.productSvc.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}

	return gen.CreateProduct201JSONResponse{
		Body: gen.CreateProductResponse{Id: id},
		Headers: gen.CreateProduct201ResponseHeaders{
			Location: "/products/" + id.String(),
		},
	}, nil
}

func (h *productHandler) GetProduct(ctx context.Context, request gen.GetProductRequestObject) (gen.GetProductResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}

	return gen.GetProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) UpdateProduct(ctx context.Context, request gen.UpdateProductRequestObject) (gen.UpdateProductResponseObject, error) {
	params := service.UpdateProductParams{
		ID:              request.Id,
		Sku:             request.Body.Sku,
		Name:            request.Body.Name,
		Description:     ptr.Deref(request.Body.Description),
		QuantityInStock: request.Body.QuantityInStock,
	}
	if err := h.productSvc.UpdateProduct(ctx, params); err != nil {
		return nil, fmt.Errorf("product service update product: %w", err)
	}

	return gen.UpdateProduct204Response{}, nil
}

func (h *productHandler) DeleteProduct(ctx context.Context, request gen.DeleteProductRequestObject) (gen.DeleteProductResponseObject, error) {
	if err := h.productSvc.DeleteProduct(ctx, request.Id); err != nil {
		return nil, fmt.Errorf("product service delete product: %w", err)
	}

	return gen.DeleteProduct204Response{}, nil
}

func toProductResponse(product model.Product) gen.ProductResponse {
	return gen.ProductResponse{
		Id:              product.ID,
		Sku:             product.Sku,
		Name:            product.Name,
		Description:     product.Description,
		QuantityInStock: product.QuantityInStock,
		LastUpdated:     product.LastUpdated,
	}
}
