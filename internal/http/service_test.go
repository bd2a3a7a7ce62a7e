package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/korpstock/internal/apperr"
	"github.com/tuanvumaihuynh/korpstock/internal/config"
	khttp "github.com/tuanvumaihuynh/korpstock/internal/http"
	"github.com/tuanvumaihuynh/korpstock/internal/http/gen"
	"github.com/tuanvumaihuynh/korpstock/internal/model"
	"github.com/tuanvumaihuynh/korpstock/internal/service"
	"github.com/tuanvumaihuynh/korpstock/pkg/correlationid"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) CreateProduct(ctx context.Context, params service.CreateProductParams) (uuid.UUID, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductService) ListProducts(ctx context.Context, params service.ListProductsParams) (model.Page[model.Product], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Page[model.Product]), args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, params service.UpdateProductParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memProductService keeps products in a map so request sequences can be
// exercised end to end through the router.
type memProductService struct {
	mu       sync.Mutex
	products map[uuid.UUID]model.Product
}

func newMemProductService() *memProductService {
	return &memProductService{products: map[uuid.UUID]model.Product{}}
}

func (m *memProductService) CreateProduct(_ context.Context, params service.CreateProductParams) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, err := model.NewProduct(params.Sku, params.Name, params.Description, params.InitialStock)
	if err != nil {
		return uuid.Nil, err
	}
	m.products[product.ID] = product
	return product.ID, nil
}

func (m *memProductService) GetProduct(_ context.Context, id uuid.UUID) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return product, nil
}

func (m *memProductService) ListProducts(context.Context, service.ListProductsParams) (model.Page[model.Product], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]model.Product, 0, len(m.products))
	for _, product := range m.products {
		items = append(items, product)
	}
	return model.Page[model.Product]{Items: items, TotalCount: len(items)}, nil
}

func (m *memProductService) UpdateProduct(_ context.Context, params service.UpdateProductParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[params.ID]
	if !ok {
		return apperr.ProductNotFoundErr
	}
	product.Update(params.Sku, params.Name, params.Description, params.QuantityInStock)
	m.products[params.ID] = product
	return nil
}

func (m *memProductService) DeleteProduct(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return apperr.ProductNotFoundErr
	}
	delete(m.products, id)
	return nil
}

type fakeHealthChecker struct {
	err error
}

func (f fakeHealthChecker) IsHealthy(context.Context) (bool, error) {
	return f.err == nil, f.err
}

func newTestHandler(t *testing.T, productSvc service.ProductService, healthErr error) http.Handler {
	t.Helper()

	cfg := config.HTTP{
		Swagger:            true,
		CorsAllowedOrigins: []string{"http://localhost:4200"},
		RequestValidation:  true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := khttp.New(cfg, logger, fakeHealthChecker{err: healthErr}, productSvc)
	handler, err := svc.Handler(context.Background())
	require.NoError(t, err)

	return handler
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestProductLifecycle(t *testing.T) {
	h := newTestHandler(t, newMemProductService(), nil)

	resp := doRequest(t, h, http.MethodPost, "/products", `{"sku":"A1","name":"Widget","initialStock":10}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	created := decode[gen.CreateProductResponse](t, resp)
	assert.Equal(t, "/products/"+created.Id.String(), resp.Header().Get("Location"))

	path := "/products/" + created.Id.String()

	resp = doRequest(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, resp.Code)
	product := decode[gen.ProductResponse](t, resp)
	assert.Equal(t, "A1", product.Sku)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, "", product.Description)
	assert.Equal(t, 10, product.QuantityInStock)

	resp = doRequest(t, h, http.MethodPut, path, `{"sku":"A1","name":"Widget","description":"x","quantityInStock":5}`)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decode[gen.ProductResponse](t, resp)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "x", updated.Description)
	assert.Equal(t, 5, updated.QuantityInStock)
	assert.False(t, updated.LastUpdated.Before(product.LastUpdated))

	resp = doRequest(t, h, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	errRes := decode[gen.ErrorResponse](t, resp)
	assert.Equal(t, apperr.ProductNotFoundErrorCode, errRes.Code)
}

func TestListProducts(t *testing.T) {
	t.Run("Should pass query parameters to service", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		lastUpdated := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		product := model.Product{ID: uuid.New(), Sku: "abc-1", Name: "Alpha abc", QuantityInStock: 3, LastUpdated: lastUpdated}
		svc.On("ListProducts", mock.Anything, service.ListProductsParams{Filter: "abc", Page: 1, PageSize: 2}).
			Return(model.Page[model.Product]{Items: []model.Product{product}, TotalCount: 5}, nil)

		resp := doRequest(t, h, http.MethodGet, "/products?filter=abc&page=1&pageSize=2", "")
		require.Equal(t, http.StatusOK, resp.Code)

		page := decode[gen.ProductPage](t, resp)
		assert.Equal(t, 5, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, product.ID, page.Items[0].Id)
		assert.True(t, lastUpdated.Equal(page.Items[0].LastUpdated))
		svc.AssertExpectations(t)
	})

	t.Run("Should leave missing parameters to service defaults", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		svc.On("ListProducts", mock.Anything, service.ListProductsParams{}).
			Return(model.Page[model.Product]{Items: []model.Product{}}, nil)

		resp := doRequest(t, h, http.MethodGet, "/products", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"items":[],"totalCount":0}`, resp.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Should reject page size above 100", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		resp := doRequest(t, h, http.MethodGet, "/products?pageSize=101", "")
		require.Equal(t, http.StatusBadRequest, resp.Code)

		errRes := decode[gen.ErrorResponse](t, resp)
		assert.Equal(t, apperr.ValidationErrorCode, errRes.Code)
		require.NotNil(t, errRes.Details)
		assert.Equal(t, "pageSize", (*errRes.Details)[0].Field)
		svc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})

	t.Run("Should reject non integer page", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		resp := doRequest(t, h, http.MethodGet, "/products?page=abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		svc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("Should reject body without sku", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		resp := doRequest(t, h, http.MethodPost, "/products", `{"name":"Widget","initialStock":1}`)
		require.Equal(t, http.StatusBadRequest, resp.Code)

		errRes := decode[gen.ErrorResponse](t, resp)
		assert.Equal(t, apperr.ValidationErrorCode, errRes.Code)
		svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed json", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		resp := doRequest(t, h, http.MethodPost, "/products", `{"sku":`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Should accept negative stock", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		id := uuid.New()
		svc.On("CreateProduct", mock.Anything, service.CreateProductParams{Sku: "N1", Name: "Neg", InitialStock: -3}).
			Return(id, nil)

		resp := doRequest(t, h, http.MethodPost, "/products", `{"sku":"N1","name":"Neg","initialStock":-3}`)
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.JSONEq(t, `{"id":"`+id.String()+`"}`, resp.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Should answer 500 on duplicate sku", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		svc.On("CreateProduct", mock.Anything, mock.Anything).
			Return(uuid.Nil, errors.New(`duplicate key value violates unique constraint "products_sku_key"`))

		resp := doRequest(t, h, http.MethodPost, "/products", `{"sku":"A1","name":"Widget","initialStock":1}`)
		require.Equal(t, http.StatusInternalServerError, resp.Code)

		errRes := decode[gen.ErrorResponse](t, resp)
		assert.Equal(t, "internalServerError", errRes.Code)
		assert.NotContains(t, errRes.Message, "products_sku_key")
	})
}

func TestProductByID(t *testing.T) {
	t.Run("Should reject non uuid id", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			resp := doRequest(t, h, method, "/products/not-a-uuid", "")
			assert.Equal(t, http.StatusBadRequest, resp.Code, method)
		}
		svc.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
		svc.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("Should answer 404 on update of missing product", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		id := uuid.New()
		svc.On("UpdateProduct", mock.Anything, service.UpdateProductParams{ID: id, Sku: "A1", Name: "Widget", QuantityInStock: 1}).
			Return(apperr.ProductNotFoundErr)

		resp := doRequest(t, h, http.MethodPut, "/products/"+id.String(), `{"sku":"A1","name":"Widget","quantityInStock":1}`)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Should answer 404 on delete of missing product", func(t *testing.T) {
		svc := &mockProductService{}
		h := newTestHandler(t, svc, nil)

		id := uuid.New()
		svc.On("DeleteProduct", mock.Anything, id).Return(apperr.ProductNotFoundErr)

		resp := doRequest(t, h, http.MethodDelete, "/products/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, resp.Code)
		svc.AssertExpectations(t)
	})
}

func TestAmbientRoutes(t *testing.T) {
	t.Run("Should report healthy database", func(t *testing.T) {
		h := newTestHandler(t, &mockProductService{}, nil)

		resp := doRequest(t, h, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
	})

	t.Run("Should report unavailable database", func(t *testing.T) {
		h := newTestHandler(t, &mockProductService{}, errors.New("connection refused"))

		resp := doRequest(t, h, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	})

	t.Run("Should expose request metrics", func(t *testing.T) {
		h := newTestHandler(t, &mockProductService{}, nil)

		doRequest(t, h, http.MethodGet, "/products/not-a-uuid", "")

		resp := doRequest(t, h, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `korpstock_http_requests_total{method="GET",route="/products/{id}",status="400"} 1`)
	})

	t.Run("Should echo correlation id", func(t *testing.T) {
		h := newTestHandler(t, &mockProductService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(correlationid.Header, "corr-42")
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, req)

		assert.Equal(t, "corr-42", resp.Header().Get(correlationid.Header))
	})

	t.Run("Should answer cors preflight for allowed origin", func(t *testing.T) {
		h := newTestHandler(t, &mockProductService{}, nil)

		req := httptest.NewRequest(http.MethodOptions, "/products", nil)
		req.Header.Set("Origin", "http://localhost:4200")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, req)

		assert.Equal(t, "http://localhost:4200", resp.Header().Get("Access-Control-Allow-Origin"))
	})
}
