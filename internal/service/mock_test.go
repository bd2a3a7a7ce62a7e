package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/korpstock/internal/model"
	"github.com/tuanvumaihuynh/korpstock/internal/repository"
	"github.com/tuanvumaihuynh/korpstock/internal/storage/db"
)

// fakeDB runs transaction functions inline and records the options used.
type fakeDB struct {
	db.DB
	txOpts []pgx.TxOptions
}

func (f *fakeDB) WithTx(ctx context.Context, txFunc func(db.DB) error) error {
	return f.WithTxOptions(ctx, pgx.TxOptions{}, txFunc)
}

func (f *fakeDB) WithTxOptions(_ context.Context, opts pgx.TxOptions, txFunc func(db.DB) error) error {
	f.txOpts = append(f.txOpts, opts)
	return txFunc(f)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) WithDB(db.DB) repository.ProductRepository {
	return m
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) GetProductByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) UpdateProduct(ctx context.Context, product model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) CountProducts(ctx context.Context, params repository.CountProductsParams) (int, error) {
	args := m.Called(ctx, params)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepo) ListProducts(ctx context.Context, params repository.ListProductsParams) ([]model.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]model.Product), args.Error(1)
}

type mockOutboxMsgRepo struct {
	mock.Mock
}

func (m *mockOutboxMsgRepo) WithDB(db.DB) repository.OutboxMsgRepository {
	return m
}

func (m *mockOutboxMsgRepo) CreateOutboxMsg(ctx context.Context, params repository.CreateOutboxMsgParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *mockOutboxMsgRepo) ListUnprocessedOutboxMsgs(ctx context.Context, params repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]repository.ListUnprocessedOutboxMsgsResult), args.Error(1)
}

func (m *mockOutboxMsgRepo) BulkUpdateOutboxMsgs(ctx context.Context, params repository.BulkUpdateOutboxMsgsParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
