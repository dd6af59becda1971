package memory

import (
	"context"

	"shopadmin/internal/core/id"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
)

// AccountRepo adapts the store's account collection to account.Repository.
type AccountRepo struct{ store *Store }

// NewAccountRepo creates a new account repository.
func NewAccountRepo(store *Store) *AccountRepo {
	return &AccountRepo{store: store}
}

func (r *AccountRepo) Create(ctx context.Context, acc *account.Account) error {
	return r.store.CreateAccount(ctx, acc)
}

func (r *AccountRepo) GetByID(ctx context.Context, recID id.ID) (*account.Account, error) {
	return r.store.GetAccount(ctx, recID)
}

func (r *AccountRepo) List(ctx context.Context) ([]*account.Account, error) {
	return r.store.ListAccounts(ctx)
}

// ProductRepo adapts the store's catalog collection to product.Repository.
type ProductRepo struct{ store *Store }

// NewProductRepo creates a new product repository.
func NewProductRepo(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	return r.store.CreateProduct(ctx, p)
}

func (r *ProductRepo) GetByID(ctx context.Context, recID id.ID) (*product.Product, error) {
	return r.store.GetProduct(ctx, recID)
}

func (r *ProductRepo) List(ctx context.Context) ([]*product.Product, error) {
	return r.store.ListProducts(ctx)
}

func (r *ProductRepo) Update(ctx context.Context, recID id.ID, patch product.Patch) (*product.Product, error) {
	return r.store.UpdateProduct(ctx, recID, patch)
}

func (r *ProductRepo) Delete(ctx context.Context, recID id.ID) (bool, error) {
	return r.store.DeleteProduct(ctx, recID)
}

// OrderRepo adapts the store's order collection to order.Repository.
type OrderRepo struct{ store *Store }

// NewOrderRepo creates a new order repository.
func NewOrderRepo(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.store.CreateOrder(ctx, o)
}

func (r *OrderRepo) GetByID(ctx context.Context, recID id.ID) (*order.Order, error) {
	return r.store.GetOrder(ctx, recID)
}

func (r *OrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	return r.store.ListOrders(ctx)
}

func (r *OrderRepo) Update(ctx context.Context, recID id.ID, patch order.Patch) (*order.Order, error) {
	return r.store.UpdateOrder(ctx, recID, patch)
}

func (r *OrderRepo) Delete(ctx context.Context, recID id.ID) (bool, error) {
	return r.store.DeleteOrder(ctx, recID)
}

// MetricRepo adapts the store's metric collection to metric.Repository.
type MetricRepo struct{ store *Store }

// NewMetricRepo creates a new metric repository.
func NewMetricRepo(store *Store) *MetricRepo {
	return &MetricRepo{store: store}
}

func (r *MetricRepo) Create(ctx context.Context, m *metric.Metric) error {
	return r.store.CreateMetric(ctx, m)
}

func (r *MetricRepo) GetByID(ctx context.Context, recID id.ID) (*metric.Metric, error) {
	return r.store.GetMetric(ctx, recID)
}

func (r *MetricRepo) List(ctx context.Context) ([]*metric.Metric, error) {
	return r.store.ListMetrics(ctx)
}

// Compile-time interface checks.
var (
	_ account.Repository = (*AccountRepo)(nil)
	_ product.Repository = (*ProductRepo)(nil)
	_ order.Repository   = (*OrderRepo)(nil)
	_ metric.Repository  = (*MetricRepo)(nil)
)
