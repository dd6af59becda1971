// Package memory provides the in-process Record Store backing every repository.
// Contents live only as long as the process.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/domain/reports"
	"shopadmin/pkg/logger"
)

var tracer = otel.Tracer("shopadmin/store")

// Collection names, used in errors, spans and health output.
const (
	Accounts = "accounts"
	Products = "products"
	Orders   = "orders"
	Metrics  = "metrics"
)

// Store holds the four collections and their id counters.
// All methods are safe for concurrent use; each one is atomic.
type Store struct {
	mu sync.RWMutex

	accounts *table[account.Account, *account.Account]
	products *table[product.Product, *product.Product]
	orders   *table[order.Order, *order.Order]
	metrics  *table[metric.Metric, *metric.Metric]

	now    func() time.Time
	unique bool
	log    *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithUniqueConstraints makes create and update reject a repeated
// username, email or order code with DUPLICATE_ENTRY.
func WithUniqueConstraints(enabled bool) Option {
	return func(s *Store) {
		s.unique = enabled
	}
}

// WithLogger sets the logger for store events.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an empty store. Every counter starts at 1.
func New(opts ...Option) *Store {
	s := &Store{
		accounts: newTable[account.Account, *account.Account](Accounts),
		products: newTable[product.Product, *product.Product](Products),
		orders:   newTable[order.Order, *order.Order](Orders),
		metrics:  newTable[metric.Metric, *metric.Metric](Metrics),
		now:      time.Now,
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("store")
	return s
}

func startSpan(ctx context.Context, op, collection string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("store.collection", collection))
	return tracer.Start(ctx, "store."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func idAttr(recID id.ID) attribute.KeyValue {
	return attribute.Int64("store.id", recID)
}

// --- Accounts ---

// GetAccount returns a copy of the account, or NOT_FOUND.
func (s *Store) GetAccount(ctx context.Context, recID id.ID) (*account.Account, error) {
	_, span := startSpan(ctx, "get", Accounts, idAttr(recID))
	s.mu.RLock()
	acc, ok := s.accounts.get(recID)
	s.mu.RUnlock()

	var err error
	if !ok {
		err = apperror.NewNotFound("account", recID)
	}
	endSpan(span, err)
	return acc, err
}

// ListAccounts returns all accounts in id order.
func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	_, span := startSpan(ctx, "list", Accounts)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.list(), nil
}

// CreateAccount stores a copy of acc and fills in its ID and CreatedAt.
func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) (err error) {
	ctx, span := startSpan(ctx, "create", Accounts)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unique {
		if s.accounts.taken(0, acc.Username, func(a *account.Account) string { return a.Username }) {
			return apperror.NewDuplicate("account", "username", acc.Username)
		}
		if s.accounts.taken(0, strings.ToLower(acc.Email), func(a *account.Account) string { return strings.ToLower(a.Email) }) {
			return apperror.NewDuplicate("account", "email", acc.Email)
		}
	}

	recID := s.accounts.insert(acc, s.now())
	span.SetAttributes(idAttr(recID))
	s.log.WithContext(ctx).Debugw("record created", "collection", Accounts, "id", recID)
	return nil
}

// --- Products ---

// GetProduct returns a copy of the catalog item, or NOT_FOUND.
func (s *Store) GetProduct(ctx context.Context, recID id.ID) (*product.Product, error) {
	_, span := startSpan(ctx, "get", Products, idAttr(recID))
	s.mu.RLock()
	p, ok := s.products.get(recID)
	s.mu.RUnlock()

	var err error
	if !ok {
		err = apperror.NewNotFound("product", recID)
	}
	endSpan(span, err)
	return p, err
}

// ListProducts returns all catalog items in id order.
func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	_, span := startSpan(ctx, "list", Products)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.list(), nil
}

// CreateProduct stores a copy of p and fills in its ID and CreatedAt.
func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	ctx, span := startSpan(ctx, "create", Products)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	recID := s.products.insert(p, s.now())
	span.SetAttributes(idAttr(recID))
	s.log.WithContext(ctx).Debugw("record created", "collection", Products, "id", recID)
	return nil
}

// UpdateProduct overlays the fields set in patch and returns the merged record.
func (s *Store) UpdateProduct(ctx context.Context, recID id.ID, patch product.Patch) (*product.Product, error) {
	ctx, span := startSpan(ctx, "update", Products, idAttr(recID))

	s.mu.Lock()
	p, ok := s.products.update(recID, patch.ApplyTo)
	s.mu.Unlock()

	var err error
	if ok {
		s.log.WithContext(ctx).Debugw("record updated", "collection", Products, "id", recID)
	} else {
		err = apperror.NewNotFound("product", recID)
	}
	endSpan(span, err)
	return p, err
}

// DeleteProduct removes the catalog item and reports whether it existed.
// Orders referring to it are left as they are.
func (s *Store) DeleteProduct(ctx context.Context, recID id.ID) (bool, error) {
	ctx, span := startSpan(ctx, "delete", Products, idAttr(recID))
	defer span.End()

	s.mu.Lock()
	removed := s.products.remove(recID)
	s.mu.Unlock()

	span.SetAttributes(attribute.Bool("store.removed", removed))
	if removed {
		s.log.WithContext(ctx).Debugw("record deleted", "collection", Products, "id", recID)
	}
	return removed, nil
}

// --- Orders ---

func orderCode(o *order.Order) string {
	return o.OrderCode
}

// GetOrder returns a copy of the order, or NOT_FOUND.
func (s *Store) GetOrder(ctx context.Context, recID id.ID) (*order.Order, error) {
	_, span := startSpan(ctx, "get", Orders, idAttr(recID))
	s.mu.RLock()
	o, ok := s.orders.get(recID)
	s.mu.RUnlock()

	var err error
	if !ok {
		err = apperror.NewNotFound("order", recID)
	}
	endSpan(span, err)
	return o, err
}

// ListOrders returns all orders in id order.
func (s *Store) ListOrders(ctx context.Context) ([]*order.Order, error) {
	_, span := startSpan(ctx, "list", Orders)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.list(), nil
}

// CreateOrder stores a copy of o and fills in its ID and CreatedAt.
// Customer and product ids are not checked.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) (err error) {
	ctx, span := startSpan(ctx, "create", Orders)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unique && s.orders.taken(0, o.OrderCode, orderCode) {
		return apperror.NewDuplicate("order", "orderId", o.OrderCode)
	}

	recID := s.orders.insert(o, s.now())
	span.SetAttributes(idAttr(recID))
	s.log.WithContext(ctx).Debugw("record created", "collection", Orders, "id", recID)
	return nil
}

// UpdateOrder overlays the fields set in patch and returns the merged record.
func (s *Store) UpdateOrder(ctx context.Context, recID id.ID, patch order.Patch) (o *order.Order, err error) {
	ctx, span := startSpan(ctx, "update", Orders, idAttr(recID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders.get(recID); !ok {
		return nil, apperror.NewNotFound("order", recID)
	}
	if s.unique && patch.OrderCode != nil && s.orders.taken(recID, *patch.OrderCode, orderCode) {
		return nil, apperror.NewDuplicate("order", "orderId", *patch.OrderCode)
	}

	o, _ = s.orders.update(recID, patch.ApplyTo)
	s.log.WithContext(ctx).Debugw("record updated", "collection", Orders, "id", recID)
	return o, nil
}

// DeleteOrder removes the order and reports whether it existed.
func (s *Store) DeleteOrder(ctx context.Context, recID id.ID) (bool, error) {
	ctx, span := startSpan(ctx, "delete", Orders, idAttr(recID))
	defer span.End()

	s.mu.Lock()
	removed := s.orders.remove(recID)
	s.mu.Unlock()

	span.SetAttributes(attribute.Bool("store.removed", removed))
	if removed {
		s.log.WithContext(ctx).Debugw("record deleted", "collection", Orders, "id", recID)
	}
	return removed, nil
}

// --- Metrics ---

// GetMetric returns a copy of the metric sample, or NOT_FOUND.
func (s *Store) GetMetric(ctx context.Context, recID id.ID) (*metric.Metric, error) {
	_, span := startSpan(ctx, "get", Metrics, idAttr(recID))
	s.mu.RLock()
	m, ok := s.metrics.get(recID)
	s.mu.RUnlock()

	var err error
	if !ok {
		err = apperror.NewNotFound("metric", recID)
	}
	endSpan(span, err)
	return m, err
}

// ListMetrics returns all metric samples in id order.
func (s *Store) ListMetrics(ctx context.Context) ([]*metric.Metric, error) {
	_, span := startSpan(ctx, "list", Metrics)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics.list(), nil
}

// CreateMetric stores a copy of m and fills in its ID and CreatedAt.
func (s *Store) CreateMetric(ctx context.Context, m *metric.Metric) error {
	ctx, span := startSpan(ctx, "create", Metrics)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	recID := s.metrics.insert(m, s.now())
	span.SetAttributes(idAttr(recID))
	s.log.WithContext(ctx).Debugw("record created", "collection", Metrics, "id", recID)
	return nil
}

// --- Aggregates ---

// DashboardStats counts accounts and orders and sums order amounts.
// GrowthRate is the fixed reports.GrowthRate.
func (s *Store) DashboardStats(ctx context.Context) (reports.DashboardStats, error) {
	_, span := startSpan(ctx, "dashboard_stats", Orders)
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	revenue := types.Zero()
	for _, o := range s.orders.rows {
		revenue = revenue.Add(o.Amount)
	}

	return reports.DashboardStats{
		TotalUsers:   s.accounts.len(),
		TotalOrders:  s.orders.len(),
		TotalRevenue: revenue,
		GrowthRate:   reports.GrowthRate,
	}, nil
}

// Counts returns the number of records in every collection.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]int{
		Accounts: s.accounts.len(),
		Products: s.products.len(),
		Orders:   s.orders.len(),
		Metrics:  s.metrics.len(),
	}
}

var _ reports.Repository = (*Store)(nil)
