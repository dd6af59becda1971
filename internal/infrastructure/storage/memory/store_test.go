package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/pkg/logger"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(opts ...Option) *Store {
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(logger.NewNop()),
	}, opts...)
	return New(opts...)
}

func ptr[T any](v T) *T { return &v }

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	t.Run("account", func(t *testing.T) {
		acc := account.NewAccount("admin", "admin@example.com", "secret", account.RoleAdmin)
		require.NoError(t, s.CreateAccount(ctx, acc))
		assert.Equal(t, id.First, acc.ID)
		assert.Equal(t, fixedNow, acc.CreatedAt)

		got, err := s.GetAccount(ctx, acc.ID)
		require.NoError(t, err)
		assert.Equal(t, acc, got)
	})

	t.Run("product", func(t *testing.T) {
		p := product.NewProduct("Laptop Pro", types.MustMoney("1299.00"), 15, "Electronics")
		require.NoError(t, s.CreateProduct(ctx, p))
		assert.Equal(t, id.First, p.ID)

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop Pro", got.Name)
		assert.True(t, got.Price.Equal(types.MustMoney("1299")))
		assert.Equal(t, 15, got.Stock)
		assert.Equal(t, fixedNow, got.CreatedAt)
	})

	t.Run("order", func(t *testing.T) {
		o := order.NewOrder("#12345", 2, 1, types.MustMoney("1299.00"))
		require.NoError(t, s.CreateOrder(ctx, o))
		assert.Equal(t, id.First, o.ID)

		got, err := s.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o, got)
	})

	t.Run("metric", func(t *testing.T) {
		m := metric.NewMetric("revenue", types.MustMoney("45231.89"), "2026-09")
		require.NoError(t, s.CreateMetric(ctx, m))
		assert.Equal(t, id.First, m.ID)

		got, err := s.GetMetric(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	})
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.GetAccount(ctx, 1)
	assert.True(t, apperror.IsNotFound(err))
	_, err = s.GetProduct(ctx, 1)
	assert.True(t, apperror.IsNotFound(err))
	_, err = s.GetOrder(ctx, 1)
	assert.True(t, apperror.IsNotFound(err))
	_, err = s.GetMetric(ctx, 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestStoredRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := product.NewProduct("Mouse", types.MustMoney("29.99"), 100, "Accessories")
	require.NoError(t, s.CreateProduct(ctx, p))

	p.Name = "changed after create"
	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", got.Name)

	got.Stock = 0
	again, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, again.Stock)

	list, err := s.ListProducts(ctx)
	require.NoError(t, err)
	list[0].Category = "mutated"
	again, err = s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Accessories", again.Category)
}

func TestIDs_NeverReused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var ids []id.ID
	for i := 0; i < 3; i++ {
		o := order.NewOrder(fmt.Sprintf("#%d", i), 1, 1, types.MustMoney("10"))
		require.NoError(t, s.CreateOrder(ctx, o))
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []id.ID{1, 2, 3}, ids)

	removed, err := s.DeleteOrder(ctx, 3)
	require.NoError(t, err)
	require.True(t, removed)

	o := order.NewOrder("#next", 1, 1, types.MustMoney("10"))
	require.NoError(t, s.CreateOrder(ctx, o))
	assert.Equal(t, id.ID(4), o.ID)
}

func TestList_IDOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	for i := 0; i < 20; i++ {
		require.NoError(t, s.CreateMetric(ctx, metric.NewMetric(fmt.Sprintf("m%d", i), types.Zero(), "p")))
	}

	list, err := s.ListMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, list, 20)
	for i, m := range list {
		assert.Equal(t, id.ID(i+1), m.ID)
	}
}

func TestUpdate_OverlaysSetFieldsOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := product.NewProduct("Keyboard", types.MustMoney("79.99"), 50, "Accessories")
	require.NoError(t, s.CreateProduct(ctx, p))

	updated, err := s.UpdateProduct(ctx, p.ID, product.Patch{Stock: ptr(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Stock)
	assert.Equal(t, "Keyboard", updated.Name)
	assert.True(t, updated.Price.Equal(types.MustMoney("79.99")))
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, fixedNow, updated.CreatedAt)

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_MissingID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#1", 1, 1, types.MustMoney("5"))))

	_, err := s.UpdateOrder(ctx, 99, order.Patch{Status: ptr(order.StatusShipped)})
	assert.True(t, apperror.IsNotFound(err))

	_, err = s.UpdateProduct(ctx, 99, product.Patch{Name: ptr("x")})
	assert.True(t, apperror.IsNotFound(err))

	list, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.StatusPending, list[0].Status)
}

func TestWrites_AreLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.DebugLevel)
	s := newTestStore(WithLogger(&logger.Logger{SugaredLogger: zap.New(core).Sugar()}))

	p := product.NewProduct("Keyboard", types.MustMoney("79.99"), 50, "Accessories")
	require.NoError(t, s.CreateProduct(ctx, p))
	o := order.NewOrder("#1", 1, p.ID, types.MustMoney("79.99"))
	require.NoError(t, s.CreateOrder(ctx, o))

	_, err := s.UpdateProduct(ctx, p.ID, product.Patch{Stock: ptr(49)})
	require.NoError(t, err)
	_, err = s.UpdateOrder(ctx, o.ID, order.Patch{Status: ptr(order.StatusShipped)})
	require.NoError(t, err)
	_, err = s.UpdateProduct(ctx, 99, product.Patch{Stock: ptr(1)})
	require.Error(t, err)

	updates := logs.FilterMessage("record updated").All()
	require.Len(t, updates, 2)
	assert.Equal(t, Products, updates[0].ContextMap()["collection"])
	assert.Equal(t, Orders, updates[1].ContextMap()["collection"])
	assert.Len(t, logs.FilterMessage("record created").All(), 2)
}

func TestDelete_ReportsRemoval(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := product.NewProduct("Monitor", types.MustMoney("399.00"), 3, "Electronics")
	require.NoError(t, s.CreateProduct(ctx, p))

	removed, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDuplicatesAllowedByDefault(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.CreateAccount(ctx, account.NewAccount("john", "john@example.com", "pw", account.RoleUser)))
	require.NoError(t, s.CreateAccount(ctx, account.NewAccount("john", "john@example.com", "pw", account.RoleUser)))
	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#1", 1, 1, types.MustMoney("1"))))
	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#1", 1, 1, types.MustMoney("1"))))

	assert.Equal(t, 2, s.Counts()[Accounts])
	assert.Equal(t, 2, s.Counts()[Orders])
}

func TestUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(WithUniqueConstraints(true))

	require.NoError(t, s.CreateAccount(ctx, account.NewAccount("john", "john@example.com", "pw", account.RoleUser)))

	err := s.CreateAccount(ctx, account.NewAccount("john", "other@example.com", "pw", account.RoleUser))
	assert.True(t, apperror.IsDuplicate(err))

	err = s.CreateAccount(ctx, account.NewAccount("jane", "JOHN@example.com", "pw", account.RoleUser))
	assert.True(t, apperror.IsDuplicate(err))

	first := order.NewOrder("#1", 1, 1, types.MustMoney("1"))
	require.NoError(t, s.CreateOrder(ctx, first))
	second := order.NewOrder("#2", 1, 1, types.MustMoney("1"))
	require.NoError(t, s.CreateOrder(ctx, second))

	err = s.CreateOrder(ctx, order.NewOrder("#1", 1, 1, types.MustMoney("1")))
	assert.True(t, apperror.IsDuplicate(err))

	_, err = s.UpdateOrder(ctx, second.ID, order.Patch{OrderCode: ptr("#1")})
	assert.True(t, apperror.IsDuplicate(err))

	// keeping its own code is not a conflict
	_, err = s.UpdateOrder(ctx, first.ID, order.Patch{OrderCode: ptr("#1")})
	assert.NoError(t, err)

	// failed creates do not consume ids
	third := order.NewOrder("#3", 1, 1, types.MustMoney("1"))
	require.NoError(t, s.CreateOrder(ctx, third))
	assert.Equal(t, id.ID(3), third.ID)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	stats, err := s.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Equal(t, "12.5", stats.GrowthRate.String())

	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#1", 1, 1, types.MustMoney("0.10"))))
	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#2", 1, 1, types.MustMoney("0.20"))))

	stats, err = s.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, "0.30", types.FormatMoney(stats.TotalRevenue))
}

func TestScenario_DashboardAfterSeed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	admin := account.NewAccount("admin", "admin@example.com", "admin123", account.RoleAdmin)
	john := account.NewAccount("john", "john@example.com", "john123", account.RoleUser)
	require.NoError(t, s.CreateAccount(ctx, admin))
	require.NoError(t, s.CreateAccount(ctx, john))
	assert.Equal(t, id.ID(1), admin.ID)
	assert.Equal(t, id.ID(2), john.ID)

	laptop := product.NewProduct("Laptop Pro", types.MustMoney("1299.00"), 15, "Electronics")
	require.NoError(t, s.CreateProduct(ctx, laptop))
	assert.Equal(t, id.ID(1), laptop.ID)

	o := order.NewOrder("#12345", john.ID, laptop.ID, types.MustMoney("1299.00"))
	o.CustomerName = "john"
	o.ProductName = "Laptop Pro"
	o.Status = order.StatusCompleted
	require.NoError(t, s.CreateOrder(ctx, o))
	assert.Equal(t, id.ID(1), o.ID)

	stats, err := s.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, "1299.00", types.FormatMoney(stats.TotalRevenue))
	assert.Equal(t, "12.5", stats.GrowthRate.String())
}

func TestScenario_DeleteOrderTwice(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.CreateOrder(ctx, order.NewOrder("#12345", 2, 1, types.MustMoney("1299.00"))))

	removed, err := s.DeleteOrder(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetOrder(ctx, 1)
	assert.True(t, apperror.IsNotFound(err))

	removed, err = s.DeleteOrder(ctx, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				o := order.NewOrder(fmt.Sprintf("#%d-%d", w, i), 1, 1, types.MustMoney("1.00"))
				assert.NoError(t, s.CreateOrder(ctx, o))
			}
		}(w)
	}
	wg.Wait()

	list, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, list, workers*perWorker)

	seen := make(map[id.ID]bool, len(list))
	for i, o := range list {
		assert.Equal(t, id.ID(i+1), o.ID)
		assert.False(t, seen[o.ID])
		seen[o.ID] = true
	}

	stats, err := s.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "400.00", types.FormatMoney(stats.TotalRevenue))
}
