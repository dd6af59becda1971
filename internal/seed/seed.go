// Package seed fills an empty store with the dashboard's sample data.
package seed

import (
	"context"
	"fmt"

	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/pkg/logger"
)

// Services are the collections the seed writes through.
type Services struct {
	Accounts *account.Service
	Products *product.Service
	Orders   *order.Service
	Metrics  *metric.Service
}

// Result holds the ids of the seeded records.
type Result struct {
	Accounts []id.ID
	Products []id.ID
	Orders   []id.ID
	Metrics  []id.ID
	Skipped  bool
}

// Demo seeds sample accounts, products, orders and metrics.
// It does nothing when the account collection is not empty.
func Demo(ctx context.Context, svc Services) (*Result, error) {
	existing, err := svc.Accounts.List(ctx, domain.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("check accounts: %w", err)
	}
	if len(existing) > 0 {
		logger.Info(ctx, "store already has data, skipping demo seed", "accounts", len(existing))
		return &Result{Skipped: true}, nil
	}

	res := &Result{}

	accounts := []*account.Account{
		account.NewAccount("admin", "admin@shopadmin.local", "Admin123!", account.RoleAdmin),
		account.NewAccount("john", "john@example.com", "John123!", account.RoleCustomer),
		account.NewAccount("jane", "jane@example.com", "Jane123!", account.RoleCustomer),
	}
	for _, acc := range accounts {
		if err := svc.Accounts.Create(ctx, acc); err != nil {
			return nil, fmt.Errorf("seed account %s: %w", acc.Username, err)
		}
		res.Accounts = append(res.Accounts, acc.ID)
	}

	products := []*product.Product{
		product.NewProduct("Laptop Pro", types.MustMoney("1299.00"), 45, "Electronics"),
		product.NewProduct("Wireless Mouse", types.MustMoney("29.99"), 8, "Accessories"),
		product.NewProduct("Mechanical Keyboard", types.MustMoney("89.99"), 5, "Accessories"),
		product.NewProduct("USB-C Hub", types.MustMoney("49.99"), 120, "Accessories"),
	}
	for _, p := range products {
		if err := svc.Products.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
		res.Products = append(res.Products, p.ID)
	}

	john, jane := accounts[1], accounts[2]
	orders := []*order.Order{
		withStatus(order.NewOrder("#12345", john.ID, products[0].ID, products[0].Price), order.StatusCompleted),
		withStatus(order.NewOrder("#12346", jane.ID, products[1].ID, products[1].Price), order.StatusProcessing),
		order.NewOrder("#12347", john.ID, products[2].ID, products[2].Price),
	}
	for _, o := range orders {
		if err := svc.Orders.Create(ctx, o); err != nil {
			return nil, fmt.Errorf("seed order %s: %w", o.OrderCode, err)
		}
		res.Orders = append(res.Orders, o.ID)
	}

	metrics := []*metric.Metric{
		metric.NewMetric("revenue", types.MustMoney("1418.98"), "2026-10"),
		metric.NewMetric("visitors", types.NewMoneyFromInt(1520), "2026-10"),
		metric.NewMetric("conversion_rate", types.MustMoney("3.20"), "2026-10"),
	}
	for _, m := range metrics {
		if err := svc.Metrics.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("seed metric %s: %w", m.Name, err)
		}
		res.Metrics = append(res.Metrics, m.ID)
	}

	logger.Info(ctx, "demo data seeded",
		"accounts", len(res.Accounts),
		"products", len(res.Products),
		"orders", len(res.Orders),
		"metrics", len(res.Metrics),
	)
	return res, nil
}

func withStatus(o *order.Order, status string) *order.Order {
	o.Status = status
	return o
}
