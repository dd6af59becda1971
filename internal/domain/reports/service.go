package reports

import (
	"context"
	"fmt"
	"sort"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
)

// DefaultLowStockThreshold is used when no threshold is configured or requested.
const DefaultLowStockThreshold = 10

// Service provides report generation operations.
type Service struct {
	repo     Repository
	orders   order.Repository
	products product.Repository

	lowStockThreshold int
}

// NewService creates a new reports service.
// A non-positive lowStockThreshold selects DefaultLowStockThreshold.
func NewService(repo Repository, orders order.Repository, products product.Repository, lowStockThreshold int) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &Service{
		repo:              repo,
		orders:            orders,
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}
}

// DashboardStats returns the headline dashboard figures.
func (s *Service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("get dashboard stats: %w", err)
	}
	return stats, nil
}

// OrderStatusSummary counts orders and sums their amounts per status.
func (s *Service) OrderStatusSummary(ctx context.Context) (*OrderStatusSummary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	byStatus := make(map[string]*OrderStatusRow)
	summary := &OrderStatusSummary{
		Rows:    []OrderStatusRow{},
		Revenue: types.Zero(),
	}
	for _, o := range orders {
		row, ok := byStatus[o.Status]
		if !ok {
			row = &OrderStatusRow{Status: o.Status, Revenue: types.Zero()}
			byStatus[o.Status] = row
		}
		row.Count++
		row.Revenue = row.Revenue.Add(o.Amount)
		summary.TotalOrders++
		summary.Revenue = summary.Revenue.Add(o.Amount)
	}

	for _, row := range byStatus {
		summary.Rows = append(summary.Rows, *row)
	}
	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Status < summary.Rows[j].Status
	})

	return summary, nil
}

// LowStock lists catalog items with stock strictly below threshold.
// A zero threshold selects the configured default.
func (s *Service) LowStock(ctx context.Context, threshold int) (*LowStockReport, error) {
	if threshold < 0 {
		return nil, apperror.NewInvalidInput("threshold", threshold)
	}
	if threshold == 0 {
		threshold = s.lowStockThreshold
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	report := &LowStockReport{
		Threshold: threshold,
		Items:     []LowStockItem{},
	}
	for _, p := range products {
		if p.Stock >= threshold {
			continue
		}
		report.Items = append(report.Items, LowStockItem{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
		})
	}

	return report, nil
}

// CategorySummary counts catalog items, stock and stock value per category.
func (s *Service) CategorySummary(ctx context.Context) (*CategorySummary, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	byCategory := make(map[string]*CategoryRow)
	for _, p := range products {
		row, ok := byCategory[p.Category]
		if !ok {
			row = &CategoryRow{Category: p.Category, StockValue: types.Zero()}
			byCategory[p.Category] = row
		}
		row.Products++
		row.TotalStock += p.Stock
		row.StockValue = row.StockValue.Add(p.Price.Mul(types.NewMoneyFromInt(int64(p.Stock))))
	}

	summary := &CategorySummary{Rows: make([]CategoryRow, 0, len(byCategory))}
	for _, row := range byCategory {
		summary.Rows = append(summary.Rows, *row)
	}
	sort.Slice(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Category < summary.Rows[j].Category
	})

	return summary, nil
}
