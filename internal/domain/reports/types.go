// Package reports provides the dashboard summaries computed over the stored collections.
package reports

import (
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
)

// GrowthRate is the placeholder growth percentage reported on the dashboard.
// It is not computed from any collection.
var GrowthRate = types.MustMoney("12.5")

// --- Dashboard ---

// DashboardStats are the headline figures of the admin dashboard.
type DashboardStats struct {
	TotalUsers   int         `json:"totalUsers"`
	TotalOrders  int         `json:"totalOrders"`
	TotalRevenue types.Money `json:"totalRevenue"`
	GrowthRate   types.Money `json:"growthRate"`
}

// --- Orders by status ---

// OrderStatusRow aggregates the orders sharing one status.
type OrderStatusRow struct {
	Status  string      `json:"status"`
	Count   int         `json:"count"`
	Revenue types.Money `json:"revenue"`
}

// OrderStatusSummary groups all orders by status, sorted by status.
type OrderStatusSummary struct {
	Rows        []OrderStatusRow `json:"rows"`
	TotalOrders int              `json:"totalOrders"`
	Revenue     types.Money      `json:"revenue"`
}

// --- Low stock ---

// LowStockItem is a catalog item whose stock is below the threshold.
type LowStockItem struct {
	ProductID id.ID  `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
}

// LowStockReport lists items below Threshold in id order.
type LowStockReport struct {
	Threshold int            `json:"threshold"`
	Items     []LowStockItem `json:"items"`
}

// --- Categories ---

// CategoryRow aggregates the catalog items of one category.
type CategoryRow struct {
	Category   string      `json:"category"`
	Products   int         `json:"products"`
	TotalStock int         `json:"totalStock"`
	StockValue types.Money `json:"stockValue"`
}

// CategorySummary groups catalog items by category, sorted by category.
type CategorySummary struct {
	Rows []CategoryRow `json:"rows"`
}
