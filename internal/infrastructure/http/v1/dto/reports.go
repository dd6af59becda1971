package dto

import (
	"shopadmin/internal/core/id"
	"shopadmin/internal/domain/reports"
)

// --- Dashboard ---

// DashboardStatsResponse represents the dashboard headline figures.
// GrowthRate is a percentage and is sent as a number.
type DashboardStatsResponse struct {
	TotalUsers   int     `json:"totalUsers"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue string  `json:"totalRevenue"`
	GrowthRate   float64 `json:"growthRate"`
}

// FromDashboardStats converts domain stats to response DTO.
func FromDashboardStats(s reports.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalUsers:   s.TotalUsers,
		TotalOrders:  s.TotalOrders,
		TotalRevenue: Money(s.TotalRevenue),
		GrowthRate:   s.GrowthRate.InexactFloat64(),
	}
}

// --- Orders by status ---

// OrderStatusRowResponse represents one status group.
type OrderStatusRowResponse struct {
	Status  string `json:"status"`
	Count   int    `json:"count"`
	Revenue string `json:"revenue"`
}

// OrderStatusSummaryResponse represents the order status report.
type OrderStatusSummaryResponse struct {
	Rows        []OrderStatusRowResponse `json:"rows"`
	TotalOrders int                      `json:"totalOrders"`
	Revenue     string                   `json:"revenue"`
}

// FromOrderStatusSummary converts domain report to response DTO.
func FromOrderStatusSummary(r *reports.OrderStatusSummary) OrderStatusSummaryResponse {
	rows := make([]OrderStatusRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = OrderStatusRowResponse{
			Status:  row.Status,
			Count:   row.Count,
			Revenue: Money(row.Revenue),
		}
	}
	return OrderStatusSummaryResponse{
		Rows:        rows,
		TotalOrders: r.TotalOrders,
		Revenue:     Money(r.Revenue),
	}
}

// --- Low stock ---

// LowStockRequest represents query parameters for the low stock report.
type LowStockRequest struct {
	Threshold int `form:"threshold" binding:"min=0"`
}

// LowStockItemResponse represents a single item in the low stock report.
type LowStockItemResponse struct {
	ProductID id.ID  `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
}

// LowStockResponse represents the low stock report.
type LowStockResponse struct {
	Threshold int                    `json:"threshold"`
	Items     []LowStockItemResponse `json:"items"`
}

// FromLowStockReport converts domain report to response DTO.
func FromLowStockReport(r *reports.LowStockReport) LowStockResponse {
	items := make([]LowStockItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = LowStockItemResponse(item)
	}
	return LowStockResponse{
		Threshold: r.Threshold,
		Items:     items,
	}
}

// --- Categories ---

// CategoryRowResponse represents one category group.
type CategoryRowResponse struct {
	Category   string `json:"category"`
	Products   int    `json:"products"`
	TotalStock int    `json:"totalStock"`
	StockValue string `json:"stockValue"`
}

// CategorySummaryResponse represents the category report.
type CategorySummaryResponse struct {
	Rows []CategoryRowResponse `json:"rows"`
}

// FromCategorySummary converts domain report to response DTO.
func FromCategorySummary(r *reports.CategorySummary) CategorySummaryResponse {
	rows := make([]CategoryRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = CategoryRowResponse{
			Category:   row.Category,
			Products:   row.Products,
			TotalStock: row.TotalStock,
			StockValue: Money(row.StockValue),
		}
	}
	return CategorySummaryResponse{Rows: rows}
}
