package handlers

import (
	"github.com/gin-gonic/gin"

	"shopadmin/internal/domain/reports"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for the dashboard and reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetDashboardStats handles GET /dashboard/stats
func (h *ReportsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDashboardStats(stats))
}

// GetOrderStatus handles GET /reports/order-status
func (h *ReportsHandler) GetOrderStatus(c *gin.Context) {
	report, err := h.service.OrderStatusSummary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrderStatusSummary(report))
}

// GetLowStock handles GET /reports/low-stock?threshold=N
func (h *ReportsHandler) GetLowStock(c *gin.Context) {
	var req dto.LowStockRequest
	if !h.BindQuery(c, &req) {
		return
	}

	report, err := h.service.LowStock(c.Request.Context(), req.Threshold)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLowStockReport(report))
}

// GetCategories handles GET /reports/categories
func (h *ReportsHandler) GetCategories(c *gin.Context) {
	report, err := h.service.CategorySummary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategorySummary(report))
}
