package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	"shopadmin/internal/domain/audit"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/domain/reports"
	"shopadmin/internal/infrastructure/http/v1/handlers"
	"shopadmin/internal/infrastructure/http/v1/middleware"
	"shopadmin/internal/metadata"
	"shopadmin/pkg/logger"
)

// Version is reported by /health/info.
const Version = "0.1.0"

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Store reports collection sizes for health info
	Store handlers.CountsProvider

	AccountService *account.Service
	ProductService *product.Service
	OrderService   *order.Service
	MetricService  *metric.Service
	ReportsService *reports.Service

	// AuditJournal serves change history; optional
	AuditJournal audit.Journal

	// MetadataRegistry stores entity definitions
	MetadataRegistry *metadata.Registry
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Store, Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	{
		registerRecordRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
		registerAuditRoutes(v1, cfg)
		registerMetaRoutes(v1, cfg)
	}

	return router
}

// NewHandler returns the router wrapped in gzip response compression.
// Bodies are compressed only for clients sending Accept-Encoding: gzip.
func NewHandler(cfg RouterConfig) http.Handler {
	return gzhttp.GzipHandler(NewRouter(cfg))
}

// registerRecordRoutes registers the four collections.
func registerRecordRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	if cfg.AccountService != nil {
		RegisterRecordRoutes(rg.Group("/accounts"), handlers.NewAccountHandler(baseHandler, cfg.AccountService))
	}
	if cfg.ProductService != nil {
		RegisterRecordRoutes(rg.Group("/products"), handlers.NewProductHandler(baseHandler, cfg.ProductService))
	}
	if cfg.OrderService != nil {
		RegisterRecordRoutes(rg.Group("/orders"), handlers.NewOrderHandler(baseHandler, cfg.OrderService))
	}
	if cfg.MetricService != nil {
		RegisterRecordRoutes(rg.Group("/metrics"), handlers.NewMetricHandler(baseHandler, cfg.MetricService))
	}
}

// registerReportRoutes registers dashboard and report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.ReportsService == nil {
		return
	}

	reportHandler := handlers.NewReportsHandler(handlers.NewBaseHandler(), cfg.ReportsService)

	rg.GET("/dashboard/stats", reportHandler.GetDashboardStats)

	reportsGroup := rg.Group("/reports")
	reportsGroup.GET("/order-status", reportHandler.GetOrderStatus)
	reportsGroup.GET("/low-stock", reportHandler.GetLowStock)
	reportsGroup.GET("/categories", reportHandler.GetCategories)
}

// registerAuditRoutes registers change history endpoints.
func registerAuditRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuditJournal == nil {
		return
	}

	handler := handlers.NewAuditHandler(handlers.NewBaseHandler(), cfg.AuditJournal)
	rg.GET("/audit/:entity/:id", handler.GetHistory)
}

// registerMetaRoutes registers metadata/schema endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.MetadataRegistry == nil {
		return
	}

	handler := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.MetadataRegistry)
	meta := rg.Group("/meta")
	{
		meta.GET("", handler.ListEntities)
		meta.GET("/:name", handler.GetEntity)
	}
}
