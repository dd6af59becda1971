// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// RecordRouteHandler defines the routes every collection exposes.
type RecordRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

// MutableRouteHandler is an optional interface for collections supporting
// partial update and delete.
type MutableRouteHandler interface {
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterRecordRoutes registers the standard routes for a collection.
// If the handler also implements MutableRouteHandler, PATCH and DELETE are registered too.
//
// Usage:
//
//	service := product.NewService(memory.NewProductRepo(store))
//	handler := handlers.NewProductHandler(baseHandler, service)
//	RegisterRecordRoutes(api.Group("/products"), handler)
func RegisterRecordRoutes(group *gin.RouterGroup, handler RecordRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)

	if mutable, ok := handler.(MutableRouteHandler); ok {
		group.PATCH("/:id", mutable.Update)
		group.DELETE("/:id", mutable.Delete)
	}
}
