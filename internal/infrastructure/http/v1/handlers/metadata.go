package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/metadata"
)

// MetadataHandler serves entity definitions.
type MetadataHandler struct {
	*BaseHandler
	registry *metadata.Registry
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(base *BaseHandler, registry *metadata.Registry) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
	}
}

// ListEntities returns every registered entity definition.
// GET /api/v1/meta
func (h *MetadataHandler) ListEntities(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// GetEntity returns the full metadata for a specific entity.
// GET /api/v1/meta/:name
func (h *MetadataHandler) GetEntity(c *gin.Context) {
	name := c.Param("name")
	def, ok := h.registry.Get(name)
	if !ok {
		h.Error(c, apperror.NewNotFound("entity definition", name))
		return
	}
	c.JSON(http.StatusOK, def)
}
