package handlers

import (
	"github.com/gin-gonic/gin"

	"shopadmin/internal/domain/audit"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// AuditHandler serves record change history.
type AuditHandler struct {
	*BaseHandler
	journal audit.Journal
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, journal audit.Journal) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		journal:     journal,
	}
}

// GetHistory handles GET /audit/:entity/:id?limit=N, newest entry first.
func (h *AuditHandler) GetHistory(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entries, err := h.journal.History(c.Request.Context(), c.Param("entity"), entityID, h.ParseIntQuery(c, "limit", 50))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      entries,
		TotalCount: len(entries),
	})
}
