// Package handlers provides HTTP request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/domain"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// RecordHandler provides generic HTTP handlers for collections supporting
// get, list and create.
type RecordHandler[T entity.Entity, CreateDTO any] struct {
	*BaseHandler
	service    *domain.RecordService[T]
	entityName string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO) T
	mapToDTO     func(entity T) any
}

// RecordHandlerConfig configures the record handler.
type RecordHandlerConfig[T entity.Entity, CreateDTO any] struct {
	Service      *domain.RecordService[T]
	EntityName   string
	MapCreateDTO func(dto CreateDTO) T
	MapToDTO     func(entity T) any
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler[T entity.Entity, CreateDTO any](
	base *BaseHandler,
	cfg RecordHandlerConfig[T, CreateDTO],
) *RecordHandler[T, CreateDTO] {
	return &RecordHandler[T, CreateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity} - every record in id order.
// ?filter= takes a boolean expression over the record's JSON fields, e.g. item.stock < 10.
func (h *RecordHandler[T, CreateDTO]) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.List(ctx, domain.ListFilter{Expression: c.Query("filter")})
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]any, len(items))
	for i, item := range items {
		dtos[i] = h.mapToDTO(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      dtos,
		TotalCount: len(dtos),
	})
}

// Get handles GET /{entity}/:id - get single record.
func (h *RecordHandler[T, CreateDTO]) Get(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(entity))
}

// Create handles POST /{entity} - create new record.
func (h *RecordHandler[T, CreateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	entity := h.mapCreateDTO(req)

	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(entity))
}

// MutableRecordHandler adds partial update and delete to RecordHandler.
type MutableRecordHandler[T entity.Entity, P domain.Patch[T], CreateDTO any, UpdateDTO any] struct {
	*RecordHandler[T, CreateDTO]
	service      *domain.MutableRecordService[T, P]
	mapUpdateDTO func(dto UpdateDTO) P
}

// MutableRecordHandlerConfig configures the mutable record handler.
type MutableRecordHandlerConfig[T entity.Entity, P domain.Patch[T], CreateDTO any, UpdateDTO any] struct {
	Service      *domain.MutableRecordService[T, P]
	EntityName   string
	MapCreateDTO func(dto CreateDTO) T
	MapUpdateDTO func(dto UpdateDTO) P
	MapToDTO     func(entity T) any
}

// NewMutableRecordHandler creates a new mutable record handler.
func NewMutableRecordHandler[T entity.Entity, P domain.Patch[T], CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg MutableRecordHandlerConfig[T, P, CreateDTO, UpdateDTO],
) *MutableRecordHandler[T, P, CreateDTO, UpdateDTO] {
	return &MutableRecordHandler[T, P, CreateDTO, UpdateDTO]{
		RecordHandler: NewRecordHandler(base, RecordHandlerConfig[T, CreateDTO]{
			Service:      cfg.Service.RecordService,
			EntityName:   cfg.EntityName,
			MapCreateDTO: cfg.MapCreateDTO,
			MapToDTO:     cfg.MapToDTO,
		}),
		service:      cfg.Service,
		mapUpdateDTO: cfg.MapUpdateDTO,
	}
}

// Update handles PATCH /{entity}/:id - overlay the supplied fields.
func (h *MutableRecordHandler[T, P, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), entityID, h.mapUpdateDTO(req))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id.
func (h *MutableRecordHandler[T, P, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
