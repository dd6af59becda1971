package dto

import (
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a catalog item.
// Price accepts a JSON number or string.
type CreateProductRequest struct {
	Name     string      `json:"name" binding:"required"`
	Price    types.Money `json:"price"`
	Stock    int         `json:"stock"`
	Category string      `json:"category"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	return product.NewProduct(r.Name, r.Price, r.Stock, r.Category)
}

// UpdateProductRequest is the request body for a partial update.
// Absent fields are left unchanged.
type UpdateProductRequest struct {
	Name     *string      `json:"name"`
	Price    *types.Money `json:"price"`
	Stock    *int         `json:"stock"`
	Category *string      `json:"category"`
}

// ToPatch converts DTO to domain patch.
func (r *UpdateProductRequest) ToPatch() product.Patch {
	return product.Patch{
		Name:     r.Name,
		Price:    r.Price,
		Stock:    r.Stock,
		Category: r.Category,
	}
}

// --- Response DTOs ---

// ProductResponse is the response body for a catalog item.
type ProductResponse struct {
	BaseResponse
	Name     string `json:"name"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		BaseResponse: FromRecord(p.Record),
		Name:         p.Name,
		Price:        Money(p.Price),
		Stock:        p.Stock,
		Category:     p.Category,
	}
}
