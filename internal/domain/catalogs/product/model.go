// Package product provides the catalog item collection: what the shop sells.
package product

import (
	"context"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/types"
	"shopadmin/internal/core/validation"
)

// Product is a catalog item.
type Product struct {
	entity.Record

	Name string `json:"name" validate:"required,max=200"`

	// Price carries at most two fractional digits
	Price types.Money `json:"price"`

	Stock int `json:"stock" validate:"gte=0"`

	Category string `json:"category" validate:"max=100"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(name string, price types.Money, stock int, category string) *Product {
	return &Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if !types.HasMoneyScale(p.Price) {
		return apperror.NewValidation("price must have at most 2 decimal places").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}

	return nil
}

// FilterFields implements entity.Filterable.
func (p *Product) FilterFields() map[string]any {
	return p.Record.Fields(map[string]any{
		"name":     p.Name,
		"price":    types.MoneyToFloat(p.Price),
		"stock":    int64(p.Stock),
		"category": p.Category,
	})
}

// AuditFields implements audit.Snapshotter with the price kept exact.
func (p *Product) AuditFields() map[string]any {
	fields := p.FilterFields()
	fields["price"] = types.FormatMoney(p.Price)
	return fields
}

// Patch is a partial Product. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Price    *types.Money
	Stock    *int
	Category *string
}

// ApplyTo overlays the set fields on p.
func (pt Patch) ApplyTo(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Stock != nil {
		p.Stock = *pt.Stock
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
}

// IsEmpty reports whether the patch sets no field.
func (pt Patch) IsEmpty() bool {
	return pt.Name == nil && pt.Price == nil && pt.Stock == nil && pt.Category == nil
}
