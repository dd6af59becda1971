// Package order provides the order document collection.
// Orders refer to an account and a catalog item by id only; the referenced
// names are copied onto the order when it is placed.
package order

import (
	"context"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/core/validation"
)

// Status is free text; these are the values the dashboard knows about.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// DefaultStatus is assigned to orders created without a status.
const DefaultStatus = StatusPending

// KnownStatuses lists the statuses in lifecycle order.
var KnownStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
	StatusCancelled,
	StatusRefunded,
}

// Order is a customer order for a single catalog item.
type Order struct {
	entity.Record

	// OrderCode is the human facing code, e.g. "#12345"
	OrderCode string `json:"orderId" validate:"required,max=64"`

	CustomerID   id.ID  `json:"customerId" ref:"account"`
	CustomerName string `json:"customerName" validate:"max=128"`

	ProductID   id.ID  `json:"productId" ref:"product"`
	ProductName string `json:"productName" validate:"max=200"`

	Amount types.Money `json:"amount"`

	Status string `json:"status" validate:"required,max=32"`
}

// NewOrder creates a new Order with required fields.
func NewOrder(code string, customerID, productID id.ID, amount types.Money) *Order {
	return &Order{
		OrderCode:  code,
		CustomerID: customerID,
		ProductID:  productID,
		Amount:     amount,
		Status:     DefaultStatus,
	}
}

// Validate implements entity.Validatable interface.
func (o *Order) Validate(ctx context.Context) error {
	if err := validation.Struct(o); err != nil {
		return err
	}

	if o.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}
	if !types.HasMoneyScale(o.Amount) {
		return apperror.NewValidation("amount must have at most 2 decimal places").
			WithDetail("field", "amount").
			WithDetail("value", o.Amount.String())
	}

	return nil
}

// FilterFields implements entity.Filterable.
func (o *Order) FilterFields() map[string]any {
	return o.Record.Fields(map[string]any{
		"orderId":      o.OrderCode,
		"customerId":   o.CustomerID,
		"customerName": o.CustomerName,
		"productId":    o.ProductID,
		"productName":  o.ProductName,
		"amount":       types.MoneyToFloat(o.Amount),
		"status":       o.Status,
	})
}

// AuditFields implements audit.Snapshotter with the amount kept exact.
func (o *Order) AuditFields() map[string]any {
	fields := o.FilterFields()
	fields["amount"] = types.FormatMoney(o.Amount)
	return fields
}

// Patch is a partial Order. Nil fields are left untouched.
type Patch struct {
	OrderCode    *string
	CustomerID   *id.ID
	CustomerName *string
	ProductID    *id.ID
	ProductName  *string
	Amount       *types.Money
	Status       *string
}

// ApplyTo overlays the set fields on o.
func (pt Patch) ApplyTo(o *Order) {
	if pt.OrderCode != nil {
		o.OrderCode = *pt.OrderCode
	}
	if pt.CustomerID != nil {
		o.CustomerID = *pt.CustomerID
	}
	if pt.CustomerName != nil {
		o.CustomerName = *pt.CustomerName
	}
	if pt.ProductID != nil {
		o.ProductID = *pt.ProductID
	}
	if pt.ProductName != nil {
		o.ProductName = *pt.ProductName
	}
	if pt.Amount != nil {
		o.Amount = *pt.Amount
	}
	if pt.Status != nil {
		o.Status = *pt.Status
	}
}

// IsEmpty reports whether the patch sets no field.
func (pt Patch) IsEmpty() bool {
	return pt.OrderCode == nil && pt.CustomerID == nil && pt.CustomerName == nil &&
		pt.ProductID == nil && pt.ProductName == nil && pt.Amount == nil && pt.Status == nil
}
