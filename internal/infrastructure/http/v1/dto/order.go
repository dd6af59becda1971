package dto

import (
	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain/documents/order"
)

// --- Request DTOs ---

// CreateOrderRequest is the request body for placing an order.
// Blank names are filled from the referenced account and catalog item;
// a blank orderId gets a generated code.
type CreateOrderRequest struct {
	OrderID      string      `json:"orderId"`
	CustomerID   id.ID       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	ProductID    id.ID       `json:"productId"`
	ProductName  string      `json:"productName"`
	Amount       types.Money `json:"amount"`
	Status       string      `json:"status"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderRequest) ToEntity() *order.Order {
	o := order.NewOrder(r.OrderID, r.CustomerID, r.ProductID, r.Amount)
	o.CustomerName = r.CustomerName
	o.ProductName = r.ProductName
	o.Status = r.Status
	return o
}

// UpdateOrderRequest is the request body for a partial update.
type UpdateOrderRequest struct {
	OrderID      *string      `json:"orderId"`
	CustomerID   *id.ID       `json:"customerId"`
	CustomerName *string      `json:"customerName"`
	ProductID    *id.ID       `json:"productId"`
	ProductName  *string      `json:"productName"`
	Amount       *types.Money `json:"amount"`
	Status       *string      `json:"status"`
}

// ToPatch converts DTO to domain patch.
func (r *UpdateOrderRequest) ToPatch() order.Patch {
	return order.Patch{
		OrderCode:    r.OrderID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		Amount:       r.Amount,
		Status:       r.Status,
	}
}

// --- Response DTOs ---

// OrderResponse is the response body for an order.
type OrderResponse struct {
	BaseResponse
	OrderID      string `json:"orderId"`
	CustomerID   id.ID  `json:"customerId"`
	CustomerName string `json:"customerName"`
	ProductID    id.ID  `json:"productId"`
	ProductName  string `json:"productName"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
}

// FromOrder creates response DTO from domain entity.
func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		BaseResponse: FromRecord(o.Record),
		OrderID:      o.OrderCode,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Amount:       Money(o.Amount),
		Status:       o.Status,
	}
}
