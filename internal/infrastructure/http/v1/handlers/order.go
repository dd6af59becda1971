package handlers

import (
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// OrderHTTPHandler shortens the generic handler signature.
type OrderHTTPHandler = MutableRecordHandler[
	*order.Order,
	order.Patch,
	dto.CreateOrderRequest,
	dto.UpdateOrderRequest,
]

// NewOrderHandler creates the order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHTTPHandler {
	config := MutableRecordHandlerConfig[
		*order.Order,
		order.Patch,
		dto.CreateOrderRequest,
		dto.UpdateOrderRequest,
	]{
		Service:    service.MutableRecordService,
		EntityName: "order",

		MapCreateDTO: func(req dto.CreateOrderRequest) *order.Order {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateOrderRequest) order.Patch {
			return req.ToPatch()
		},

		MapToDTO: func(entity *order.Order) any {
			return dto.FromOrder(entity)
		},
	}

	return NewMutableRecordHandler(base, config)
}
