package handlers

import (
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// ProductHTTPHandler shortens the generic handler signature.
type ProductHTTPHandler = MutableRecordHandler[
	*product.Product,
	product.Patch,
	dto.CreateProductRequest,
	dto.UpdateProductRequest,
]

// NewProductHandler creates the catalog item handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHTTPHandler {
	config := MutableRecordHandlerConfig[
		*product.Product,
		product.Patch,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.MutableRecordService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateProductRequest) product.Patch {
			return req.ToPatch()
		},

		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return NewMutableRecordHandler(base, config)
}
