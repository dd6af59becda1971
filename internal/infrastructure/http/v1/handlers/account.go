package handlers

import (
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/infrastructure/http/v1/dto"
)

// AccountHTTPHandler is the account handler: accounts are never updated or deleted.
type AccountHTTPHandler = RecordHandler[*account.Account, dto.CreateAccountRequest]

// NewAccountHandler creates the account handler.
func NewAccountHandler(base *BaseHandler, service *account.Service) *AccountHTTPHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*account.Account, dto.CreateAccountRequest]{
		Service:    service.RecordService,
		EntityName: "account",
		MapCreateDTO: func(req dto.CreateAccountRequest) *account.Account {
			return req.ToEntity()
		},
		MapToDTO: func(entity *account.Account) any {
			return dto.FromAccount(entity)
		},
	})
}
