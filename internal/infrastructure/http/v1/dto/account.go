package dto

import (
	"shopadmin/internal/domain/catalogs/account"
)

// --- Request DTOs ---

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAccountRequest) ToEntity() *account.Account {
	return account.NewAccount(r.Username, r.Email, r.Password, r.Role)
}

// --- Response DTOs ---

// AccountResponse is the response body for an account. The password hash is never sent.
type AccountResponse struct {
	BaseResponse
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// FromAccount creates response DTO from domain entity.
func FromAccount(a *account.Account) *AccountResponse {
	return &AccountResponse{
		BaseResponse: FromRecord(a.Record),
		Username:     a.Username,
		Email:        a.Email,
		Role:         a.Role,
	}
}
