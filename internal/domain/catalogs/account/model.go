// Package account provides the Account catalog: admin users and customers.
// Orders reference accounts by id without the store enforcing the link.
package account

import (
	"context"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/validation"
)

// Role names. Role is free text; these are the values the dashboard knows about.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleUser     = "user"
	RoleCustomer = "customer"
)

// DefaultRole is assigned when an account is created without one.
const DefaultRole = RoleUser

// Account is a user of the shop or its admin dashboard.
// Username and Email are meant to be unique; the store only checks when
// unique constraints are switched on.
type Account struct {
	entity.Record

	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`

	// Password holds a bcrypt hash once the service has run; never serialised
	Password string `json:"-" validate:"required"`

	Role string `json:"role" validate:"required,max=32"`
}

// NewAccount creates an Account with required fields.
func NewAccount(username, email, password, role string) *Account {
	return &Account{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
}

// Validate implements entity.Validatable interface.
func (a *Account) Validate(ctx context.Context) error {
	return validation.Struct(a)
}

// FilterFields implements entity.Filterable. The password hash is excluded.
func (a *Account) FilterFields() map[string]any {
	return a.Record.Fields(map[string]any{
		"username": a.Username,
		"email":    a.Email,
		"role":     a.Role,
	})
}
