package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/domain"
)

// Service provides business logic for the Account catalog.
// Uses composition with domain.RecordService for common operations.
type Service struct {
	*domain.RecordService[*Account]
	repo       Repository
	bcryptCost int
}

// NewService creates a new Account service.
// bcryptCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	base := domain.NewRecordService(domain.RecordServiceConfig[*Account]{
		Repo:       repo,
		EntityName: "account",
	})

	svc := &Service{
		RecordService: base,
		repo:          repo,
		bcryptCost:    bcryptCost,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate applies defaults and hashes the password.
func (s *Service) prepareForCreate(ctx context.Context, acc *Account) error {
	acc.Username = strings.TrimSpace(acc.Username)
	acc.Email = strings.TrimSpace(acc.Email)
	if acc.Role == "" {
		acc.Role = DefaultRole
	}

	if acc.Password == "" || isBcryptHash(acc.Password) {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), s.bcryptCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		return apperror.NewValidation("password cannot be hashed").
			WithDetail("field", "password").
			WithCause(err)
	}
	acc.Password = string(hash)
	return nil
}

// CheckPassword reports whether plain matches the stored hash of acc.
func (s *Service) CheckPassword(acc *Account, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(plain)) == nil
}

func isBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
