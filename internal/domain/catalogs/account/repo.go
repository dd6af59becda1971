package account

import (
	"shopadmin/internal/domain"
)

// Repository defines the interface for Account persistence.
// Accounts are never updated or deleted through the store.
type Repository interface {
	domain.RecordRepository[*Account]
}
