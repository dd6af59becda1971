package order

import (
	"shopadmin/internal/domain"
)

// Repository defines the interface for Order persistence.
type Repository interface {
	domain.MutableRepository[*Order, Patch]
}
