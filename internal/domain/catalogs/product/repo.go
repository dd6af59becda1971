package product

import (
	"shopadmin/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.MutableRepository[*Product, Patch]
}
