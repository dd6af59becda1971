package metric

import (
	"shopadmin/internal/domain"
)

// Repository defines operations for the metric register.
type Repository interface {
	domain.RecordRepository[*Metric]
}
