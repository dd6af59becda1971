package reports

import (
	"context"
)

// Repository defines data access for report generation.
// The store computes dashboard totals in one consistent read.
type Repository interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
}
