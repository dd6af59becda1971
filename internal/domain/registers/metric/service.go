package metric

import (
	"context"
	"strings"

	"shopadmin/internal/domain"
)

// Service records and reads metric samples.
type Service struct {
	*domain.RecordService[*Metric]
}

// NewService creates a new metric service.
func NewService(repo Repository) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Metric]{
		Repo:       repo,
		EntityName: "metric",
	})

	base.Hooks().OnBeforeCreate(func(ctx context.Context, m *Metric) error {
		m.Name = strings.TrimSpace(m.Name)
		m.Period = strings.TrimSpace(m.Period)
		return nil
	})

	return &Service{RecordService: base}
}
