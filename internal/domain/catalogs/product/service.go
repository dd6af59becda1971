package product

import (
	"context"
	"strings"

	"shopadmin/internal/domain"
)

// Service provides business logic for the product catalog.
type Service struct {
	*domain.MutableRecordService[*Product, Patch]
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	base := domain.NewMutableRecordService[*Product, Patch](repo, "product")

	svc := &Service{
		MutableRecordService: base,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	return nil
}
