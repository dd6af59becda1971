package order

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shopadmin/internal/domain"
	"shopadmin/internal/domain/documents"
	"shopadmin/pkg/numerator"
)

// CodePrefix prefixes generated order codes (ORD-2026-00001).
const CodePrefix = "ORD"

// Service provides business logic for orders.
type Service struct {
	*domain.MutableRecordService[*Order, Patch]
	names   *documents.NameResolver
	numbers numerator.Generator
}

// NewService creates a new Order service.
// names may be nil, in which case snapshots are kept as supplied.
// numbers may be nil, in which case every order needs an explicit code.
func NewService(repo Repository, names *documents.NameResolver, numbers numerator.Generator) *Service {
	base := domain.NewMutableRecordService[*Order, Patch](repo, "order")

	svc := &Service{
		MutableRecordService: base,
		names:                names,
		numbers:              numbers,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate applies defaults and fills blank name snapshots.
func (s *Service) prepareForCreate(ctx context.Context, o *Order) error {
	o.OrderCode = strings.TrimSpace(o.OrderCode)
	o.Status = strings.TrimSpace(o.Status)
	if o.Status == "" {
		o.Status = DefaultStatus
	}

	// Generate code if empty
	if s.numbers != nil {
		if o.OrderCode == "" {
			code, err := s.numbers.GetNextNumber(ctx, numerator.DefaultConfig(CodePrefix), time.Now())
			if err != nil {
				return fmt.Errorf("generate order code: %w", err)
			}
			o.OrderCode = code
		} else if err := s.reserveCode(ctx, o.OrderCode); err != nil {
			return fmt.Errorf("reserve order code: %w", err)
		}
	}

	if s.names == nil {
		return nil
	}
	if o.CustomerName == "" {
		o.CustomerName = s.names.CustomerName(ctx, o.CustomerID)
	}
	if o.ProductName == "" {
		o.ProductName = s.names.ProductName(ctx, o.ProductID)
	}
	return nil
}

// reserveCode moves the counter past an explicit code in the generated format,
// so later generated codes do not repeat it.
func (s *Service) reserveCode(ctx context.Context, code string) error {
	rest, ok := strings.CutPrefix(code, CodePrefix+"-")
	if !ok {
		return nil
	}
	yearPart, seqPart, ok := strings.Cut(rest, "-")
	if !ok || len(yearPart) != 4 || strings.Contains(seqPart, "-") {
		return nil
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return nil
	}
	num := numerator.ParseNumber(code)
	if num <= 0 {
		return nil
	}

	period := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.numbers.SetNextNumber(ctx, numerator.DefaultConfig(CodePrefix), period, num)
}
