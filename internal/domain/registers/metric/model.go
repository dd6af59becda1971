// Package metric provides the metric sample register.
// Samples are append-only: once recorded they are never changed or removed.
package metric

import (
	"context"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/types"
	"shopadmin/internal/core/validation"
)

// Metric is one observed value of a named measurement for a period.
type Metric struct {
	entity.Record

	Name string `json:"name" validate:"required,max=100"`

	Value types.Money `json:"value"`

	// Period is a free label such as "2026-10" or "Q3"
	Period string `json:"period" validate:"required,max=32"`
}

// NewMetric creates a new Metric sample.
func NewMetric(name string, value types.Money, period string) *Metric {
	return &Metric{
		Name:   name,
		Value:  value,
		Period: period,
	}
}

// Validate implements entity.Validatable interface.
func (m *Metric) Validate(ctx context.Context) error {
	return validation.Struct(m)
}

// FilterFields implements entity.Filterable.
func (m *Metric) FilterFields() map[string]any {
	return m.Record.Fields(map[string]any{
		"name":   m.Name,
		"value":  types.MoneyToFloat(m.Value),
		"period": m.Period,
	})
}

// AuditFields implements audit.Snapshotter with the value kept exact.
func (m *Metric) AuditFields() map[string]any {
	fields := m.FilterFields()
	fields["value"] = m.Value.String()
	return fields
}
