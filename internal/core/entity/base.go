// Package entity provides base types for all domain entities.
package entity

import (
	"context"
	"time"

	"shopadmin/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without store access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Filterable exposes an entity as a flat field map for list filter expressions.
// Keys are the JSON field names.
type Filterable interface {
	FilterFields() map[string]any
}

// Entity is the constraint shared by all stored records.
type Entity interface {
	Validatable
	Filterable
}

// Record contains the fields assigned by the store on insert.
// Every collection record embeds it.
type Record struct {
	// ID is the per-collection identifier, never reused
	ID id.ID `json:"id"`

	// CreatedAt is set once, on insert
	CreatedAt time.Time `json:"createdAt"`
}

// Base returns the embedded Record so the store can stamp identity fields.
func (r *Record) Base() *Record {
	return r
}

// Stamp assigns identity fields. Called by the store only.
func (r *Record) Stamp(recordID id.ID, createdAt time.Time) {
	r.ID = recordID
	r.CreatedAt = createdAt
}

// baseFields returns identity fields for filter maps.
func (r *Record) baseFields() map[string]any {
	return map[string]any{
		"id":        r.ID,
		"createdAt": r.CreatedAt,
	}
}

// Fields returns identity fields merged with the given entity fields.
func (r *Record) Fields(extra map[string]any) map[string]any {
	fields := r.baseFields()
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}
