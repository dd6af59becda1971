// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
)

// --- Filter ---

// ListFilter contains filtering options for list operations.
// The store itself never filters; services apply the filter to the full list.
type ListFilter struct {
	// Expression is a CEL predicate over the record fields (see package filter)
	Expression string
}

// --- Repository Interfaces ---

// RecordRepository defines the operations every collection supports.
type RecordRepository[T entity.Entity] interface {
	// Create assigns ID and CreatedAt to entity and stores a copy
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID; missing ids yield a NOT_FOUND AppError
	GetByID(ctx context.Context, id id.ID) (T, error)

	// List returns every record in id order
	List(ctx context.Context) ([]T, error)
}

// Patch is a partial record: only the fields it sets are overlaid on the stored record.
type Patch[T any] interface {
	ApplyTo(entity T)
	IsEmpty() bool
}

// MutableRepository adds update and delete to collections that support them.
type MutableRepository[T entity.Entity, P Patch[T]] interface {
	RecordRepository[T]

	// Update overlays patch on the stored record and returns the merged record
	Update(ctx context.Context, id id.ID, patch P) (T, error)

	// Delete removes the record and reports whether anything was removed
	Delete(ctx context.Context, id id.ID) (bool, error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnAfterCreate registers a hook to run after create.
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T]) {
	r.On(AfterCreate, hook)
}

// OnAfterUpdate registers a hook to run after update.
func (r *HookRegistry[T]) OnAfterUpdate(hook Hook[T]) {
	r.On(AfterUpdate, hook)
}

// OnBeforeDelete registers a hook to run before delete.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) {
	r.On(BeforeDelete, hook)
}

// OnAfterDelete registers a hook to run after delete.
func (r *HookRegistry[T]) OnAfterDelete(hook Hook[T]) {
	r.On(AfterDelete, hook)
}
