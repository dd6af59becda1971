// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"

	"shopadmin/internal/core/apperror"
	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
	"shopadmin/internal/domain/filter"
	"shopadmin/pkg/logger"
)

// RecordService provides business logic shared by all collections:
// validation, lifecycle hooks, not-found normalisation and list filtering.
type RecordService[T entity.Entity] struct {
	repo  RecordRepository[T]
	hooks *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// RecordServiceConfig configures the record service.
type RecordServiceConfig[T entity.Entity] struct {
	Repo       RecordRepository[T]
	EntityName string
}

// NewRecordService creates a new record service.
func NewRecordService[T entity.Entity](cfg RecordServiceConfig[T]) *RecordService[T] {
	return &RecordService[T]{
		repo:       cfg.Repo,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *RecordService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the name used in errors and logs.
func (s *RecordService[T]) EntityName() string {
	return s.entityName
}

func (s *RecordService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *RecordService[T]) normalizeGetErr(err error, entityID id.ID) error {
	if err == nil {
		return nil
	}
	// Preserve existing AppError, but ensure not-found is mapped to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, entityID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", entityID)
}

// Create validates entity and inserts it. On success entity carries its assigned ID and CreatedAt.
func (s *RecordService[T]) Create(ctx context.Context, entity T) error {
	// 1. Run before-create hooks (defaults, snapshots, hashing)
	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return err
	}

	// 2. Validate entity invariants
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	// 3. Insert
	if err := s.repo.Create(ctx, entity); err != nil {
		return fmt.Errorf("create %s: %w", s.entityName, err)
	}

	// 4. Run after-create hooks; the record is already stored
	if err := s.hooks.Run(ctx, AfterCreate, entity); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// GetByID retrieves entity by ID.
func (s *RecordService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return entity, s.normalizeGetErr(err, entityID)
	}
	return entity, nil
}

// List retrieves all entities matching the filter, in id order.
func (s *RecordService[T]) List(ctx context.Context, f ListFilter) ([]T, error) {
	expr, err := filter.Compile(f.Expression)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entityName, err)
	}

	return filter.Apply(expr, items, func(e T) map[string]any {
		return e.FilterFields()
	})
}

// MutableRecordService extends RecordService with partial update and delete.
type MutableRecordService[T entity.Entity, P Patch[T]] struct {
	*RecordService[T]
	repo MutableRepository[T, P]
}

// NewMutableRecordService creates a record service for a collection supporting update and delete.
func NewMutableRecordService[T entity.Entity, P Patch[T]](repo MutableRepository[T, P], entityName string) *MutableRecordService[T, P] {
	return &MutableRecordService[T, P]{
		RecordService: NewRecordService(RecordServiceConfig[T]{
			Repo:       repo,
			EntityName: entityName,
		}),
		repo: repo,
	}
}

// Update overlays patch on the stored record after validating the merged result.
// Fields the patch leaves unset are unchanged. An empty patch returns the stored record
// without running hooks.
func (s *MutableRecordService[T, P]) Update(ctx context.Context, entityID id.ID, patch P) (T, error) {
	// 1. Load a copy and preview the merge
	candidate, err := s.GetByID(ctx, entityID)
	if err != nil || patch.IsEmpty() {
		return candidate, err
	}
	patch.ApplyTo(candidate)

	// 2. Validate the merged record before touching the store
	if err := candidate.Validate(ctx); err != nil {
		var zero T
		return zero, s.normalizeValidationErr(err)
	}

	// 3. Merge in the store
	updated, err := s.repo.Update(ctx, entityID, patch)
	if err != nil {
		return updated, s.normalizeGetErr(err, entityID)
	}

	if err := s.hooks.Run(ctx, AfterUpdate, updated); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "id", entityID, "error", err)
	}

	return updated, nil
}

// Delete removes the record. Deleting an absent record is NOT_FOUND.
func (s *MutableRecordService[T, P]) Delete(ctx context.Context, entityID id.ID) error {
	// 1. Get entity first (for hooks)
	existing, err := s.GetByID(ctx, entityID)
	if err != nil {
		return err
	}

	// 2. Run before-delete hooks
	if err := s.hooks.Run(ctx, BeforeDelete, existing); err != nil {
		return err
	}

	// 3. Remove
	removed, err := s.repo.Delete(ctx, entityID)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.entityName, err)
	}
	if !removed {
		return apperror.NewNotFound(s.entityName, entityID)
	}

	// 4. Run after-delete hooks
	if err := s.hooks.Run(ctx, AfterDelete, existing); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "id", entityID, "error", err)
	}

	return nil
}
