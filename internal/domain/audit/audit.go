// Package audit records the change history of stored records.
package audit

import (
	"context"
	"fmt"
	"time"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
	"shopadmin/internal/domain"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change is the before and after value of one field.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Entry is a single audit log entry.
type Entry struct {
	ID        id.ID             `json:"id"`
	Entity    string            `json:"entity"`
	EntityID  id.ID             `json:"entityId"`
	Action    Action            `json:"action"`
	Changes   map[string]Change `json:"changes"`
	RequestID string            `json:"requestId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Journal stores audit entries.
type Journal interface {
	// Record appends an entry for the record's new state; state is nil for deletes.
	// The journal diffs state against the last state it saw for the record and drops updates
	// that change nothing.
	Record(ctx context.Context, entityName string, entityID id.ID, action Action, state map[string]any) error

	// History returns the entries for one record, newest first. limit <= 0 returns all.
	History(ctx context.Context, entityName string, entityID id.ID, limit int) ([]Entry, error)
}

// Snapshotter is implemented by records whose audit state differs from their filter fields,
// for example to keep decimals exact.
type Snapshotter interface {
	AuditFields() map[string]any
}

func stateOf[T entity.Entity](e T) map[string]any {
	if s, ok := any(e).(Snapshotter); ok {
		return s.AuditFields()
	}
	return e.FilterFields()
}

// Track registers after-create, after-update and after-delete hooks writing to journal.
func Track[T entity.Entity](hooks *domain.HookRegistry[T], journal Journal, entityName string) {
	record := func(action Action) domain.Hook[T] {
		return func(ctx context.Context, e T) error {
			fields := stateOf(e)
			recID, _ := fields["id"].(id.ID)

			var state map[string]any
			if action != ActionDelete {
				state = fields
			}
			return journal.Record(ctx, entityName, recID, action, state)
		}
	}

	hooks.OnAfterCreate(record(ActionCreate))
	hooks.OnAfterUpdate(record(ActionUpdate))
	hooks.OnAfterDelete(record(ActionDelete))
}

// Diff calculates the difference between old and new entity states.
// A nil state stands for "absent".
func Diff(oldState, newState map[string]any) map[string]Change {
	changes := make(map[string]Change)

	// Find changed and new fields
	for key, newVal := range newState {
		oldVal, exists := oldState[key]
		if !exists {
			changes[key] = Change{Old: nil, New: newVal}
		} else if !equal(oldVal, newVal) {
			changes[key] = Change{Old: oldVal, New: newVal}
		}
	}

	// Find deleted fields
	for key, oldVal := range oldState {
		if _, exists := newState[key]; !exists {
			changes[key] = Change{Old: oldVal, New: nil}
		}
	}

	return changes
}

// equal compares two field values by their printed form.
func equal(a, b any) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}
