package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/core/id"
	"shopadmin/internal/core/types"
	"shopadmin/internal/domain"
	"shopadmin/internal/domain/catalogs/product"
)

func TestDiff(t *testing.T) {
	oldState := map[string]any{"name": "Mouse", "stock": int64(100), "category": "Accessories"}
	newState := map[string]any{"name": "Mouse", "stock": int64(95), "price": 29.99}

	changes := Diff(oldState, newState)

	assert.Equal(t, map[string]Change{
		"stock":    {Old: int64(100), New: int64(95)},
		"price":    {Old: nil, New: 29.99},
		"category": {Old: "Accessories", New: nil},
	}, changes)
}

func TestDiff_CreateAndDelete(t *testing.T) {
	state := map[string]any{"status": "pending"}

	assert.Equal(t, map[string]Change{"status": {New: "pending"}}, Diff(nil, state))
	assert.Equal(t, map[string]Change{"status": {Old: "pending"}}, Diff(state, nil))
	assert.Empty(t, Diff(state, state))
}

type stubJournal struct {
	states []map[string]any
}

func (j *stubJournal) Record(_ context.Context, _ string, _ id.ID, _ Action, state map[string]any) error {
	j.states = append(j.states, state)
	return nil
}

func (j *stubJournal) History(context.Context, string, id.ID, int) ([]Entry, error) {
	return nil, nil
}

func TestTrack_KeepsMoneyExact(t *testing.T) {
	hooks := domain.NewHookRegistry[*product.Product]()
	journal := &stubJournal{}
	Track(hooks, journal, "product")

	p := product.NewProduct("Mouse", types.MustMoney("29.99"), 10, "Accessories")
	p.ID = 1
	require.NoError(t, hooks.Run(context.Background(), domain.AfterCreate, p))

	require.Len(t, journal.states, 1)
	assert.Equal(t, "29.99", journal.states[0]["price"])
	assert.Equal(t, id.ID(1), journal.states[0]["id"])
}
