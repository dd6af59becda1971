package memory

import (
	"maps"
	"slices"
	"time"

	"shopadmin/internal/core/entity"
	"shopadmin/internal/core/id"
)

// recordPtr is satisfied by pointers to structs embedding entity.Record.
type recordPtr[V any] interface {
	*V
	Base() *entity.Record
}

// table is one collection: rows keyed by id plus the counter minting the next id.
// It holds values, so everything handed out is a copy. Callers hold the store lock.
type table[V any, P recordPtr[V]] struct {
	name string
	rows map[id.ID]V
	next id.ID
}

func newTable[V any, P recordPtr[V]](name string) *table[V, P] {
	return &table[V, P]{
		name: name,
		rows: make(map[id.ID]V),
		next: id.First,
	}
}

// insert stamps rec with the next id and createdAt, then stores a copy of it.
func (t *table[V, P]) insert(rec P, createdAt time.Time) id.ID {
	recID := t.next
	t.next++

	rec.Base().Stamp(recID, createdAt)
	t.rows[recID] = *rec
	return recID
}

func (t *table[V, P]) get(recID id.ID) (P, bool) {
	v, ok := t.rows[recID]
	if !ok {
		return nil, false
	}
	return P(&v), true
}

// list returns copies of all rows in id order.
func (t *table[V, P]) list() []P {
	out := make([]P, 0, len(t.rows))
	for _, recID := range slices.Sorted(maps.Keys(t.rows)) {
		v := t.rows[recID]
		out = append(out, P(&v))
	}
	return out
}

// update applies fn to a copy of the row and stores the result.
// Identity fields are restored afterwards so fn cannot rewrite them.
func (t *table[V, P]) update(recID id.ID, fn func(P)) (P, bool) {
	v, ok := t.rows[recID]
	if !ok {
		return nil, false
	}

	rec := P(&v)
	identity := *rec.Base()
	fn(rec)
	rec.Base().Stamp(identity.ID, identity.CreatedAt)

	t.rows[recID] = v
	out := v
	return P(&out), true
}

func (t *table[V, P]) remove(recID id.ID) bool {
	if _, ok := t.rows[recID]; !ok {
		return false
	}
	delete(t.rows, recID)
	return true
}

func (t *table[V, P]) len() int {
	return len(t.rows)
}

// taken reports whether a row other than skip has key(row) == value.
func (t *table[V, P]) taken(skip id.ID, value string, key func(P) string) bool {
	for recID, v := range t.rows {
		if recID == skip {
			continue
		}
		if key(P(&v)) == value {
			return true
		}
	}
	return false
}
