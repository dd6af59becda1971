package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	appctx "shopadmin/internal/core/context"
	"shopadmin/internal/core/id"
	"shopadmin/internal/domain/audit"
)

// CompressionAlgo specifies the compression algorithm used.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// DefaultCompressThreshold is the change payload size above which entries are compressed.
const DefaultCompressThreshold = 10 * 1024

// auditRow is a stored entry; changes are kept as JSON, zstd-compressed when large.
type auditRow struct {
	id        id.ID
	entity    string
	entityID  id.ID
	action    audit.Action
	changes   []byte
	algo      CompressionAlgo
	requestID string
	createdAt time.Time
}

type recordKey struct {
	entity string
	id     id.ID
}

// AuditJournal is the in-process audit.Journal.
type AuditJournal struct {
	mu   sync.RWMutex
	rows []auditRow
	next id.ID

	// last state seen per record, for diffs
	last map[recordKey]map[string]any

	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
	now               func() time.Time
}

// NewAuditJournal creates an empty journal.
// compressThreshold <= 0 selects DefaultCompressThreshold.
func NewAuditJournal(compressThreshold int) (*AuditJournal, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	if compressThreshold <= 0 {
		compressThreshold = DefaultCompressThreshold
	}

	return &AuditJournal{
		next:              id.First,
		last:              make(map[recordKey]map[string]any),
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: compressThreshold,
		now:               time.Now,
	}, nil
}

// Record implements audit.Journal.
func (j *AuditJournal) Record(ctx context.Context, entityName string, entityID id.ID, action audit.Action, state map[string]any) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	key := recordKey{entity: entityName, id: entityID}
	changes := audit.Diff(j.last[key], state)
	if action == audit.ActionUpdate && len(changes) == 0 {
		return nil
	}

	payload, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	row := auditRow{
		id:        j.next,
		entity:    entityName,
		entityID:  entityID,
		action:    action,
		changes:   payload,
		algo:      CompressionNone,
		requestID: appctx.GetRequestID(ctx),
		createdAt: j.now().UTC(),
	}

	// Compress large changes
	if len(payload) > j.compressThreshold {
		row.changes = j.encoder.EncodeAll(payload, nil)
		row.algo = CompressionZstd
	}

	j.next++
	j.rows = append(j.rows, row)

	if state == nil {
		delete(j.last, key)
	} else {
		j.last[key] = state
	}
	return nil
}

// History implements audit.Journal.
func (j *AuditJournal) History(ctx context.Context, entityName string, entityID id.ID, limit int) ([]audit.Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	entries := make([]audit.Entry, 0)
	for i := len(j.rows) - 1; i >= 0; i-- {
		row := j.rows[i]
		if row.entity != entityName || row.entityID != entityID {
			continue
		}

		e, err := j.decode(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)

		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

// Len returns the number of stored entries.
func (j *AuditJournal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.rows)
}

func (j *AuditJournal) decode(row auditRow) (audit.Entry, error) {
	payload := row.changes
	if row.algo == CompressionZstd {
		decompressed, err := j.decoder.DecodeAll(row.changes, nil)
		if err != nil {
			return audit.Entry{}, fmt.Errorf("decompress changes: %w", err)
		}
		payload = decompressed
	}

	var changes map[string]audit.Change
	if err := json.Unmarshal(payload, &changes); err != nil {
		return audit.Entry{}, fmt.Errorf("unmarshal changes: %w", err)
	}

	return audit.Entry{
		ID:        row.id,
		Entity:    row.entity,
		EntityID:  row.entityID,
		Action:    row.action,
		Changes:   changes,
		RequestID: row.requestID,
		CreatedAt: row.createdAt,
	}, nil
}

var _ audit.Journal = (*AuditJournal)(nil)
