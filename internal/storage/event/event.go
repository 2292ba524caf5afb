// Package event persists the domain-event journal. Rows are written in
// the same transaction as the state change they describe, so the journal
// is always consistent with the balances it explains.
package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/vault-server/internal/events"
)

// Record is one persisted domain event.
type Record struct {
	ID        uuid.UUID
	Account   string
	Type      string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// Filter pages through an account's event history, newest first.
type Filter struct {
	Limit  int
	Offset int
}

// IEventTable defines read access to the event journal.
type IEventTable interface {
	ListByAccount(ctx context.Context, account string, filter *Filter) ([]Record, error)
}

// Table provides pooled read access.
type Table struct {
	db *pgxpool.Pool
}

var _ IEventTable = (*Table)(nil)

func NewTable(db *pgxpool.Pool) *Table {
	return &Table{db: db}
}

func (t *Table) ListByAccount(ctx context.Context, account string, filter *Filter) ([]Record, error) {
	limit := 20
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	// Fetch one extra row so callers can tell whether a next page exists.
	rows, err := t.db.Query(ctx, `
		SELECT id, account, event_type, payload, created_at
		FROM events
		WHERE account = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		account, limit+1, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Account, &r.Type, &r.Payload, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Writer provides transactional access.
type Writer struct {
	tx pgx.Tx
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) Insert(ctx context.Context, e events.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return err
	}
	_, err = w.tx.Exec(ctx, `
		INSERT INTO events (id, account, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Account, e.Type, payload, e.CreatedAt)
	return err
}
