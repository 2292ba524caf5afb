// Package bucket persists an account's bucket sequence. Rows are keyed
// (account, idx) and are append-only: deactivation flips is_active, rows
// are never deleted, so indexes stay stable.
package bucket

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/vault-server/internal/vault"
)

// IBucketTable defines read access to bucket storage. The abstraction
// allows swapping the implementation without changing callers.
type IBucketTable interface {
	ListByAccount(ctx context.Context, account string) (vault.BucketSet, error)
	FindByIndex(ctx context.Context, account string, idx int) (*vault.Bucket, error)
}

const selectColumns = `idx, name, color, target_bps, balance, is_active`

// Table provides pooled read access to the buckets table.
type Table struct {
	db *pgxpool.Pool
}

var _ IBucketTable = (*Table)(nil)

func NewTable(db *pgxpool.Pool) *Table {
	return &Table{db: db}
}

func (t *Table) ListByAccount(ctx context.Context, account string) (vault.BucketSet, error) {
	rows, err := t.db.Query(ctx,
		`SELECT `+selectColumns+` FROM buckets WHERE account = $1 ORDER BY idx`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBuckets(rows)
}

func (t *Table) FindByIndex(ctx context.Context, account string, idx int) (*vault.Bucket, error) {
	row := t.db.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM buckets WHERE account = $1 AND idx = $2`, account, idx)

	var b vault.Bucket
	err := row.Scan(&b.Index, &b.Name, &b.Color, &b.TargetBps, &b.Balance, &b.IsActive)
	if err == pgx.ErrNoRows {
		return nil, vault.ErrBucketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Writer provides transactional access for mutating actions.
type Writer struct {
	tx pgx.Tx
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{tx: tx}
}

// ListForUpdate loads and row-locks the account's full bucket sequence.
func (w *Writer) ListForUpdate(ctx context.Context, account string) (vault.BucketSet, error) {
	rows, err := w.tx.Query(ctx,
		`SELECT `+selectColumns+` FROM buckets WHERE account = $1 ORDER BY idx FOR UPDATE`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBuckets(rows)
}

// SaveAll upserts every bucket in the set. Deposit may have appended the
// default buckets, so inserts and updates are handled uniformly.
func (w *Writer) SaveAll(ctx context.Context, account string, set vault.BucketSet) error {
	for _, b := range set {
		if err := w.Save(ctx, account, b); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Save(ctx context.Context, account string, b vault.Bucket) error {
	_, err := w.tx.Exec(ctx, `
		INSERT INTO buckets (account, idx, name, color, target_bps, balance, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account, idx) DO UPDATE
		SET name = EXCLUDED.name,
		    color = EXCLUDED.color,
		    target_bps = EXCLUDED.target_bps,
		    balance = EXCLUDED.balance,
		    is_active = EXCLUDED.is_active`,
		account, b.Index, b.Name, b.Color, b.TargetBps, b.Balance, b.IsActive)
	return err
}

func scanBuckets(rows pgx.Rows) (vault.BucketSet, error) {
	var set vault.BucketSet
	for rows.Next() {
		var b vault.Bucket
		if err := rows.Scan(&b.Index, &b.Name, &b.Color, &b.TargetBps, &b.Balance, &b.IsActive); err != nil {
			return nil, err
		}
		set = append(set, b)
	}
	return set, rows.Err()
}
