// Package keeper persists the keeper authorization set: a mapping of
// keeper account to an authorized flag, mutated only by the owner.
package keeper

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IKeeperTable defines read access to keeper authorizations.
type IKeeperTable interface {
	IsAuthorized(ctx context.Context, keeper string) (bool, error)
}

// Table provides pooled read access.
type Table struct {
	db *pgxpool.Pool
}

var _ IKeeperTable = (*Table)(nil)

func NewTable(db *pgxpool.Pool) *Table {
	return &Table{db: db}
}

func (t *Table) IsAuthorized(ctx context.Context, keeper string) (bool, error) {
	var authorized bool
	err := t.db.QueryRow(ctx,
		`SELECT is_authorized FROM keepers WHERE keeper = $1`, keeper).Scan(&authorized)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return authorized, err
}

// Writer provides transactional access.
type Writer struct {
	tx pgx.Tx
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) IsAuthorized(ctx context.Context, keeper string) (bool, error) {
	var authorized bool
	err := w.tx.QueryRow(ctx,
		`SELECT is_authorized FROM keepers WHERE keeper = $1`, keeper).Scan(&authorized)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return authorized, err
}

func (w *Writer) Set(ctx context.Context, keeper string, authorized bool) error {
	_, err := w.tx.Exec(ctx, `
		INSERT INTO keepers (keeper, is_authorized) VALUES ($1, $2)
		ON CONFLICT (keeper) DO UPDATE SET is_authorized = EXCLUDED.is_authorized`,
		keeper, authorized)
	return err
}
