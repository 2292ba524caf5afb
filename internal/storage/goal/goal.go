// Package goal persists locked savings goals, keyed (account, idx).
package goal

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/vault-server/internal/vault"
)

// IGoalTable defines read access to goal storage.
type IGoalTable interface {
	ListByAccount(ctx context.Context, account string) ([]vault.Goal, error)
	FindByIndex(ctx context.Context, account string, idx int) (*vault.Goal, error)
}

const selectColumns = `idx, name, target_amount, deadline, current_amount,
	last_milestone, is_completed, is_withdrawn`

// Table provides pooled read access to the goals table.
type Table struct {
	db *pgxpool.Pool
}

var _ IGoalTable = (*Table)(nil)

func NewTable(db *pgxpool.Pool) *Table {
	return &Table{db: db}
}

func (t *Table) ListByAccount(ctx context.Context, account string) ([]vault.Goal, error) {
	rows, err := t.db.Query(ctx,
		`SELECT `+selectColumns+` FROM goals WHERE account = $1 ORDER BY idx`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []vault.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (t *Table) FindByIndex(ctx context.Context, account string, idx int) (*vault.Goal, error) {
	row := t.db.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM goals WHERE account = $1 AND idx = $2`, account, idx)
	return scanGoalRow(row)
}

// Writer provides transactional access for mutating actions.
type Writer struct {
	tx pgx.Tx
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) FindByIndexForUpdate(ctx context.Context, account string, idx int) (*vault.Goal, error) {
	row := w.tx.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM goals WHERE account = $1 AND idx = $2 FOR UPDATE`,
		account, idx)
	return scanGoalRow(row)
}

// Count returns the number of goals ever created for the account, which is
// also the next free index.
func (w *Writer) Count(ctx context.Context, account string) (int, error) {
	var count int
	err := w.tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM goals WHERE account = $1`, account).Scan(&count)
	return count, err
}

func (w *Writer) Save(ctx context.Context, account string, g vault.Goal) error {
	_, err := w.tx.Exec(ctx, `
		INSERT INTO goals (account, idx, name, target_amount, deadline,
			current_amount, last_milestone, is_completed, is_withdrawn)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (account, idx) DO UPDATE
		SET current_amount = EXCLUDED.current_amount,
		    last_milestone = EXCLUDED.last_milestone,
		    is_completed = EXCLUDED.is_completed,
		    is_withdrawn = EXCLUDED.is_withdrawn`,
		account, g.Index, g.Name, g.TargetAmount, g.Deadline,
		g.CurrentAmount, g.LastMilestone, g.IsCompleted, g.IsWithdrawn)
	return err
}

func scanGoal(rows pgx.Rows) (vault.Goal, error) {
	var g vault.Goal
	err := rows.Scan(&g.Index, &g.Name, &g.TargetAmount, &g.Deadline,
		&g.CurrentAmount, &g.LastMilestone, &g.IsCompleted, &g.IsWithdrawn)
	return g, err
}

func scanGoalRow(row pgx.Row) (*vault.Goal, error) {
	var g vault.Goal
	err := row.Scan(&g.Index, &g.Name, &g.TargetAmount, &g.Deadline,
		&g.CurrentAmount, &g.LastMilestone, &g.IsCompleted, &g.IsWithdrawn)
	if err == pgx.ErrNoRows {
		return nil, vault.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
