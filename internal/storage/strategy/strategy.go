// Package strategy persists DCA strategies and the per-account
// allocated-funds pool they draw from.
package strategy

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/vault-server/internal/vault"
)

// DueStrategy identifies one strategy whose execution window is open.
type DueStrategy struct {
	Account    string
	StrategyID int
}

// IStrategyTable defines read access to strategy and pool storage.
type IStrategyTable interface {
	ListByAccount(ctx context.Context, account string) ([]vault.Strategy, error)
	FindByIndex(ctx context.Context, account string, idx int) (*vault.Strategy, error)
	ListDue(ctx context.Context, now int64) ([]DueStrategy, error)
	AllocatedFunds(ctx context.Context, account string) (int64, error)
}

const selectColumns = `idx, token_out, amount_per_interval, interval_seconds,
	last_execution, total_invested, total_received, slippage_bps,
	is_active, is_cancelled`

// Table provides pooled read access.
type Table struct {
	db *pgxpool.Pool
}

var _ IStrategyTable = (*Table)(nil)

func NewTable(db *pgxpool.Pool) *Table {
	return &Table{db: db}
}

func (t *Table) ListByAccount(ctx context.Context, account string) ([]vault.Strategy, error) {
	rows, err := t.db.Query(ctx,
		`SELECT `+selectColumns+` FROM strategies WHERE account = $1 ORDER BY idx`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var strategies []vault.Strategy
	for rows.Next() {
		s, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, rows.Err()
}

func (t *Table) FindByIndex(ctx context.Context, account string, idx int) (*vault.Strategy, error) {
	row := t.db.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM strategies WHERE account = $1 AND idx = $2`, account, idx)
	return scanStrategyRow(row)
}

// ListDue returns every active strategy whose interval has elapsed (or
// that has never executed). The keeper daemon polls this.
func (t *Table) ListDue(ctx context.Context, now int64) ([]DueStrategy, error) {
	rows, err := t.db.Query(ctx, `
		SELECT account, idx FROM strategies
		WHERE is_active
		  AND (last_execution = 0 OR last_execution + interval_seconds <= $1)
		ORDER BY account, idx`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []DueStrategy
	for rows.Next() {
		var d DueStrategy
		if err := rows.Scan(&d.Account, &d.StrategyID); err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	return due, rows.Err()
}

func (t *Table) AllocatedFunds(ctx context.Context, account string) (int64, error) {
	var balance int64
	err := t.db.QueryRow(ctx,
		`SELECT balance FROM dca_pools WHERE account = $1`, account).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return balance, err
}

// Writer provides transactional access for mutating actions.
type Writer struct {
	tx pgx.Tx
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) FindByIndexForUpdate(ctx context.Context, account string, idx int) (*vault.Strategy, error) {
	row := w.tx.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM strategies WHERE account = $1 AND idx = $2 FOR UPDATE`,
		account, idx)
	return scanStrategyRow(row)
}

// Count returns the number of strategies ever created for the account,
// which is also the next free index.
func (w *Writer) Count(ctx context.Context, account string) (int, error) {
	var count int
	err := w.tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM strategies WHERE account = $1`, account).Scan(&count)
	return count, err
}

func (w *Writer) Save(ctx context.Context, account string, s vault.Strategy) error {
	_, err := w.tx.Exec(ctx, `
		INSERT INTO strategies (account, idx, token_out, amount_per_interval,
			interval_seconds, last_execution, total_invested, total_received,
			slippage_bps, is_active, is_cancelled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (account, idx) DO UPDATE
		SET last_execution = EXCLUDED.last_execution,
		    total_invested = EXCLUDED.total_invested,
		    total_received = EXCLUDED.total_received,
		    is_active = EXCLUDED.is_active,
		    is_cancelled = EXCLUDED.is_cancelled`,
		account, s.Index, s.TokenOut, s.AmountPerInterval, s.IntervalSeconds,
		s.LastExecution, s.TotalInvested, s.TotalReceived, s.SlippageBps,
		s.IsActive, s.IsCancelled)
	return err
}

// PoolForUpdate loads and row-locks the account's allocated-funds pool.
// Accounts that never allocated get a zero pool.
func (w *Writer) PoolForUpdate(ctx context.Context, account string) (vault.Pool, error) {
	var balance int64
	err := w.tx.QueryRow(ctx,
		`SELECT balance FROM dca_pools WHERE account = $1 FOR UPDATE`, account).Scan(&balance)
	if err == pgx.ErrNoRows {
		return vault.Pool{Account: account}, nil
	}
	if err != nil {
		return vault.Pool{}, err
	}
	return vault.Pool{Account: account, Balance: balance}, nil
}

func (w *Writer) SavePool(ctx context.Context, p vault.Pool) error {
	_, err := w.tx.Exec(ctx, `
		INSERT INTO dca_pools (account, balance) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET balance = EXCLUDED.balance`,
		p.Account, p.Balance)
	return err
}

func scanStrategy(rows pgx.Rows) (vault.Strategy, error) {
	var s vault.Strategy
	err := rows.Scan(&s.Index, &s.TokenOut, &s.AmountPerInterval, &s.IntervalSeconds,
		&s.LastExecution, &s.TotalInvested, &s.TotalReceived, &s.SlippageBps,
		&s.IsActive, &s.IsCancelled)
	return s, err
}

func scanStrategyRow(row pgx.Row) (*vault.Strategy, error) {
	var s vault.Strategy
	err := row.Scan(&s.Index, &s.TokenOut, &s.AmountPerInterval, &s.IntervalSeconds,
		&s.LastExecution, &s.TotalInvested, &s.TotalReceived, &s.SlippageBps,
		&s.IsActive, &s.IsCancelled)
	if err == pgx.ErrNoRows {
		return nil, vault.ErrStrategyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
