package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/autovault/vault-server/internal/storage/bucket"
	"github.com/autovault/vault-server/internal/storage/event"
	"github.com/autovault/vault-server/internal/storage/goal"
	"github.com/autovault/vault-server/internal/storage/keeper"
	"github.com/autovault/vault-server/internal/storage/strategy"
)

// Writer scopes every table writer to one transaction, so an action's
// state changes and its event row commit or roll back together.
type Writer struct {
	tx         pgx.Tx
	Buckets    *bucket.Writer
	Goals      *goal.Writer
	Strategies *strategy.Writer
	Keepers    *keeper.Writer
	Events     *event.Writer
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{
		tx:         tx,
		Buckets:    bucket.NewWriter(tx),
		Goals:      goal.NewWriter(tx),
		Strategies: strategy.NewWriter(tx),
		Keepers:    keeper.NewWriter(tx),
		Events:     event.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
