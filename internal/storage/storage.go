package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/vault-server/internal/config"
	"github.com/autovault/vault-server/internal/storage/bucket"
	"github.com/autovault/vault-server/internal/storage/event"
	"github.com/autovault/vault-server/internal/storage/goal"
	"github.com/autovault/vault-server/internal/storage/keeper"
	"github.com/autovault/vault-server/internal/storage/strategy"
)

// Storage bundles the connection pool with read access to every table.
// Mutations go through Write, which opens a transaction-scoped Writer.
type Storage struct {
	DB         *pgxpool.Pool
	Buckets    bucket.IBucketTable
	Goals      goal.IGoalTable
	Strategies strategy.IStrategyTable
	Keepers    keeper.IKeeperTable
	Events     event.IEventTable
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := pgxpool.New(ctx, env.PostgresURL())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:         db,
		Buckets:    bucket.NewTable(db),
		Goals:      goal.NewTable(db),
		Strategies: strategy.NewTable(db),
		Keepers:    keeper.NewTable(db),
		Events:     event.NewTable(db),
	}, nil
}

// Write begins a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() {
	s.DB.Close()
}
