package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage/event"
	"github.com/autovault/vault-server/internal/storage/strategy"
	"github.com/autovault/vault-server/internal/vault"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockBucketTable struct {
	mock.Mock
}

func (m *mockBucketTable) ListByAccount(ctx context.Context, account string) (vault.BucketSet, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vault.BucketSet), args.Error(1)
}

func (m *mockBucketTable) FindByIndex(ctx context.Context, account string, idx int) (*vault.Bucket, error) {
	args := m.Called(ctx, account, idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vault.Bucket), args.Error(1)
}

type mockGoalTable struct {
	mock.Mock
}

func (m *mockGoalTable) ListByAccount(ctx context.Context, account string) ([]vault.Goal, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vault.Goal), args.Error(1)
}

func (m *mockGoalTable) FindByIndex(ctx context.Context, account string, idx int) (*vault.Goal, error) {
	args := m.Called(ctx, account, idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vault.Goal), args.Error(1)
}

type mockStrategyTable struct {
	mock.Mock
}

func (m *mockStrategyTable) ListByAccount(ctx context.Context, account string) ([]vault.Strategy, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vault.Strategy), args.Error(1)
}

func (m *mockStrategyTable) FindByIndex(ctx context.Context, account string, idx int) (*vault.Strategy, error) {
	args := m.Called(ctx, account, idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vault.Strategy), args.Error(1)
}

func (m *mockStrategyTable) ListDue(ctx context.Context, now int64) ([]strategy.DueStrategy, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]strategy.DueStrategy), args.Error(1)
}

func (m *mockStrategyTable) AllocatedFunds(ctx context.Context, account string) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

type mockKeeperTable struct {
	mock.Mock
}

func (m *mockKeeperTable) IsAuthorized(ctx context.Context, keeper string) (bool, error) {
	args := m.Called(ctx, keeper)
	return args.Bool(0), args.Error(1)
}

type mockEventTable struct {
	mock.Mock
}

func (m *mockEventTable) ListByAccount(ctx context.Context, account string, filter *event.Filter) ([]event.Record, error) {
	args := m.Called(ctx, account, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Record), args.Error(1)
}
