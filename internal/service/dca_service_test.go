package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/exchange"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/storage/strategy"
	"github.com/autovault/vault-server/internal/vault"
)

func newTestDCAService(t *testing.T) (*DCAService, *mockStrategyTable, *mockKeeperTable, *mockProcessor) {
	t.Helper()
	strategies := &mockStrategyTable{}
	keepers := &mockKeeperTable{}
	processor := &mockProcessor{}
	store := &storage.Storage{Strategies: strategies, Keepers: keepers}
	svc := NewDCAService(store, processor, exchange.Stub{}, "owner")
	svc.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return svc, strategies, keepers, processor
}

func TestListStrategies_ComputesDueness(t *testing.T) {
	svc, strategies, _, _ := newTestDCAService(t)

	strategies.On("ListByAccount", mock.Anything, "user1").Return([]vault.Strategy{
		{Index: 0, TokenOut: "wbtc", AmountPerInterval: 100, IntervalSeconds: 3600,
			LastExecution: 1_700_000_000 - 3600, IsActive: true},
		{Index: 1, TokenOut: "weth", AmountPerInterval: 50, IntervalSeconds: 86400,
			LastExecution: 1_700_000_000 - 60, IsActive: true},
	}, nil)

	list, err := svc.ListStrategies(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, list, 2)

	assert.True(t, list[0].Due, "full interval elapsed")
	assert.Equal(t, int64(1_700_000_000), list[0].NextExecution)

	assert.False(t, list[1].Due)
	assert.Equal(t, int64(1_700_000_000-60+86400), list[1].NextExecution)
}

func TestGetStrategy_NotFound(t *testing.T) {
	svc, strategies, _, _ := newTestDCAService(t)

	strategies.On("FindByIndex", mock.Anything, "user1", 7).Return(nil, vault.ErrStrategyNotFound)

	_, err := svc.GetStrategy(context.Background(), "user1", 7)

	assert.ErrorIs(t, err, vault.ErrStrategyNotFound)
}

func TestAllocatedFunds(t *testing.T) {
	svc, strategies, _, _ := newTestDCAService(t)

	strategies.On("AllocatedFunds", mock.Anything, "user1").Return(int64(5000), nil)

	balance, err := svc.AllocatedFunds(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestCreateStrategy_ReturnsIndex(t *testing.T) {
	svc, _, _, processor := newTestDCAService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateDCAStrategy)
		return ok && create.Account == "user1" && create.TokenOut == "wbtc" &&
			create.AmountPerInterval == int64(100) && create.IntervalSeconds == int64(3600) &&
			create.SlippageBps == int64(100)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateDCAStrategy).CreatedIndex = 1
	}).Return(nil)

	idx, err := svc.CreateStrategy(context.Background(), "user1", "wbtc", 100, 3600, 100)

	assert.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestCreateStrategy_IntervalTooShort(t *testing.T) {
	svc, _, _, processor := newTestDCAService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(vault.ErrInvalidInterval)

	_, err := svc.CreateStrategy(context.Background(), "user1", "wbtc", 100, 60, 100)

	assert.ErrorIs(t, err, vault.ErrInvalidInterval)
}

func TestExecute_ReturnsAmounts(t *testing.T) {
	svc, _, _, processor := newTestDCAService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		exec, ok := a.(*actions.ExecuteDCA)
		return ok && exec.Caller == "keeper1" && exec.Account == "user1" &&
			exec.StrategyID == 0 && exec.Exchange != nil && exec.Now != nil
	})).Run(func(args mock.Arguments) {
		exec := args.Get(1).(*actions.ExecuteDCA)
		exec.AmountIn = 100
		exec.AmountOut = 95
	}).Return(nil)

	result, err := svc.Execute(context.Background(), "keeper1", "user1", 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), result.AmountIn)
	assert.Equal(t, int64(95), result.AmountOut)
}

func TestExecute_UnauthorizedKeeper(t *testing.T) {
	svc, _, _, processor := newTestDCAService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(vault.ErrUnauthorizedKeeper)

	_, err := svc.Execute(context.Background(), "stranger", "user1", 0)

	assert.ErrorIs(t, err, vault.ErrUnauthorizedKeeper)
}

func TestListDue(t *testing.T) {
	svc, strategies, _, _ := newTestDCAService(t)

	strategies.On("ListDue", mock.Anything, int64(1_700_000_000)).Return([]strategy.DueStrategy{
		{Account: "user1", StrategyID: 0},
		{Account: "user2", StrategyID: 3},
	}, nil)

	due, err := svc.ListDue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []DueStrategy{
		{Account: "user1", StrategyID: 0},
		{Account: "user2", StrategyID: 3},
	}, due)
}

func TestSetKeeper_PassesConfiguredOwner(t *testing.T) {
	svc, _, _, processor := newTestDCAService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		set, ok := a.(*actions.SetKeeper)
		return ok && set.Caller == "owner" && set.Owner == "owner" &&
			set.Keeper == "keeper1" && set.Authorized
	})).Return(nil)

	err := svc.SetKeeper(context.Background(), "owner", "keeper1", true)

	assert.NoError(t, err)
	processor.AssertExpectations(t)
}

func TestQuote_StubFillsOneToOne(t *testing.T) {
	svc, _, _, _ := newTestDCAService(t)

	amountOut, err := svc.Quote(context.Background(), "wbtc", 100)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), amountOut)
}

func TestIsKeeper(t *testing.T) {
	svc, _, keepers, _ := newTestDCAService(t)

	keepers.On("IsAuthorized", mock.Anything, "keeper1").Return(true, nil)

	authorized, err := svc.IsKeeper(context.Background(), "keeper1")

	assert.NoError(t, err)
	assert.True(t, authorized)
}
