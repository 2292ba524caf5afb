package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

func newTestBucketService(t *testing.T) (*BucketService, *mockBucketTable, *mockProcessor) {
	t.Helper()
	table := &mockBucketTable{}
	processor := &mockProcessor{}
	store := &storage.Storage{Buckets: table}
	return NewBucketService(store, processor), table, processor
}

func TestGetPortfolio_NewAccountGetsDefaults(t *testing.T) {
	svc, table, _ := newTestBucketService(t)

	table.On("ListByAccount", mock.Anything, "user1").Return(vault.BucketSet{}, nil)

	portfolio, err := svc.GetPortfolio(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, portfolio.Buckets, 4)
	assert.Equal(t, int64(0), portfolio.TotalBalance)
	assert.Equal(t, "Savings", portfolio.Buckets[0].Name)
	assert.Equal(t, int64(4000), portfolio.Buckets[0].TargetBps)
	table.AssertExpectations(t)
}

func TestGetPortfolio_ExistingBuckets(t *testing.T) {
	svc, table, _ := newTestBucketService(t)

	set := vault.BucketSet{
		{Index: 0, Name: "Savings", Color: "#10b981", TargetBps: 6000, Balance: 600, IsActive: true},
		{Index: 1, Name: "Bills", Color: "#3b82f6", TargetBps: 4000, Balance: 400, IsActive: true},
	}
	table.On("ListByAccount", mock.Anything, "user1").Return(set, nil)

	portfolio, err := svc.GetPortfolio(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Len(t, portfolio.Buckets, 2)
	assert.Equal(t, int64(1000), portfolio.TotalBalance)
	assert.Equal(t, Bucket{
		Index: 0, Name: "Savings", Color: "#10b981", TargetBps: 6000, Balance: 600, IsActive: true,
	}, portfolio.Buckets[0])
}

func TestGetPortfolio_StorageError(t *testing.T) {
	svc, table, _ := newTestBucketService(t)

	table.On("ListByAccount", mock.Anything, "user1").Return(nil, errors.New("database unavailable"))

	_, err := svc.GetPortfolio(context.Background(), "user1")

	assert.EqualError(t, err, "database unavailable")
}

func TestDeposit_SubmitsAction(t *testing.T) {
	svc, _, processor := newTestBucketService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		deposit, ok := a.(*actions.Deposit)
		return ok && deposit.Account == "user1" && deposit.Amount == int64(1000)
	})).Return(nil)

	err := svc.Deposit(context.Background(), "user1", 1000)

	assert.NoError(t, err)
	processor.AssertExpectations(t)
}

func TestTransfer_SubmitsAction(t *testing.T) {
	svc, _, processor := newTestBucketService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		transfer, ok := a.(*actions.TransferBetweenBuckets)
		return ok && transfer.FromBucketID == 0 && transfer.ToBucketID == 2 && transfer.Amount == int64(50)
	})).Return(nil)

	err := svc.Transfer(context.Background(), "user1", 0, 2, 50)

	assert.NoError(t, err)
}

func TestCreateBucket_ReturnsIndex(t *testing.T) {
	svc, _, processor := newTestBucketService(t)

	processor.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*actions.CreateBucket).CreatedIndex = 4
		}).Return(nil)

	idx, err := svc.CreateBucket(context.Background(), "user1", "Vacation", 500, "#ec4899")

	assert.NoError(t, err)
	assert.Equal(t, 4, idx)
}

func TestWithdraw_PropagatesDomainError(t *testing.T) {
	svc, _, processor := newTestBucketService(t)

	processor.On("Process", mock.Anything, mock.Anything).
		Return(vault.ErrInsufficientBucketBalance)

	err := svc.Withdraw(context.Background(), "user1", 0, 9999)

	assert.ErrorIs(t, err, vault.ErrInsufficientBucketBalance)
}
