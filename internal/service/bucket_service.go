package service

import (
	"context"

	"github.com/autovault/vault-server/internal/operator"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

// BucketService handles allocation bucket business logic.
type BucketService struct {
	storage   *storage.Storage
	processor operator.IProcessor
}

// NewBucketService creates a new BucketService.
func NewBucketService(store *storage.Storage, processor operator.IProcessor) *BucketService {
	return &BucketService{storage: store, processor: processor}
}

// GetPortfolio returns the account's buckets and total balance. Accounts
// that never deposited have no rows yet and get the default layout with
// zero balances.
func (s *BucketService) GetPortfolio(ctx context.Context, account string) (Portfolio, error) {
	set, err := s.storage.Buckets.ListByAccount(ctx, account)
	if err != nil {
		return Portfolio{}, err
	}
	if len(set) == 0 {
		set = vault.DefaultBuckets()
	}

	converted := make([]Bucket, len(set))
	for i, b := range set {
		converted[i] = Bucket{
			Index:     b.Index,
			Name:      b.Name,
			Color:     b.Color,
			TargetBps: b.TargetBps,
			Balance:   b.Balance,
			IsActive:  b.IsActive,
		}
	}

	return Portfolio{
		Buckets:      converted,
		TotalBalance: set.TotalBalance(),
	}, nil
}

// Deposit splits an amount across the account's active buckets.
func (s *BucketService) Deposit(ctx context.Context, account string, amount int64) error {
	return s.processor.Process(ctx, &actions.Deposit{Account: account, Amount: amount})
}

// Withdraw removes an amount from one bucket.
func (s *BucketService) Withdraw(ctx context.Context, account string, bucketID int, amount int64) error {
	return s.processor.Process(ctx, &actions.WithdrawFromBucket{
		Account:  account,
		BucketID: bucketID,
		Amount:   amount,
	})
}

// Transfer moves an amount between two buckets.
func (s *BucketService) Transfer(ctx context.Context, account string, fromBucketID, toBucketID int, amount int64) error {
	return s.processor.Process(ctx, &actions.TransferBetweenBuckets{
		Account:      account,
		FromBucketID: fromBucketID,
		ToBucketID:   toBucketID,
		Amount:       amount,
	})
}

// Rebalance resets every active bucket to its target share.
func (s *BucketService) Rebalance(ctx context.Context, account string) error {
	return s.processor.Process(ctx, &actions.RebalanceBuckets{Account: account})
}

// CreateBucket appends a new bucket and returns its index.
func (s *BucketService) CreateBucket(ctx context.Context, account, name string, targetBps int64, color string) (int, error) {
	action := &actions.CreateBucket{
		Account:   account,
		Name:      name,
		TargetBps: targetBps,
		Color:     color,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedIndex, nil
}

// UpdatePercentage changes a bucket's target share.
func (s *BucketService) UpdatePercentage(ctx context.Context, account string, bucketID int, targetBps int64) error {
	return s.processor.Process(ctx, &actions.UpdateBucketPercentage{
		Account:   account,
		BucketID:  bucketID,
		TargetBps: targetBps,
	})
}
