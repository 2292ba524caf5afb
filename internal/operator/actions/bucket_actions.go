package actions

import (
	"context"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/storage"
)

// Deposit distributes an amount across the account's active buckets,
// creating the default buckets first when the account has none.
type Deposit struct {
	Account string
	Amount  int64
}

func (a *Deposit) AccountKey() string { return a.Account }

func (a *Deposit) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := set.Deposit(a.Amount); err != nil {
		return nil, err
	}

	if err := writer.Buckets.SaveAll(ctx, a.Account, set); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeDeposited, events.DepositedPayload{Amount: a.Amount})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// WithdrawFromBucket removes an amount from one bucket only.
type WithdrawFromBucket struct {
	Account  string
	BucketID int
	Amount   int64
}

func (a *WithdrawFromBucket) AccountKey() string { return a.Account }

func (a *WithdrawFromBucket) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := set.Withdraw(a.BucketID, a.Amount); err != nil {
		return nil, err
	}

	if err := writer.Buckets.Save(ctx, a.Account, set[a.BucketID]); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeWithdrawn, events.WithdrawnPayload{
		BucketID: a.BucketID,
		Amount:   a.Amount,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// TransferBetweenBuckets moves an amount between two buckets; the
// account's total balance is unchanged.
type TransferBetweenBuckets struct {
	Account      string
	FromBucketID int
	ToBucketID   int
	Amount       int64
}

func (a *TransferBetweenBuckets) AccountKey() string { return a.Account }

func (a *TransferBetweenBuckets) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := set.Transfer(a.FromBucketID, a.ToBucketID, a.Amount); err != nil {
		return nil, err
	}

	if err := writer.Buckets.Save(ctx, a.Account, set[a.FromBucketID]); err != nil {
		return nil, err
	}
	if err := writer.Buckets.Save(ctx, a.Account, set[a.ToBucketID]); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeTransferred, events.TransferredPayload{
		FromBucketID: a.FromBucketID,
		ToBucketID:   a.ToBucketID,
		Amount:       a.Amount,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// RebalanceBuckets resets every active bucket to its target share of the
// unchanged total.
type RebalanceBuckets struct {
	Account string
}

func (a *RebalanceBuckets) AccountKey() string { return a.Account }

func (a *RebalanceBuckets) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	total, err := set.Rebalance()
	if err != nil {
		return nil, err
	}

	if err := writer.Buckets.SaveAll(ctx, a.Account, set); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeRebalanced, events.RebalancedPayload{TotalBalance: total})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// CreateBucket appends a new active bucket with a zero balance.
// CreatedIndex is populated on success.
type CreateBucket struct {
	Account   string
	Name      string
	TargetBps int64
	Color     string

	CreatedIndex int
}

func (a *CreateBucket) AccountKey() string { return a.Account }

func (a *CreateBucket) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	idx, err := set.Add(a.Name, a.TargetBps, a.Color)
	if err != nil {
		return nil, err
	}
	a.CreatedIndex = idx

	if err := writer.Buckets.Save(ctx, a.Account, set[idx]); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeBucketCreated, events.BucketCreatedPayload{
		BucketID:         idx,
		Name:             a.Name,
		TargetPercentage: a.TargetBps,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// UpdateBucketPercentage changes a bucket's target share without moving
// balances.
type UpdateBucketPercentage struct {
	Account   string
	BucketID  int
	TargetBps int64
}

func (a *UpdateBucketPercentage) AccountKey() string { return a.Account }

func (a *UpdateBucketPercentage) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	set, err := writer.Buckets.ListForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := set.SetTargetBps(a.BucketID, a.TargetBps); err != nil {
		return nil, err
	}

	if err := writer.Buckets.Save(ctx, a.Account, set[a.BucketID]); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeBucketUpdated, events.BucketUpdatedPayload{
		BucketID:         a.BucketID,
		TargetPercentage: a.TargetBps,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}
