package actions

import (
	"context"
	"time"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/exchange"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

// AllocateFunds credits the account's DCA pool.
type AllocateFunds struct {
	Account string
	Amount  int64
}

func (a *AllocateFunds) AccountKey() string { return a.Account }

func (a *AllocateFunds) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	pool, err := writer.Strategies.PoolForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := pool.Allocate(a.Amount); err != nil {
		return nil, err
	}

	if err := writer.Strategies.SavePool(ctx, pool); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeFundsAllocated, events.FundsPayload{Amount: a.Amount})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// WithdrawFunds debits the account's DCA pool.
type WithdrawFunds struct {
	Account string
	Amount  int64
}

func (a *WithdrawFunds) AccountKey() string { return a.Account }

func (a *WithdrawFunds) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	pool, err := writer.Strategies.PoolForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := pool.Withdraw(a.Amount); err != nil {
		return nil, err
	}

	if err := writer.Strategies.SavePool(ctx, pool); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeFundsWithdrawn, events.FundsPayload{Amount: a.Amount})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// CreateDCAStrategy validates bounds and appends an active strategy.
// CreatedIndex is populated on success.
type CreateDCAStrategy struct {
	Account           string
	TokenOut          string
	AmountPerInterval int64
	IntervalSeconds   int64
	SlippageBps       int64

	CreatedIndex int
}

func (a *CreateDCAStrategy) AccountKey() string { return a.Account }

func (a *CreateDCAStrategy) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	idx, err := writer.Strategies.Count(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	strategy, err := vault.NewStrategy(idx, a.TokenOut, a.AmountPerInterval, a.IntervalSeconds, a.SlippageBps)
	if err != nil {
		return nil, err
	}
	a.CreatedIndex = idx

	if err := writer.Strategies.Save(ctx, a.Account, strategy); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeStrategyCreated, events.StrategyCreatedPayload{
		StrategyID:        idx,
		TokenOut:          a.TokenOut,
		AmountPerInterval: a.AmountPerInterval,
		IntervalSeconds:   a.IntervalSeconds,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// PauseStrategy deactivates a running strategy.
type PauseStrategy struct {
	Account    string
	StrategyID int
}

func (a *PauseStrategy) AccountKey() string { return a.Account }

func (a *PauseStrategy) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	strategy, err := writer.Strategies.FindByIndexForUpdate(ctx, a.Account, a.StrategyID)
	if err != nil {
		return nil, err
	}

	if err := strategy.Pause(); err != nil {
		return nil, err
	}

	if err := writer.Strategies.Save(ctx, a.Account, *strategy); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeStrategyPaused, events.StrategyPayload{StrategyID: a.StrategyID})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// ResumeStrategy reactivates a paused strategy without resetting its
// execution clock.
type ResumeStrategy struct {
	Account    string
	StrategyID int
}

func (a *ResumeStrategy) AccountKey() string { return a.Account }

func (a *ResumeStrategy) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	strategy, err := writer.Strategies.FindByIndexForUpdate(ctx, a.Account, a.StrategyID)
	if err != nil {
		return nil, err
	}

	if err := strategy.Resume(); err != nil {
		return nil, err
	}

	if err := writer.Strategies.Save(ctx, a.Account, *strategy); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeStrategyResumed, events.StrategyPayload{StrategyID: a.StrategyID})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// CancelStrategy deactivates a strategy permanently. The event reports the
// pool balance still available for a separate WithdrawFunds call; no funds
// move here.
type CancelStrategy struct {
	Account    string
	StrategyID int
}

func (a *CancelStrategy) AccountKey() string { return a.Account }

func (a *CancelStrategy) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	strategy, err := writer.Strategies.FindByIndexForUpdate(ctx, a.Account, a.StrategyID)
	if err != nil {
		return nil, err
	}

	if err := strategy.Cancel(); err != nil {
		return nil, err
	}

	pool, err := writer.Strategies.PoolForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	if err := writer.Strategies.Save(ctx, a.Account, *strategy); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeStrategyCancelled, events.StrategyCancelledPayload{
		StrategyID:       a.StrategyID,
		AllocatedBalance: pool.Balance,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// ExecuteDCA performs one due purchase: authorize the caller, check the
// gates, buy through the exchange collaborator, then debit the pool and
// advance the strategy. Any exchange error aborts with no state change.
// AmountIn/AmountOut are populated on success.
type ExecuteDCA struct {
	Caller     string
	Account    string
	StrategyID int
	Exchange   exchange.Exchange
	Now        func() time.Time

	AmountIn  int64
	AmountOut int64
}

func (a *ExecuteDCA) AccountKey() string { return a.Account }

func (a *ExecuteDCA) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	if a.Caller != a.Account {
		authorized, err := writer.Keepers.IsAuthorized(ctx, a.Caller)
		if err != nil {
			return nil, err
		}
		if !authorized {
			return nil, vault.ErrUnauthorizedKeeper
		}
	}

	strategy, err := writer.Strategies.FindByIndexForUpdate(ctx, a.Account, a.StrategyID)
	if err != nil {
		return nil, err
	}

	now := a.Now().Unix()
	if err := strategy.CanExecute(now); err != nil {
		return nil, err
	}

	pool, err := writer.Strategies.PoolForUpdate(ctx, a.Account)
	if err != nil {
		return nil, err
	}
	if pool.Balance < strategy.AmountPerInterval {
		return nil, vault.ErrInsufficientFunds
	}

	amountOut, err := a.Exchange.Swap(ctx, a.Account, strategy.TokenOut,
		strategy.AmountPerInterval, strategy.SlippageBps)
	if err != nil {
		return nil, err
	}

	if err := pool.Withdraw(strategy.AmountPerInterval); err != nil {
		return nil, err
	}
	strategy.MarkExecuted(now, strategy.AmountPerInterval, amountOut)
	a.AmountIn = strategy.AmountPerInterval
	a.AmountOut = amountOut

	if err := writer.Strategies.SavePool(ctx, pool); err != nil {
		return nil, err
	}
	if err := writer.Strategies.Save(ctx, a.Account, *strategy); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeDCAExecuted, events.DCAExecutedPayload{
		StrategyID: a.StrategyID,
		TokenOut:   strategy.TokenOut,
		AmountIn:   a.AmountIn,
		AmountOut:  amountOut,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// SetKeeper toggles a keeper's authorization. Only the configured owner
// may call it; the owner identity is wired in at construction, not read
// from mutable process state.
type SetKeeper struct {
	Caller     string
	Owner      string
	Keeper     string
	Authorized bool
}

func (a *SetKeeper) AccountKey() string { return a.Keeper }

func (a *SetKeeper) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	if a.Caller != a.Owner {
		return nil, vault.ErrNotOwner
	}

	if err := writer.Keepers.Set(ctx, a.Keeper, a.Authorized); err != nil {
		return nil, err
	}

	evt := events.New(a.Keeper, events.TypeKeeperUpdated, events.KeeperUpdatedPayload{
		Keeper:     a.Keeper,
		Authorized: a.Authorized,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}
