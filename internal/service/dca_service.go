package service

import (
	"context"
	"time"

	"github.com/autovault/vault-server/internal/exchange"
	"github.com/autovault/vault-server/internal/operator"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

// DCAService handles strategy, pool and keeper business logic.
type DCAService struct {
	storage   *storage.Storage
	processor operator.IProcessor
	exchange  exchange.Exchange
	owner     string
	now       func() time.Time
}

// NewDCAService creates a new DCAService. Owner is the account allowed to
// manage keepers.
func NewDCAService(store *storage.Storage, processor operator.IProcessor, exch exchange.Exchange, owner string) *DCAService {
	return &DCAService{
		storage:   store,
		processor: processor,
		exchange:  exch,
		owner:     owner,
		now:       time.Now,
	}
}

// ListStrategies returns all of the account's strategies.
func (s *DCAService) ListStrategies(ctx context.Context, account string) ([]Strategy, error) {
	rows, err := s.storage.Strategies.ListByAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	now := s.now().Unix()
	converted := make([]Strategy, len(rows))
	for i := range rows {
		converted[i] = convertStrategy(&rows[i], now)
	}
	return converted, nil
}

// GetStrategy returns one strategy by index.
func (s *DCAService) GetStrategy(ctx context.Context, account string, strategyID int) (*Strategy, error) {
	row, err := s.storage.Strategies.FindByIndex(ctx, account, strategyID)
	if err != nil {
		return nil, err
	}
	strategy := convertStrategy(row, s.now().Unix())
	return &strategy, nil
}

// AllocatedFunds returns the account's DCA pool balance.
func (s *DCAService) AllocatedFunds(ctx context.Context, account string) (int64, error) {
	return s.storage.Strategies.AllocatedFunds(ctx, account)
}

// AllocateFunds credits the account's DCA pool.
func (s *DCAService) AllocateFunds(ctx context.Context, account string, amount int64) error {
	return s.processor.Process(ctx, &actions.AllocateFunds{Account: account, Amount: amount})
}

// WithdrawFunds debits the account's DCA pool.
func (s *DCAService) WithdrawFunds(ctx context.Context, account string, amount int64) error {
	return s.processor.Process(ctx, &actions.WithdrawFunds{Account: account, Amount: amount})
}

// CreateStrategy opens a new strategy and returns its index.
func (s *DCAService) CreateStrategy(ctx context.Context, account, tokenOut string, amountPerInterval, intervalSeconds, slippageBps int64) (int, error) {
	action := &actions.CreateDCAStrategy{
		Account:           account,
		TokenOut:          tokenOut,
		AmountPerInterval: amountPerInterval,
		IntervalSeconds:   intervalSeconds,
		SlippageBps:       slippageBps,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedIndex, nil
}

// PauseStrategy deactivates a strategy.
func (s *DCAService) PauseStrategy(ctx context.Context, account string, strategyID int) error {
	return s.processor.Process(ctx, &actions.PauseStrategy{Account: account, StrategyID: strategyID})
}

// ResumeStrategy reactivates a paused strategy.
func (s *DCAService) ResumeStrategy(ctx context.Context, account string, strategyID int) error {
	return s.processor.Process(ctx, &actions.ResumeStrategy{Account: account, StrategyID: strategyID})
}

// CancelStrategy deactivates a strategy permanently.
func (s *DCAService) CancelStrategy(ctx context.Context, account string, strategyID int) error {
	return s.processor.Process(ctx, &actions.CancelStrategy{Account: account, StrategyID: strategyID})
}

// Execute runs one due purchase for the strategy. Caller must be the
// account itself or an authorized keeper.
func (s *DCAService) Execute(ctx context.Context, caller, account string, strategyID int) (ExecutionResult, error) {
	action := &actions.ExecuteDCA{
		Caller:     caller,
		Account:    account,
		StrategyID: strategyID,
		Exchange:   s.exchange,
		Now:        s.now,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ExecutionResult{}, err
	}
	return ExecutionResult{AmountIn: action.AmountIn, AmountOut: action.AmountOut}, nil
}

// Quote estimates the amountOut of a purchase without executing it.
func (s *DCAService) Quote(ctx context.Context, tokenOut string, amountIn int64) (int64, error) {
	return s.exchange.Quote(ctx, tokenOut, amountIn)
}

// ListDue returns every active strategy whose interval has elapsed.
func (s *DCAService) ListDue(ctx context.Context) ([]DueStrategy, error) {
	rows, err := s.storage.Strategies.ListDue(ctx, s.now().Unix())
	if err != nil {
		return nil, err
	}

	converted := make([]DueStrategy, len(rows))
	for i, row := range rows {
		converted[i] = DueStrategy{Account: row.Account, StrategyID: row.StrategyID}
	}
	return converted, nil
}

// SetKeeper grants or revokes a keeper's execution rights. Only the
// configured owner may call it.
func (s *DCAService) SetKeeper(ctx context.Context, caller, keeper string, authorized bool) error {
	return s.processor.Process(ctx, &actions.SetKeeper{
		Caller:     caller,
		Owner:      s.owner,
		Keeper:     keeper,
		Authorized: authorized,
	})
}

// IsKeeper reports whether the account is an authorized keeper.
func (s *DCAService) IsKeeper(ctx context.Context, keeper string) (bool, error) {
	return s.storage.Keepers.IsAuthorized(ctx, keeper)
}

func convertStrategy(row *vault.Strategy, now int64) Strategy {
	return Strategy{
		Index:             row.Index,
		TokenOut:          row.TokenOut,
		AmountPerInterval: row.AmountPerInterval,
		IntervalSeconds:   row.IntervalSeconds,
		LastExecution:     row.LastExecution,
		NextExecution:     row.NextExecution(),
		TotalInvested:     row.TotalInvested,
		TotalReceived:     row.TotalReceived,
		SlippageBps:       row.SlippageBps,
		IsActive:          row.IsActive,
		IsCancelled:       row.IsCancelled,
		Due:               row.Due(now),
	}
}
