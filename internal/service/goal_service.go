package service

import (
	"context"
	"time"

	"github.com/autovault/vault-server/internal/operator"
	"github.com/autovault/vault-server/internal/operator/actions"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

// GoalService handles savings goal business logic.
type GoalService struct {
	storage   *storage.Storage
	processor operator.IProcessor
	now       func() time.Time
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage, processor operator.IProcessor) *GoalService {
	return &GoalService{storage: store, processor: processor, now: time.Now}
}

// ListGoals returns all of the account's goals, newest index last.
func (s *GoalService) ListGoals(ctx context.Context, account string) ([]Goal, error) {
	rows, err := s.storage.Goals.ListByAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	now := s.now().Unix()
	converted := make([]Goal, len(rows))
	for i := range rows {
		converted[i] = convertGoal(&rows[i], now)
	}
	return converted, nil
}

// GetGoal returns one goal by index.
func (s *GoalService) GetGoal(ctx context.Context, account string, goalID int) (*Goal, error) {
	row, err := s.storage.Goals.FindByIndex(ctx, account, goalID)
	if err != nil {
		return nil, err
	}
	goal := convertGoal(row, s.now().Unix())
	return &goal, nil
}

// CreateGoal opens a new goal and returns its index. Deadline is unix
// seconds, 0 for none.
func (s *GoalService) CreateGoal(ctx context.Context, account, name string, targetAmount, deadline int64) (int, error) {
	action := &actions.CreateGoal{
		Account:      account,
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		Now:          s.now,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedIndex, nil
}

// Deposit credits the goal.
func (s *GoalService) Deposit(ctx context.Context, account string, goalID int, amount int64) error {
	return s.processor.Process(ctx, &actions.DepositToGoal{
		Account: account,
		GoalID:  goalID,
		Amount:  amount,
	})
}

// Withdraw pays out an unlocked goal and returns the amount paid.
func (s *GoalService) Withdraw(ctx context.Context, account string, goalID int) (int64, error) {
	action := &actions.WithdrawGoal{
		Account: account,
		GoalID:  goalID,
		Now:     s.now,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.PaidAmount, nil
}

func convertGoal(g *vault.Goal, now int64) Goal {
	return Goal{
		Index:         g.Index,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Progress:      g.Progress(),
		LastMilestone: g.LastMilestone,
		IsCompleted:   g.IsCompleted,
		IsWithdrawn:   g.IsWithdrawn,
		Unlocked:      g.Unlocked(now),
	}
}
