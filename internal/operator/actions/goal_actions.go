package actions

import (
	"context"
	"time"

	"github.com/autovault/vault-server/internal/events"
	"github.com/autovault/vault-server/internal/storage"
	"github.com/autovault/vault-server/internal/vault"
)

// CreateGoal opens a new locked goal. CreatedIndex is populated on
// success.
type CreateGoal struct {
	Account      string
	Name         string
	TargetAmount int64
	Deadline     int64
	Now          func() time.Time

	CreatedIndex int
}

func (a *CreateGoal) AccountKey() string { return a.Account }

func (a *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	idx, err := writer.Goals.Count(ctx, a.Account)
	if err != nil {
		return nil, err
	}

	goal, err := vault.NewGoal(idx, a.Name, a.TargetAmount, a.Deadline, a.Now().Unix())
	if err != nil {
		return nil, err
	}
	a.CreatedIndex = idx

	if err := writer.Goals.Save(ctx, a.Account, goal); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeGoalCreated, events.GoalCreatedPayload{
		GoalID:       idx,
		Name:         a.Name,
		TargetAmount: a.TargetAmount,
		Deadline:     a.Deadline,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}

// DepositToGoal credits the full amount and emits a milestone event when a
// new threshold is crossed.
type DepositToGoal struct {
	Account string
	GoalID  int
	Amount  int64
}

func (a *DepositToGoal) AccountKey() string { return a.Account }

func (a *DepositToGoal) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	goal, err := writer.Goals.FindByIndexForUpdate(ctx, a.Account, a.GoalID)
	if err != nil {
		return nil, err
	}

	milestone, crossed, err := goal.Deposit(a.Amount)
	if err != nil {
		return nil, err
	}

	if err := writer.Goals.Save(ctx, a.Account, *goal); err != nil {
		return nil, err
	}

	emitted := []events.Event{
		events.New(a.Account, events.TypeGoalDeposit, events.GoalDepositPayload{
			GoalID:   a.GoalID,
			Amount:   a.Amount,
			NewTotal: goal.CurrentAmount,
		}),
	}
	if crossed {
		emitted = append(emitted, events.New(a.Account, events.TypeMilestoneReached,
			events.MilestoneReachedPayload{GoalID: a.GoalID, Milestone: milestone}))
	}

	for _, evt := range emitted {
		if err := writer.Events.Insert(ctx, evt); err != nil {
			return nil, err
		}
	}
	return emitted, nil
}

// WithdrawGoal pays out an unlocked goal exactly once. PaidAmount is
// populated on success.
type WithdrawGoal struct {
	Account string
	GoalID  int
	Now     func() time.Time

	PaidAmount int64
}

func (a *WithdrawGoal) AccountKey() string { return a.Account }

func (a *WithdrawGoal) Perform(ctx context.Context, writer *storage.Writer) ([]events.Event, error) {
	goal, err := writer.Goals.FindByIndexForUpdate(ctx, a.Account, a.GoalID)
	if err != nil {
		return nil, err
	}

	amount, err := goal.Withdraw(a.Now().Unix())
	if err != nil {
		return nil, err
	}
	a.PaidAmount = amount

	if err := writer.Goals.Save(ctx, a.Account, *goal); err != nil {
		return nil, err
	}

	evt := events.New(a.Account, events.TypeGoalWithdrawn, events.GoalWithdrawnPayload{
		GoalID: a.GoalID,
		Amount: amount,
	})
	if err := writer.Events.Insert(ctx, evt); err != nil {
		return nil, err
	}
	return []events.Event{evt}, nil
}
