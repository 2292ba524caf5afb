// Package events defines the domain events emitted by mutating vault
// operations. Every event is persisted as a row in the same transaction as
// the state change it describes; publication to a broker is best-effort
// fan-out on top of that durable record.
package events

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Event types double as broker routing keys.
const (
	TypeDeposited         = "bucket.deposited"
	TypeWithdrawn         = "bucket.withdrawn"
	TypeTransferred       = "bucket.transferred"
	TypeRebalanced        = "bucket.rebalanced"
	TypeBucketCreated     = "bucket.created"
	TypeBucketUpdated     = "bucket.percentage_updated"
	TypeGoalCreated       = "goal.created"
	TypeGoalDeposit       = "goal.deposit"
	TypeMilestoneReached  = "goal.milestone_reached"
	TypeGoalWithdrawn     = "goal.withdrawn"
	TypeFundsAllocated    = "dca.funds_allocated"
	TypeFundsWithdrawn    = "dca.funds_withdrawn"
	TypeStrategyCreated   = "dca.strategy_created"
	TypeStrategyPaused    = "dca.strategy_paused"
	TypeStrategyResumed   = "dca.strategy_resumed"
	TypeStrategyCancelled = "dca.strategy_cancelled"
	TypeDCAExecuted       = "dca.executed"
	TypeKeeperUpdated     = "dca.keeper_updated"
)

// Event is one structured domain event scoped to a single account.
type Event struct {
	ID        uuid.UUID
	Account   string
	Type      string
	Payload   any
	CreatedAt time.Time
}

// New builds an event with a fresh identifier.
func New(account, eventType string, payload any) Event {
	return Event{
		ID:        uuid.Must(uuid.NewV4()),
		Account:   account,
		Type:      eventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

// Payload shapes, one per event type. Field names are part of the external
// contract consumed by indexers and the notification pipeline.

type DepositedPayload struct {
	Amount int64 `json:"amount"`
}

type WithdrawnPayload struct {
	BucketID int   `json:"bucketId"`
	Amount   int64 `json:"amount"`
}

type TransferredPayload struct {
	FromBucketID int   `json:"fromBucketId"`
	ToBucketID   int   `json:"toBucketId"`
	Amount       int64 `json:"amount"`
}

type RebalancedPayload struct {
	TotalBalance int64 `json:"totalBalance"`
}

type BucketCreatedPayload struct {
	BucketID         int    `json:"bucketId"`
	Name             string `json:"name"`
	TargetPercentage int64  `json:"targetPercentage"`
}

type BucketUpdatedPayload struct {
	BucketID         int   `json:"bucketId"`
	TargetPercentage int64 `json:"targetPercentage"`
}

type GoalCreatedPayload struct {
	GoalID       int    `json:"goalId"`
	Name         string `json:"name"`
	TargetAmount int64  `json:"targetAmount"`
	Deadline     int64  `json:"deadline"`
}

type GoalDepositPayload struct {
	GoalID   int   `json:"goalId"`
	Amount   int64 `json:"amount"`
	NewTotal int64 `json:"newTotal"`
}

type MilestoneReachedPayload struct {
	GoalID    int `json:"goalId"`
	Milestone int `json:"milestone"`
}

type GoalWithdrawnPayload struct {
	GoalID int   `json:"goalId"`
	Amount int64 `json:"amount"`
}

type FundsPayload struct {
	Amount int64 `json:"amount"`
}

type StrategyCreatedPayload struct {
	StrategyID        int    `json:"strategyId"`
	TokenOut          string `json:"tokenOut"`
	AmountPerInterval int64  `json:"amountPerInterval"`
	IntervalSeconds   int64  `json:"intervalSeconds"`
}

type StrategyPayload struct {
	StrategyID int `json:"strategyId"`
}

// StrategyCancelledPayload reports the pool balance still available for a
// separate withdrawFunds call. Cancellation itself moves no funds.
type StrategyCancelledPayload struct {
	StrategyID       int   `json:"strategyId"`
	AllocatedBalance int64 `json:"allocatedBalance"`
}

type DCAExecutedPayload struct {
	StrategyID int    `json:"strategyId"`
	TokenOut   string `json:"tokenOut"`
	AmountIn   int64  `json:"amountIn"`
	AmountOut  int64  `json:"amountOut"`
}

type KeeperUpdatedPayload struct {
	Keeper     string `json:"keeper"`
	Authorized bool   `json:"authorized"`
}
