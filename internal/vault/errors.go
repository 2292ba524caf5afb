package vault

import "errors"

// Validation errors: deterministic given the inputs, checked before any
// state is touched.
var (
	ErrZeroAmount           = errors.New("amount must be greater than zero")
	ErrZeroTarget           = errors.New("goal target must be greater than zero")
	ErrInvalidDeadline      = errors.New("goal deadline must be in the future")
	ErrInvalidInterval      = errors.New("strategy interval is below the minimum")
	ErrInvalidSlippage      = errors.New("slippage tolerance exceeds the maximum")
	ErrSameBucket           = errors.New("cannot transfer a bucket to itself")
	ErrPercentageSumInvalid = errors.New("bucket percentages exceed 100%")
)

// State-conflict errors: the operation is invalid for the entity's current
// state. Re-checking the same state yields the same error.
var (
	ErrInsufficientBucketBalance = errors.New("insufficient bucket balance")
	ErrInsufficientFunds         = errors.New("insufficient allocated funds")
	ErrGoalLocked                = errors.New("goal is still locked")
	ErrGoalAlreadyWithdrawn      = errors.New("goal has already been withdrawn")
	ErrStrategyNotActive         = errors.New("strategy is not active")
	ErrStrategyAlreadyActive     = errors.New("strategy is already active")
	ErrStrategyCancelled         = errors.New("strategy has been cancelled")
	ErrExecutionNotDue           = errors.New("strategy execution is not due")
)

// Lookup and authorization errors.
var (
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrStrategyNotFound   = errors.New("strategy not found")
	ErrUnauthorizedKeeper = errors.New("caller is not the account owner or an authorized keeper")
	ErrNotOwner           = errors.New("caller is not the configured owner")
)
