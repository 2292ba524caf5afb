package vault

const (
	// MinIntervalSeconds is the smallest allowed execution interval.
	MinIntervalSeconds int64 = 3600
	// MaxSlippageBps caps a strategy's slippage tolerance at 10%.
	MaxSlippageBps int64 = 1000
)

// Strategy is a recurring purchase instruction: every IntervalSeconds,
// spend AmountPerInterval from the account's allocated-funds pool buying
// TokenOut. Execution is gated, never scheduled internally.
type Strategy struct {
	Index             int
	TokenOut          string
	AmountPerInterval int64
	IntervalSeconds   int64
	LastExecution     int64
	TotalInvested     int64
	TotalReceived     int64
	SlippageBps       int64
	IsActive          bool
	IsCancelled       bool
}

// NewStrategy validates bounds and initializes an active strategy.
func NewStrategy(index int, tokenOut string, amountPerInterval, intervalSeconds, slippageBps int64) (Strategy, error) {
	if amountPerInterval <= 0 {
		return Strategy{}, ErrZeroAmount
	}
	if intervalSeconds < MinIntervalSeconds {
		return Strategy{}, ErrInvalidInterval
	}
	if slippageBps < 0 || slippageBps > MaxSlippageBps {
		return Strategy{}, ErrInvalidSlippage
	}
	return Strategy{
		Index:             index,
		TokenOut:          tokenOut,
		AmountPerInterval: amountPerInterval,
		IntervalSeconds:   intervalSeconds,
		SlippageBps:       slippageBps,
		IsActive:          true,
	}, nil
}

// Due reports whether an execution is permitted now. The first run is
// always due.
func (s *Strategy) Due(now int64) bool {
	if !s.IsActive {
		return false
	}
	return s.LastExecution == 0 || now-s.LastExecution >= s.IntervalSeconds
}

// NextExecution returns the earliest time the strategy is due again,
// or 0 if it has never executed (due immediately).
func (s *Strategy) NextExecution() int64 {
	if s.LastExecution == 0 {
		return 0
	}
	return s.LastExecution + s.IntervalSeconds
}

// Pause deactivates a running strategy.
func (s *Strategy) Pause() error {
	if !s.IsActive {
		return ErrStrategyNotActive
	}
	s.IsActive = false
	return nil
}

// Resume reactivates a paused strategy. LastExecution is kept, so resuming
// never grants an extra execution beyond what Due already allows.
func (s *Strategy) Resume() error {
	if s.IsCancelled {
		return ErrStrategyCancelled
	}
	if s.IsActive {
		return ErrStrategyAlreadyActive
	}
	s.IsActive = true
	return nil
}

// Cancel deactivates the strategy permanently. Allocated funds are not
// touched; they stay in the pool until withdrawn.
func (s *Strategy) Cancel() error {
	if s.IsCancelled {
		return ErrStrategyCancelled
	}
	s.IsActive = false
	s.IsCancelled = true
	return nil
}

// CanExecute checks the gates that precede an execution attempt: the
// strategy must be active and due. Fund sufficiency is checked against the
// pool by the caller.
func (s *Strategy) CanExecute(now int64) error {
	if !s.IsActive {
		return ErrStrategyNotActive
	}
	if !s.Due(now) {
		return ErrExecutionNotDue
	}
	return nil
}

// MarkExecuted records a successful purchase reported by the exchange
// collaborator. State only ever advances on a clean success.
func (s *Strategy) MarkExecuted(now, amountIn, amountOut int64) {
	s.LastExecution = now
	s.TotalInvested += amountIn
	s.TotalReceived += amountOut
}

// Pool is an account's allocated-funds balance for DCA purchases, separate
// from buckets and goals.
type Pool struct {
	Account string
	Balance int64
}

// Allocate credits the pool.
func (p *Pool) Allocate(amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	p.Balance += amount
	return nil
}

// Withdraw debits the pool. Debits never exceed the balance.
func (p *Pool) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if amount > p.Balance {
		return ErrInsufficientFunds
	}
	p.Balance -= amount
	return nil
}
