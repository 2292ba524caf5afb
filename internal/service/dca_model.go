package service

// Strategy represents a DCA strategy in the service layer. NextExecution
// is unix seconds; Due reflects the clock at read time.
type Strategy struct {
	Index             int
	TokenOut          string
	AmountPerInterval int64
	IntervalSeconds   int64
	LastExecution     int64
	NextExecution     int64
	TotalInvested     int64
	TotalReceived     int64
	SlippageBps       int64
	IsActive          bool
	IsCancelled       bool
	Due               bool
}

// DueStrategy identifies one strategy ready for execution.
type DueStrategy struct {
	Account    string
	StrategyID int
}

// ExecutionResult reports the amounts of one completed DCA purchase.
type ExecutionResult struct {
	AmountIn  int64
	AmountOut int64
}
