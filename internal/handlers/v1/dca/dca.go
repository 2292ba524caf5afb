package dca

// Strategy is the API response model for a DCA strategy.
type Strategy struct {
	StrategyID        int    `json:"strategyId" doc:"Strategy index within the account"`
	TokenOut          string `json:"tokenOut" doc:"Asset being accumulated"`
	AmountPerInterval string `json:"amountPerInterval" doc:"Decimal purchase size"`
	IntervalSeconds   int64  `json:"intervalSeconds" doc:"Seconds between purchases"`
	LastExecution     int64  `json:"lastExecution" doc:"Unix seconds of the last purchase, 0 if never"`
	NextExecution     int64  `json:"nextExecution" doc:"Unix seconds when the next purchase is allowed"`
	TotalInvested     string `json:"totalInvested" doc:"Decimal sum spent"`
	TotalReceived     string `json:"totalReceived" doc:"Decimal sum received"`
	SlippageBps       int64  `json:"slippageBps" doc:"Slippage tolerance in basis points"`
	IsActive          bool   `json:"isActive" doc:"Strategy executes while active"`
	IsCancelled       bool   `json:"isCancelled" doc:"Cancelled strategies cannot be resumed"`
	Due               bool   `json:"due" doc:"Ready to execute now"`
}
