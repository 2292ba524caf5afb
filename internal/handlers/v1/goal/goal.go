package goal

// Goal is the API response model for a savings goal.
type Goal struct {
	GoalID        int    `json:"goalId" doc:"Goal index within the account"`
	Name          string `json:"name" doc:"Display name"`
	TargetAmount  string `json:"targetAmount" doc:"Decimal target"`
	CurrentAmount string `json:"currentAmount" doc:"Decimal saved so far"`
	Deadline      int64  `json:"deadline" doc:"Unix seconds, 0 for none"`
	Progress      int    `json:"progress" doc:"Percent of target reached, capped at 100"`
	LastMilestone int    `json:"lastMilestone" doc:"Highest milestone reached: 0, 25, 50, 75 or 100"`
	IsCompleted   bool   `json:"isCompleted" doc:"Target reached"`
	IsWithdrawn   bool   `json:"isWithdrawn" doc:"Funds already paid out"`
	Unlocked      bool   `json:"unlocked" doc:"Withdrawable now"`
}
