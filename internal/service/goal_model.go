package service

// Goal represents a savings goal in the service layer. Progress is in
// percent, capped at 100; Unlocked reflects the clock at read time.
type Goal struct {
	Index         int
	Name          string
	TargetAmount  int64
	CurrentAmount int64
	Deadline      int64
	Progress      int
	LastMilestone int
	IsCompleted   bool
	IsWithdrawn   bool
	Unlocked      bool
}
