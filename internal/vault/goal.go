package vault

// Milestone thresholds, in percent of the target amount.
var milestones = []int{25, 50, 75, 100}

// Goal is a locked sub-account with a target amount and an optional
// deadline (unix seconds, 0 = none). Funds unlock when the target is
// reached or the deadline passes, and can be withdrawn exactly once.
type Goal struct {
	Index         int
	Name          string
	TargetAmount  int64
	Deadline      int64
	CurrentAmount int64
	LastMilestone int
	IsCompleted   bool
	IsWithdrawn   bool
}

// NewGoal validates and initializes a goal at the given index.
func NewGoal(index int, name string, targetAmount, deadline, now int64) (Goal, error) {
	if targetAmount <= 0 {
		return Goal{}, ErrZeroTarget
	}
	if deadline != 0 && deadline <= now {
		return Goal{}, ErrInvalidDeadline
	}
	return Goal{
		Index:        index,
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
	}, nil
}

// Deposit credits the full amount to the goal and advances the milestone
// watermark. It returns the newly crossed milestone, or crossed=false when
// no new threshold was reached; milestones are emitted once and never
// decrease.
func (g *Goal) Deposit(amount int64) (milestone int, crossed bool, err error) {
	if amount <= 0 {
		return 0, false, ErrZeroAmount
	}
	if g.IsWithdrawn {
		return 0, false, ErrGoalAlreadyWithdrawn
	}

	g.CurrentAmount += amount
	g.IsCompleted = g.CurrentAmount >= g.TargetAmount

	current := g.Milestone()
	if current > g.LastMilestone {
		g.LastMilestone = current
		return current, true, nil
	}
	return 0, false, nil
}

// Milestone returns the highest threshold in {25,50,75,100} the goal has
// reached, or 0.
func (g *Goal) Milestone() int {
	reached := 0
	for _, m := range milestones {
		if g.CurrentAmount*100/g.TargetAmount >= int64(m) {
			reached = m
		}
	}
	return reached
}

// Progress returns the goal's completion percentage, capped at 100.
func (g *Goal) Progress() int {
	progress := g.CurrentAmount * 100 / g.TargetAmount
	if progress > 100 {
		progress = 100
	}
	return int(progress)
}

// Unlocked reports whether the goal can be withdrawn: the target has been
// reached, or the deadline has passed. Locked is not a stored state, only
// the negation of this.
func (g *Goal) Unlocked(now int64) bool {
	if g.CurrentAmount >= g.TargetAmount {
		return true
	}
	return g.Deadline != 0 && now >= g.Deadline
}

// Withdraw pays out the full current amount and moves the goal to its
// terminal state. A second call always fails.
func (g *Goal) Withdraw(now int64) (int64, error) {
	if g.IsWithdrawn {
		return 0, ErrGoalAlreadyWithdrawn
	}
	if !g.Unlocked(now) {
		return 0, ErrGoalLocked
	}
	g.IsWithdrawn = true
	return g.CurrentAmount, nil
}
