package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goalNow int64 = 1_700_000_000

func TestNewGoal_Valid(t *testing.T) {
	goal, err := NewGoal(0, "Vacation Fund", 1000, 0, goalNow)

	require.NoError(t, err)
	assert.Equal(t, "Vacation Fund", goal.Name)
	assert.Equal(t, int64(1000), goal.TargetAmount)
	assert.Equal(t, int64(0), goal.CurrentAmount)
	assert.Equal(t, 0, goal.LastMilestone)
	assert.False(t, goal.IsCompleted)
	assert.False(t, goal.IsWithdrawn)
}

func TestNewGoal_ZeroTarget(t *testing.T) {
	_, err := NewGoal(0, "Invalid", 0, 0, goalNow)

	assert.ErrorIs(t, err, ErrZeroTarget)
}

func TestNewGoal_PastDeadline(t *testing.T) {
	_, err := NewGoal(0, "Invalid", 100, goalNow-1000, goalNow)

	assert.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestGoalDeposit_Accumulates(t *testing.T) {
	goal, err := NewGoal(0, "Test Goal", 1000, 0, goalNow)
	require.NoError(t, err)

	_, _, err = goal.Deposit(100)
	require.NoError(t, err)
	_, _, err = goal.Deposit(200)
	require.NoError(t, err)

	assert.Equal(t, int64(300), goal.CurrentAmount)
	assert.False(t, goal.IsCompleted)
}

func TestGoalDeposit_MilestoneSequence(t *testing.T) {
	goal, err := NewGoal(0, "Milestone Test", 1000, 0, goalNow)
	require.NoError(t, err)

	expected := []int{25, 50, 75, 100}
	for i := 0; i < 4; i++ {
		milestone, crossed, err := goal.Deposit(250)

		require.NoError(t, err)
		assert.True(t, crossed)
		assert.Equal(t, expected[i], milestone)
	}

	assert.True(t, goal.IsCompleted)
	assert.True(t, goal.Unlocked(goalNow))
	assert.Equal(t, 100, goal.LastMilestone)
}

func TestGoalDeposit_MilestoneNotReEmitted(t *testing.T) {
	goal, err := NewGoal(0, "Test", 1000, 0, goalNow)
	require.NoError(t, err)

	milestone, crossed, err := goal.Deposit(250)
	require.NoError(t, err)
	assert.True(t, crossed)
	assert.Equal(t, 25, milestone)

	// Still inside the 25% band: no new milestone.
	_, crossed, err = goal.Deposit(100)
	require.NoError(t, err)
	assert.False(t, crossed)
	assert.Equal(t, 25, goal.LastMilestone)
}

func TestGoalDeposit_SkipsStraightTo75(t *testing.T) {
	goal, err := NewGoal(0, "Test", 1000, 0, goalNow)
	require.NoError(t, err)

	milestone, crossed, err := goal.Deposit(750)

	require.NoError(t, err)
	assert.True(t, crossed)
	assert.Equal(t, 75, milestone)
}

func TestGoalDeposit_MilestoneMonotonic(t *testing.T) {
	goal, err := NewGoal(0, "Test", 997, 0, goalNow)
	require.NoError(t, err)

	last := 0
	for _, amount := range []int64{1, 100, 3, 200, 250, 250, 500} {
		_, _, err := goal.Deposit(amount)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, goal.LastMilestone, last)
		last = goal.LastMilestone
	}
	assert.Equal(t, 100, last)
}

func TestGoalDeposit_AfterWithdrawRejected(t *testing.T) {
	goal, err := NewGoal(0, "Test", 100, 0, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(100)
	require.NoError(t, err)
	_, err = goal.Withdraw(goalNow)
	require.NoError(t, err)

	_, _, err = goal.Deposit(10)

	assert.ErrorIs(t, err, ErrGoalAlreadyWithdrawn)
}

func TestGoalProgress_CapsAt100(t *testing.T) {
	goal, err := NewGoal(0, "Test", 100, 0, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(250)
	require.NoError(t, err)

	assert.Equal(t, 100, goal.Progress())
}

func TestGoalWithdraw_LockedUntilTargetOrDeadline(t *testing.T) {
	deadline := goalNow + 86400
	goal, err := NewGoal(0, "Locked Goal", 1000, deadline, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(500)
	require.NoError(t, err)

	_, err = goal.Withdraw(goalNow)
	assert.ErrorIs(t, err, ErrGoalLocked)
	assert.False(t, goal.IsWithdrawn)

	// Past the deadline the same goal unlocks.
	amount, err := goal.Withdraw(deadline + 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), amount)
	assert.True(t, goal.IsWithdrawn)
}

func TestGoalWithdraw_TargetReached(t *testing.T) {
	goal, err := NewGoal(0, "Complete Goal", 1000, 0, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(1000)
	require.NoError(t, err)

	amount, err := goal.Withdraw(goalNow)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), amount)
}

func TestGoalWithdraw_SecondCallFails(t *testing.T) {
	goal, err := NewGoal(0, "Double Withdraw", 100, 0, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(100)
	require.NoError(t, err)

	_, err = goal.Withdraw(goalNow)
	require.NoError(t, err)

	_, err = goal.Withdraw(goalNow)
	assert.ErrorIs(t, err, ErrGoalAlreadyWithdrawn)
}

func TestGoalUnlocked_NoDeadlineStaysLocked(t *testing.T) {
	goal, err := NewGoal(0, "Test", 1000, 0, goalNow)
	require.NoError(t, err)
	_, _, err = goal.Deposit(999)
	require.NoError(t, err)

	assert.False(t, goal.Unlocked(goalNow+1_000_000_000))
}
