package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_CreatesDefaultBuckets(t *testing.T) {
	var set BucketSet

	err := set.Deposit(1000)

	require.NoError(t, err)
	require.Len(t, set, 4)
	assert.Equal(t, "Savings", set[0].Name)
	assert.Equal(t, int64(4000), set[0].TargetBps)
	assert.Equal(t, int64(3000), set[1].TargetBps)
	assert.Equal(t, int64(2000), set[2].TargetBps)
	assert.Equal(t, int64(1000), set[3].TargetBps)
	assert.Equal(t, int64(10000), set.TotalBps())
}

func TestDeposit_DistributesByTargetPercentage(t *testing.T) {
	var set BucketSet

	err := set.Deposit(1000)

	require.NoError(t, err)
	assert.Equal(t, int64(400), set[0].Balance)
	assert.Equal(t, int64(300), set[1].Balance)
	assert.Equal(t, int64(200), set[2].Balance)
	assert.Equal(t, int64(100), set[3].Balance)
	assert.Equal(t, int64(1000), set.TotalBalance())
}

func TestDeposit_RemainderLandsOnLastActiveBucket(t *testing.T) {
	set := BucketSet{
		{Index: 0, TargetBps: 3333, IsActive: true},
		{Index: 1, TargetBps: 3333, IsActive: true},
		{Index: 2, TargetBps: 3334, IsActive: true},
	}

	err := set.Deposit(100)

	require.NoError(t, err)
	assert.Equal(t, int64(33), set[0].Balance)
	assert.Equal(t, int64(33), set[1].Balance)
	// floor share would be 33; the last bucket absorbs the dust.
	assert.Equal(t, int64(34), set[2].Balance)
}

func TestDeposit_RemainderSkipsInactiveTail(t *testing.T) {
	set := BucketSet{
		{Index: 0, TargetBps: 5000, IsActive: true},
		{Index: 1, TargetBps: 5000, IsActive: true},
		{Index: 2, TargetBps: 0, IsActive: false},
	}

	err := set.Deposit(101)

	require.NoError(t, err)
	assert.Equal(t, int64(50), set[0].Balance)
	// last ACTIVE bucket by index, not last bucket.
	assert.Equal(t, int64(51), set[1].Balance)
	assert.Equal(t, int64(0), set[2].Balance)
}

func TestDeposit_Conservation(t *testing.T) {
	var set BucketSet
	var deposited int64

	for _, amount := range []int64{1, 3, 7, 999, 1000, 12345, 1} {
		require.NoError(t, set.Deposit(amount))
		deposited += amount
		assert.Equal(t, deposited, set.TotalBalance())
		assert.Equal(t, int64(10000), set.TotalBps())
	}
}

func TestDeposit_ZeroAmount(t *testing.T) {
	var set BucketSet

	err := set.Deposit(0)

	assert.ErrorIs(t, err, ErrZeroAmount)
	assert.Empty(t, set)
}

func TestDeposit_RejectsIncompletePercentageSum(t *testing.T) {
	set := BucketSet{
		{Index: 0, TargetBps: 4000, IsActive: true},
		{Index: 1, TargetBps: 4000, IsActive: true},
	}

	err := set.Deposit(100)

	assert.ErrorIs(t, err, ErrPercentageSumInvalid)
	assert.Equal(t, int64(0), set.TotalBalance())
}

func TestWithdraw_OnlyAffectsTargetBucket(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	err := set.Withdraw(0, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(300), set[0].Balance)
	assert.Equal(t, int64(300), set[1].Balance)
	assert.Equal(t, int64(200), set[2].Balance)
	assert.Equal(t, int64(100), set[3].Balance)
	assert.Equal(t, int64(900), set.TotalBalance())
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	err := set.Withdraw(0, 500)

	assert.ErrorIs(t, err, ErrInsufficientBucketBalance)
	assert.Equal(t, int64(1000), set.TotalBalance())
}

func TestWithdraw_UnknownBucket(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	assert.ErrorIs(t, set.Withdraw(9, 10), ErrBucketNotFound)
}

func TestTransfer_MovesExactAmount(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	err := set.Transfer(0, 1, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(300), set[0].Balance)
	assert.Equal(t, int64(400), set[1].Balance)
	assert.Equal(t, int64(200), set[2].Balance)
	assert.Equal(t, int64(100), set[3].Balance)
	assert.Equal(t, int64(1000), set.TotalBalance())
}

func TestTransfer_SameBucket(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	assert.ErrorIs(t, set.Transfer(0, 0, 100), ErrSameBucket)
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	err := set.Transfer(3, 0, 500)

	assert.ErrorIs(t, err, ErrInsufficientBucketBalance)
	assert.Equal(t, int64(100), set[3].Balance)
}

func TestRebalance_RestoresTargetShares(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))
	require.NoError(t, set.Transfer(0, 1, 200))

	total, err := set.Rebalance()

	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)
	assert.Equal(t, int64(400), set[0].Balance)
	assert.Equal(t, int64(300), set[1].Balance)
	assert.Equal(t, int64(200), set[2].Balance)
	assert.Equal(t, int64(100), set[3].Balance)
}

func TestRebalance_RemainderToLastActiveBucket(t *testing.T) {
	set := BucketSet{
		{Index: 0, TargetBps: 3333, Balance: 100, IsActive: true},
		{Index: 1, TargetBps: 3333, Balance: 0, IsActive: true},
		{Index: 2, TargetBps: 3334, Balance: 1, IsActive: true},
	}

	total, err := set.Rebalance()

	require.NoError(t, err)
	assert.Equal(t, int64(101), total)
	assert.Equal(t, int64(33), set[0].Balance)
	assert.Equal(t, int64(33), set[1].Balance)
	assert.Equal(t, int64(35), set[2].Balance)
	assert.Equal(t, int64(101), set.TotalBalance())
}

func TestAdd_RespectsHeadroom(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(100))

	_, err := set.Add("Extra", 100, "#000000")
	assert.ErrorIs(t, err, ErrPercentageSumInvalid)

	require.NoError(t, set.SetTargetBps(0, 3500))
	idx, err := set.Add("Emergency", 500, "#ff0000")

	require.NoError(t, err)
	assert.Equal(t, 4, idx)
	assert.Equal(t, "Emergency", set[4].Name)
	assert.Equal(t, int64(500), set[4].TargetBps)
	assert.Equal(t, int64(0), set[4].Balance)
	assert.Equal(t, int64(10000), set.TotalBps())
}

func TestSetTargetBps_DoesNotMoveBalances(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	err := set.SetTargetBps(0, 3500)

	require.NoError(t, err)
	assert.Equal(t, int64(3500), set[0].TargetBps)
	assert.Equal(t, int64(400), set[0].Balance)
}

func TestSetTargetBps_RejectsOverflow(t *testing.T) {
	var set BucketSet
	require.NoError(t, set.Deposit(1000))

	assert.ErrorIs(t, set.SetTargetBps(0, 4100), ErrPercentageSumInvalid)
	assert.Equal(t, int64(4000), set[0].TargetBps)
}
