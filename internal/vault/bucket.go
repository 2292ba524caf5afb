package vault

import "github.com/autovault/vault-server/internal/bps"

// Bucket is a named sub-balance with a target share of the account's total
// deposited funds. Buckets are append-only: deactivation keeps the index
// stable, so Index identifies a bucket for the account's lifetime.
type Bucket struct {
	Index     int
	Name      string
	Color     string
	TargetBps int64
	Balance   int64
	IsActive  bool
}

// DefaultBuckets returns the four starter buckets created lazily on an
// account's first deposit: 40/30/20/10.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Index: 0, Name: "Savings", Color: "#10b981", TargetBps: 4000, IsActive: true},
		{Index: 1, Name: "Bills", Color: "#3b82f6", TargetBps: 3000, IsActive: true},
		{Index: 2, Name: "Spending", Color: "#f59e0b", TargetBps: 2000, IsActive: true},
		{Index: 3, Name: "Investment", Color: "#8b5cf6", TargetBps: 1000, IsActive: true},
	}
}

// BucketSet is an account's full bucket sequence, ordered by index.
type BucketSet []Bucket

// TotalBalance sums the balances of all active buckets.
func (s BucketSet) TotalBalance() int64 {
	var total int64
	for _, b := range s {
		if b.IsActive {
			total += b.Balance
		}
	}
	return total
}

// TotalBps sums the target percentages of all active buckets.
func (s BucketSet) TotalBps() int64 {
	var total int64
	for _, b := range s {
		if b.IsActive {
			total += b.TargetBps
		}
	}
	return total
}

// ActiveCount returns the number of active buckets.
func (s BucketSet) ActiveCount() int {
	count := 0
	for _, b := range s {
		if b.IsActive {
			count++
		}
	}
	return count
}

// Get returns the bucket at idx.
func (s BucketSet) Get(idx int) (Bucket, error) {
	if idx < 0 || idx >= len(s) {
		return Bucket{}, ErrBucketNotFound
	}
	return s[idx], nil
}

func (s BucketSet) activeIndexes() []int {
	var idxs []int
	for i, b := range s {
		if b.IsActive {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (s BucketSet) activeWeights(idxs []int) []int64 {
	weights := make([]int64, len(idxs))
	for i, idx := range idxs {
		weights[i] = s[idx].TargetBps
	}
	return weights
}

// Deposit distributes amount across the active buckets in index order.
// Every bucket but the last active one receives the floor share of its
// target percentage; the last active bucket receives the exact remainder,
// so the account's total grows by exactly amount. If the account has no
// buckets yet the default set is created first.
func (s *BucketSet) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	if s.ActiveCount() == 0 {
		*s = append(*s, DefaultBuckets()...)
	}
	if s.TotalBps() != bps.BasisPoints {
		return ErrPercentageSumInvalid
	}

	idxs := s.activeIndexes()
	parts := bps.Split(amount, s.activeWeights(idxs))
	for i, idx := range idxs {
		(*s)[idx].Balance += parts[i]
	}
	return nil
}

// Withdraw removes amount from a single bucket, leaving the rest untouched.
func (s BucketSet) Withdraw(idx int, amount int64) error {
	if amount <= 0 {
		return ErrZeroAmount
	}
	bucket, err := s.Get(idx)
	if err != nil {
		return err
	}
	if amount > bucket.Balance {
		return ErrInsufficientBucketBalance
	}
	s[idx].Balance -= amount
	return nil
}

// Transfer moves amount between two buckets. The total balance is
// unchanged.
func (s BucketSet) Transfer(from, to int, amount int64) error {
	if from == to {
		return ErrSameBucket
	}
	if amount <= 0 {
		return ErrZeroAmount
	}
	source, err := s.Get(from)
	if err != nil {
		return err
	}
	if _, err := s.Get(to); err != nil {
		return err
	}
	if amount > source.Balance {
		return ErrInsufficientBucketBalance
	}
	s[from].Balance -= amount
	s[to].Balance += amount
	return nil
}

// Rebalance recomputes every active bucket's balance to its target share
// of the current total. The last active bucket receives the remainder, so
// the total is identical before and after.
func (s BucketSet) Rebalance() (total int64, err error) {
	if s.TotalBps() != bps.BasisPoints {
		return 0, ErrPercentageSumInvalid
	}

	total = s.TotalBalance()
	idxs := s.activeIndexes()
	parts := bps.Split(total, s.activeWeights(idxs))
	for i, idx := range idxs {
		s[idx].Balance = parts[i]
	}
	return total, nil
}

// Add appends a new active bucket with a zero balance and returns its
// index. The new target percentage must fit in the remaining headroom.
func (s *BucketSet) Add(name string, targetBps int64, color string) (int, error) {
	if targetBps < 0 || s.TotalBps()+targetBps > bps.BasisPoints {
		return 0, ErrPercentageSumInvalid
	}
	idx := len(*s)
	*s = append(*s, Bucket{
		Index:     idx,
		Name:      name,
		Color:     color,
		TargetBps: targetBps,
		IsActive:  true,
	})
	return idx, nil
}

// SetTargetBps changes a bucket's target percentage without moving any
// balances. The sum with the old value replaced must not exceed 100%.
func (s BucketSet) SetTargetBps(idx int, targetBps int64) error {
	bucket, err := s.Get(idx)
	if err != nil {
		return err
	}
	if targetBps < 0 || s.TotalBps()-bucket.TargetBps+targetBps > bps.BasisPoints {
		return ErrPercentageSumInvalid
	}
	s[idx].TargetBps = targetBps
	return nil
}
