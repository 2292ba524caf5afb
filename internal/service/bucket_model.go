package service

// Bucket represents one allocation bucket in the service layer. Amounts
// are minor units; TargetBps is the bucket's share in basis points.
type Bucket struct {
	Index     int
	Name      string
	Color     string
	TargetBps int64
	Balance   int64
	IsActive  bool
}

// Portfolio is an account's full bucket view.
type Portfolio struct {
	Buckets      []Bucket
	TotalBalance int64
}
