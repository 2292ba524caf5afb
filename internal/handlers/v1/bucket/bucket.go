package bucket

// Bucket is the API response model for an allocation bucket.
type Bucket struct {
	BucketID         int    `json:"bucketId" doc:"Bucket index within the account"`
	Name             string `json:"name" doc:"Display name"`
	Color            string `json:"color" doc:"Display color, hex"`
	TargetPercentage int64  `json:"targetPercentage" doc:"Target share in basis points"`
	Balance          string `json:"balance" doc:"Decimal balance"`
	IsActive         bool   `json:"isActive" doc:"Inactive buckets keep their balance but receive no deposits"`
}
