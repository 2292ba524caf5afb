// Package bps implements fixed-point percentage math in basis points
// (1/10000). All division floors; splits place the rounding remainder on
// the final slot so the pieces always sum back to the input exactly.
package bps

// BasisPoints is the denominator for all percentage math.
const BasisPoints int64 = 10000

// Share returns the floor share of amount at weight basis points.
func Share(amount, weight int64) int64 {
	return amount * weight / BasisPoints
}

// Sum adds up a slice of basis-point weights.
func Sum(weights []int64) int64 {
	var total int64
	for _, w := range weights {
		total += w
	}
	return total
}

// Split distributes amount across the given weights. Every slot but the
// last receives its floor share; the last slot receives the exact
// remainder, so the returned parts always sum to amount.
func Split(amount int64, weights []int64) []int64 {
	if len(weights) == 0 {
		return nil
	}

	parts := make([]int64, len(weights))
	var distributed int64
	for i, w := range weights[:len(weights)-1] {
		parts[i] = Share(amount, w)
		distributed += parts[i]
	}
	parts[len(weights)-1] = amount - distributed

	return parts
}
