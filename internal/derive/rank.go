package derive

import "sort"

// Rank gives each of n rows its 1-based position under less. Rows that compare
// equal keep their input order, so the result is reproducible.
func Rank(n int, less func(i, j int) bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return less(order[a], order[b])
	})

	ranks := make([]int, n)
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}

	return ranks
}

// CompareNullsLast orders two nullable values, putting nil after every non-nil
// value in both directions.
func CompareNullsLast(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	c := compareFloat(*a, *b)
	if desc {
		return -c
	}

	return c
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
