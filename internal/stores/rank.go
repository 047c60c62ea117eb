package stores

import (
	"cmp"
	"slices"
)

// TopN is the length of every ranking list.
const TopN = 5

// topBy returns a sorted copy of items, highest metric first, cut to n
// entries. Ties keep their original relative order. items is never
// modified.
func topBy[T any](items []T, n int, metric func(T) int64) []T {
	ranked := cloneSlice(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(metric(b), metric(a))
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// bestBy returns the single highest entry, or nil when items is empty.
func bestBy[T any](items []T, metric func(T) int64) *T {
	top := topBy(items, 1, metric)
	if len(top) == 0 {
		return nil
	}
	best := top[0]
	return &best
}
