// Package quicksort provides an in-place quicksort with uniformly random
// pivot selection. Random pivots make the O(n²) worst case depend on the
// random draws rather than on the input order, and the three-way partition
// keeps runs of equal elements out of the recursion entirely.
package quicksort

import (
	"cmp"
	"math/rand/v2"
)

// Sort sorts s in place in ascending order. Pivots come from the process
// random source; use SortWithRand to pin them for reproducibility.
func Sort[T cmp.Ordered](s []T) {
	quickSort(s, rand.IntN)
}

// SortWithRand is Sort with an explicit pivot source.
func SortWithRand[T cmp.Ordered](s []T, rnd *rand.Rand) {
	quickSort(s, rnd.IntN)
}

func quickSort[T cmp.Ordered](s []T, intn func(int) int) {
	for len(s) > 1 {
		lt, gt := partition(s, s[intn(len(s))])
		// Recurse into the smaller side only, keeping the stack logarithmic.
		if lt < len(s)-gt {
			quickSort(s[:lt], intn)
			s = s[gt:]
		} else {
			quickSort(s[gt:], intn)
			s = s[:lt]
		}
	}
}

// partition reorders s around pivot and returns the bounds of the equal run:
// s[:lt] < pivot, s[lt:gt] == pivot, s[gt:] > pivot.
func partition[T cmp.Ordered](s []T, pivot T) (lt, gt int) {
	gt = len(s)
	for i := 0; i < gt; {
		switch {
		case s[i] < pivot:
			s[i], s[lt] = s[lt], s[i]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}
