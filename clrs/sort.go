// Package clrs holds small exercises from "Introduction to Algorithms".
package clrs

import "cmp"

// InsertionSort sorts s in ascending order, in place.
func InsertionSort[T cmp.Ordered](s []T) {
	InsertionSortFunc(s, cmp.Compare[T])
}

// InsertionSortFunc sorts s in place using compare. The sort is stable.
func InsertionSortFunc[T any](s []T, compare func(a, b T) int) {

	for j := 1; j < len(s); j++ {
		key := s[j]

		// shift larger elements of the sorted prefix one slot right
		i := j - 1
		for i >= 0 && compare(s[i], key) > 0 {
			s[i+1] = s[i]
			i--
		}
		s[i+1] = key
	}

}
