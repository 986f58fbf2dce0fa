// Package sortutil provides an in-place quicksort over ordered and
// caller-compared element types.
package sortutil

import "cmp"

// insertionCutoff is the partition size below which insertion sort wins.
const insertionCutoff = 12

// Quicksort sorts values in place in ascending order.
func Quicksort[T cmp.Ordered](values []T) {
	QuicksortFunc(values, cmp.Compare[T])
}

// QuicksortFunc sorts values in place using compare, which must return a
// negative number when a orders before b, zero when they are equivalent, and
// a positive number when a orders after b. The sort is not stable.
func QuicksortFunc[T any](values []T, compare func(a, b T) int) {
	quicksort(values, compare)
}

func quicksort[T any](v []T, compare func(a, b T) int) {
	for len(v) > insertionCutoff {
		p := partition(v, compare)
		// Recurse into the smaller side and loop on the larger, so the
		// stack stays logarithmic on adversarial input.
		if p < len(v)-p-1 {
			quicksort(v[:p], compare)
			v = v[p+1:]
		} else {
			quicksort(v[p+1:], compare)
			v = v[:p]
		}
	}
	insertionSort(v, compare)
}

// partition moves a median-of-three pivot to its final position and returns
// that index. Elements left of the index order before the pivot.
func partition[T any](v []T, compare func(a, b T) int) int {
	last := len(v) - 1
	m := medianIndex(v, 0, len(v)/2, last, compare)
	v[m], v[last] = v[last], v[m]

	i := 0
	for j := 0; j < last; j++ {
		if compare(v[j], v[last]) < 0 {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[last] = v[last], v[i]
	return i
}

// medianIndex returns whichever of a, b, c indexes the median element.
func medianIndex[T any](v []T, a, b, c int, compare func(x, y T) int) int {
	if compare(v[a], v[b]) < 0 {
		switch {
		case compare(v[b], v[c]) < 0:
			return b
		case compare(v[a], v[c]) < 0:
			return c
		default:
			return a
		}
	}
	switch {
	case compare(v[a], v[c]) < 0:
		return a
	case compare(v[b], v[c]) < 0:
		return c
	default:
		return b
	}
}

func insertionSort[T any](v []T, compare func(a, b T) int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && compare(v[j], v[j-1]) < 0; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// IsSorted reports whether values are in ascending order.
func IsSorted[T cmp.Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
