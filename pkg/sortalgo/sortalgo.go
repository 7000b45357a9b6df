// Package sortalgo implements the comparison sorts under benchmark:
// insertion sort, top-down merge sort, and the standard library's stable
// sort as a baseline.
//
// Every sort returns a newly allocated slice; the caller's slice is never
// mutated. All three sorts are stable.
package sortalgo

import (
	"cmp"
	"slices"
)

// Insertion sorts s ascending with insertion sort and returns the result.
// O(n^2) worst and average case, O(n) on already-sorted input.
func Insertion[T cmp.Ordered](s []T) []T {
	return InsertionFunc(s, cmp.Compare)
}

// InsertionFunc is like Insertion but orders elements by the comparison
// function cmp, which follows the slices package convention: negative when
// a < b, zero when a == b, positive when a > b.
func InsertionFunc[T any](s []T, cmp func(a, b T) int) []T {
	out := slices.Clone(s)
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		// Strict > keeps equal elements in their original order.
		for j >= 0 && cmp(out[j], key) > 0 {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}

// Merge sorts s ascending with top-down merge sort and returns the result.
// O(n log n) in all cases.
func Merge[T cmp.Ordered](s []T) []T {
	return MergeFunc(s, cmp.Compare)
}

// MergeFunc is like Merge but orders elements by cmp.
func MergeFunc[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) <= 1 {
		return slices.Clone(s)
	}
	mid := len(s) / 2
	left := MergeFunc(s[:mid], cmp)
	right := MergeFunc(s[mid:], cmp)
	return merge(left, right, cmp)
}

// merge combines two sorted slices into one. On ties the left element wins,
// which makes the overall sort stable.
func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// Baseline sorts s ascending with the standard library's stable sort and
// returns the result. It is the speed and correctness reference the two
// hand-written sorts are measured against.
func Baseline[T cmp.Ordered](s []T) []T {
	return BaselineFunc(s, cmp.Compare)
}

// BaselineFunc is like Baseline but orders elements by cmp.
func BaselineFunc[T any](s []T, cmp func(a, b T) int) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, cmp)
	return out
}
