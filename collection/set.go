package collection

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

//
// Set operations
//

// Uniq returns a duplicate-free copy of s, keeping the order of first occurrences.
func Uniq[S ~[]E, E comparable](s S) S {
	seen := mapset.NewThreadUnsafeSetWithSize[E](len(s))
	return Filter(s, func(e E) bool {
		return seen.Add(e)
	})
}

// UniqueEntries returns a slice containing the distinct values from the
// provided slice. The order of elements is not guaranteed.
func UniqueEntries[T comparable](slice []T) []T {
	return mapset.NewThreadUnsafeSet(slice...).ToSlice()
}

// Unique returns the distinct values from the provided sequence.
// The order of elements is not guaranteed.
func Unique[T comparable](s iter.Seq[T]) []T {
	return UniqueEntries(Collect(s))
}

// Union returns the union of slice1 and slice2, containing only unique
// values. The order of elements is not guaranteed.
func Union[T comparable](slice1, slice2 []T) []T {
	subSet := mapset.NewThreadUnsafeSet(slice1...)
	_ = subSet.Append(slice2...)
	return subSet.ToSlice()
}

// Intersection returns the distinct elements of first which are present in
// every one of others, in the order they appear in first.
func Intersection[S ~[]E, E comparable](first S, others ...S) S {
	sets := toSets(others)
	return Uniq(Filter(first, func(e E) bool {
		return Every(sets, func(set mapset.Set[E]) bool {
			return set.Contains(e)
		})
	}))
}

// Difference returns the elements of first which are not present in any of
// others. Order and duplicates of first are preserved.
func Difference[S ~[]E, E comparable](first S, others ...S) S {
	sets := toSets(others)
	return Reject(first, func(e E) bool {
		return Some(sets, func(set mapset.Set[E]) bool {
			return set.Contains(e)
		})
	})
}

// SymmetricDifference returns distinct values that are present in either
// slice1 or slice2 but not in both. The order of elements is not guaranteed.
func SymmetricDifference[T comparable](slice1, slice2 []T) []T {
	return mapset.NewThreadUnsafeSet(slice1...).SymmetricDifference(mapset.NewThreadUnsafeSet(slice2...)).ToSlice()
}

func toSets[S ~[]E, E comparable](s []S) []mapset.Set[E] {
	return Map(s, func(values S) mapset.Set[E] {
		return mapset.NewThreadUnsafeSet([]E(values)...)
	})
}
