package collection

import (
	"cmp"
	"iter"
	"slices"

	"github.com/underbar-go/underbar/commonerrors"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// ReduceEntryFunc defines a reducer over map entries.
type ReduceEntryFunc[K comparable, V, T any] func(accumulator T, value V, key K) T

// Reduce runs a reducer function f over all elements in the slice, in ascending-index order, starting from accumulator.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence runs a reducer function f over all elements of a sequence, starting from accumulator.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) (result T2) {
	result = accumulator
	_ = Each(s, func(e T1) error {
		result = f(result, e)
		return nil
	})
	return
}

// ReduceWithoutSeed folds s using its first element as the initial accumulator
// and f over the remaining elements. An empty slice returns an ErrEmpty error.
func ReduceWithoutSeed[T any](s []T, f ReduceFunc[T, T]) (T, error) {
	return ReduceSequenceWithoutSeed(slices.Values(s), f)
}

// ReduceSequenceWithoutSeed is similar to ReduceWithoutSeed but works on a sequence.
func ReduceSequenceWithoutSeed[T any](s iter.Seq[T], f ReduceFunc[T, T]) (result T, err error) {
	seeded := false
	_ = Each(s, func(e T) error {
		if !seeded {
			result = e
			seeded = true
			return nil
		}
		result = f(result, e)
		return nil
	})
	if !seeded {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot reduce an empty collection without a seed")
	}
	return
}

// ReduceEntries folds the entries of m in ascending key order, starting from accumulator.
func ReduceEntries[M ~map[K]V, K cmp.Ordered, V, T any](m M, accumulator T, f ReduceEntryFunc[K, V, T]) (result T) {
	result = accumulator
	EachEntry(m, func(v V, k K, _ M) {
		result = f(result, v, k)
	})
	return
}
