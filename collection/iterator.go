// Package collection provides utilities iterating over, folding and transforming slices, maps and sequences.
package collection

import (
	"cmp"
	"iter"
	"slices"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/field"
)

//
// Iteration utilities
//

// OperationFunc defines an operation on a value that may return an error.
type OperationFunc[E any] func(E) error

// OperationRefFunc defines an operation on a pointer to a value that may return an error.
type OperationRefFunc[E any] func(*E) error

// OperationWithoutErrorFunc defines an operation on a value that does not return an error.
type OperationWithoutErrorFunc[E any] func(E)

// OperationWithoutErrorRefFunc defines an operation on a pointer that does not return an error.
type OperationWithoutErrorRefFunc[E any] func(*E)

// IndexedFunc is called with an element of a slice, its index and the slice being traversed.
type IndexedFunc[S ~[]E, E any] func(element E, index int, collection S)

// EntryFunc is called with a value of a map, its key and the map being traversed.
type EntryFunc[M ~map[K]V, K comparable, V any] func(value V, key K, collection M)

func toOperationFunc[E any](f OperationRefFunc[E]) OperationFunc[E] {
	return func(e E) error {
		return f(field.ToOptional(e))
	}
}

func toOperationWithoutErrorFunc[E any](f OperationWithoutErrorRefFunc[E]) OperationWithoutErrorFunc[E] {
	return func(e E) {
		f(field.ToOptional(e))
	}
}

func convertOperationWithoutError[E any](f OperationWithoutErrorFunc[E]) OperationFunc[E] {
	return func(e E) error {
		f(e)
		return nil
	}
}

// Each iterates over a sequence and invokes f for each element. If f
// returns an error, iteration stops and that error is returned, unless it is
// EOF in which case iteration ends without error. A nil sequence is not iterated.
func Each[T any](s iter.Seq[T], f OperationFunc[T]) error {
	if s == nil {
		return nil
	}
	for e := range s {
		err := f(e)
		if err != nil {
			return commonerrors.Ignore(err, commonerrors.ErrEOF)
		}
	}
	return nil
}

// EachRef behaves like Each but invokes f with a reference to each element.
func EachRef[T any](s iter.Seq[T], f OperationRefFunc[T]) error {
	return Each(s, toOperationFunc(f))
}

// EachIndexed invokes f once per element of s in ascending index order,
// passing the element, its index and s itself. Nothing happens if s is nil.
func EachIndexed[S ~[]E, E any](s S, f IndexedFunc[S, E]) {
	for i := range s {
		f(s[i], i, s)
	}
}

// EachEntry invokes f once per entry of m in ascending key order, passing the
// value, its key and m itself. Nothing happens if m is nil.
func EachEntry[M ~map[K]V, K cmp.Ordered, V any](m M, f EntryFunc[M, K, V]) {
	for k, v := range Entries(m) {
		f(v, k, m)
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Entries returns a sequence over the key/value pairs of m in ascending key order.
func Entries[M ~map[K]V, K cmp.Ordered, V any](m M) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range SortedKeys(m) {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// ForEach invokes f on every element of the provided slice.
func ForEach[S ~[]E, E any](s S, f OperationWithoutErrorFunc[E]) {
	_ = Each(slices.Values(s), convertOperationWithoutError(f))
}

// ForEachValues invokes f for each value passed in values.
func ForEachValues[E any](f func(E), values ...E) {
	ForEach(values, f)
}

// ForEachRef invokes f on every element of the provided slice, passing a reference.
func ForEachRef[S ~[]E, E any](s S, f OperationWithoutErrorRefFunc[E]) {
	ForEach(s, toOperationWithoutErrorFunc(f))
}

// ForAll invokes f on every element of the provided slice. Errors returned by f
// are collected into a single error; EOF stops the iteration immediately.
func ForAll[S ~[]E, E any](s S, f OperationFunc[E]) error {
	return ForAllSequence(slices.Values(s), f)
}

// ForAllSequence is similar to ForAll but works on a sequence.
func ForAllSequence[T any](s iter.Seq[T], f OperationFunc[T]) error {
	var err error
	iterErr := Each(s, func(e T) error {
		subErr := f(e)
		if commonerrors.Any(subErr, commonerrors.ErrEOF) {
			return subErr
		}
		if subErr != nil {
			err = commonerrors.Join(err, commonerrors.WrapErrorf(subErr, subErr, "error during iteration over value [%v]", e))
		}
		return nil
	})
	return commonerrors.Join(err, iterErr)
}

// ForAllRef behaves like ForAll but applies f to references of elements.
func ForAllRef[S ~[]E, E any](s S, f OperationRefFunc[E]) error {
	return ForAll(s, toOperationFunc(f))
}

// ForAllSequenceRef behaves like ForAllSequence but applies f to references of elements.
func ForAllSequenceRef[T any](s iter.Seq[T], f OperationRefFunc[T]) error {
	return ForAllSequence(s, toOperationFunc(f))
}
