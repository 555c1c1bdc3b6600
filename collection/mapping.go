package collection

import (
	"cmp"
	"iter"
	"slices"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/field"
)

//
// Mapping utilities
//

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// MapRefFunc defines a mapping function that accepts a pointer to T1 and returns a pointer to T2.
type MapRefFunc[T1, T2 any] func(*T1) *T2

// MapWithErrorFunc defines a mapping function that may return an error.
type MapWithErrorFunc[T1, T2 any] func(T1) (T2, error)

// IdentityMapFunc returns a mapping function that returns its input unchanged.
func IdentityMapFunc[T any]() MapFunc[T, T] {
	return Identity[T]
}

// MapSequence maps each element of s using f and returns a sequence of mapped values.
func MapSequence[T1 any, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return MapSequenceWithError(s, func(t1 T1) (T2, error) {
		return f(t1), nil
	})
}

// MapSequenceWithError maps each element of s using f, which may return an error.
// Mapping stops if f returns an error or if the consumer declines the yielded value.
func MapSequenceWithError[T1 any, T2 any](s iter.Seq[T1], f MapWithErrorFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		_ = Each(s, func(v T1) error {
			mapped, err := f(v)
			if err != nil || !yield(mapped) {
				return commonerrors.ErrEOF
			}
			return nil
		})
	}
}

// Map creates a new slice populated with the results of calling f on every element of s.
func Map[T1 any, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	return MapIndexed(s, func(e T1, _ int) T2 {
		return f(e)
	})
}

// MapIndexed is similar to Map but f also receives the index of the element.
func MapIndexed[S ~[]T1, T1 any, T2 any](s S, f func(T1, int) T2) []T2 {
	result := make([]T2, 0, len(s))
	EachIndexed(s, func(e T1, i int, _ S) {
		result = append(result, f(e, i))
	})
	return result
}

// MapWithError is similar to Map but f may return an error, in which case the mapping stops and the error is returned.
func MapWithError[T1 any, T2 any](s []T1, f MapWithErrorFunc[T1, T2]) (result []T2, err error) {
	result = make([]T2, 0, len(s))
	err = Each(slices.Values(s), func(e T1) error {
		mapped, subErr := f(e)
		if subErr != nil {
			return subErr
		}
		result = append(result, mapped)
		return nil
	})
	return
}

// MapRef is similar to Map but uses references. Mapping stops at the first nil result.
func MapRef[T1 any, T2 any](s []T1, f MapRefFunc[T1, T2]) []T2 {
	result, _ := MapWithError(s, func(e T1) (T2, error) {
		var zero T2
		mapped := f(field.ToOptionalOrNilIfEmpty(e))
		if mapped == nil {
			return zero, commonerrors.ErrEOF
		}
		return *mapped, nil
	})
	return result
}

// MapEntries creates a new slice with the results of calling f on every entry of m, in ascending key order.
func MapEntries[M ~map[K]V, K cmp.Ordered, V any, T any](m M, f func(V, K) T) []T {
	result := make([]T, 0, len(m))
	EachEntry(m, func(v V, k K, _ M) {
		result = append(result, f(v, k))
	})
	return result
}

// Pluck extracts the value stored under key in each record. Records without the key yield the zero value.
func Pluck[M ~map[K]V, K comparable, V any](records []M, key K) []V {
	return Map(records, func(record M) V {
		return record[key]
	})
}

// Invoke calls f on every element of s with the same extra arguments, and returns the results.
// Method expressions such as `(*T).Method` can be used to invoke a method on every element.
func Invoke[T any, A any, R any](s []T, f func(T, ...A) R, args ...A) []R {
	return Map(s, func(e T) R {
		return f(e, args...)
	})
}
