package collection

import (
	"cmp"
	"math/rand/v2"
	"reflect"
	"slices"
)

//
// Arrangement utilities: none of them modify their input.
//

// Flatten concatenates the slices of s into a single slice.
func Flatten[S ~[]E, E any](s []S) S {
	total := Reduce(s, 0, func(n int, e S) int { return n + len(e) })
	return Reduce(s, make(S, 0, total), func(result S, e S) S {
		return append(result, e...)
	})
}

// FlattenDeep converts an arbitrarily nested structure of slices or arrays into
// a one-dimensional slice. A value which is not a slice or an array is returned
// as a single element, and nil returns an empty slice.
func FlattenDeep(v any) []any {
	result := []any{}
	if v == nil {
		return result
	}
	return flattenValue(result, reflect.ValueOf(v))
}

func flattenValue(result []any, v reflect.Value) []any {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			result = flattenValue(result, v.Index(i))
		}
		return result
	case reflect.Invalid:
		return append(result, nil)
	case reflect.Interface:
		// nil interface held in a slice of any
		return append(result, nil)
	default:
		return append(result, v.Interface())
	}
}

// Zip groups the elements of the provided slices by index. The result has the
// length of the longest slice and shorter slices are padded with zero values.
func Zip[S ~[]E, E any](s ...S) [][]E {
	length := Reduce(s, 0, func(l int, e S) int { return max(l, len(e)) })
	zipped := make([][]E, length)
	for i := range zipped {
		zipped[i] = Map(s, func(e S) (v E) {
			if i < len(e) {
				v = e[i]
			}
			return
		})
	}
	return zipped
}

// SortBy returns a copy of s sorted in ascending order of the criterion produced by key.
// The sort is stable.
func SortBy[S ~[]E, E any, K cmp.Ordered](s S, key func(E) K) S {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

// Shuffle returns a randomly permuted copy of s.
func Shuffle[S ~[]E, E any](s S) S {
	return shuffle(s, rand.Shuffle)
}

// ShuffleWith is similar to Shuffle but uses the random source r.
func ShuffleWith[S ~[]E, E any](r *rand.Rand, s S) S {
	return shuffle(s, r.Shuffle)
}

func shuffle[S ~[]E, E any](s S, shuffleFunc func(int, func(i, j int))) S {
	shuffled := slices.Clone(s)
	shuffleFunc(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
