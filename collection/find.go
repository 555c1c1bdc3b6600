package collection

import (
	"iter"

	"github.com/underbar-go/underbar/commonerrors"
)

//
// Find utilities
//

// IndexOf returns the index of the first occurrence of target in s, or -1 if target is not present.
func IndexOf[S ~[]E, E comparable](s S, target E) int {
	index := -1
	EachIndexed(s, func(e E, i int, _ S) {
		if index == -1 && e == target {
			index = i
		}
	})
	return index
}

// FindInSequence searches elements for the first item satisfying predicate and
// returns its zero-based index and true. It returns -1 and false otherwise.
func FindInSequence[E any](elements iter.Seq[E], predicate Predicate[E]) (int, bool) {
	idx := 0
	found := false
	_ = Each(elements, func(e E) error {
		if predicate(e) {
			found = true
			return commonerrors.ErrEOF
		}
		idx++
		return nil
	})
	if !found {
		return -1, false
	}
	return idx, true
}

// FindInSequenceRef behaves like FindInSequence but accepts a predicate on element references.
func FindInSequenceRef[E any](elements iter.Seq[E], predicate PredicateRef[E]) (int, bool) {
	return FindInSequence(elements, toPredicateFunc(predicate))
}
