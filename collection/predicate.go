/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

//
// Predicates built on folding
//

// Contains returns whether target is present in s.
func Contains[S ~[]E, E comparable](s S, target E) bool {
	return Reduce(s, false, func(found bool, e E) bool {
		return found || e == target
	})
}

// Every returns whether f returns true for every element of s. It returns true if s is empty.
func Every[S ~[]E, E any](s S, f Predicate[E]) bool {
	return Reduce(s, true, func(allTrue bool, e E) bool {
		return allTrue && f(e)
	})
}

// Some returns whether f returns true for at least one element of s. It returns false if s is empty.
func Some[S ~[]E, E any](s S, f Predicate[E]) bool {
	return !Every(s, OppositeFunc(f))
}

// Match returns true if any of the provided predicates return true for e.
func Match[E any](e E, matches ...FilterFunc[E]) bool {
	return Some(matches, func(m FilterFunc[E]) bool { return m(e) })
}

// MatchAll returns true only if all the provided predicates return true for e.
func MatchAll[E any](e E, matches ...FilterFunc[E]) bool {
	return len(matches) > 0 && Every(matches, func(m FilterFunc[E]) bool { return m(e) })
}
