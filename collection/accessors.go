/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

// Identity returns whatever value is passed as the argument.
func Identity[T any](v T) T {
	return v
}

// First returns the first element of s, and whether there was one.
func First[S ~[]E, E any](s S) (first E, found bool) {
	if len(s) == 0 {
		return
	}
	return s[0], true
}

// FirstN returns a copy of the first n elements of s. If n is greater than the
// length of s, the whole slice is copied.
func FirstN[S ~[]E, E any](s S, n int) S {
	n = boundLength(len(s), n)
	return append(make(S, 0, n), s[:n]...)
}

// Last returns the last element of s, and whether there was one.
func Last[S ~[]E, E any](s S) (last E, found bool) {
	if len(s) == 0 {
		return
	}
	return s[len(s)-1], true
}

// LastN returns a copy of the last n elements of s. If n is greater than the
// length of s, the whole slice is copied.
func LastN[S ~[]E, E any](s S, n int) S {
	n = boundLength(len(s), n)
	return append(make(S, 0, n), s[len(s)-n:]...)
}

func boundLength(length, n int) int {
	return max(0, min(length, n))
}
