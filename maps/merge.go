// Package maps provides helpers combining maps the way objects are merged and defaulted.
package maps

import (
	"maps"
	"slices"
)

// Merge merges multiple maps into a new map.
// Later maps override earlier ones on key conflicts.
// Nil maps are ignored.
func Merge[K comparable, T any](m ...map[K]T) map[K]T {
	return Extend(make(map[K]T, len(m)), m...)
}

// Extend copies every entry of each source into dst, in argument order, so
// that later sources overwrite earlier ones. It returns dst, allocating it if nil.
func Extend[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	if dst == nil {
		dst = make(M, len(sources))
	}
	for _, src := range sources {
		maps.Copy(dst, src)
	}
	return dst
}

// Defaults fills in the keys of dst which have no entry yet, using the first
// source providing them. Existing entries are never overwritten, even when they
// hold a zero value. It returns dst, allocating it if nil.
func Defaults[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	if dst == nil {
		dst = make(M, len(sources))
	}
	for _, src := range sources {
		for k, v := range src {
			if _, exists := dst[k]; !exists {
				dst[k] = v
			}
		}
	}
	return dst
}

// Keys returns the keys of m sorted using compare.
func Keys[M ~map[K]V, K comparable, V any](m M, compare func(a, b K) int) []K {
	return slices.SortedFunc(maps.Keys(m), compare)
}
