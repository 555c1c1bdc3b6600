package function

import (
	"github.com/underbar-go/underbar/hashing"
)

// Primitive is the set of types memoised functions can be keyed by. Keys are
// compared by value. NaN is never equal to itself, so NaN keys are never cached.
type Primitive interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Memoizer caches the results of a function per argument. The cache is
// unbounded and entries are never evicted. See BoundedMemoizer otherwise.
type Memoizer[K Primitive, V any] struct {
	cache map[K]V
	f     func(K) V
}

// NewMemoizer returns a memoizer of f.
func NewMemoizer[K Primitive, V any](f func(K) V) *Memoizer[K, V] {
	return &Memoizer[K, V]{
		cache: map[K]V{},
		f:     f,
	}
}

// Call returns the cached result for key, invoking f only if there is none.
func (m *Memoizer[K, V]) Call(key K) V {
	if v, found := m.cache[key]; found {
		return v
	}
	v := m.f(key)
	m.cache[key] = v
	return v
}

// Len returns the number of cached results.
func (m *Memoizer[K, V]) Len() int {
	return len(m.cache)
}

// Memoize returns a function caching the result of f for every distinct
// argument, so that f is invoked at most once per argument.
func Memoize[K Primitive, V any](f func(K) V) func(K) V {
	return NewMemoizer(f).Call
}

// MemoizeWithError is similar to Memoize for a function which may fail.
// Failures are returned but not cached, so the next call with the same
// argument invokes f again.
func MemoizeWithError[K Primitive, V any](f func(K) (V, error)) func(K) (V, error) {
	cache := map[K]V{}
	return func(key K) (V, error) {
		if v, found := cache[key]; found {
			return v, nil
		}
		v, err := f(key)
		if err != nil {
			return v, err
		}
		cache[key] = v
		return v, nil
	}
}

// MemoizeArguments is similar to Memoize for a function of any arguments. The
// cache is keyed by hashing.ArgumentsKey: arguments are compared on their type
// and Go syntax representation. Pointers are compared on their address, so
// distinct pointers to equal values are different keys, and mutating a pointee
// does not invalidate its entry.
func MemoizeArguments[V any](f func(...any) V) func(...any) V {
	cache := map[string]V{}
	return func(args ...any) V {
		key := hashing.ArgumentsKey(args...)
		if v, found := cache[key]; found {
			return v
		}
		v := f(args...)
		cache[key] = v
		return v
	}
}
