package function

import (
	"github.com/dgraph-io/ristretto/v2"

	"github.com/underbar-go/underbar/commonerrors"
)

const bufferItems = 64

// BoundedKey is the set of types bounded memoizers can be keyed by.
type BoundedKey interface {
	ristretto.Key
	comparable
}

// BoundedMemoizer caches the results of a function per argument, in a cache
// of bounded size whose entries may also expire. Evicted or expired results
// are recomputed on the next call. Unlike other decorators, it is safe for
// concurrent use, and must be closed to release its background goroutines.
type BoundedMemoizer[K BoundedKey, V any] struct {
	cache *ristretto.Cache[K, V]
	f     func(K) V
	cfg   CacheConfiguration
}

// NewBoundedMemoizer returns a bounded memoizer of f. A nil cfg means DefaultCacheConfiguration.
func NewBoundedMemoizer[K BoundedKey, V any](f func(K) V, cfg *CacheConfiguration) (*BoundedMemoizer[K, V], error) {
	if f == nil {
		return nil, commonerrors.UndefinedParameter("missing function to memoize")
	}
	if cfg == nil {
		cfg = DefaultCacheConfiguration()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid cache configuration")
	}
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        10 * cfg.MaxEntries,
		MaxCost:            cfg.MaxEntries,
		BufferItems:        bufferItems,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create cache")
	}
	return &BoundedMemoizer[K, V]{
		cache: cache,
		f:     f,
		cfg:   *cfg,
	}, nil
}

// Call returns the cached result for key, invoking f if there is none.
func (m *BoundedMemoizer[K, V]) Call(key K) V {
	if v, found := m.cache.Get(key); found {
		return v
	}
	v := m.f(key)
	if m.cfg.TTL > 0 {
		m.cache.SetWithTTL(key, v, 1, m.cfg.TTL)
	} else {
		m.cache.Set(key, v, 1)
	}
	m.cache.Wait()
	return v
}

// Func returns the memoised function.
func (m *BoundedMemoizer[K, V]) Func() func(K) V {
	return m.Call
}

// Clear empties the cache.
func (m *BoundedMemoizer[K, V]) Clear() {
	m.cache.Clear()
}

// Close releases the cache. The memoizer must not be used afterwards.
func (m *BoundedMemoizer[K, V]) Close() error {
	m.cache.Close()
	return nil
}
