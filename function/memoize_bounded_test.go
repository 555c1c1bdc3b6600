package function

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/commonerrors/errortest"
)

func TestBoundedMemoizer(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := atomic.NewInt32(0)
	m, err := NewBoundedMemoizer(func(x int) int {
		calls.Inc()
		return 2 * x
	}, nil)
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	double := m.Func()
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 4, double(2))
	assert.Equal(t, int32(1), calls.Load())

	m.Clear()
	assert.Equal(t, 4, double(2))
	assert.Equal(t, int32(2), calls.Load())
}

func TestBoundedMemoizerExpiry(t *testing.T) {
	defer goleak.VerifyNone(t)
	calls := atomic.NewInt32(0)
	m, err := NewBoundedMemoizer(func(key string) int32 {
		return calls.Inc()
	}, &CacheConfiguration{MaxEntries: 10, TTL: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	first := m.Call("a")
	assert.Equal(t, first, m.Call("a"))
	assert.Eventually(t, func() bool {
		return m.Call("a") != first
	}, 2*time.Second, 20*time.Millisecond)
}

func TestBoundedMemoizerEviction(t *testing.T) {
	defer goleak.VerifyNone(t)
	firstKeyCalls := atomic.NewInt32(0)
	otherCalls := atomic.NewInt32(0)
	m, err := NewBoundedMemoizer(func(x int) int {
		if x == 0 {
			firstKeyCalls.Inc()
		} else {
			otherCalls.Inc()
		}
		return x * x
	}, &CacheConfiguration{MaxEntries: 1})
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	assert.Zero(t, m.Call(0))
	require.Equal(t, int32(1), firstKeyCalls.Load())

	key := 0
	assert.Eventually(t, func() bool {
		key++
		for range 10 {
			assert.Equal(t, key*key, m.Call(key))
		}
		assert.Zero(t, m.Call(0))
		return firstKeyCalls.Load() > 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Positive(t, otherCalls.Load())
}

func TestNewBoundedMemoizerErrors(t *testing.T) {
	_, err := NewBoundedMemoizer[int, int](nil, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = NewBoundedMemoizer(func(x int) int { return x }, &CacheConfiguration{MaxEntries: 0})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, err = NewBoundedMemoizer(func(x int) int { return x }, &CacheConfiguration{MaxEntries: 1, TTL: -time.Second})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
