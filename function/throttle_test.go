package function

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/underbar-go/underbar/mocks"
)

func TestThrottle(t *testing.T) {
	loop := newVirtualLoop(t)
	var calls [][]int
	f := Throttle(loop, 100*time.Millisecond, func(v ...int) {
		calls = append(calls, v)
	})

	f(1)
	assert.Equal(t, [][]int{{1}}, calls)
	f(2)
	f(3)
	assert.Len(t, calls, 1)
	assert.Equal(t, 1, loop.Len())

	_, err := loop.Advance(99 * time.Millisecond)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
	_, err = loop.Advance(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {3}}, calls)

	_, err = loop.Advance(time.Second)
	require.NoError(t, err)
	f(4)
	assert.Equal(t, [][]int{{1}, {3}, {4}}, calls)
	assert.Zero(t, loop.Len())
}

func TestThrottleWindowStartsAtTrailingCall(t *testing.T) {
	loop := newVirtualLoop(t)
	calls := 0
	f := Throttle(loop, 10*time.Millisecond, func(...string) { calls++ })
	f()
	f()
	_, err := loop.Advance(10 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	f()
	assert.Equal(t, 2, calls)
	_, err = loop.Advance(10 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestThrottleSchedulesRemainingWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	loop := mocks.NewMockClockScheduler(ctrl)
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	gomock.InOrder(
		loop.EXPECT().Now().Return(start),
		loop.EXPECT().Now().Return(start.Add(30*time.Millisecond)),
		loop.EXPECT().Schedule(70*time.Millisecond, gomock.Any()),
	)
	f := Throttle(loop, 100*time.Millisecond, func(...int) {})
	f(1)
	f(2)
	f(3)
}
