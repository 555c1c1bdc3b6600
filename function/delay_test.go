package function

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/underbar-go/underbar/mocks"
)

func TestDelayNeverSynchronous(t *testing.T) {
	loop := newVirtualLoop(t)
	var got []string
	Delay(loop, 0, func(args ...string) { got = append(got, args...) }, "x")
	assert.Empty(t, got)
	assert.Equal(t, 1, loop.RunPending())
	assert.Equal(t, []string{"x"}, got)
}

func TestDelayCopiesArguments(t *testing.T) {
	loop := newVirtualLoop(t)
	args := []string{faker.Word(), faker.Word()}
	expected := append([]string(nil), args...)
	var got []string
	Delay(loop, time.Second, func(a ...string) { got = a }, args...)
	args[0] = "changed"
	_, err := loop.Advance(time.Second)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDelaySameDeadlineOrder(t *testing.T) {
	loop := newVirtualLoop(t)
	var order []int
	record := func(v ...int) { order = append(order, v...) }
	for i := range 10 {
		Delay(loop, 5*time.Millisecond, record, i)
	}
	Defer(loop, record, -1)
	DelayAction(loop, 5*time.Millisecond, func() { order = append(order, 10) })
	_, err := loop.Advance(5 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, order)
}

func TestDelayed(t *testing.T) {
	loop := newVirtualLoop(t)
	var got []int
	f := Delayed(loop, time.Minute, func(v ...int) { got = append(got, v...) })
	f(1)
	f(2, 3)
	assert.Empty(t, got)
	_, err := loop.Advance(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDelayUsesScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduler := mocks.NewMockScheduler(ctrl)
	var scheduled func()
	scheduler.EXPECT().Schedule(3*time.Second, gomock.Any()).DoAndReturn(func(_ time.Duration, f func()) {
		scheduled = f
	}).Times(1)

	called := false
	Delay(scheduler, 3*time.Second, func(args ...bool) { called = args[0] }, true)
	require.NotNil(t, scheduled)
	assert.False(t, called)
	scheduled()
	assert.True(t, called)
}
