package queue

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFront(t *testing.T, q IQueue[int], expected int) {
	t.Helper()
	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, expected, v)
}

func assertDequeue(t *testing.T, q IQueue[int], expected int) {
	t.Helper()
	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, expected, v)
}

func TestQueue(t *testing.T) {
	tests := []struct {
		details     string
		constructor func() IQueue[int]
	}{
		{
			details:     "unsafe queue",
			constructor: NewQueue[int],
		},
		{
			details:     "thread safe queue",
			constructor: NewThreadSafeQueue[int],
		},
		{
			details:     "zero value queue",
			constructor: func() IQueue[int] { return &Queue[int]{} },
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.details, func(t *testing.T) {
			t.Run("new queue is empty", func(t *testing.T) {
				q := test.constructor()
				assert.Zero(t, q.Len())
				assert.True(t, q.IsEmpty())
				v, ok := q.Dequeue()
				assert.False(t, ok)
				assert.Zero(t, v)
				v, ok = q.Peek()
				assert.False(t, ok)
				assert.Zero(t, v)
			})

			t.Run("enqueue then peek does not remove", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue(1)
				assert.False(t, q.IsEmpty())
				assert.Equal(t, 1, q.Len())
				assertFront(t, q, 1)
				assert.Equal(t, 1, q.Len())
			})

			t.Run("multiple enqueue and dequeue", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue(1, 2, 3, 4)
				assert.Equal(t, 4, q.Len())
				assertDequeue(t, q, 1)
				assertDequeue(t, q, 2)
				assertDequeue(t, q, 3)
				assertDequeue(t, q, 4)
				assert.True(t, q.IsEmpty())
			})

			t.Run("growth keeps FIFO order across wrap around", func(t *testing.T) {
				q := test.constructor()
				next := 0
				expected := 0
				for round := 0; round < 10; round++ {
					for i := 0; i < 7; i++ {
						q.Enqueue(next)
						next++
					}
					for i := 0; i < 3; i++ {
						assertDequeue(t, q, expected)
						expected++
					}
				}
				assert.Equal(t, next-expected, q.Len())
				assert.Equal(t, []int{30, 31, 32}, slices.Collect(q.Values())[:3])
				assert.True(t, q.IsEmpty())
			})

			t.Run("enqueue sequence", func(t *testing.T) {
				q := test.constructor()
				q.EnqueueSequence(slices.Values([]int{5, 6}))
				assertFront(t, q, 5)
				assert.Equal(t, 2, q.Len())
			})

			t.Run("clear then reuse", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue(10, 20)
				q.Clear()
				assert.True(t, q.IsEmpty())
				q.Enqueue(30)
				assertFront(t, q, 30)
			})

			t.Run("values drains the queue", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue(1, 2, 3, 4)
				assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(q.Values()))
				assert.True(t, q.IsEmpty())
			})

			t.Run("values only drains elements present at call time", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue(1, 2)
				var drained []int
				for v := range q.Values() {
					drained = append(drained, v)
					q.Enqueue(v * 10)
				}
				assert.Equal(t, []int{1, 2}, drained)
				assert.Equal(t, []int{10, 20}, slices.Collect(q.Values()))
			})
		})
	}
}
