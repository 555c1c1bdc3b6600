package queue

import (
	"iter"
	"slices"

	"github.com/sasha-s/go-deadlock"
)

// NewThreadSafeQueue returns a queue which can be shared between goroutines.
func NewThreadSafeQueue[T any]() IQueue[T] {
	return &SafeQueue[T]{
		q: NewQueueWithCapacity[T](minimumCapacity),
	}
}

// SafeQueue guards a Queue with a mutex.
type SafeQueue[T any] struct {
	q  *Queue[T]
	mu deadlock.Mutex
}

func (q *SafeQueue[T]) Enqueue(value ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Enqueue(value...)
}

// EnqueueSequence consumes seq before taking the lock so that the sequence may itself use the queue.
func (q *SafeQueue[T]) EnqueueSequence(seq iter.Seq[T]) {
	values := slices.Collect(seq)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Enqueue(values...)
}

func (q *SafeQueue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Dequeue()
}

func (q *SafeQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Peek()
}

func (q *SafeQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for range q.Len() {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q *SafeQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Len()
}

func (q *SafeQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.IsEmpty()
}

func (q *SafeQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Clear()
}
