package queue

import (
	"iter"
	"slices"
)

const minimumCapacity = 8

// NewQueue returns a Queue which is not thread safe.
func NewQueue[T any]() IQueue[T] {
	return NewQueueWithCapacity[T](minimumCapacity)
}

// NewQueueWithCapacity returns a Queue which is not thread safe and has room for capacity elements before growing.
func NewQueueWithCapacity[T any](capacity int) *Queue[T] {
	return &Queue[T]{buffer: make([]T, max(capacity, minimumCapacity))}
}

// Queue is a FIFO queue backed by a growable ring buffer.
type Queue[T any] struct {
	buffer []T
	head   int
	length int
}

func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

func (q *Queue[T]) Len() int {
	return q.length
}

func (q *Queue[T]) Clear() {
	clear(q.buffer)
	q.head = 0
	q.length = 0
}

func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for range q.Len() {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q *Queue[T]) Peek() (element T, ok bool) {
	if q.length == 0 {
		return
	}
	return q.buffer[q.head], true
}

func (q *Queue[T]) Dequeue() (element T, ok bool) {
	if q.length == 0 {
		return
	}
	var zero T
	element = q.buffer[q.head]
	q.buffer[q.head] = zero
	q.head = (q.head + 1) % len(q.buffer)
	q.length--
	ok = true
	return
}

func (q *Queue[T]) Enqueue(value ...T) {
	q.EnqueueSequence(slices.Values(value))
}

func (q *Queue[T]) EnqueueSequence(seq iter.Seq[T]) {
	for v := range seq {
		q.enqueue(v)
	}
}

func (q *Queue[T]) enqueue(value T) {
	if len(q.buffer) == 0 {
		q.buffer = make([]T, minimumCapacity)
	}
	if q.length == len(q.buffer) {
		q.grow()
	}
	q.buffer[(q.head+q.length)%len(q.buffer)] = value
	q.length++
}

func (q *Queue[T]) grow() {
	grown := make([]T, 2*len(q.buffer))
	n := copy(grown, q.buffer[q.head:])
	copy(grown[n:], q.buffer[:q.head])
	q.buffer = grown
	q.head = 0
}
