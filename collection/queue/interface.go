// Package queue provides first-in, first-out collections.
package queue

import "iter"

// IQueue specifies the behaviour of a first-in, first-out (FIFO) collection.
type IQueue[T any] interface {
	// Enqueue adds elements to the back of the queue.
	Enqueue(value ...T)
	// EnqueueSequence adds every element of a sequence to the back of the queue.
	EnqueueSequence(value iter.Seq[T])
	// Dequeue removes and returns the element at the front of the queue. ok is false if the queue is empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. ok is false if the queue is empty.
	Peek() (element T, ok bool)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Values returns a sequence draining the elements present in the queue when it is called.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
}
