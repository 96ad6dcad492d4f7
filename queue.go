package hashadt

import "github.com/pkg/errors"

var (
	// ErrQueueFull is returned by Enqueue when the queue is at capacity.
	ErrQueueFull = errors.New("queue exceeds capacity, cannot enqueue")
	// ErrQueueEmpty is returned by Dequeue on an empty queue.
	ErrQueueEmpty = errors.New("cannot dequeue, queue is empty")
)

// Queue is a bounded FIFO queue built from linked nodes.
type Queue[T any] struct {
	head     *node[T]
	tail     *node[T]
	size     int
	capacity int
}

// NewQueue creates an empty queue holding at most capacity elements.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{capacity: capacity}
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool { return q.size >= q.capacity }

// Enqueue appends data at the tail. Returns ErrQueueFull when the queue is
// already at capacity.
func (q *Queue[T]) Enqueue(data T) error {
	if q.size >= q.capacity {
		return ErrQueueFull
	}
	n := &node[T]{data: data}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
	return nil
}

// Dequeue removes and returns the element at the head. Returns ErrQueueEmpty
// when there is nothing to dequeue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrQueueEmpty
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.data, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }
