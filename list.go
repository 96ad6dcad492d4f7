package hashadt

import "github.com/pkg/errors"

// node is one singly-linked element, shared by List and Queue.
type node[T any] struct {
	data T
	next *node[T]
}

// List is a singly-linked list. Insert pushes to the front, so iteration
// order is reverse insertion order.
type List[T comparable] struct {
	head *node[T]
	size int
}

// NewList creates an empty list.
func NewList[T comparable]() *List[T] { return &List[T]{} }

// Insert pushes data onto the front of the list.
func (l *List[T]) Insert(data T) {
	l.head = &node[T]{data: data, next: l.head}
	l.size++
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// RemoveFirst removes the head of the list.
func (l *List[T]) RemoveFirst() error {
	if l.IsEmpty() {
		return errors.New("list is empty, cannot remove first node")
	}
	l.head = l.head.next
	l.size--
	return nil
}

// Remove removes the first node holding data.
func (l *List[T]) Remove(data T) error {
	if l.IsEmpty() {
		return errors.New("list is empty, cannot remove specified node")
	}
	var prev *node[T]
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.data == data {
			if prev == nil {
				l.head = curr.next
			} else {
				prev.next = curr.next
			}
			l.size--
			return nil
		}
		prev = curr
	}
	return errors.New("data does not exist in linked list")
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.size }

// Clear removes every element.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}
