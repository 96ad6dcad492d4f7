package hashadt

import "github.com/pkg/errors"

// Array is a dynamic array of T. The backing storage doubles whenever an
// insertion finds it full.
type Array[T any] struct {
	elems []T
}

// NewArray creates an empty array with the given initial capacity.
func NewArray[T any](initialCap int) *Array[T] {
	if initialCap < 1 {
		initialCap = 1
	}
	return &Array[T]{elems: make([]T, 0, initialCap)}
}

func (a *Array[T]) grow() {
	if len(a.elems) < cap(a.elems) {
		return
	}
	grown := make([]T, len(a.elems), cap(a.elems)*2)
	copy(grown, a.elems)
	a.elems = grown
}

// Insert places elem at index, shifting later elements one slot right.
// index may be at most Len, which appends.
func (a *Array[T]) Insert(index int, elem T) error {
	if index < 0 || index > len(a.elems) {
		return errors.Errorf("index (%d) out of bounds for array size (%d)", index, len(a.elems))
	}
	a.grow()
	var zero T
	a.elems = append(a.elems, zero)
	copy(a.elems[index+1:], a.elems[index:])
	a.elems[index] = elem
	return nil
}

// Append adds elem at the end of the array.
func (a *Array[T]) Append(elem T) {
	a.grow()
	a.elems = append(a.elems, elem)
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.elems) {
		var zero T
		return zero, errors.Errorf("index (%d) out of bounds for array size (%d)", index, len(a.elems))
	}
	return a.elems[index], nil
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int { return len(a.elems) }

// Cap returns the current capacity of the backing storage.
func (a *Array[T]) Cap() int { return cap(a.elems) }
