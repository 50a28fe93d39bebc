// Package ds contains the capability interfaces of the in-memory containers.
//
// A capability is a behavioural contract that unrelated backing stores can implement,
// and algorithms such as sorting are written against the capability, never the concrete type.
package ds

import "iter"

// List is an ordered, index addressable and growable container.
//
// Every positional operation is bounds checked and reports ErrListOutOfBounds,
// even when the backing store could tolerate the access,
// so stricter backing stores (fixed capacity, linked) can implement the same contract.
type List[T comparable] interface {
	Len
	Values[T]
	// Get returns the element at the given index.
	// Valid indexes are [0, Len()).
	Get(index int) (T, error)
	// Ref returns a pointer to the element stored at the given index,
	// which can be used to mutate that element in place.
	// The pointer stays valid until the next structural change of the List.
	Ref(index int) (*T, error)
	// Set overwrites the element at the given index.
	Set(index int, v T) error
	// Insert places v at the given index, and shifts the elements from index one position later.
	// Valid indexes are [0, Len()], where Len() is equivalent to Append.
	Insert(index int, v T) error
	// Remove removes and returns the element at the given index,
	// and shifts the later elements one position earlier.
	Remove(index int) (T, error)
	// Append adds the values to the end of the List in order.
	Append(vs ...T)
	// Swap exchanges the elements at index i and j.
	// Swapping an index with itself is a no-op.
	Swap(i, j int) error
	// Contains reports whether an element equals to v.
	Contains(v T) bool
	// Find returns the lowest index of an element equal to v.
	Find(v T) (int, bool)
	// FindAll returns every index of an element equal to v in ascending order.
	// When nothing matches, the result is an empty, non-nil slice.
	FindAll(v T) []int
	// Count returns the number of elements equal to v.
	Count(v T) int
	// Clear removes all the elements.
	Clear()
}

// PriorityQueue is a container which always yields its maximum element first.
// The maximum is defined by the ordering the PriorityQueue was constructed with.
type PriorityQueue[T comparable] interface {
	Len
	// Push adds v to the queue, and returns its position in the queue's internal order.
	Push(v T) (int, error)
	// Pop removes and returns the current maximum.
	// Pop on an empty queue reports ErrPriorityQueueOutOfBounds.
	Pop() (T, error)
	// Peek returns the current maximum without removing it.
	Peek() (T, error)
	// Find returns the position of v in the queue's internal order,
	// which is not the sorted order.
	Find(v T) (int, bool)
}

type Len interface {
	Len() int
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

type SliceConvertable[T any] interface {
	ToSlice() []T
}
