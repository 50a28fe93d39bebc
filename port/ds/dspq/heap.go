// Package dspq implements the ds.PriorityQueue capability.
package dspq

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/frameless/port/option"

	"oxcart/port/ds"
)

// Heap is a PriorityQueue backed by a binary max-heap stored in a slice.
//
// Every element is less than or equal to its parent under Compare,
// so the root is always the maximum.
type Heap[T comparable] struct {
	// Compare defines the priority order, the element with the greatest Compare result surfaces first.
	// It returns a negative number when a < b, zero when a == b and a positive number when a > b.
	Compare func(a, b T) int

	vs []T
}

var _ ds.PriorityQueue[int] = (*Heap[int])(nil)
var _ ds.SliceConvertable[int] = (*Heap[int])(nil)

// New makes a Heap which uses the natural ordering of T.
func New[T cmp.Ordered](opts ...Option) *Heap[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc makes a Heap which orders its elements with the compare function.
func NewFunc[T comparable](compare func(a, b T) int, opts ...Option) *Heap[T] {
	c := option.ToConfig[Config](opts)
	return &Heap[T]{
		Compare: compare,
		vs:      make([]T, 0, max(c.Capacity, 0)),
	}
}

func (h *Heap[T]) Len() int { return len(h.vs) }

// Push appends v, then sifts it up while it exceeds its parent.
// The returned position is v's index in the heap order.
func (h *Heap[T]) Push(v T) (int, error) {
	h.vs = append(h.vs, v)
	return h.siftUp(len(h.vs) - 1), nil
}

// Pop swaps the root with the last element, shrinks the heap,
// then sifts the new root down towards its larger child.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.vs) == 0 {
		var zero T
		return zero, ds.ErrPriorityQueueOutOfBounds
	}
	var (
		last = len(h.vs) - 1
		top  = h.vs[0]
		zero T
	)
	h.vs[0] = h.vs[last]
	h.vs[last] = zero
	h.vs = h.vs[:last]
	if 0 < len(h.vs) {
		h.siftDown(0)
	}
	return top, nil
}

func (h *Heap[T]) Peek() (T, error) {
	if len(h.vs) == 0 {
		var zero T
		return zero, ds.ErrPriorityQueueOutOfBounds
	}
	return h.vs[0], nil
}

func (h *Heap[T]) Find(v T) (int, bool) {
	index := slices.Index(h.vs, v)
	return index, 0 <= index
}

// Values iterates the elements in heap order.
func (h *Heap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.vs {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements in heap order.
func (h *Heap[T]) ToSlice() []T {
	return slices.Clone(h.vs)
}

func (h *Heap[T]) siftUp(i int) int {
	for 0 < i {
		parent := (i - 1) / 2
		if h.compare(h.vs[i], h.vs[parent]) <= 0 {
			break
		}
		h.vs[i], h.vs[parent] = h.vs[parent], h.vs[i]
		i = parent
	}
	return i
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.vs)
	for {
		child := 2*i + 1
		if n <= child {
			return
		}
		if right := child + 1; right < n && 0 < h.compare(h.vs[right], h.vs[child]) {
			child = right
		}
		if h.compare(h.vs[child], h.vs[i]) <= 0 {
			return
		}
		h.vs[i], h.vs[child] = h.vs[child], h.vs[i]
		i = child
	}
}

func (h *Heap[T]) compare(a, b T) int {
	if h.Compare == nil {
		panic("dspq.Heap is missing its Compare function, use dspq.New or dspq.NewFunc")
	}
	return h.Compare(a, b)
}
