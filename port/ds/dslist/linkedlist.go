package dslist

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"

	"oxcart/port/ds"
)

// LinkedList is a List backed by a doubly linked chain of elements.
// Positional access walks the chain from the nearer end.
// The zero value is an empty LinkedList ready to use.
type LinkedList[T comparable] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

var _ ds.List[string] = (*LinkedList[string])(nil)
var _ ds.SliceConvertable[string] = (*LinkedList[string])(nil)

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs = make([]T, 0, ll.length)
	for v := range ll.Values() {
		vs = append(vs, v)
	}
	return vs
}

// Len returns the length of elements in the list
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	e, ok := ll.lookup(index)
	if !ok {
		var zero T
		return zero, ds.ErrListOutOfBounds
	}
	return e.data, nil
}

func (ll *LinkedList[T]) Ref(index int) (*T, error) {
	e, ok := ll.lookup(index)
	if !ok {
		return nil, ds.ErrListOutOfBounds
	}
	return &e.data, nil
}

func (ll *LinkedList[T]) Set(index int, v T) error {
	e, ok := ll.lookup(index)
	if !ok {
		return ds.ErrListOutOfBounds
	}
	e.data = v
	return nil
}

func (ll *LinkedList[T]) Insert(index int, v T) error {
	switch {
	case index < 0 || ll.length < index:
		return ds.ErrListOutOfBounds
	case index == 0:
		ll.prepend(v)
		return nil
	case index == ll.length:
		ll.append(v)
		return nil
	}
	next, ok := ll.lookup(index)
	if !ok {
		return ds.ErrListImpossible
	}
	e := &llElem[T]{data: v, prev: next.prev, next: next}
	next.prev.next = e
	next.prev = e
	ll.length++
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	e, ok := ll.lookup(index)
	if !ok {
		var zero T
		return zero, ds.ErrListOutOfBounds
	}
	ll.unlink(e)
	return e.data, nil
}

func (ll *LinkedList[T]) unlink(e *llElem[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		ll.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		ll.tail = e.prev
	}
	e.prev, e.next = nil, nil
	ll.length--
}

// Swap exchanges the data of the two nodes, the chain itself is left untouched.
func (ll *LinkedList[T]) Swap(i, j int) error {
	a, ok := ll.lookup(i)
	if !ok {
		return ds.ErrListOutOfBounds
	}
	b, ok := ll.lookup(j)
	if !ok {
		return ds.ErrListOutOfBounds
	}
	a.data, b.data = b.data, a.data
	return nil
}

func (ll *LinkedList[T]) Contains(v T) bool {
	_, ok := ll.Find(v)
	return ok
}

func (ll *LinkedList[T]) Find(v T) (int, bool) {
	var i int
	for e := range ll.Values() {
		if e == v {
			return i, true
		}
		i++
	}
	return -1, false
}

func (ll *LinkedList[T]) FindAll(v T) []int {
	var (
		indexes = []int{}
		i       int
	)
	for e := range ll.Values() {
		if e == v {
			indexes = append(indexes, i)
		}
		i++
	}
	return indexes
}

func (ll *LinkedList[T]) Count(v T) int {
	var n int
	for e := range ll.Values() {
		if e == v {
			n++
		}
	}
	return n
}

func (ll *LinkedList[T]) Clear() {
	ll.head = nil
	ll.tail = nil
	ll.length = 0
}

func (ll *LinkedList[T]) lookup(index int) (*llElem[T], bool) {
	if index < 0 || ll.length <= index {
		return nil, false
	}
	if index < ll.length/2 {
		current := ll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current, current != nil
	}
	current := ll.tail
	for i := ll.length - 1; index < i; i-- {
		current = current.prev
	}
	return current, current != nil
}
