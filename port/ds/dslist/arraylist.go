package dslist

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"

	"oxcart/port/ds"
)

// ArrayList is a List backed by a contiguous growable slice.
// The zero value is an empty ArrayList ready to use.
type ArrayList[T comparable] struct {
	vs []T
}

var _ ds.List[string] = (*ArrayList[string])(nil)
var _ ds.SliceConvertable[string] = (*ArrayList[string])(nil)

func NewArrayList[T comparable](opts ...Option) *ArrayList[T] {
	c := option.ToConfig[Config](opts)
	return &ArrayList[T]{vs: make([]T, 0, max(c.Capacity, 0))}
}

func (l *ArrayList[T]) Len() int { return len(l.vs) }

func (l *ArrayList[T]) Get(index int) (T, error) {
	if !l.has(index) {
		var zero T
		return zero, ds.ErrListOutOfBounds
	}
	return l.vs[index], nil
}

func (l *ArrayList[T]) Ref(index int) (*T, error) {
	if !l.has(index) {
		return nil, ds.ErrListOutOfBounds
	}
	return &l.vs[index], nil
}

func (l *ArrayList[T]) Set(index int, v T) error {
	if !l.has(index) {
		return ds.ErrListOutOfBounds
	}
	l.vs[index] = v
	return nil
}

func (l *ArrayList[T]) Insert(index int, v T) error {
	if index < 0 || len(l.vs) < index {
		return ds.ErrListOutOfBounds
	}
	l.vs = slices.Insert(l.vs, index, v)
	return nil
}

func (l *ArrayList[T]) Remove(index int) (T, error) {
	if !l.has(index) {
		var zero T
		return zero, ds.ErrListOutOfBounds
	}
	v := l.vs[index]
	l.vs = slices.Delete(l.vs, index, index+1)
	return v, nil
}

func (l *ArrayList[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

func (l *ArrayList[T]) Swap(i, j int) error {
	if !l.has(i) || !l.has(j) {
		return ds.ErrListOutOfBounds
	}
	l.vs[i], l.vs[j] = l.vs[j], l.vs[i]
	return nil
}

func (l *ArrayList[T]) Contains(v T) bool {
	return slices.Contains(l.vs, v)
}

func (l *ArrayList[T]) Find(v T) (int, bool) {
	index := slices.Index(l.vs, v)
	return index, 0 <= index
}

func (l *ArrayList[T]) FindAll(v T) []int {
	var indexes = []int{}
	for i, e := range l.vs {
		if e == v {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (l *ArrayList[T]) Count(v T) int {
	var n int
	for _, e := range l.vs {
		if e == v {
			n++
		}
	}
	return n
}

func (l *ArrayList[T]) Clear() {
	clear(l.vs) // release references held by the backing array
	l.vs = l.vs[:0]
}

func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) ToSlice() []T {
	return slices.Clone(l.vs)
}

// Equal reports whether oth holds the same elements in the same order.
// The backing store of oth does not matter.
func (l *ArrayList[T]) Equal(oth ds.List[T]) bool {
	if oth == nil || l.Len() != oth.Len() {
		return false
	}
	return slices.Equal(l.vs, iterkit.Collect(oth.Values()))
}

// Clone returns an independent copy of the ArrayList.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{vs: slices.Clone(l.vs)}
}

func (l *ArrayList[T]) has(index int) bool {
	return 0 <= index && index < len(l.vs)
}
