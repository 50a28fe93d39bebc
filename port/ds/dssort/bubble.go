// Package dssort contains sorting algorithms written against the ds capabilities,
// so they work with any backing store.
package dssort

import "oxcart/port/ds"

// Bubble sorts the list in place in ascending order of lessOrEqual,
// using only the List's own positional operations.
//
// lessOrEqual must be a total order over T.
// For every index i, the suffix is scanned from the end back to i+1,
// and an element which should precede the one at i is swapped into place.
//
// Any error from the List aborts the sort and is returned unchanged.
// The List keeps its elements in that case, but their order is unspecified.
func Bubble[T comparable](list ds.List[T], lessOrEqual func(a, b T) bool) error {
	n := list.Len()
	if n <= 1 {
		return nil
	}
	for i := 0; i < n; i++ {
		for j := n - 1; i < j; j-- {
			later, err := list.Get(j)
			if err != nil {
				return err
			}
			current, err := list.Get(i)
			if err != nil {
				return err
			}
			if !lessOrEqual(later, current) {
				continue
			}
			if err := list.Swap(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}
