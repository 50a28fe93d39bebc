package dscontract

import (
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"oxcart/port/ds"
)

// PriorityQueue is the behavioural contract of ds.PriorityQueue.
// The Make function must return an empty PriorityQueue which orders its elements by compare.
func PriorityQueue[T comparable](mk contract.Make[ds.PriorityQueue[T]], compare func(a, b T) int, opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	pq := let.Var(s, func(t *testcase.T) ds.PriorityQueue[T] {
		return mk(t)
	})

	values := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, 3, 12)
	})

	withValues := func(s *testcase.Spec) {
		pq.Let(s, func(t *testcase.T) ds.PriorityQueue[T] {
			q := pq.Super(t)
			for _, v := range values.Get(t) {
				_, err := q.Push(v)
				assert.NoError(t, err)
			}
			return q
		})
	}

	maxOf := func(vs []T) T {
		return slices.MaxFunc(vs, compare)
	}

	s.When("queue is empty", func(s *testcase.Spec) {
		s.Then("length is zero", func(t *testcase.T) {
			assert.Equal(t, 0, pq.Get(t).Len())
		})

		s.Then("#Pop reports out of bounds", func(t *testcase.T) {
			_, err := pq.Get(t).Pop()
			assert.ErrorIs(t, err, ds.ErrPriorityQueueOutOfBounds)
		})

		s.Then("#Peek reports out of bounds", func(t *testcase.T) {
			_, err := pq.Get(t).Peek()
			assert.ErrorIs(t, err, ds.ErrPriorityQueueOutOfBounds)
		})

		s.Then("#Find reports absence", func(t *testcase.T) {
			_, ok := pq.Get(t).Find(c.makeElem(t))
			assert.False(t, ok)
		})
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act2(func(t *testcase.T) (int, error) {
			return pq.Get(t).Push(value.Get(t))
		})

		s.Then("the length increases by one", func(t *testcase.T) {
			before := pq.Get(t).Len()
			_, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, before+1, pq.Get(t).Len())
		})

		s.When("queue contains values", func(s *testcase.Spec) {
			withValues(s)

			value.Let(s, func(t *testcase.T) T {
				for {
					v := c.makeElem(t)
					if !slices.Contains(values.Get(t), v) {
						return v
					}
				}
			})

			s.Then("the returned position is where the value can be found", func(t *testcase.T) {
				pos, err := act(t)
				assert.NoError(t, err)

				got, ok := pq.Get(t).Find(value.Get(t))
				assert.True(t, ok)
				assert.Equal(t, pos, got)
			})

			s.Then("the maximum is updated when needed", func(t *testcase.T) {
				_, err := act(t)
				assert.NoError(t, err)

				got, err := pq.Get(t).Peek()
				assert.NoError(t, err)
				exp := maxOf(append(slices.Clone(values.Get(t)), value.Get(t)))
				assert.Equal(t, 0, compare(exp, got))
			})
		})
	})

	s.Describe("#Peek", func(s *testcase.Spec) {
		withValues(s)

		s.Then("the maximum is returned", func(t *testcase.T) {
			got, err := pq.Get(t).Peek()
			assert.NoError(t, err)
			assert.Equal(t, 0, compare(maxOf(values.Get(t)), got))
		})

		s.Then("the maximum is not removed", func(t *testcase.T) {
			_, err := pq.Get(t).Peek()
			assert.NoError(t, err)
			assert.Equal(t, len(values.Get(t)), pq.Get(t).Len())
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		withValues(s)

		s.Then("the maximum is removed and returned", func(t *testcase.T) {
			got, err := pq.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, 0, compare(maxOf(values.Get(t)), got))
			assert.Equal(t, len(values.Get(t))-1, pq.Get(t).Len())
		})

		s.Then("popping every element yields them in descending order", func(t *testcase.T) {
			var got []T
			for range values.Get(t) {
				v, err := pq.Get(t).Pop()
				assert.NoError(t, err)
				got = append(got, v)
			}

			exp := slices.Clone(values.Get(t))
			slices.SortFunc(exp, func(a, b T) int { return compare(b, a) })
			assert.True(t, slices.IsSortedFunc(got, func(a, b T) int { return compare(b, a) }))
			assert.ContainsExactly(t, exp, got)

			_, err := pq.Get(t).Pop()
			assert.ErrorIs(t, err, ds.ErrPriorityQueueOutOfBounds)
			assert.Equal(t, 0, pq.Get(t).Len())
		})
	})

	s.Describe("#Find", func(s *testcase.Spec) {
		withValues(s)

		s.Then("every pushed value is found", func(t *testcase.T) {
			for _, v := range values.Get(t) {
				_, ok := pq.Get(t).Find(v)
				assert.True(t, ok)
			}
		})

		s.Then("positions are within the queue's length", func(t *testcase.T) {
			for _, v := range values.Get(t) {
				pos, _ := pq.Get(t).Find(v)
				assert.True(t, 0 <= pos && pos < pq.Get(t).Len())
			}
		})
	})

	return s.AsSuite(fmt.Sprintf("PriorityQueue[%s]", reflectkit.TypeOf[T]().String()))
}
