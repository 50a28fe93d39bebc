package dslist_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"oxcart/port/ds"
	"oxcart/port/ds/dscontract"
	"oxcart/port/ds/dslist"
)

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	ll := let.Var(s, func(t *testcase.T) *dslist.LinkedList[int] {
		return &dslist.LinkedList[int]{}
	})

	s.Context("implements List", dscontract.List(func(tb testing.TB) ds.List[int] {
		return &dslist.LinkedList[int]{}
	}).Spec)

	s.Test("smoke", func(t *testcase.T) {
		var ll dslist.LinkedList[int]

		ll.Append(1, 2, 3)
		ll.Append(4)
		ll.Prepend(-1, 0)
		assert.Equal(t, []int{-1, 0, 1, 2, 3, 4}, ll.ToSlice())

		assert.NoError(t, ll.Insert(3, 42))
		assert.Equal(t, []int{-1, 0, 1, 42, 2, 3, 4}, ll.ToSlice())

		v, err := ll.Remove(0)
		assert.NoError(t, err)
		assert.Equal(t, -1, v)

		v, err = ll.Remove(ll.Len() - 1)
		assert.NoError(t, err)
		assert.Equal(t, 4, v)
		assert.Equal(t, []int{0, 1, 42, 2, 3}, ll.ToSlice())

		assert.NoError(t, ll.Swap(0, 4))
		assert.Equal(t, []int{3, 1, 42, 2, 0}, ll.ToSlice())
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Prepend(newVS.Get(t)...)
		})

		s.Then("values are placed at the beginning in order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), ll.Get(t).ToSlice())
		})

		s.When("elements were already present", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(existing.Get(t)...)
			})

			s.Then("the existing values follow the new ones", func(t *testcase.T) {
				act(t)

				exp := append(append([]int{}, newVS.Get(t)...), existing.Get(t)...)
				assert.Equal(t, exp, ll.Get(t).ToSlice())
				assert.Equal(t, len(exp), ll.Get(t).Len())
			})
		})
	})

	s.Test("positional access from both ends of the chain", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(5, 20), t.Random.Int)
		ll.Get(t).Append(vs...)

		for i, exp := range vs {
			got, err := ll.Get(t).Get(i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("the chain stays consistent after removing every element", func(t *testcase.T) {
		ll.Get(t).Append(1, 2, 3)
		for ll.Get(t).Len() > 0 {
			_, err := ll.Get(t).Remove(t.Random.IntN(ll.Get(t).Len()))
			assert.NoError(t, err)
		}
		assert.Empty(t, ll.Get(t).ToSlice())

		ll.Get(t).Append(7)
		assert.Equal(t, []int{7}, ll.Get(t).ToSlice())
	})
}
