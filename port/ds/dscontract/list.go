package dscontract

import (
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"oxcart/port/ds"
)

// List is the behavioural contract of ds.List.
// The Make function must return an empty List.
func List[T comparable](mk contract.Make[ds.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	list := let.Var(s, func(t *testcase.T) ds.List[T] {
		return mk(t)
	})

	// values are the initial content of the list in the "list contains values" contexts.
	values := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, 3, 7)
	})

	withValues := func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) ds.List[T] {
			l := list.Super(t)
			l.Append(values.Get(t)...)
			return l
		})
	}

	isEmpty := func(t *testcase.T) {
		t.Helper()
		assert.Equal(t, 0, list.Get(t).Len(), `The "Make" list should be empty but isn't, please check the setup.`)
	}

	s.Test("smoke", func(t *testcase.T) {
		var (
			l        = mk(t)
			expected = c.makeElems(t, 3, 7)
		)

		l.Append()
		assert.Equal(t, 0, l.Len())

		for i, v := range expected {
			assert.Equal(t, i, l.Len())
			l.Append(v)
		}

		assert.Equal(t, expected, iterkit.Collect(l.Values()))
		if sc, ok := l.(ds.SliceConvertable[T]); ok {
			assert.Equal(t, expected, sc.ToSlice())
		}
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return list.Get(t).Get(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of bounds is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the length is unchanged", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, len(values.Get(t)), list.Get(t).Len())
				})
			})

			s.And("index is the length of the list", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("out of bounds is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("out of bounds is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
				})
			})
		})
	})

	s.Describe("#Ref", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (*T, error) {
			return list.Get(t).Ref(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			index.LetValue(s, 0)

			s.Then("out of bounds is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("the reference points to the element", func(t *testcase.T) {
				ptr, err := act(t)
				assert.NoError(t, err)
				assert.NotNil(t, ptr)
				assert.Equal(t, values.Get(t)[index.Get(t)], *ptr)
			})

			s.Then("mutating through the reference changes only that element", func(t *testcase.T) {
				ptr, err := act(t)
				assert.NoError(t, err)

				exp := slices.Clone(values.Get(t))
				nv := c.makeElem(t)
				exp[index.Get(t)] = nv
				*ptr = nv

				assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("out of bounds is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return list.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of bounds is reported", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
				assert.Equal(t, 0, list.Get(t).Len())
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the new value is returned by Get", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := list.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("the total length remains the same", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t)), list.Get(t).Len())
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Clone(values.Get(t))
					exp[index.Get(t)] = value.Get(t)
					assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("out of bounds is reported and the list is unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return list.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, 1, list.Get(t).Len())

					got, err := list.Get(t).Get(0)
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("out of bounds is reported", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
					assert.Equal(t, 0, list.Get(t).Len())
				})
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index is within [0, length]", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, len(values.Get(t)))
				})

				s.Then("the value is placed at the index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := list.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("the length increases by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))+1, list.Get(t).Len())
				})

				s.Then("the elements from the index are shifted one position later", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("index is the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it acts as append", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := append(slices.Clone(values.Get(t)), value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("out of bounds is reported and the list is unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("out of bounds is reported", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return list.Get(t).Remove(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			index.LetValue(s, 0)

			s.Then("out of bounds is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the removed element is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the length shrinks by one", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, len(values.Get(t))-1, list.Get(t).Len())
				})

				s.Then("the later elements are shifted one position earlier", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
					assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("index points to the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				s.Then("the last element is returned and removed", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[len(values.Get(t))-1], got)
					assert.Equal(t, len(values.Get(t))-1, list.Get(t).Len())
				})
			})

			s.And("index is the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("out of bounds is reported and the list is unchanged", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Swap", func(s *testcase.Spec) {
		var (
			i = let.Var[int](s, nil)
			j = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) error {
			return list.Get(t).Swap(i.Get(t), j.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			i.LetValue(s, 0)
			j.LetValue(s, 0)

			s.Then("out of bounds is reported", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("both indexes point to existing values", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the two elements are exchanged and the rest is preserved", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := slices.Clone(values.Get(t))
					exp[i.Get(t)], exp[j.Get(t)] = exp[j.Get(t)], exp[i.Get(t)]
					assert.Equal(t, exp, iterkit.Collect(list.Get(t).Values()))
					assert.Equal(t, len(values.Get(t)), list.Get(t).Len())
				})

				s.Then("swapping twice restores the original list", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.NoError(t, act(t))

					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("the two indexes are the same", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return i.Get(t)
				})

				s.Then("it is a successful no-op", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})
			})

			s.And("one of the indexes is out of bound", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("out of bounds is reported and the list is unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), ds.ErrListOutOfBounds)
					assert.Equal(t, values.Get(t), iterkit.Collect(list.Get(t).Values()))
				})

				s.Then("the argument order doesn't matter", func(t *testcase.T) {
					err := list.Get(t).Swap(j.Get(t), i.Get(t))
					assert.ErrorIs(t, err, ds.ErrListOutOfBounds)
				})
			})
		})
	})

	s.Describe("searching", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Before(isEmpty)

			s.Then("nothing is found", func(t *testcase.T) {
				l := list.Get(t)
				assert.False(t, l.Contains(value.Get(t)))
				_, ok := l.Find(value.Get(t))
				assert.False(t, ok)
				assert.Equal(t, 0, l.Count(value.Get(t)))
			})

			s.Then("FindAll reports an empty result", func(t *testcase.T) {
				got := list.Get(t).FindAll(value.Get(t))
				assert.NotNil(t, got)
				assert.Empty(t, got)
			})
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("the value is absent", func(s *testcase.Spec) {
				value.Let(s, func(t *testcase.T) T {
					for {
						v := c.makeElem(t)
						if !slices.Contains(values.Get(t), v) {
							return v
						}
					}
				})

				s.Then("nothing is found", func(t *testcase.T) {
					l := list.Get(t)
					assert.False(t, l.Contains(value.Get(t)))
					_, ok := l.Find(value.Get(t))
					assert.False(t, ok)
					assert.Equal(t, 0, l.Count(value.Get(t)))

					got := l.FindAll(value.Get(t))
					assert.NotNil(t, got)
					assert.Empty(t, got)
				})
			})

			s.And("the value is present multiple times", func(s *testcase.Spec) {
				values.Let(s, func(t *testcase.T) []T {
					vs := values.Super(t)
					t.Random.Repeat(2, 4, func() {
						vs = slices.Insert(vs, t.Random.IntBetween(0, len(vs)), value.Get(t))
					})
					return vs
				})

				s.Then("Contains reports it", func(t *testcase.T) {
					assert.True(t, list.Get(t).Contains(value.Get(t)))
				})

				s.Then("Find returns the lowest index", func(t *testcase.T) {
					got, ok := list.Get(t).Find(value.Get(t))
					assert.True(t, ok)
					assert.Equal(t, slices.Index(values.Get(t), value.Get(t)), got)
				})

				s.Then("FindAll returns every index in ascending order", func(t *testcase.T) {
					exp := indexesOf(values.Get(t), value.Get(t))
					assert.Equal(t, exp, list.Get(t).FindAll(value.Get(t)))
				})

				s.Then("Count returns the number of occurrences", func(t *testcase.T) {
					exp := len(indexesOf(values.Get(t), value.Get(t)))
					assert.Equal(t, exp, list.Get(t).Count(value.Get(t)))
				})

				s.Then("searching leaves the list unchanged", func(t *testcase.T) {
					l := list.Get(t)
					l.Contains(value.Get(t))
					l.Find(value.Get(t))
					l.FindAll(value.Get(t))
					l.Count(value.Get(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(l.Values()))
				})
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).Clear()
		})

		s.When("list contains values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("all the elements are removed", func(t *testcase.T) {
				act(t)
				assert.Equal(t, 0, list.Get(t).Len())
				assert.Empty(t, iterkit.Collect(list.Get(t).Values()))
			})

			s.Then("it is idempotent", func(t *testcase.T) {
				act(t)
				act(t)
				assert.Equal(t, 0, list.Get(t).Len())
			})

			s.Then("the list stays usable", func(t *testcase.T) {
				act(t)
				v := c.makeElem(t)
				list.Get(t).Append(v)
				assert.Equal(t, []T{v}, iterkit.Collect(list.Get(t).Values()))
			})
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("it is a no-op", func(t *testcase.T) {
				act(t)
				assert.Equal(t, 0, list.Get(t).Len())
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", reflectkit.TypeOf[T]().String()))
}
