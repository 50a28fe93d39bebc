package dscontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

// ListConfig is the shared configuration of the contracts in this package.
type ListConfig[T any] struct {
	// MakeElem makes a random element for the subject.
	// When omitted, a random value of T is made.
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, makeValue[T])(tb)
}

func (c ListConfig[T]) makeElems(t *testcase.T, minLen, maxLen int) []T {
	return random.Slice(t.Random.IntBetween(minLen, maxLen), func() T {
		return c.makeElem(t)
	}, random.UniqueValues)
}

func makeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

func indexesOf[T comparable](vs []T, v T) []int {
	var out = []int{}
	for i, e := range vs {
		if e == v {
			out = append(out, i)
		}
	}
	return out
}
