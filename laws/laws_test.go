package laws_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/kinds/list"
	"github.com/on-the-ground/higher_ive_go/kinds/nonemptylist"
	"github.com/on-the-ground/higher_ive_go/kinds/queue"
	"github.com/on-the-ground/higher_ive_go/laws"
)

const propertyN = 200

func randInts(rng *rand.Rand, minLen int) []int {
	xs := make([]int, minLen+rng.IntN(6))
	for i := range xs {
		xs[i] = rng.IntN(201) - 100
	}
	return xs
}

func half(x int) int { return x / 2 }

func render(x int) string { return strconv.Itoa(x) }

func lengthOf(s string) int { return len(s) }

func sameList(x, y collection.List[int]) bool { return x == y }

func TestListLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	dup := func(x int) hkt.Higher[list.Shape, int] { return list.Of(x, x) }
	spell := func(x int) hkt.Higher[list.Shape, string] { return list.Of(render(x), "") }

	for range propertyN {
		x := list.Of(randInts(rng, 0)...)
		a := rng.IntN(100)

		require.NoError(t, laws.FunctorIdentity(list.Functor[int, int](), list.Equal[int], x))
		require.NoError(t, laws.FunctorComposition(
			list.Functor[int, int](), list.Functor[int, string](), list.Functor[int, string](),
			half, render, list.Equal[string], x))
		require.NoError(t, laws.MonadLeftIdentity(list.Monad[int, int](), dup, list.Equal[int], a))
		require.NoError(t, laws.MonadRightIdentity(list.Monad[int, int](), list.Equal[int], x))
		require.NoError(t, laws.MonadAssociativity(
			list.Monad[int, int](), list.Monad[int, string](), list.Monad[int, string](),
			dup, spell, list.Equal[string], x))
		require.NoError(t, laws.FoldConsistency(list.Foldable[int, []int](), x))
		require.NoError(t, laws.RoundTrip(list.Widen[int], list.Narrow[int], sameList, list.Narrow[int](x)))
	}
}

func TestQueueLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	dup := func(x int) hkt.Higher[queue.Shape, int] { return queue.Of(x, x) }
	spell := func(x int) hkt.Higher[queue.Shape, string] { return queue.Of(render(x)) }
	sameQueue := func(x, y collection.Queue[int]) bool { return x == y }

	for range propertyN {
		x := queue.Of(randInts(rng, 0)...)

		require.NoError(t, laws.FunctorIdentity(queue.Functor[int, int](), queue.Equal[int], x))
		require.NoError(t, laws.FunctorComposition(
			queue.Functor[int, int](), queue.Functor[int, string](), queue.Functor[int, string](),
			half, render, queue.Equal[string], x))
		require.NoError(t, laws.MonadLeftIdentity(queue.Monad[int, int](), dup, queue.Equal[int], rng.IntN(100)))
		require.NoError(t, laws.MonadRightIdentity(queue.Monad[int, int](), queue.Equal[int], x))
		require.NoError(t, laws.MonadAssociativity(
			queue.Monad[int, int](), queue.Monad[int, string](), queue.Monad[int, string](),
			dup, spell, queue.Equal[string], x))
		require.NoError(t, laws.FoldConsistency(queue.Foldable[int, []int](), x))
		require.NoError(t, laws.RoundTrip(queue.Widen[int], queue.Narrow[int], sameQueue, queue.Narrow[int](x)))
	}
}

func TestNonEmptyListLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 0))
	dup := func(x int) hkt.Higher[nonemptylist.Shape, int] { return nonemptylist.Of(x, x) }
	spell := func(x int) hkt.Higher[nonemptylist.Shape, string] { return nonemptylist.Of(render(x), "!") }
	sameNEL := func(x, y collection.NonEmptyList[int]) bool { return x.Equal(y) }

	for range propertyN {
		xs := randInts(rng, 1)
		x := nonemptylist.Of(xs[0], xs[1:]...)
		double := nonemptylist.Of(func(v int) int { return v * 2 })

		require.NoError(t, laws.FunctorIdentity(nonemptylist.Functor[int, int](), nonemptylist.Equal[int], x))
		require.NoError(t, laws.FunctorComposition(
			nonemptylist.Functor[int, string](), nonemptylist.Functor[string, int](), nonemptylist.Functor[int, int](),
			render, lengthOf, nonemptylist.Equal[int], x))
		require.NoError(t, laws.MonadLeftIdentity(nonemptylist.Monad[int, int](), dup, nonemptylist.Equal[int], xs[0]))
		require.NoError(t, laws.MonadRightIdentity(nonemptylist.Monad[int, int](), nonemptylist.Equal[int], x))
		require.NoError(t, laws.MonadAssociativity(
			nonemptylist.Monad[int, int](), nonemptylist.Monad[int, string](), nonemptylist.Monad[int, string](),
			dup, spell, nonemptylist.Equal[string], x))
		require.NoError(t, laws.FoldConsistency(nonemptylist.Foldable[int, []int](), x))
		require.NoError(t, laws.RoundTrip(nonemptylist.Widen[int], nonemptylist.Narrow[int], sameNEL, nonemptylist.Narrow[int](x)))
		require.NoError(t, laws.NonEmpty(nonemptylist.Foldable[int, int](),
			x,
			nonemptylist.Functor[int, int]().Map(half, x),
			nonemptylist.ZippingApplicative[int, int]().Ap(double, x),
			nonemptylist.Applicative[int, int]().Ap(double, x),
			nonemptylist.Monad[int, int]().FlatMap(dup, x),
		))
	}
}

// reversing breaks functor identity on every list longer than one.
type reversing struct{}

func (reversing) Map(f func(int) int, fa hkt.Higher[list.Shape, int]) hkt.Higher[list.Shape, int] {
	xs := list.Narrow(fa).ToSlice()
	out := list.Of[int]()
	for i := len(xs) - 1; i >= 0; i-- {
		out.Add(f(xs[i]))
	}
	return out
}

func TestViolationsAreCombined(t *testing.T) {
	err := laws.FunctorIdentity[list.Shape, int](reversing{}, list.Equal[int],
		list.Of(1, 2), list.Of(3), list.Of(4, 5, 6))

	require.Error(t, err)
	assert.ErrorIs(t, err, laws.ErrLawViolated)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "law violated: functor identity: Map(id, [1 2]) = [2 1]")
}

func TestNonEmpty_ReportsEmptyHandle(t *testing.T) {
	err := laws.NonEmpty(list.Foldable[int, int](), list.Of(1), list.Of[int]())

	assert.ErrorIs(t, err, laws.ErrLawViolated)
	assert.EqualError(t, err, "law violated: non-empty: handle 1 is empty")
}

func TestRoundTrip_DetectsCopy(t *testing.T) {
	copying := func(h hkt.Higher[list.Shape, int]) collection.List[int] {
		return collection.NewArrayList(list.Narrow(h).ToSlice()...)
	}
	err := laws.RoundTrip(list.Widen[int], copying, sameList, collection.List[int](collection.NewArrayList(1)))
	assert.ErrorIs(t, err, laws.ErrLawViolated)
}
