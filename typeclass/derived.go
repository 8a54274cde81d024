package typeclass

import (
	"slices"

	"github.com/on-the-ground/higher_ive_go/hkt"
)

// Number is the element constraint for Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Widen2 lifts a shape interface K nested inside shape C to the plain
// handle Higher[W, A], e.g. Higher[C, list.Type[int]] to
// Higher[C, Higher[list.Shape, int]].
//
// Every K already is a Higher[W, A], so each element is passed through
// unchanged; F only rebuilds C's container with the wider element type.
func Widen2[C, W, A any, K hkt.Higher[W, A]](
	F Functor[C, K, hkt.Higher[W, A]],
	nested hkt.Higher[C, K],
) hkt.Higher[C, hkt.Higher[W, A]] {
	return F.Map(func(k K) hkt.Higher[W, A] { return k }, nested)
}

// Map2 combines fa and fb with f through AP.
// With a zipping applicative the result pairs elements by position; with a
// cartesian one it holds f applied to every combination.
func Map2[W, A, B, C any](
	F Functor[W, A, func(B) C],
	AP Applicative[W, B, C],
	f func(A, B) C,
	fa hkt.Higher[W, A],
	fb hkt.Higher[W, B],
) hkt.Higher[W, C] {
	curried := F.Map(func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}, fa)
	return AP.Ap(curried, fb)
}

// Flatten joins one level of nesting.
func Flatten[W, A any](
	M Monad[W, hkt.Higher[W, A], A],
	ffa hkt.Higher[W, hkt.Higher[W, A]],
) hkt.Higher[W, A] {
	return M.FlatMap(func(fa hkt.Higher[W, A]) hkt.Higher[W, A] { return fa }, ffa)
}

// Sequence turns a slice of handles into a handle of slices.
//
// The fold starts from the first handle rather than from Unit, so a zipping
// applicative transposes (truncating to the shortest handle) and a cartesian
// one enumerates every combination. An empty xs yields U.Unit of an empty
// slice.
func Sequence[W, A any](
	U Unit[W, []A],
	F0 Functor[W, A, []A],
	F Functor[W, []A, func(A) []A],
	AP Applicative[W, A, []A],
	xs []hkt.Higher[W, A],
) hkt.Higher[W, []A] {
	if len(xs) == 0 {
		return U.Unit([]A{})
	}
	acc := F0.Map(func(a A) []A { return []A{a} }, xs[0])
	for _, x := range xs[1:] {
		acc = Map2(F, AP, func(prefix []A, a A) []A {
			// cartesian branches share prefix
			return append(slices.Clip(prefix), a)
		}, acc, x)
	}
	return acc
}

func Length[W, A any](Fd Foldable[W, A, int], fa hkt.Higher[W, A]) int {
	return Fd.FoldLeft(0, func(n int, _ A) int { return n + 1 }, fa)
}

func Sum[W any, N Number](Fd Foldable[W, N, N], fa hkt.Higher[W, N]) N {
	return Fd.FoldLeft(0, func(acc, n N) N { return acc + n }, fa)
}

// ToSlice collects the elements of fa in traversal order.
func ToSlice[W, A any](Fd Foldable[W, A, []A], fa hkt.Higher[W, A]) []A {
	return Fd.FoldLeft(nil, func(acc []A, a A) []A { return append(acc, a) }, fa)
}
