// Package typeclass defines the operation bundles that generic algorithms are
// written against, parameterized by a shape witness W.
//
// Go methods cannot introduce type parameters, so every element type an
// operation touches is a parameter of the interface itself: a Functor that
// maps ints to strings over lists is a Functor[list.Shape, int, string].
// Shape packages hand out instances through constructors such as
// list.Functor[int, string]().
//
// Instances are stateless values and safe for concurrent use.
package typeclass

import "github.com/on-the-ground/higher_ive_go/hkt"

// Unit lifts a value into the minimal container of shape W.
type Unit[W, A any] interface {
	Unit(a A) hkt.Higher[W, A]
}

// Functor maps every element, preserving length, order and shape invariants.
//
// Laws:
//   - Map(identity, x) == x
//   - Map(compose(f, g), x) == Map(f, Map(g, x))
type Functor[W, A, B any] interface {
	Map(f func(A) B, fa hkt.Higher[W, A]) hkt.Higher[W, B]
}

// Applicative combines a container of functions with a container of values.
// Whether the pairing is positional (zipping) or a cartesian product is
// decided by the instance.
type Applicative[W, A, B any] interface {
	Functor[W, A, B]
	Unit[W, A]
	Ap(ff hkt.Higher[W, func(A) B], fa hkt.Higher[W, A]) hkt.Higher[W, B]
}

// Monad sequences container-producing functions.
//
// Laws:
//   - FlatMap(f, Unit(a)) == f(a)
//   - FlatMap(Unit, m) == m
//   - FlatMap(g, FlatMap(f, m)) == FlatMap(a => FlatMap(g, f(a)), m)
type Monad[W, A, B any] interface {
	Applicative[W, A, B]
	FlatMap(f func(A) hkt.Higher[W, B], fa hkt.Higher[W, A]) hkt.Higher[W, B]
}

// Foldable reduces a finite container to a single value.
//
// FoldLeft computes op(...op(op(seed, a0), a1)..., an).
// FoldRight computes op(a0, op(a1, ...op(an, seed)...)).
type Foldable[W, A, R any] interface {
	FoldLeft(seed R, op func(R, A) R, fa hkt.Higher[W, A]) R
	FoldRight(seed R, op func(A, R) R, fa hkt.Higher[W, A]) R
}
