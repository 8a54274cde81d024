package list

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

// Unit returns the instance building one-element lists.
func Unit[A any]() typeclass.Unit[Shape, A] {
	return instances[A, A]{}
}

func Functor[A, B any]() typeclass.Functor[Shape, A, B] {
	return instances[A, B]{}
}

// Applicative returns the cartesian instance: every function applied to
// every value, functions in the outer loop.
func Applicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return instances[A, B]{}
}

// ZippingApplicative returns the positional instance: the i-th function is
// applied to the i-th value and the result is as long as the shorter input.
func ZippingApplicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return zipping[A, B]{}
}

// Monad returns the instance concatenating per-element results in order.
// Its Ap is the cartesian one.
func Monad[A, B any]() typeclass.Monad[Shape, A, B] {
	return instances[A, B]{}
}

func Foldable[A, R any]() typeclass.Foldable[Shape, A, R] {
	return instances[A, R]{}
}

type instances[A, B any] struct{}

func (instances[A, B]) Unit(a A) hkt.Higher[Shape, A] {
	return Of(a)
}

func (instances[A, B]) Map(f func(A) B, fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	src := Narrow(fa)
	out := collection.NewArrayListCap[B](src.Len())
	for a := range src.Values() {
		out.Add(f(a))
	}
	return Widen[B](out)
}

func (instances[A, B]) Ap(ff hkt.Higher[Shape, func(A) B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	fs, as := Narrow(ff), Narrow(fa)
	out := collection.NewArrayListCap[B](fs.Len() * as.Len())
	for f := range fs.Values() {
		for a := range as.Values() {
			out.Add(f(a))
		}
	}
	return Widen[B](out)
}

func (instances[A, B]) FlatMap(f func(A) hkt.Higher[Shape, B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	src := Narrow(fa)
	out := collection.NewArrayListCap[B](src.Len())
	for a := range src.Values() {
		out.AddAll(Narrow(f(a)).ToSlice()...)
	}
	return Widen[B](out)
}

func (instances[A, B]) FoldLeft(seed B, op func(B, A) B, fa hkt.Higher[Shape, A]) B {
	acc := seed
	for a := range Narrow(fa).Values() {
		acc = op(acc, a)
	}
	return acc
}

func (instances[A, B]) FoldRight(seed B, op func(A, B) B, fa hkt.Higher[Shape, A]) B {
	acc := seed
	for _, a := range Narrow(fa).Backward() {
		acc = op(a, acc)
	}
	return acc
}

type zipping[A, B any] struct {
	instances[A, B]
}

func (zipping[A, B]) Ap(ff hkt.Higher[Shape, func(A) B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	fs, as := Narrow(ff), Narrow(fa)
	n := min(fs.Len(), as.Len())
	out := collection.NewArrayListCap[B](n)
	for i := range n {
		out.Add(fs.Get(i)(as.Get(i)))
	}
	return Widen[B](out)
}
