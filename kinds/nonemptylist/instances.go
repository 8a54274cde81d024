package nonemptylist

import (
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

func Unit[A any]() typeclass.Unit[Shape, A] {
	return instances[A, A]{}
}

func Functor[A, B any]() typeclass.Functor[Shape, A, B] {
	return instances[A, B]{}
}

// Applicative is the cartesian product, functions outer. Both operands are
// non-empty, so the result is too.
func Applicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return instances[A, B]{}
}

// ZippingApplicative pairs by position up to the shorter operand, which
// holds at least one element.
func ZippingApplicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return zipping[A, B]{}
}

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
	out := make([]B, 0, src.Len())
	for a := range src.Values() {
		out = append(out, f(a))
	}
	return Widen(fromSlice(out, "nonemptylist.Map"))
}

func (instances[A, B]) Ap(ff hkt.Higher[Shape, func(A) B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	fs, as := Narrow(ff), Narrow(fa)
	out := make([]B, 0, fs.Len()*as.Len())
	for f := range fs.Values() {
		for a := range as.Values() {
			out = append(out, f(a))
		}
	}
	return Widen(fromSlice(out, "nonemptylist.Ap"))
}

func (instances[A, B]) FlatMap(f func(A) hkt.Higher[Shape, B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	var out []B
	for a := range Narrow(fa).Values() {
		out = append(out, Narrow(f(a)).ToSlice()...)
	}
	return Widen(fromSlice(out, "nonemptylist.FlatMap"))
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
	out := make([]B, n)
	for i := range n {
		out[i] = fs.Get(i)(as.Get(i))
	}
	return Widen(fromSlice(out, "nonemptylist.Ap"))
}
