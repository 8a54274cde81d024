package queue

import (
	"iter"
	"slices"

	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

func Unit[A any]() typeclass.Unit[Shape, A] {
	return instances[A, A]{}
}

func Functor[A, B any]() typeclass.Functor[Shape, A, B] {
	return instances[A, B]{}
}

// Applicative pairs every function with every value, head to tail.
func Applicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return instances[A, B]{}
}

// ZippingApplicative pairs functions and values by position and stops at
// the end of the shorter queue.
func ZippingApplicative[A, B any]() typeclass.Applicative[Shape, A, B] {
	return zipping[A, B]{}
}

func Monad[A, B any]() typeclass.Monad[Shape, A, B] {
	return instances[A, B]{}
}

func Foldable[A, R any]() typeclass.Foldable[Shape, A, R] {
	return instances[A, R]{}
}

// Instances never consume their inputs: every traversal goes through Values.
type instances[A, B any] struct{}

func (instances[A, B]) Unit(a A) hkt.Higher[Shape, A] {
	return Of(a)
}

func (instances[A, B]) Map(f func(A) B, fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	out := collection.NewLinkedQueue[B]()
	for a := range Narrow(fa).Values() {
		out.Offer(f(a))
	}
	return Widen[B](out)
}

func (instances[A, B]) Ap(ff hkt.Higher[Shape, func(A) B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	as := Narrow(fa)
	out := collection.NewLinkedQueue[B]()
	for f := range Narrow(ff).Values() {
		for a := range as.Values() {
			out.Offer(f(a))
		}
	}
	return Widen[B](out)
}

func (instances[A, B]) FlatMap(f func(A) hkt.Higher[Shape, B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	out := collection.NewLinkedQueue[B]()
	for a := range Narrow(fa).Values() {
		for b := range Narrow(f(a)).Values() {
			out.Offer(b)
		}
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
	for _, a := range slices.Backward(Narrow(fa).ToSlice()) {
		acc = op(a, acc)
	}
	return acc
}

type zipping[A, B any] struct {
	instances[A, B]
}

func (zipping[A, B]) Ap(ff hkt.Higher[Shape, func(A) B], fa hkt.Higher[Shape, A]) hkt.Higher[Shape, B] {
	nextF, stopF := iter.Pull(Narrow(ff).Values())
	defer stopF()
	nextA, stopA := iter.Pull(Narrow(fa).Values())
	defer stopA()

	out := collection.NewLinkedQueue[B]()
	for {
		f, ok := nextF()
		if !ok {
			break
		}
		a, ok := nextA()
		if !ok {
			break
		}
		out.Offer(f(a))
	}
	return Widen[B](out)
}
