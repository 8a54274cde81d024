// Package queue is the queue shape: collection.Queue encoded as
// hkt.Higher[queue.Shape, A].
package queue

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

// Of builds a LinkedQueue holding values, head first.
func Of[A any](values ...A) Type[A] {
	return Widen[A](collection.NewLinkedQueue(values...))
}

// Widen returns q unchanged when it already implements Type and boxes it
// otherwise.
func Widen[A any](q collection.Queue[A]) Type[A] {
	if t, ok := q.(Type[A]); ok {
		return t
	}
	return &box[A]{boxed: q}
}

// Widen2 lifts a queue nested in shape C to the plain handle.
func Widen2[C, A any](
	F typeclass.Functor[C, Type[A], hkt.Higher[Shape, A]],
	nested hkt.Higher[C, Type[A]],
) hkt.Higher[C, hkt.Higher[Shape, A]] {
	return typeclass.Widen2(F, nested)
}

func NarrowK[A any](h hkt.Higher[Shape, A]) Type[A] {
	return hkt.Coerce[Type[A]](h, "queue.NarrowK")
}

// Narrow returns the queue behind h.
func Narrow[A any](h hkt.Higher[Shape, A]) collection.Queue[A] {
	if b, ok := h.(*box[A]); ok {
		return b.boxed
	}
	return hkt.Coerce[collection.Queue[A]](h, "queue.Narrow")
}

func Equal[A any](x, y hkt.Higher[Shape, A]) bool {
	return Narrow(x).Equal(Narrow(y))
}
