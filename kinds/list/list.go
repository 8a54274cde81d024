// Package list is the list shape: collection.List encoded as
// hkt.Higher[list.Shape, A], with its typeclass instances.
package list

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

// Of builds an ArrayList of values and widens it.
func Of[A any](values ...A) Type[A] {
	return Widen[A](collection.NewArrayList(values...))
}

// Widen encodes l as a handle. A list that already implements Type is
// returned unchanged, so widening twice yields the same handle; any other
// list is boxed.
func Widen[A any](l collection.List[A]) Type[A] {
	if t, ok := l.(Type[A]); ok {
		return t
	}
	return &box[A]{boxed: l}
}

// Widen2 lifts a list nested in another shape C from Type[A] to the plain
// handle, using C's functor.
func Widen2[C, A any](
	F typeclass.Functor[C, Type[A], hkt.Higher[Shape, A]],
	nested hkt.Higher[C, Type[A]],
) hkt.Higher[C, hkt.Higher[Shape, A]] {
	return typeclass.Widen2(F, nested)
}

// NarrowK re-asserts the shape interface of h.
func NarrowK[A any](h hkt.Higher[Shape, A]) Type[A] {
	return hkt.Coerce[Type[A]](h, "list.NarrowK")
}

// Narrow returns the list behind h: the boxed list, or h itself when it is a
// list implementing Type. Anything else panics with a shape mismatch.
func Narrow[A any](h hkt.Higher[Shape, A]) collection.List[A] {
	if b, ok := h.(*box[A]); ok {
		return b.boxed
	}
	return hkt.Coerce[collection.List[A]](h, "list.Narrow")
}

// Equal compares the lists behind x and y element by element.
func Equal[A any](x, y hkt.Higher[Shape, A]) bool {
	return Narrow(x).Equal(Narrow(y))
}
