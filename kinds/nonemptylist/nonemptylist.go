// Package nonemptylist is the non-empty list shape. Every instance keeps the
// invariant: no operation produces an empty container.
package nonemptylist

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
	"github.com/on-the-ground/higher_ive_go/typeclass"
)

func Of[A any](head A, tail ...A) Type[A] {
	return Widen(collection.NewNonEmptyList(head, tail...))
}

// Widen boxes l.
func Widen[A any](l collection.NonEmptyList[A]) Type[A] {
	return &box[A]{boxed: l}
}

// Widen2 lifts a non-empty list nested in shape C to the plain handle.
func Widen2[C, A any](
	F typeclass.Functor[C, Type[A], hkt.Higher[Shape, A]],
	nested hkt.Higher[C, Type[A]],
) hkt.Higher[C, hkt.Higher[Shape, A]] {
	return typeclass.Widen2(F, nested)
}

func NarrowK[A any](h hkt.Higher[Shape, A]) Type[A] {
	return hkt.Coerce[Type[A]](h, "nonemptylist.NarrowK")
}

// Narrow returns the list behind h. A handle that is not a box is copied
// through its elements; one that reports no elements raises a structural
// violation.
func Narrow[A any](h hkt.Higher[Shape, A]) collection.NonEmptyList[A] {
	if b, ok := h.(*box[A]); ok {
		return b.boxed
	}
	return fromSlice(hkt.Coerce[Type[A]](h, "nonemptylist.Narrow").ToSlice(), "nonemptylist.Narrow")
}

func Equal[A any](x, y hkt.Higher[Shape, A]) bool {
	return Narrow(x).Equal(Narrow(y))
}

func fromSlice[A any](xs []A, op string) collection.NonEmptyList[A] {
	l, ok := collection.NonEmptyListFrom(xs)
	if !ok {
		hkt.Raise(hkt.StructuralViolation[Shape](op, "empty result"))
	}
	return l
}
