package nonemptylist

import (
	"iter"

	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
)

//go:generate go run ../../cmd/boxgen -type github.com/on-the-ground/higher_ive_go/collection.NonEmptyList

// Shape is the witness of the non-empty list shape.
type Shape struct{}

// Type is the method set of collection.NonEmptyList plus the shape marker.
// NonEmptyList is a struct, so a handle around one is always a box.
type Type[A any] interface {
	hkt.Higher[Shape, A]
	Head() A
	Tail() []A
	Len() int
	Get(i int) A
	All() iter.Seq2[int, A]
	Backward() iter.Seq2[int, A]
	Values() iter.Seq[A]
	ToSlice() []A
	Append(other collection.NonEmptyList[A]) collection.NonEmptyList[A]
	Prepend(a A) collection.NonEmptyList[A]
	Reverse() collection.NonEmptyList[A]
	Equal(other collection.NonEmptyList[A]) bool
	Hash() uint64
	String() string
}

var _ Type[int] = (*box[int])(nil)
