package list

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
)

//go:generate go run ../../cmd/boxgen -type github.com/on-the-ground/higher_ive_go/collection.List

// Shape is the witness of the list shape. It is never instantiated.
type Shape struct{}

// Type is a collection.List that is also a Higher[Shape, A].
//
// Either the container implements Type itself, or Widen boxes it.
type Type[A any] interface {
	hkt.Higher[Shape, A]
	collection.List[A]
}

var _ Type[int] = (*box[int])(nil)
