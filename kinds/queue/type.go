package queue

import (
	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/on-the-ground/higher_ive_go/hkt"
)

//go:generate go run ../../cmd/boxgen -type github.com/on-the-ground/higher_ive_go/collection.Queue

// Shape is the witness of the queue shape.
type Shape struct{}

// Type is a collection.Queue that is also a Higher[Shape, A].
type Type[A any] interface {
	hkt.Higher[Shape, A]
	collection.Queue[A]
}

var _ Type[int] = (*box[int])(nil)
