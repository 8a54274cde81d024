package hkt

import "github.com/on-the-ground/higher_ive_go/shared/helper"

// Higher is a value of shape W holding elements of type A.
//
// At runtime a Higher is always the native container of W or a box around
// one. A takes part in the marker signature so that Higher[W, int] and
// Higher[W, string] stay distinct types.
type Higher[W, A any] interface {
	kind(W, A)
}

// Kind marks its embedder as a Higher[W, A]. It has no state.
type Kind[W, A any] struct{}

func (Kind[W, A]) kind(W, A) {}

// Convert applies fn to h. It exists to end a call chain with a narrowing
// function, e.g. hkt.Convert(h, list.NarrowK[int]).
func Convert[W, A, R any](h Higher[W, A], fn func(Higher[W, A]) R) R {
	return fn(h)
}

// Then applies a shape-preserving step to h.
func Then[W, A, B any](h Higher[W, A], fn func(Higher[W, A]) Higher[W, B]) Higher[W, B] {
	return fn(h)
}

// ShapeName returns the printable name of witness W.
func ShapeName[W any]() string {
	return helper.TypeName[W]()
}
