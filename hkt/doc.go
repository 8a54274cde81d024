// Package hkt encodes higher-kinded types for Go.
//
// Go generics cannot abstract over a type constructor: there is no way to
// write `func Map[F[_], A, B any](F[A]) F[B]`. This package simulates it
// with a witness tag per container shape and a handle type
//
//	Higher[W, A]
//
// meaning "a value of shape W holding elements of type A".
//
// # How does it work?
//
// A shape package (see kinds/list, kinds/queue, kinds/nonemptylist) declares
//   - a witness type, e.g. `type Shape struct{}`
//   - a shape interface that embeds Higher[Shape, A] and the native
//     container's method set
//   - a forwarding box that embeds Kind[Shape, A] and owns one native container
//   - Widen / Narrow / NarrowK / Widen2 conversions
//
// Only values embedding Kind[W, A] satisfy Higher[W, A], so handles cannot be
// forged by accident. Converting a handle back to its native container is
// the single trusted coercion in the system; it lives in Coerce and in each
// shape's Narrow. A handle that does not hold what its witness claims is a
// programmer error: the boundary logs it and panics with an *Error of kind
// KindShapeMismatch.
//
// Example:
//
//	h := list.Of(1, 2, 3)                              // Higher[list.Shape, int]
//	doubled := list.Functor[int, int]().Map(double, h) // still a handle
//	native := list.Narrow(doubled)                     // collection.List[int]
package hkt
