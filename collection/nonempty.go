package collection

import (
	"iter"
	"slices"
)

// NonEmptyList is an immutable list with at least one element.
//
// The invariant is structural: a head is always present. The zero value is
// therefore a valid one-element list holding the zero A.
type NonEmptyList[A any] struct {
	head A
	tail []A
}

func NewNonEmptyList[A any](head A, tail ...A) NonEmptyList[A] {
	return NonEmptyList[A]{head: head, tail: slices.Clone(tail)}
}

// NonEmptyListFrom returns false when xs is empty.
func NonEmptyListFrom[A any](xs []A) (NonEmptyList[A], bool) {
	if len(xs) == 0 {
		return NonEmptyList[A]{}, false
	}
	return NewNonEmptyList(xs[0], xs[1:]...), true
}

func (l NonEmptyList[A]) Head() A { return l.head }

// Tail returns a copy of every element after the head; it may be empty.
func (l NonEmptyList[A]) Tail() []A { return slices.Clone(l.tail) }

func (l NonEmptyList[A]) Len() int { return 1 + len(l.tail) }

func (l NonEmptyList[A]) Get(i int) A {
	if i == 0 {
		return l.head
	}
	return l.tail[i-1]
}

func (l NonEmptyList[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		if !yield(0, l.head) {
			return
		}
		for i, a := range l.tail {
			if !yield(i+1, a) {
				return
			}
		}
	}
}

func (l NonEmptyList[A]) Backward() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i, a := range slices.Backward(l.tail) {
			if !yield(i+1, a) {
				return
			}
		}
		yield(0, l.head)
	}
}

func (l NonEmptyList[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, a := range l.All() {
			if !yield(a) {
				return
			}
		}
	}
}

func (l NonEmptyList[A]) ToSlice() []A {
	out := make([]A, 0, l.Len())
	out = append(out, l.head)
	return append(out, l.tail...)
}

func (l NonEmptyList[A]) Append(other NonEmptyList[A]) NonEmptyList[A] {
	tail := make([]A, 0, len(l.tail)+other.Len())
	tail = append(tail, l.tail...)
	tail = append(tail, other.head)
	tail = append(tail, other.tail...)
	return NonEmptyList[A]{head: l.head, tail: tail}
}

func (l NonEmptyList[A]) Prepend(a A) NonEmptyList[A] {
	return NonEmptyList[A]{head: a, tail: l.ToSlice()}
}

func (l NonEmptyList[A]) Reverse() NonEmptyList[A] {
	xs := l.ToSlice()
	slices.Reverse(xs)
	return NonEmptyList[A]{head: xs[0], tail: xs[1:]}
}

func (l NonEmptyList[A]) Equal(other NonEmptyList[A]) bool {
	return l.Len() == other.Len() && seqEqual(l.Values(), other.Values())
}

func (l NonEmptyList[A]) Hash() uint64 {
	return hashSeq(l.Values())
}

func (l NonEmptyList[A]) String() string {
	return formatSeq(l.Values())
}
