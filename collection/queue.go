package collection

import (
	"container/list"
	"iter"
)

// Queue is a mutable first-in first-out sequence.
type Queue[A any] interface {
	// Offer appends a at the tail.
	Offer(a A)
	// Poll removes and returns the head; ok is false when the queue is empty.
	Poll() (a A, ok bool)
	// Peek returns the head without removing it.
	Peek() (a A, ok bool)
	Len() int
	IsEmpty() bool
	Contains(a A) bool
	AddAll(as ...A)
	// RemoveIf removes every element matching pred and reports how many went.
	RemoveIf(pred func(A) bool) int
	Clear()
	// Values iterates head to tail without consuming.
	Values() iter.Seq[A]
	ToSlice() []A
	Equal(other Queue[A]) bool
	Hash() uint64
	String() string
}

// LinkedQueue is a Queue backed by a doubly linked list.
// The zero value is not usable; use NewLinkedQueue.
type LinkedQueue[A any] struct {
	elems *list.List
}

var _ Queue[int] = (*LinkedQueue[int])(nil)

func NewLinkedQueue[A any](as ...A) *LinkedQueue[A] {
	q := &LinkedQueue[A]{elems: list.New()}
	q.AddAll(as...)
	return q
}

func (q *LinkedQueue[A]) Offer(a A) {
	q.elems.PushBack(a)
}

func (q *LinkedQueue[A]) Poll() (A, bool) {
	front := q.elems.Front()
	if front == nil {
		var zero A
		return zero, false
	}
	q.elems.Remove(front)
	return valueOf[A](front), true
}

func (q *LinkedQueue[A]) Peek() (A, bool) {
	front := q.elems.Front()
	if front == nil {
		var zero A
		return zero, false
	}
	return valueOf[A](front), true
}

func (q *LinkedQueue[A]) Len() int      { return q.elems.Len() }
func (q *LinkedQueue[A]) IsEmpty() bool { return q.elems.Len() == 0 }

func (q *LinkedQueue[A]) Contains(a A) bool {
	for e := range q.Values() {
		if elemEqual(e, a) {
			return true
		}
	}
	return false
}

func (q *LinkedQueue[A]) AddAll(as ...A) {
	for _, a := range as {
		q.elems.PushBack(a)
	}
}

func (q *LinkedQueue[A]) RemoveIf(pred func(A) bool) int {
	removed := 0
	for e := q.elems.Front(); e != nil; {
		next := e.Next()
		if pred(valueOf[A](e)) {
			q.elems.Remove(e)
			removed++
		}
		e = next
	}
	return removed
}

func (q *LinkedQueue[A]) Clear() {
	q.elems.Init()
}

func (q *LinkedQueue[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for e := q.elems.Front(); e != nil; e = e.Next() {
			if !yield(valueOf[A](e)) {
				return
			}
		}
	}
}

func (q *LinkedQueue[A]) ToSlice() []A {
	out := make([]A, 0, q.elems.Len())
	for a := range q.Values() {
		out = append(out, a)
	}
	return out
}

func (q *LinkedQueue[A]) Equal(other Queue[A]) bool {
	if other == nil || other.Len() != q.Len() {
		return false
	}
	return seqEqual(q.Values(), other.Values())
}

func (q *LinkedQueue[A]) Hash() uint64 {
	return hashSeq(q.Values())
}

func (q *LinkedQueue[A]) String() string {
	return formatSeq(q.Values())
}

// valueOf reads an element back. The comma-ok form keeps nil elements of
// interface-typed queues from failing the assertion.
func valueOf[A any](e *list.Element) A {
	v, _ := e.Value.(A)
	return v
}
