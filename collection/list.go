package collection

import (
	"iter"
	"slices"
)

// List is an ordered, mutable, index-addressable sequence.
// Index arguments out of range panic, as slice indexing does.
type List[A any] interface {
	Len() int
	IsEmpty() bool
	Get(i int) A
	// Set replaces the element at i and returns the previous one.
	Set(i int, a A) A
	Add(a A)
	AddAll(as ...A)
	Insert(i int, a A)
	RemoveAt(i int) A
	// IndexOf returns the first index holding an element equal to a, or -1.
	IndexOf(a A) int
	Contains(a A) bool
	Clear()
	// SubList returns a copy of the elements in [from, to).
	SubList(from, to int) List[A]
	All() iter.Seq2[int, A]
	Backward() iter.Seq2[int, A]
	Values() iter.Seq[A]
	ToSlice() []A
	// Equal reports whether other holds equal elements in the same order,
	// whatever its implementation.
	Equal(other List[A]) bool
	Hash() uint64
	String() string
}

// ArrayList is a slice-backed List. It knows nothing about shapes.
type ArrayList[A any] struct {
	elems []A
}

var _ List[int] = (*ArrayList[int])(nil)

func NewArrayList[A any](as ...A) *ArrayList[A] {
	return &ArrayList[A]{elems: slices.Clone(as)}
}

// NewArrayListCap returns an empty list with room for n elements.
func NewArrayListCap[A any](n int) *ArrayList[A] {
	return &ArrayList[A]{elems: make([]A, 0, n)}
}

func (l *ArrayList[A]) Len() int      { return len(l.elems) }
func (l *ArrayList[A]) IsEmpty() bool { return len(l.elems) == 0 }
func (l *ArrayList[A]) Get(i int) A   { return l.elems[i] }

func (l *ArrayList[A]) Set(i int, a A) A {
	old := l.elems[i]
	l.elems[i] = a
	return old
}

func (l *ArrayList[A]) Add(a A) {
	l.elems = append(l.elems, a)
}

func (l *ArrayList[A]) AddAll(as ...A) {
	l.elems = append(l.elems, as...)
}

func (l *ArrayList[A]) Insert(i int, a A) {
	l.elems = slices.Insert(l.elems, i, a)
}

func (l *ArrayList[A]) RemoveAt(i int) A {
	old := l.elems[i]
	l.elems = slices.Delete(l.elems, i, i+1)
	return old
}

func (l *ArrayList[A]) IndexOf(a A) int {
	return slices.IndexFunc(l.elems, func(e A) bool { return elemEqual(e, a) })
}

func (l *ArrayList[A]) Contains(a A) bool {
	return l.IndexOf(a) >= 0
}

func (l *ArrayList[A]) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

func (l *ArrayList[A]) SubList(from, to int) List[A] {
	return NewArrayList(l.elems[from:to]...)
}

func (l *ArrayList[A]) All() iter.Seq2[int, A] {
	return slices.All(l.elems)
}

func (l *ArrayList[A]) Backward() iter.Seq2[int, A] {
	return slices.Backward(l.elems)
}

func (l *ArrayList[A]) Values() iter.Seq[A] {
	return slices.Values(l.elems)
}

func (l *ArrayList[A]) ToSlice() []A {
	return slices.Clone(l.elems)
}

func (l *ArrayList[A]) Equal(other List[A]) bool {
	if other == nil || other.Len() != l.Len() {
		return false
	}
	return seqEqual(l.Values(), other.Values())
}

func (l *ArrayList[A]) Hash() uint64 {
	return hashSeq(l.Values())
}

func (l *ArrayList[A]) String() string {
	return formatSeq(l.Values())
}
