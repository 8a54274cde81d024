package collection_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/higher_ive_go/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayList_Mutation(t *testing.T) {
	l := collection.NewArrayList(1, 2, 3)

	l.Add(4)
	l.AddAll(5, 6)
	l.Insert(0, 0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, l.ToSlice())

	assert.Equal(t, 3, l.RemoveAt(3))
	assert.Equal(t, 2, l.Set(2, 20))
	assert.Equal(t, []int{0, 1, 20, 4, 5, 6}, l.ToSlice())
	assert.Equal(t, 2, l.IndexOf(20))
	assert.Equal(t, -1, l.IndexOf(3))
	assert.True(t, l.Contains(6))

	sub := l.SubList(1, 3)
	assert.Equal(t, []int{1, 20}, sub.ToSlice())
	sub.Set(0, 100)
	assert.Equal(t, 1, l.Get(1), "SubList is a copy")

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
}

func TestArrayList_ToSliceIsACopy(t *testing.T) {
	l := collection.NewArrayList("a", "b")
	xs := l.ToSlice()
	xs[0] = "z"
	assert.Equal(t, "a", l.Get(0))
}

func TestArrayList_Iteration(t *testing.T) {
	l := collection.NewArrayList(1, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Values()))

	var backward []int
	for i, v := range l.Backward() {
		assert.Equal(t, l.Get(i), v)
		backward = append(backward, v)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)
}

func TestArrayList_EqualHashString(t *testing.T) {
	a := collection.NewArrayList(1, 2, 3)
	b := collection.NewArrayList(1, 2, 3)
	c := collection.NewArrayList(3, 2, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(collection.NewArrayList(1, 2)))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Equal(t, "[1 2 3]", a.String())
}

func TestHash_SeparatesElements(t *testing.T) {
	joined := collection.NewArrayList("ab")
	split := collection.NewArrayList("a", "b")
	assert.NotEqual(t, joined.Hash(), split.Hash())
}

func TestLinkedQueue_FIFO(t *testing.T) {
	q := collection.NewLinkedQueue(1, 2)
	q.Offer(3)

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, head)
	assert.Equal(t, 3, q.Len())

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Poll()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = q.Poll()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestLinkedQueue_RemoveIfContainsClear(t *testing.T) {
	q := collection.NewLinkedQueue(1, 2, 3, 4, 5)

	removed := q.RemoveIf(func(i int) bool { return i%2 == 0 })
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 5}, q.ToSlice())
	assert.True(t, q.Contains(3))
	assert.False(t, q.Contains(2))

	q.AddAll(7, 9)
	assert.Equal(t, "[1 3 5 7 9]", q.String())

	q.Clear()
	assert.True(t, q.IsEmpty())
}

func TestLinkedQueue_NilElements(t *testing.T) {
	q := collection.NewLinkedQueue[any](nil, 1)

	v, ok := q.Poll()
	require.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, []any{1}, q.ToSlice())
}

func TestLinkedQueue_EqualHash(t *testing.T) {
	a := collection.NewLinkedQueue(1, 2)
	b := collection.NewLinkedQueue(1, 2)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Offer(3)
	assert.False(t, a.Equal(b))
}

func TestNonEmptyList(t *testing.T) {
	l := collection.NewNonEmptyList(1, 2, 3)

	assert.Equal(t, 1, l.Head())
	assert.Equal(t, []int{2, 3}, l.Tail())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Get(2))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.Values()))

	var backward []int
	for i, v := range l.Backward() {
		assert.Equal(t, l.Get(i), v)
		backward = append(backward, v)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Append(collection.NewNonEmptyList(4, 5)).ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3}, l.Prepend(0).ToSlice())
	assert.Equal(t, []int{3, 2, 1}, l.Reverse().ToSlice())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice(), "operations never mutate the receiver")
	assert.Equal(t, "[1 2 3]", l.String())
}

func TestNonEmptyList_From(t *testing.T) {
	_, ok := collection.NonEmptyListFrom([]string{})
	assert.False(t, ok)

	l, ok := collection.NonEmptyListFrom([]string{"hello"})
	require.True(t, ok)
	assert.Equal(t, "hello", l.Head())
	assert.Empty(t, l.Tail())
}

func TestNonEmptyList_ZeroValueHasOneElement(t *testing.T) {
	var l collection.NonEmptyList[int]
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []int{0}, l.ToSlice())
}

func TestNonEmptyList_EqualHash(t *testing.T) {
	a := collection.NewNonEmptyList("x", "y")
	b, _ := collection.NonEmptyListFrom([]string{"x", "y"})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(collection.NewNonEmptyList("x")))
}

func TestNonEmptyList_AppendDoesNotAlias(t *testing.T) {
	base := collection.NewNonEmptyList(1, 2)
	left := base.Append(collection.NewNonEmptyList(3))
	right := base.Append(collection.NewNonEmptyList(4))

	assert.Equal(t, []int{1, 2, 3}, left.ToSlice())
	assert.Equal(t, []int{1, 2, 4}, right.ToSlice())
}
