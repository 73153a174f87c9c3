// Package cursortest provides sequences for testing views against cursor
// types other than slices
package cursortest

type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked list with forward-only cursors. Elements are
// mutable through the cursor's Deref.
type List[T any] struct {
	head *node[T]
}

// NewList builds a List holding values in order
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.head = &node[T]{val: values[i], next: l.head}
	}
	return l
}

func (l *List[T]) Begin() ListCursor[T] {
	return ListCursor[T]{n: l.head}
}

// End is the nil node
func (l *List[T]) End() ListCursor[T] {
	return ListCursor[T]{}
}

// Values copies the list into a slice
func (l *List[T]) Values() []T {
	out := []T{}
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// ListCursor is a position within a List
type ListCursor[T any] struct {
	n *node[T]
}

func (c ListCursor[T]) Deref() *T {
	return &c.n.val
}

func (c ListCursor[T]) Next() ListCursor[T] {
	return ListCursor[T]{n: c.n.next}
}

func (c ListCursor[T]) Equal(other ListCursor[T]) bool {
	return c.n == other.n
}
