package cursor

import "golang.org/x/exp/constraints"

// Slice is a mutable sequence over a Go slice. Converting a slice to Slice
// copies only the slice header, so the view shares the caller's backing array.
type Slice[T any] []T

// Of wraps xs as a mutable sequence. Fixed-size arrays are wrapped as Of(arr[:]).
func Of[T any](xs []T) Slice[T] {
	return Slice[T](xs)
}

// Begin returns a cursor at the first element
func (s Slice[T]) Begin() SliceCursor[T] {
	return SliceCursor[T]{s: s, i: 0}
}

// End returns the cursor one past the last element
func (s Slice[T]) End() SliceCursor[T] {
	return SliceCursor[T]{s: s, i: len(s)}
}

// SliceCursor is a position within a Slice
type SliceCursor[T any] struct {
	s []T
	i int
}

// Deref returns a pointer to the element in the caller's storage
func (c SliceCursor[T]) Deref() *T {
	return &c.s[c.i]
}

func (c SliceCursor[T]) Next() SliceCursor[T] {
	c.i++
	return c
}

func (c SliceCursor[T]) Prev() SliceCursor[T] {
	c.i--
	return c
}

// Equal compares positions only; cursors from different slices with the same
// offset compare equal.
func (c SliceCursor[T]) Equal(other SliceCursor[T]) bool {
	return c.i == other.i
}

// Values is a read-only sequence over a Go slice; its cursors yield copies
type Values[T any] []T

// Begin returns a cursor at the first element
func (v Values[T]) Begin() ValueCursor[T] {
	return ValueCursor[T]{s: v, i: 0}
}

// End returns the cursor one past the last element
func (v Values[T]) End() ValueCursor[T] {
	return ValueCursor[T]{s: v, i: len(v)}
}

// ValueCursor is a position within Values
type ValueCursor[T any] struct {
	s []T
	i int
}

func (c ValueCursor[T]) Deref() T {
	return c.s[c.i]
}

func (c ValueCursor[T]) Next() ValueCursor[T] {
	c.i++
	return c
}

func (c ValueCursor[T]) Prev() ValueCursor[T] {
	c.i--
	return c
}

func (c ValueCursor[T]) Equal(other ValueCursor[T]) bool {
	return c.i == other.i
}

// Counter is the read-only sequence of integers in [lo, hi)
type Counter[N constraints.Integer] struct {
	lo, hi N
}

// Iota returns the integers in [lo, hi). If hi <= lo the sequence is empty.
func Iota[N constraints.Integer](lo, hi N) Counter[N] {
	if hi < lo {
		hi = lo
	}
	return Counter[N]{lo: lo, hi: hi}
}

func (c Counter[N]) Begin() CounterCursor[N] {
	return CounterCursor[N]{n: c.lo}
}

func (c Counter[N]) End() CounterCursor[N] {
	return CounterCursor[N]{n: c.hi}
}

// CounterCursor is a position within a Counter; it is its own value
type CounterCursor[N constraints.Integer] struct {
	n N
}

func (c CounterCursor[N]) Deref() N {
	return c.n
}

func (c CounterCursor[N]) Next() CounterCursor[N] {
	c.n++
	return c
}

func (c CounterCursor[N]) Prev() CounterCursor[N] {
	c.n--
	return c
}

func (c CounterCursor[N]) Equal(other CounterCursor[N]) bool {
	return c.n == other.n
}
