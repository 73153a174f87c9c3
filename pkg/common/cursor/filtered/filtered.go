// Package filtered provides a view that skips elements failing a predicate
package filtered

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// View yields the elements of a sequence that satisfy a predicate, in order
type View[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
	seq  S
	pred func(R) bool
}

// Filter creates a view over seq that yields only the positions where pred
// holds. pred may be evaluated more than once for the same element and must
// not have side effects that change its answer.
func Filter[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](pred func(R) bool, seq S) View[S, C, R] {
	return View[S, C, R]{seq: seq, pred: pred}
}

// Begin returns a cursor at the first element that passes the predicate
func (v View[S, C, R]) Begin() Cursor[C, R] {
	fc := Cursor[C, R]{cur: v.seq.Begin(), end: v.seq.End(), pred: v.pred}
	return fc.skipFailures()
}

// End returns a cursor at the wrapped end. The predicate is not evaluated.
func (v View[S, C, R]) End() Cursor[C, R] {
	end := v.seq.End()
	return Cursor[C, R]{cur: end, end: end, pred: v.pred}
}

// Cursor is a position within a filter view
type Cursor[C cursor.Cursor[C, R], R any] struct {
	cur  C
	end  C
	pred func(R) bool
}

// skipFailures advances until the current position passes the predicate or
// the wrapped end is reached
func (fc Cursor[C, R]) skipFailures() Cursor[C, R] {
	for !fc.cur.Equal(fc.end) && !fc.pred(fc.cur.Deref()) {
		fc.cur = fc.cur.Next()
	}
	return fc
}

// Deref returns the wrapped reference
func (fc Cursor[C, R]) Deref() R {
	return fc.cur.Deref()
}

// Next advances to the next element that passes the predicate
func (fc Cursor[C, R]) Next() Cursor[C, R] {
	fc.cur = fc.cur.Next()
	return fc.skipFailures()
}

// Prev steps back to the previous element that passes the predicate.
// The wrapped cursor must be bidirectional, and there must be such an element.
func (fc Cursor[C, R]) Prev() Cursor[C, R] {
	fc.cur = cursor.Prev(fc.cur)
	for !fc.pred(fc.cur.Deref()) {
		fc.cur = cursor.Prev(fc.cur)
	}
	return fc
}

// Equal compares wrapped positions only
func (fc Cursor[C, R]) Equal(other Cursor[C, R]) bool {
	return fc.cur.Equal(other.cur)
}
