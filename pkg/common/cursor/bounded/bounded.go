// Package bounded provides a view that ends a traversal at the first element
// failing a predicate
package bounded

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// View yields the longest prefix of a sequence whose elements all satisfy a
// predicate
type View[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
	seq  S
	pred func(R) bool
}

// TakeWhile creates a view over seq that stops permanently at the first
// element for which pred is false. Later elements are never examined, even if
// they would satisfy pred.
func TakeWhile[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](pred func(R) bool, seq S) View[S, C, R] {
	return View[S, C, R]{seq: seq, pred: pred}
}

// Begin returns a cursor at the first element, or at the end if the first
// element already fails the predicate
func (v View[S, C, R]) Begin() Cursor[C, R] {
	bc := Cursor[C, R]{cur: v.seq.Begin(), end: v.seq.End(), pred: v.pred}
	return bc.checkBounds()
}

// End returns a cursor at the wrapped end
func (v View[S, C, R]) End() Cursor[C, R] {
	end := v.seq.End()
	return Cursor[C, R]{cur: end, end: end, pred: v.pred}
}

// Cursor is a position within a take-while view. It is forward-only: once
// forced to the end it no longer knows where the prefix stopped.
type Cursor[C cursor.Cursor[C, R], R any] struct {
	cur  C
	end  C
	pred func(R) bool
}

// checkBounds moves the cursor to the end if the current element fails the
// predicate
func (bc Cursor[C, R]) checkBounds() Cursor[C, R] {
	if !bc.cur.Equal(bc.end) && !bc.pred(bc.cur.Deref()) {
		bc.cur = bc.end
	}
	return bc
}

// Deref returns the wrapped reference
func (bc Cursor[C, R]) Deref() R {
	return bc.cur.Deref()
}

// Next advances one position, ending the traversal if the new element fails
// the predicate
func (bc Cursor[C, R]) Next() Cursor[C, R] {
	bc.cur = bc.cur.Next()
	return bc.checkBounds()
}

// Equal compares wrapped positions only
func (bc Cursor[C, R]) Equal(other Cursor[C, R]) bool {
	return bc.cur.Equal(other.cur)
}
