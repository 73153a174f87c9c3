// Package reversed provides a back-to-front view of a bidirectional sequence
package reversed

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// View presents a bidirectional sequence from its last element to its first
type View[S cursor.Sequence[C, R], C cursor.Bidirectional[C, R], R any] struct {
	seq S
}

// Reverse creates a back-to-front view of seq. Only sequences with
// bidirectional cursors can be reversed.
func Reverse[S cursor.Sequence[C, R], C cursor.Bidirectional[C, R], R any](seq S) View[S, C, R] {
	return View[S, C, R]{seq: seq}
}

// Begin returns a cursor at the last element of the wrapped sequence
func (v View[S, C, R]) Begin() Cursor[C, R] {
	return Cursor[C, R]{base: v.seq.End()}
}

// End returns the cursor one before the first element of the wrapped sequence
func (v View[S, C, R]) End() Cursor[C, R] {
	return Cursor[C, R]{base: v.seq.Begin()}
}

// Cursor is a position within a reverse view.
//
// It keeps the forward position one after the element it refers to, so the
// reverse end is expressed as the wrapped Begin and no position before the
// first element is ever constructed.
type Cursor[C cursor.Bidirectional[C, R], R any] struct {
	base C
}

// Deref returns the reference at the element before base
func (rc Cursor[C, R]) Deref() R {
	return rc.base.Prev().Deref()
}

// Next moves towards the front of the wrapped sequence
func (rc Cursor[C, R]) Next() Cursor[C, R] {
	rc.base = rc.base.Prev()
	return rc
}

// Prev moves towards the back of the wrapped sequence
func (rc Cursor[C, R]) Prev() Cursor[C, R] {
	rc.base = rc.base.Next()
	return rc
}

func (rc Cursor[C, R]) Equal(other Cursor[C, R]) bool {
	return rc.base.Equal(other.base)
}

// Base returns the forward cursor one position after the element rc refers to
func (rc Cursor[C, R]) Base() C {
	return rc.base
}
