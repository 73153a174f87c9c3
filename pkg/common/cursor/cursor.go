// Package cursor defines the traversal contract shared by every view in
// seqview, along with the basic sequences that wrap caller-owned storage.
//
// A sequence is a Begin/End pair of cursors. A cursor is a small value: Next
// and Prev return a new cursor and never modify the receiver, so cursors can
// be copied, kept and re-derived freely. Deref yields the reference type R of
// the sequence, which is *T for mutable storage and T for read-only storage.
// Adaptors never change R, so writing through a *T obtained from any view
// writes to the caller's storage.
//
// Sequences and views borrow the storage they wrap. The storage must outlive
// every cursor derived from them.
package cursor

import "fmt"

// Cursor is a position within a sequence
type Cursor[C any, R any] interface {
	// Deref returns the reference at the current position.
	// Dereferencing an end cursor is undefined.
	Deref() R

	// Next returns the cursor one position forward
	Next() C

	// Equal reports whether both cursors denote the same position
	Equal(other C) bool
}

// Bidirectional is a cursor that can also step backwards
type Bidirectional[C any, R any] interface {
	Cursor[C, R]

	// Prev returns the cursor one position back
	Prev() C
}

// Sequence is anything that can produce a begin cursor and an end sentinel
type Sequence[C Cursor[C, R], R any] interface {
	// Begin returns a cursor at the first element
	Begin() C

	// End returns the sentinel one past the last element
	End() C
}

// Prev steps c back one position.
//
// Adaptors whose own cursors are bidirectional only when the cursor they wrap
// is use Prev to reach it. c must implement Bidirectional; stepping back
// through a forward-only cursor panics.
func Prev[C Cursor[C, R], R any](c C) C {
	if b, ok := any(c).(interface{ Prev() C }); ok {
		return b.Prev()
	}
	panic(fmt.Sprintf("cursor: %T cannot step backwards", c))
}
