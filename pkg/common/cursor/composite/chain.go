package composite

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// ChainView concatenates sequences of one concrete type
type ChainView[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
	seqs []S
}

// Chain creates a view that yields every element of seqs[0], then every
// element of seqs[1], and so on. Empty sequences contribute nothing.
func Chain[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](seqs ...S) ChainView[S, C, R] {
	return ChainView[S, C, R]{seqs: seqs}
}

// NumSources returns the number of chained sequences
func (v ChainView[S, C, R]) NumSources() int {
	return len(v.seqs)
}

// Begin returns a cursor at the first element of the first non-empty sequence
func (v ChainView[S, C, R]) Begin() ChainCursor[S, C, R] {
	if len(v.seqs) == 0 {
		return ChainCursor[S, C, R]{}
	}
	cc := ChainCursor[S, C, R]{seqs: v.seqs, cur: v.seqs[0].Begin()}
	return cc.settle()
}

// End returns a cursor at the end of the last sequence
func (v ChainView[S, C, R]) End() ChainCursor[S, C, R] {
	if len(v.seqs) == 0 {
		return ChainCursor[S, C, R]{}
	}
	last := len(v.seqs) - 1
	return ChainCursor[S, C, R]{seqs: v.seqs, idx: last, cur: v.seqs[last].End()}
}

// ChainCursor is a position within a chain: the active sequence and the
// cursor within it
type ChainCursor[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
	seqs []S
	idx  int
	cur  C
}

// settle moves past exhausted sequences until a non-empty one is active or
// the last sequence is reached
func (cc ChainCursor[S, C, R]) settle() ChainCursor[S, C, R] {
	for cc.idx < len(cc.seqs)-1 && cc.cur.Equal(cc.seqs[cc.idx].End()) {
		cc.idx++
		cc.cur = cc.seqs[cc.idx].Begin()
	}
	return cc
}

// Deref returns the reference from the active sequence
func (cc ChainCursor[S, C, R]) Deref() R {
	return cc.cur.Deref()
}

func (cc ChainCursor[S, C, R]) Next() ChainCursor[S, C, R] {
	cc.cur = cc.cur.Next()
	return cc.settle()
}

// Prev steps back, crossing into earlier sequences and skipping empty ones.
// The sequences' cursors must be bidirectional.
func (cc ChainCursor[S, C, R]) Prev() ChainCursor[S, C, R] {
	for cc.cur.Equal(cc.seqs[cc.idx].Begin()) {
		cc.idx--
		cc.cur = cc.seqs[cc.idx].End()
	}
	cc.cur = cursor.Prev(cc.cur)
	return cc
}

// Equal requires the same active sequence and the same position within it
func (cc ChainCursor[S, C, R]) Equal(other ChainCursor[S, C, R]) bool {
	return cc.idx == other.idx && cc.cur.Equal(other.cur)
}

// Index returns the position of the active sequence among the chained ones
func (cc ChainCursor[S, C, R]) Index() int {
	return cc.idx
}

// Chain2View concatenates two sequences of different concrete types that
// yield the same reference type
type Chain2View[S1 cursor.Sequence[C1, R], C1 cursor.Cursor[C1, R], S2 cursor.Sequence[C2, R], C2 cursor.Cursor[C2, R], R any] struct {
	s1 S1
	s2 S2
}

// Chain2 creates a view that yields every element of s1 followed by every
// element of s2
func Chain2[S1 cursor.Sequence[C1, R], C1 cursor.Cursor[C1, R], S2 cursor.Sequence[C2, R], C2 cursor.Cursor[C2, R], R any](s1 S1, s2 S2) Chain2View[S1, C1, S2, C2, R] {
	return Chain2View[S1, C1, S2, C2, R]{s1: s1, s2: s2}
}

// Chain3 creates a view over three sequences of possibly different concrete
// types, built as Chain2(Chain2(s1, s2), s3)
func Chain3[S1 cursor.Sequence[C1, R], C1 cursor.Cursor[C1, R], S2 cursor.Sequence[C2, R], C2 cursor.Cursor[C2, R], S3 cursor.Sequence[C3, R], C3 cursor.Cursor[C3, R], R any](s1 S1, s2 S2, s3 S3) Chain2View[Chain2View[S1, C1, S2, C2, R], Chain2Cursor[C1, C2, R], S3, C3, R] {
	inner := Chain2[S1, C1, S2, C2, R](s1, s2)
	return Chain2[Chain2View[S1, C1, S2, C2, R], Chain2Cursor[C1, C2, R], S3, C3, R](inner, s3)
}

// NumSources returns 2
func (v Chain2View[S1, C1, S2, C2, R]) NumSources() int {
	return 2
}

// Begin returns a cursor at the first element of s1, or of s2 when s1 is empty
func (v Chain2View[S1, C1, S2, C2, R]) Begin() Chain2Cursor[C1, C2, R] {
	cc := Chain2Cursor[C1, C2, R]{
		c1: v.s1.Begin(),
		b1: v.s1.Begin(),
		e1: v.s1.End(),
		b2: v.s2.Begin(),
	}
	return cc.settle()
}

// End returns a cursor at the end of s2
func (v Chain2View[S1, C1, S2, C2, R]) End() Chain2Cursor[C1, C2, R] {
	return Chain2Cursor[C1, C2, R]{
		second: true,
		c1:     v.s1.End(),
		c2:     v.s2.End(),
		b1:     v.s1.Begin(),
		e1:     v.s1.End(),
		b2:     v.s2.Begin(),
	}
}

// Chain2Cursor is a position within a Chain2View
type Chain2Cursor[C1 cursor.Cursor[C1, R], C2 cursor.Cursor[C2, R], R any] struct {
	second bool
	c1     C1
	c2     C2

	// sentinels needed to cross the boundary in either direction
	b1, e1 C1
	b2     C2
}

func (cc Chain2Cursor[C1, C2, R]) settle() Chain2Cursor[C1, C2, R] {
	if !cc.second && cc.c1.Equal(cc.e1) {
		cc.second = true
		cc.c2 = cc.b2
	}
	return cc
}

// Deref returns the reference from whichever sequence is active
func (cc Chain2Cursor[C1, C2, R]) Deref() R {
	if cc.second {
		return cc.c2.Deref()
	}
	return cc.c1.Deref()
}

func (cc Chain2Cursor[C1, C2, R]) Next() Chain2Cursor[C1, C2, R] {
	if cc.second {
		cc.c2 = cc.c2.Next()
		return cc
	}
	cc.c1 = cc.c1.Next()
	return cc.settle()
}

// Prev steps back, crossing from the second sequence into the first.
// Both cursor types must be bidirectional.
func (cc Chain2Cursor[C1, C2, R]) Prev() Chain2Cursor[C1, C2, R] {
	if cc.second && cc.c2.Equal(cc.b2) {
		cc.second = false
		cc.c1 = cc.e1
	}
	if cc.second {
		cc.c2 = cursor.Prev(cc.c2)
	} else {
		cc.c1 = cursor.Prev(cc.c1)
	}
	return cc
}

// Equal requires the same active sequence and the same position within it
func (cc Chain2Cursor[C1, C2, R]) Equal(other Chain2Cursor[C1, C2, R]) bool {
	if cc.second != other.second {
		return false
	}
	if cc.second {
		return cc.c2.Equal(other.c2)
	}
	return cc.c1.Equal(other.c1)
}
