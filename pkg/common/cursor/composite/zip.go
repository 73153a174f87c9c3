package composite

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
)

// Tuple2 is the aggregate produced at each position of a Zip2View.
// V0 and V1 are the references yielded by the first and second operand; for
// mutable operands they are pointers into the caller's storage.
type Tuple2[R0, R1 any] struct {
	V0 R0
	V1 R1
}

// Tuple3 is the aggregate produced at each position of a Zip3View
type Tuple3[R0, R1, R2 any] struct {
	V0 R0
	V1 R1
	V2 R2
}

// Tuple4 is the aggregate produced at each position of a Zip4View
type Tuple4[R0, R1, R2, R3 any] struct {
	V0 R0
	V1 R1
	V2 R2
	V3 R3
}

// Zip2View pairs two sequences position by position
type Zip2View[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any] struct {
	s0 S0
	s1 S1
}

// Zip2 creates a view whose i-th element pairs the i-th elements of s0 and s1.
// The view is as long as the shorter operand.
func Zip2[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any](s0 S0, s1 S1) Zip2View[S0, C0, R0, S1, C1, R1] {
	return Zip2View[S0, C0, R0, S1, C1, R1]{s0: s0, s1: s1}
}

// NumSources returns 2
func (v Zip2View[S0, C0, R0, S1, C1, R1]) NumSources() int {
	return 2
}

func (v Zip2View[S0, C0, R0, S1, C1, R1]) Begin() Zip2Cursor[C0, R0, C1, R1] {
	return Zip2Cursor[C0, R0, C1, R1]{c0: v.s0.Begin(), c1: v.s1.Begin()}
}

// End returns the cursor made of every operand's own end
func (v Zip2View[S0, C0, R0, S1, C1, R1]) End() Zip2Cursor[C0, R0, C1, R1] {
	return Zip2Cursor[C0, R0, C1, R1]{c0: v.s0.End(), c1: v.s1.End()}
}

// Zip2Cursor is a position within a Zip2View. All sub-cursors move in lock
// step; it is forward-only.
type Zip2Cursor[C0 cursor.Cursor[C0, R0], R0 any, C1 cursor.Cursor[C1, R1], R1 any] struct {
	c0 C0
	c1 C1
}

func (zc Zip2Cursor[C0, R0, C1, R1]) Deref() Tuple2[R0, R1] {
	return Tuple2[R0, R1]{V0: zc.c0.Deref(), V1: zc.c1.Deref()}
}

func (zc Zip2Cursor[C0, R0, C1, R1]) Next() Zip2Cursor[C0, R0, C1, R1] {
	zc.c0 = zc.c0.Next()
	zc.c1 = zc.c1.Next()
	return zc
}

// Equal reports whether any pair of corresponding sub-cursors is equal, so a
// traversal stops as soon as any operand reaches its own end
func (zc Zip2Cursor[C0, R0, C1, R1]) Equal(other Zip2Cursor[C0, R0, C1, R1]) bool {
	return zc.c0.Equal(other.c0) || zc.c1.Equal(other.c1)
}

// Zip3View groups three sequences position by position
type Zip3View[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any,
	S2 cursor.Sequence[C2, R2], C2 cursor.Cursor[C2, R2], R2 any] struct {
	s0 S0
	s1 S1
	s2 S2
}

// Zip3 creates a view over three sequences that is as long as the shortest
func Zip3[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any,
	S2 cursor.Sequence[C2, R2], C2 cursor.Cursor[C2, R2], R2 any](s0 S0, s1 S1, s2 S2) Zip3View[S0, C0, R0, S1, C1, R1, S2, C2, R2] {
	return Zip3View[S0, C0, R0, S1, C1, R1, S2, C2, R2]{s0: s0, s1: s1, s2: s2}
}

// NumSources returns 3
func (v Zip3View[S0, C0, R0, S1, C1, R1, S2, C2, R2]) NumSources() int {
	return 3
}

func (v Zip3View[S0, C0, R0, S1, C1, R1, S2, C2, R2]) Begin() Zip3Cursor[C0, R0, C1, R1, C2, R2] {
	return Zip3Cursor[C0, R0, C1, R1, C2, R2]{c0: v.s0.Begin(), c1: v.s1.Begin(), c2: v.s2.Begin()}
}

func (v Zip3View[S0, C0, R0, S1, C1, R1, S2, C2, R2]) End() Zip3Cursor[C0, R0, C1, R1, C2, R2] {
	return Zip3Cursor[C0, R0, C1, R1, C2, R2]{c0: v.s0.End(), c1: v.s1.End(), c2: v.s2.End()}
}

// Zip3Cursor is a position within a Zip3View
type Zip3Cursor[C0 cursor.Cursor[C0, R0], R0 any, C1 cursor.Cursor[C1, R1], R1 any, C2 cursor.Cursor[C2, R2], R2 any] struct {
	c0 C0
	c1 C1
	c2 C2
}

func (zc Zip3Cursor[C0, R0, C1, R1, C2, R2]) Deref() Tuple3[R0, R1, R2] {
	return Tuple3[R0, R1, R2]{V0: zc.c0.Deref(), V1: zc.c1.Deref(), V2: zc.c2.Deref()}
}

func (zc Zip3Cursor[C0, R0, C1, R1, C2, R2]) Next() Zip3Cursor[C0, R0, C1, R1, C2, R2] {
	zc.c0 = zc.c0.Next()
	zc.c1 = zc.c1.Next()
	zc.c2 = zc.c2.Next()
	return zc
}

// Equal reports whether any pair of corresponding sub-cursors is equal
func (zc Zip3Cursor[C0, R0, C1, R1, C2, R2]) Equal(other Zip3Cursor[C0, R0, C1, R1, C2, R2]) bool {
	return zc.c0.Equal(other.c0) || zc.c1.Equal(other.c1) || zc.c2.Equal(other.c2)
}

// Zip4View groups four sequences position by position
type Zip4View[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any,
	S2 cursor.Sequence[C2, R2], C2 cursor.Cursor[C2, R2], R2 any,
	S3 cursor.Sequence[C3, R3], C3 cursor.Cursor[C3, R3], R3 any] struct {
	s0 S0
	s1 S1
	s2 S2
	s3 S3
}

// Zip4 creates a view over four sequences that is as long as the shortest
func Zip4[S0 cursor.Sequence[C0, R0], C0 cursor.Cursor[C0, R0], R0 any,
	S1 cursor.Sequence[C1, R1], C1 cursor.Cursor[C1, R1], R1 any,
	S2 cursor.Sequence[C2, R2], C2 cursor.Cursor[C2, R2], R2 any,
	S3 cursor.Sequence[C3, R3], C3 cursor.Cursor[C3, R3], R3 any](s0 S0, s1 S1, s2 S2, s3 S3) Zip4View[S0, C0, R0, S1, C1, R1, S2, C2, R2, S3, C3, R3] {
	return Zip4View[S0, C0, R0, S1, C1, R1, S2, C2, R2, S3, C3, R3]{s0: s0, s1: s1, s2: s2, s3: s3}
}

// NumSources returns 4
func (v Zip4View[S0, C0, R0, S1, C1, R1, S2, C2, R2, S3, C3, R3]) NumSources() int {
	return 4
}

func (v Zip4View[S0, C0, R0, S1, C1, R1, S2, C2, R2, S3, C3, R3]) Begin() Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3] {
	return Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]{
		c0: v.s0.Begin(),
		c1: v.s1.Begin(),
		c2: v.s2.Begin(),
		c3: v.s3.Begin(),
	}
}

func (v Zip4View[S0, C0, R0, S1, C1, R1, S2, C2, R2, S3, C3, R3]) End() Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3] {
	return Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]{
		c0: v.s0.End(),
		c1: v.s1.End(),
		c2: v.s2.End(),
		c3: v.s3.End(),
	}
}

// Zip4Cursor is a position within a Zip4View
type Zip4Cursor[C0 cursor.Cursor[C0, R0], R0 any, C1 cursor.Cursor[C1, R1], R1 any,
	C2 cursor.Cursor[C2, R2], R2 any, C3 cursor.Cursor[C3, R3], R3 any] struct {
	c0 C0
	c1 C1
	c2 C2
	c3 C3
}

func (zc Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]) Deref() Tuple4[R0, R1, R2, R3] {
	return Tuple4[R0, R1, R2, R3]{
		V0: zc.c0.Deref(),
		V1: zc.c1.Deref(),
		V2: zc.c2.Deref(),
		V3: zc.c3.Deref(),
	}
}

func (zc Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]) Next() Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3] {
	zc.c0 = zc.c0.Next()
	zc.c1 = zc.c1.Next()
	zc.c2 = zc.c2.Next()
	zc.c3 = zc.c3.Next()
	return zc
}

// Equal reports whether any pair of corresponding sub-cursors is equal
func (zc Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]) Equal(other Zip4Cursor[C0, R0, C1, R1, C2, R2, C3, R3]) bool {
	return zc.c0.Equal(other.c0) ||
		zc.c1.Equal(other.c1) ||
		zc.c2.Equal(other.c2) ||
		zc.c3.Equal(other.c3)
}
