package cursor

import "iter"

// All returns the traversal of seq from Begin to End as a range-over-func
// iterator. Each call to the returned iterator starts a fresh traversal.
func All[S Sequence[C, R], C Cursor[C, R], R any](seq S) iter.Seq[R] {
	return func(yield func(R) bool) {
		end := seq.End()
		for c := seq.Begin(); !c.Equal(end); c = c.Next() {
			if !yield(c.Deref()) {
				return
			}
		}
	}
}

// Collect gathers the references produced by seq
func Collect[S Sequence[C, R], C Cursor[C, R], R any](seq S) []R {
	var out []R
	for r := range All(seq) {
		out = append(out, r)
	}
	return out
}

// CollectValues copies the elements of a mutable sequence into a new slice
func CollectValues[S Sequence[C, *T], C Cursor[C, *T], T any](seq S) []T {
	out := []T{}
	for p := range All(seq) {
		out = append(out, *p)
	}
	return out
}

// Count walks seq and returns the number of positions between Begin and End
func Count[S Sequence[C, R], C Cursor[C, R], R any](seq S) int {
	n := 0
	end := seq.End()
	for c := seq.Begin(); !c.Equal(end); c = c.Next() {
		n++
	}
	return n
}

// Nth returns the cursor n positions after Begin. ok is false when the
// sequence ends first.
func Nth[S Sequence[C, R], C Cursor[C, R], R any](seq S, n int) (c C, ok bool) {
	end := seq.End()
	c = seq.Begin()
	for ; n > 0; n-- {
		if c.Equal(end) {
			return c, false
		}
		c = c.Next()
	}
	return c, !c.Equal(end)
}

// ByValue adapts a predicate over T to one over *T, for use with mutable
// sequences
func ByValue[T any](pred func(T) bool) func(*T) bool {
	return func(p *T) bool {
		return pred(*p)
	}
}
