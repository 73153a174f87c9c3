package cursor

// This file documents the pattern every view in seqview follows.
//
// Guidelines for views:
//
// 1. Naming Convention:
//    - One package per adaptor, named for what the view does to traversal
//      (filtered, bounded, reversed, composite, traced)
//    - The factory is the only exported constructor; the view type keeps its
//      fields unexported so a zero View is never handed out by the package
//
// 2. Implementation Pattern:
//    - Store the wrapped sequence by value (a slice header or another view);
//      never copy the elements it refers to
//    - Begin and End return the view's own cursor type, so the view is itself
//      a Sequence and can be wrapped again
//    - The cursor keeps whatever sentinels it needs to stop (usually the
//      wrapped End) so it does not have to reach back into the view
//    - Deref forwards the wrapped reference unchanged
//    - Provide Prev when the policy can be walked backwards, and reach the
//      wrapped cursor through cursor.Prev so forward-only sources still compile
//
// 3. Performance Considerations:
//    - Cursors are values; Next returns a modified copy
//    - Predicates run only while searching for a position, never in Equal
//
// Example:
//
// // Every returns every position of the wrapped sequence unchanged
// type EveryView[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
//     seq S
// }
//
// func Every[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](seq S) EveryView[S, C, R] {
//     return EveryView[S, C, R]{seq: seq}
// }
//
// func (v EveryView[S, C, R]) Begin() C { return v.seq.Begin() }
//
// func (v EveryView[S, C, R]) End() C { return v.seq.End() }
