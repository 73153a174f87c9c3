package bounded

import (
	"slices"
	"testing"

	"github.com/KevoDB/seqview/pkg/common/cursor"
	"github.com/KevoDB/seqview/pkg/common/cursor/cursortest"
)

func lessThan(n int) func(*int) bool {
	return func(p *int) bool { return *p < n }
}

func TestTakeWhile(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		bound int
		want  []int
	}{
		{"stops at first failure", []int{1, 2, 3, 4, 1, 2}, 3, []int{1, 2}},
		{"empty", []int{}, 3, []int{}},
		{"first fails", []int{5, 1, 2}, 3, []int{}},
		{"all pass", []int{0, 1, 2}, 3, []int{0, 1, 2}},
		{"last fails", []int{0, 1, 9}, 3, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := TakeWhile(lessThan(tt.bound), cursor.Of(tt.input))
			got := cursor.CollectValues(view)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTakeWhileBeginIsEnd(t *testing.T) {
	empty := TakeWhile(lessThan(3), cursor.Of([]int{}))
	if !empty.Begin().Equal(empty.End()) {
		t.Error("Expected Begin == End over an empty sequence")
	}

	failing := TakeWhile(lessThan(3), cursor.Of([]int{7, 1}))
	if !failing.Begin().Equal(failing.End()) {
		t.Error("Expected Begin == End when the first element fails")
	}
}

func TestTakeWhileNeverLooksPastFailure(t *testing.T) {
	var seen []int
	pred := func(p *int) bool {
		seen = append(seen, *p)
		return *p < 3
	}

	cursor.Count(TakeWhile(pred, cursor.Of([]int{1, 4, 1, 1})))
	if !slices.Equal(seen, []int{1, 4}) {
		t.Errorf("Expected the predicate to see [1 4], saw %v", seen)
	}
}

func TestTakeWhileMutation(t *testing.T) {
	xs := []int{1, 2, 5, 1}
	for p := range cursor.All(TakeWhile(lessThan(3), cursor.Of(xs))) {
		*p += 100
	}
	if !slices.Equal(xs, []int{101, 102, 5, 1}) {
		t.Errorf("Expected only the prefix to change, got %v", xs)
	}
}

func TestTakeWhileForwardOnlySource(t *testing.T) {
	list := cursortest.NewList(2, 4, 6, 7, 8)
	even := cursor.ByValue(func(n int) bool { return n%2 == 0 })

	got := cursor.CollectValues(TakeWhile(even, list))
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Expected [2 4 6], got %v", got)
	}
}

func TestTakeWhileRestartable(t *testing.T) {
	view := TakeWhile(func(n int) bool { return n < 4 }, cursor.Iota(0, 10))
	first := cursor.Collect(view)
	second := cursor.Collect(view)
	if !slices.Equal(first, []int{0, 1, 2, 3}) || !slices.Equal(first, second) {
		t.Errorf("Unexpected traversals %v and %v", first, second)
	}
}
