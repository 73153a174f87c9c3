package composite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KevoDB/seqview/pkg/common/cursor"
	"github.com/KevoDB/seqview/pkg/common/cursor/cursortest"
	"github.com/KevoDB/seqview/pkg/common/cursor/filtered"
)

type (
	sliceChain  = ChainView[cursor.Slice[int], cursor.SliceCursor[int], *int]
	sliceCursor = ChainCursor[cursor.Slice[int], cursor.SliceCursor[int], *int]
)

var (
	_ cursor.Sequence[sliceCursor, *int]      = sliceChain{}
	_ cursor.Bidirectional[sliceCursor, *int] = sliceCursor{}
	_ Composite                               = sliceChain{}
)

func TestChainSkipsLeadingEmpty(t *testing.T) {
	view := Chain(cursor.Of([]int{}), cursor.Of([]int{1, 2, 3}), cursor.Of([]int{4, 5}))
	require.Equal(t, []int{1, 2, 3, 4, 5}, cursor.CollectValues(view))
	require.Equal(t, 5, cursor.Count(view))
}

func TestChainEmptyInEveryPosition(t *testing.T) {
	for pos := 0; pos < 4; pos++ {
		t.Run(fmt.Sprintf("empty at %d", pos), func(t *testing.T) {
			inputs := [][]int{{1, 2}, {3}, {4, 5, 6}}
			seqs := make([]cursor.Slice[int], 0, 4)
			for i, in := range inputs {
				if i == pos {
					seqs = append(seqs, cursor.Of([]int{}))
				}
				seqs = append(seqs, cursor.Of(in))
			}
			if pos == len(inputs) {
				seqs = append(seqs, cursor.Of([]int{}))
			}

			view := Chain(seqs...)
			require.Equal(t, []int{1, 2, 3, 4, 5, 6}, cursor.CollectValues(view))
			require.Equal(t, 4, view.NumSources())
		})
	}
}

func TestChainAllEmpty(t *testing.T) {
	view := Chain(cursor.Of([]int{}), cursor.Of([]int(nil)), cursor.Of([]int{}))
	require.True(t, view.Begin().Equal(view.End()))
	require.Empty(t, cursor.CollectValues(view))
	require.Equal(t, 2, view.Begin().Index())

	none := Chain[cursor.Slice[int], cursor.SliceCursor[int], *int]()
	require.True(t, none.Begin().Equal(none.End()))
	require.Equal(t, 0, none.NumSources())
	require.Equal(t, 0, cursor.Count(none))
}

func TestChainEqualityIncludesIndex(t *testing.T) {
	xs := []int{7, 8}
	view := Chain(cursor.Of(xs), cursor.Of(xs))

	// Both cursors wrap index 0 of the same slice but belong to different
	// operands
	second, ok := cursor.Nth(view, 2)
	require.True(t, ok)
	require.Equal(t, 1, second.Index())
	require.False(t, view.Begin().Equal(second))
	require.Equal(t, []int{7, 8, 7, 8}, cursor.CollectValues(view))
}

func TestChainMutation(t *testing.T) {
	a, b := []int{1, 2}, []int{3}
	for p := range cursor.All(Chain(cursor.Of(a), cursor.Of(b))) {
		*p = -*p
	}
	require.Equal(t, []int{-1, -2}, a)
	require.Equal(t, []int{-3}, b)
}

func TestChainPrev(t *testing.T) {
	view := Chain(cursor.Of([]int{1}), cursor.Of([]int{}), cursor.Of([]int{2, 3}), cursor.Of([]int{}))

	var got []int
	begin := view.Begin()
	for c := view.End(); !c.Equal(begin); {
		c = c.Prev()
		got = append(got, *c.Deref())
	}
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestChain2Heterogeneous(t *testing.T) {
	xs := []int{1, 2}
	list := cursortest.NewList(3, 4)

	view := Chain2(cursor.Of(xs), list)
	require.Equal(t, []int{1, 2, 3, 4}, cursor.CollectValues(view))
	require.Equal(t, 2, view.NumSources())

	for p := range cursor.All(view) {
		*p *= 2
	}
	require.Equal(t, []int{2, 4}, xs)
	require.Equal(t, []int{6, 8}, list.Values())
}

func TestChain2EmptyOperands(t *testing.T) {
	tests := []struct {
		name   string
		first  []int
		second []int
		want   []int
	}{
		{"first empty", []int{}, []int{1, 2}, []int{1, 2}},
		{"second empty", []int{1, 2}, []int{}, []int{1, 2}},
		{"both empty", []int{}, []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Chain2(cursor.Of(tt.first), cursortest.NewList(tt.second...))
			require.Equal(t, tt.want, cursor.CollectValues(view))
			if len(tt.want) == 0 {
				require.True(t, view.Begin().Equal(view.End()))
			}
		})
	}
}

func TestChain2Prev(t *testing.T) {
	even := cursor.ByValue(func(n int) bool { return n%2 == 0 })
	view := Chain2(cursor.Of([]int{1, 2}), filtered.Filter(even, cursor.Of([]int{3, 4, 5, 6})))

	c := view.End().Prev()
	require.Equal(t, 6, *c.Deref())
	c = c.Prev()
	require.Equal(t, 4, *c.Deref())
	c = c.Prev()
	require.Equal(t, 2, *c.Deref())
	c = c.Prev()
	require.True(t, c.Equal(view.Begin()))
}

func TestChain3(t *testing.T) {
	odd := cursor.ByValue(func(n int) bool { return n%2 != 0 })

	tests := []struct {
		name    string
		a, b, c []int
		want    []int
	}{
		{"all present", []int{1}, []int{2, 3, 5}, []int{8}, []int{1, 3, 5, 8}},
		{"empty first", []int{}, []int{3}, []int{4}, []int{3, 4}},
		{"empty middle", []int{1}, []int{}, []int{4}, []int{1, 4}},
		{"filtered middle empty", []int{1}, []int{2, 4}, []int{6}, []int{1, 6}},
		{"empty last", []int{1}, []int{3}, []int{}, []int{1, 3}},
		{"all empty", []int{}, []int{}, []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Chain3(cursor.Of(tt.a), filtered.Filter(odd, cursor.Of(tt.b)), cursortest.NewList(tt.c...))
			require.Equal(t, tt.want, cursor.CollectValues(view))
			require.Equal(t, len(tt.want), cursor.Count(view))
		})
	}
}
