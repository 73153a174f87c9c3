package traced

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/KevoDB/seqview/pkg/common/cursor"
	"github.com/KevoDB/seqview/pkg/common/cursor/filtered"
	"github.com/KevoDB/seqview/pkg/common/cursor/reversed"
	"github.com/KevoDB/seqview/pkg/common/log"
	"github.com/KevoDB/seqview/pkg/stats"
)

func newLogger(buf *bytes.Buffer, level log.Level) log.Logger {
	return log.NewStandardLogger(log.WithOutput(buf), log.WithLevel(level))
}

func TestTraceLogsMovement(t *testing.T) {
	var buf bytes.Buffer
	xs := []int{4, 5, 6}

	view := Trace(newLogger(&buf, log.LevelDebug), "xs", cursor.Of(xs))
	got := cursor.CollectValues(view)
	if !slices.Equal(got, xs) {
		t.Errorf("Expected %v, got %v", xs, got)
	}

	output := buf.String()
	for _, want := range []string{"view=xs begin", "view=xs next -> 1", "view=xs next -> 3"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "next -> 4") {
		t.Errorf("Unexpected extra step in output: %s", output)
	}
}

func TestTraceQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	view := Trace(newLogger(&buf, log.LevelInfo), "xs", cursor.Of([]int{1, 2}))

	cursor.Count(view)
	if buf.Len() != 0 {
		t.Errorf("Expected no output at info level, got: %s", buf.String())
	}
}

func TestTraceIsTransparent(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.LevelDebug)
	xs := []int{1, 2, 3, 4}

	even := cursor.ByValue(func(n int) bool { return n%2 == 0 })
	view := reversed.Reverse(filtered.Filter(even, Trace(logger, "xs", cursor.Of(xs))))

	for p := range cursor.All(view) {
		*p = 0
	}
	if !slices.Equal(xs, []int{1, 0, 3, 0}) {
		t.Errorf("Expected writes to reach storage, got %v", xs)
	}
	if !strings.Contains(buf.String(), "view=xs prev") {
		t.Errorf("Expected prev steps to be logged, got: %s", buf.String())
	}
}

func TestTraceWithStats(t *testing.T) {
	var buf bytes.Buffer
	collector := stats.NewAtomicCollector()
	view := Trace(newLogger(&buf, log.LevelError), "xs", cursor.Of([]int{1, 2, 3})).WithStats(collector)

	cursor.Count(view)
	if collector.Count(stats.OpBegin) != 1 || collector.Count(stats.OpNext) != 3 {
		t.Errorf("Unexpected counts: %v", collector.GetStats())
	}

	cursor.CollectValues(reversed.Reverse(view))
	if collector.Count(stats.OpPrev) != 6 {
		t.Errorf("Expected 6 prev steps for a reverse traversal, got %d", collector.Count(stats.OpPrev))
	}
}
