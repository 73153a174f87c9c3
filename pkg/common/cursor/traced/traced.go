// Package traced provides a view that logs every cursor movement of the
// sequence it wraps, and optionally counts it in a stats collector. It
// changes nothing about the traversal itself.
package traced

import (
	"github.com/KevoDB/seqview/pkg/common/cursor"
	"github.com/KevoDB/seqview/pkg/common/log"
	"github.com/KevoDB/seqview/pkg/stats"
)

// View forwards a sequence unchanged while logging cursor movement
type View[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any] struct {
	seq       S
	logger    log.Logger
	collector stats.Collector
}

// Trace wraps seq so that Begin, Next and Prev are logged at debug level
// under the given name
func Trace[S cursor.Sequence[C, R], C cursor.Cursor[C, R], R any](logger log.Logger, name string, seq S) View[S, C, R] {
	return View[S, C, R]{seq: seq, logger: logger.WithField("view", name)}
}

// WithStats returns a copy of v whose cursors also report Begin, Next and
// Prev to collector
func (v View[S, C, R]) WithStats(collector stats.Collector) View[S, C, R] {
	v.collector = collector
	return v
}

func (v View[S, C, R]) Begin() Cursor[C, R] {
	v.logger.Debug("begin")
	if v.collector != nil {
		v.collector.TrackOperation(stats.OpBegin)
	}
	return Cursor[C, R]{cur: v.seq.Begin(), logger: v.logger, collector: v.collector}
}

func (v View[S, C, R]) End() Cursor[C, R] {
	return Cursor[C, R]{cur: v.seq.End(), logger: v.logger, collector: v.collector}
}

// Cursor is a position within a traced view. pos counts forward steps and is
// only used for logging.
type Cursor[C cursor.Cursor[C, R], R any] struct {
	cur       C
	pos       int
	logger    log.Logger
	collector stats.Collector
}

func (tc Cursor[C, R]) Deref() R {
	return tc.cur.Deref()
}

func (tc Cursor[C, R]) Next() Cursor[C, R] {
	tc.cur = tc.cur.Next()
	tc.pos++
	tc.logger.Debug("next -> %d", tc.pos)
	if tc.collector != nil {
		tc.collector.TrackOperation(stats.OpNext)
	}
	return tc
}

// Prev requires the wrapped cursor to be bidirectional
func (tc Cursor[C, R]) Prev() Cursor[C, R] {
	tc.cur = cursor.Prev(tc.cur)
	tc.logger.Debug("prev")
	if tc.collector != nil {
		tc.collector.TrackOperation(stats.OpPrev)
	}
	return tc
}

func (tc Cursor[C, R]) Equal(other Cursor[C, R]) bool {
	return tc.cur.Equal(other.cur)
}
