// Package stats counts cursor operations and traversal timings for the views
// that report to it
package stats

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// OperationType names a tracked operation
type OperationType string

const (
	OpBegin     OperationType = "begin"
	OpNext      OperationType = "next"
	OpPrev      OperationType = "prev"
	OpTraversal OperationType = "traversal"
	OpCommand   OperationType = "command"
)

// AtomicCollector collects statistics using atomic counters. It may be shared
// by any number of views and goroutines.
type AtomicCollector struct {
	counts   map[OperationType]*atomic.Uint64
	countsMu sync.RWMutex // only taken to create entries

	lastOpTime   map[OperationType]time.Time
	lastOpTimeMu sync.RWMutex

	elements atomic.Uint64

	errors   map[string]*atomic.Uint64
	errorsMu sync.RWMutex

	latencies   map[OperationType]*LatencyTracker
	latenciesMu sync.RWMutex
}

// LatencyTracker keeps running latency figures for one operation type
type LatencyTracker struct {
	count atomic.Uint64
	sum   atomic.Uint64 // nanoseconds
	max   atomic.Uint64
	min   atomic.Uint64 // 0 until the first sample
}

// NewAtomicCollector creates an empty collector
func NewAtomicCollector() *AtomicCollector {
	return &AtomicCollector{
		counts:     make(map[OperationType]*atomic.Uint64),
		lastOpTime: make(map[OperationType]time.Time),
		errors:     make(map[string]*atomic.Uint64),
		latencies:  make(map[OperationType]*LatencyTracker),
	}
}

// Reset clears every counter
func (c *AtomicCollector) Reset() {
	c.countsMu.Lock()
	clear(c.counts)
	c.countsMu.Unlock()

	c.lastOpTimeMu.Lock()
	clear(c.lastOpTime)
	c.lastOpTimeMu.Unlock()

	c.errorsMu.Lock()
	clear(c.errors)
	c.errorsMu.Unlock()

	c.latenciesMu.Lock()
	clear(c.latencies)
	c.latenciesMu.Unlock()

	c.elements.Store(0)
}

// TrackOperation increments the counter for op
func (c *AtomicCollector) TrackOperation(op OperationType) {
	getOrCreate(&c.countsMu, c.counts, op, newCounter).Add(1)

	c.lastOpTimeMu.Lock()
	c.lastOpTime[op] = time.Now()
	c.lastOpTimeMu.Unlock()
}

// TrackOperationWithLatency counts op and folds latencyNs into its latency
// figures
func (c *AtomicCollector) TrackOperationWithLatency(op OperationType, latencyNs uint64) {
	c.TrackOperation(op)

	tracker := getOrCreate(&c.latenciesMu, c.latencies, op, func() *LatencyTracker {
		return &LatencyTracker{}
	})
	tracker.count.Add(1)
	tracker.sum.Add(latencyNs)

	for {
		current := tracker.max.Load()
		if latencyNs <= current || tracker.max.CompareAndSwap(current, latencyNs) {
			break
		}
	}
	for {
		current := tracker.min.Load()
		if (current != 0 && latencyNs >= current) || tracker.min.CompareAndSwap(current, latencyNs) {
			break
		}
	}
}

// TrackError increments the counter for errorType
func (c *AtomicCollector) TrackError(errorType string) {
	getOrCreate(&c.errorsMu, c.errors, errorType, newCounter).Add(1)
}

func (c *AtomicCollector) TrackElements(n uint64) {
	c.elements.Add(n)
}

// GetStats returns all statistics as a map. Counters are stored under
// "<op>_ops", timestamps under "last_<op>_time" and latencies under
// "<op>_latency".
func (c *AtomicCollector) GetStats() map[string]any {
	stats := make(map[string]any)

	c.countsMu.RLock()
	for op, counter := range c.counts {
		stats[string(op)+"_ops"] = counter.Load()
	}
	c.countsMu.RUnlock()

	c.lastOpTimeMu.RLock()
	for op, ts := range c.lastOpTime {
		stats["last_"+string(op)+"_time"] = ts.UnixNano()
	}
	c.lastOpTimeMu.RUnlock()

	stats["elements"] = c.elements.Load()

	c.errorsMu.RLock()
	errorStats := make(map[string]uint64, len(c.errors))
	for errType, counter := range c.errors {
		errorStats[errType] = counter.Load()
	}
	c.errorsMu.RUnlock()
	stats["errors"] = errorStats

	c.latenciesMu.RLock()
	for op, tracker := range c.latencies {
		count := tracker.count.Load()
		if count == 0 {
			continue
		}
		stats[string(op)+"_latency"] = map[string]any{
			"count":  count,
			"avg_ns": tracker.sum.Load() / count,
			"min_ns": tracker.min.Load(),
			"max_ns": tracker.max.Load(),
		}
	}
	c.latenciesMu.RUnlock()

	return stats
}

// GetStatsFiltered returns the statistics whose key starts with prefix
func (c *AtomicCollector) GetStatsFiltered(prefix string) map[string]any {
	filtered := make(map[string]any)
	for key, value := range c.GetStats() {
		if strings.HasPrefix(key, prefix) {
			filtered[key] = value
		}
	}
	return filtered
}

// Count returns the number of times op was tracked
func (c *AtomicCollector) Count(op OperationType) uint64 {
	c.countsMu.RLock()
	defer c.countsMu.RUnlock()
	if counter, ok := c.counts[op]; ok {
		return counter.Load()
	}
	return 0
}

func newCounter() *atomic.Uint64 {
	return &atomic.Uint64{}
}

// getOrCreate looks up key under a read lock and only takes the write lock
// when the entry has to be created
func getOrCreate[K comparable, V any](mu *sync.RWMutex, m map[K]V, key K, create func() V) V {
	mu.RLock()
	v, ok := m[key]
	mu.RUnlock()
	if ok {
		return v
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok = m[key]; !ok {
		v = create()
		m[key] = v
	}
	return v
}
