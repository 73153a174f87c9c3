package stats

// Provider defines the interface for components that provide statistics
type Provider interface {
	// GetStats returns all statistics
	GetStats() map[string]any

	// GetStatsFiltered returns statistics whose key starts with prefix
	GetStatsFiltered(prefix string) map[string]any
}

// Collector records cursor movement and traversal timings
type Collector interface {
	Provider

	// TrackOperation records a single cursor operation
	TrackOperation(op OperationType)

	// TrackOperationWithLatency records an operation with its latency
	TrackOperationWithLatency(op OperationType, latencyNs uint64)

	// TrackError increments the counter for the specified error type
	TrackError(errorType string)

	// TrackElements adds n to the count of elements produced by traversals
	TrackElements(n uint64)

	// Reset clears every counter
	Reset()
}

var _ Collector = (*AtomicCollector)(nil)
