// Package cache provides fitness memoization for candidate evaluation.
//
// The cost oracle is the expensive call in a solve, and variation operators
// routinely regenerate structurally identical candidates. Caching by
// structural fingerprint keeps oracle traffic proportional to distinct
// candidates rather than population size times generations.
package cache

import "time"

// CostCache is the interface the fitness evaluator memoizes through.
// Implementations must be safe for concurrent use: evaluation within a
// generation may run on multiple goroutines.
type CostCache interface {
	// Get retrieves a cached cost by structural fingerprint.
	Get(key string) (float64, bool)

	// Set stores the cost for a fingerprint.
	Set(key string, cost float64)

	// Clear removes all cached values.
	Clear()

	// Stats returns cache statistics.
	Stats() Stats
}

// Stats contains cache performance statistics.
type Stats struct {
	Hits       int64
	Misses     int64
	Sets       int64
	Evictions  int64
	Size       int
	MaxEntries int
	LastAccess time.Time
}
