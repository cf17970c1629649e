package logging

// LogEntry represents a structured log record with fields particularly
// relevant to search progress reporting.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Solver-specific fields
	Generation int         // Generation the record was emitted from, -1 if n/a
	SearchInfo *SearchInfo // Snapshot of search progress

	// General structured data
	Fields map[string]interface{}
}

// SearchInfo tracks search progress for run monitoring.
type SearchInfo struct {
	BestCost    float64
	Improvement float64
	Mode        string
}
