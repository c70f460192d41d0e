package domain

import "time"

// LogEntry is immutable once created. ID is a per-session monotonic sequence
// number so entries within the same clock tick still sort and dedupe.
type LogEntry struct {
	ID        uint64
	Timestamp time.Time
	Message   string
}
