package application

import (
	"sync"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports"
)

// DefaultLogCapacity bounds the event log. The aggregator is a ring: once full,
// each append evicts the oldest entry.
const DefaultLogCapacity = 1000

// EventLog is the append-only, time-ordered buffer of user-facing events. It is
// safe for concurrent appends; entries are never edited or removed other than
// by ring eviction.
type EventLog struct {
	mu       sync.Mutex
	clock    ports.Clock
	capacity int
	nextID   uint64
	entries  []domain.LogEntry
}

func NewEventLog(capacity int, clock ports.Clock) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &EventLog{clock: clock, capacity: capacity}
}

// Append stamps the message with the wall clock and a monotonic sequence ID, so
// entries within the same clock tick still sort and dedupe.
func (l *EventLog) Append(message string) domain.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	entry := domain.LogEntry{
		ID:        l.nextID,
		Timestamp: l.clock.Now(),
		Message:   message,
	}

	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = entry
	} else {
		l.entries = append(l.entries, entry)
	}

	return entry
}

// Entries returns the retained entries in insertion order.
func (l *EventLog) Entries() []domain.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
