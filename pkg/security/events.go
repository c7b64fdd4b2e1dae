package security

import (
	"sync"
	"time"

	"github.com/ama-arogya/arogya/pkg/models"
)

// DefaultEventLogSize is the default ring-buffer capacity.
const DefaultEventLogSize = 1000

// EventLog records security-relevant occurrences in a fixed-capacity ring
// buffer. Once full, the oldest event is silently overwritten.
type EventLog struct {
	mu     sync.Mutex
	events []models.SecurityEvent
	next   int
	filled bool

	now func() time.Time // replaced in tests
}

// NewEventLog creates an EventLog holding at most capacity events.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventLogSize
	}
	return &EventLog{
		events: make([]models.SecurityEvent, capacity),
		now:    time.Now,
	}
}

// Record appends an event. reqCtx may be nil when no request context is
// available.
func (l *EventLog) Record(eventType string, details map[string]string, reqCtx *models.RequestContext) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events[l.next] = models.SecurityEvent{
		Timestamp: l.now(),
		Type:      eventType,
		Details:   details,
		Request:   reqCtx,
	}
	l.next++
	if l.next == len(l.events) {
		l.next = 0
		l.filled = true
	}
}

// Len returns the number of events currently held.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.filled {
		return len(l.events)
	}
	return l.next
}

// Recent returns up to n events, newest first. A non-positive n returns
// every held event.
func (l *EventLog) Recent(n int) []models.SecurityEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := l.next
	if l.filled {
		total = len(l.events)
	}
	if n <= 0 || n > total {
		n = total
	}

	out := make([]models.SecurityEvent, 0, n)
	idx := l.next - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(l.events) - 1
		}
		out = append(out, l.events[idx])
		idx--
	}
	return out
}
