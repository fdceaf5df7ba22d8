// Package notify provides the cross-navigation notification relay: a
// single-slot channel that carries one short-lived outcome message from a
// mutating operation to the next rendering pass.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the value handed across the navigation boundary.
type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultTTL is the staleness window after which an unconsumed
// notification is discarded.
const DefaultTTL = 2000 * time.Millisecond

// Relay holds at most one pending notification. Publishing overwrites the
// slot; consuming empties it. A notification older than the TTL is dropped
// on consume instead of being resurrected on an unrelated later view.
type Relay struct {
	mu   sync.Mutex
	slot *Notification
	ttl  time.Duration
	now  func() time.Time
}

// NewRelay creates a relay with the given staleness window.
// A non-positive ttl falls back to DefaultTTL.
func NewRelay(ttl time.Duration) *Relay {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Relay{
		ttl: ttl,
		now: time.Now,
	}
}

// NewRelayWithClock creates a relay with an injected clock for tests.
func NewRelayWithClock(ttl time.Duration, now func() time.Time) *Relay {
	r := NewRelay(ttl)
	if now != nil {
		r.now = now
	}
	return r
}

// Publish stores a notification, replacing any pending one.
// Fire-and-forget: it never blocks and never fails.
func (r *Relay) Publish(message string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slot = &Notification{
		Message:   message,
		Severity:  severity,
		CreatedAt: r.now(),
	}
}

// Consume returns the pending notification if it is still fresh.
// The slot is cleared either way, so a notification is delivered at most once.
func (r *Relay) Consume() (*Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.slot
	r.slot = nil
	if n == nil {
		return nil, false
	}
	if r.now().Sub(n.CreatedAt) > r.ttl {
		return nil, false
	}
	return n, true
}
