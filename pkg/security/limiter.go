package security

import (
	"sync"
	"time"
)

// Limiter is a sliding-window request counter with a ban store. Each client
// identifier gets a window of request timestamps covering the last Window;
// a client at or over the limit is denied. Bans are checked before any
// window accounting, so a banned client never consumes window budget.
//
// With a zero BanTTL, bans hold until ClearBans or process restart. State
// is in-memory and approximate: windows reset on restart.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	banned  map[string]time.Time

	limit  int
	window time.Duration
	banTTL time.Duration

	now func() time.Time // replaced in tests
}

// NewLimiter creates a Limiter allowing limit requests per window.
func NewLimiter(limit int, window, banTTL time.Duration) *Limiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		windows: make(map[string][]time.Time),
		banned:  make(map[string]time.Time),
		limit:   limit,
		window:  window,
		banTTL:  banTTL,
		now:     time.Now,
	}
}

// Allow checks and consumes rate-limit budget for identifier. It prunes
// timestamps that fell out of the window, denies when the remaining count
// has reached the limit, and otherwise records the request. The
// prune-check-append sequence runs under one lock.
func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	window := l.windows[identifier]
	kept := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.windows[identifier] = kept
		return false
	}

	l.windows[identifier] = append(kept, now)
	return true
}

// IsBanned reports whether identifier is currently denied all access.
func (l *Limiter) IsBanned(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bannedAt, ok := l.banned[identifier]
	if !ok {
		return false
	}
	if l.banTTL > 0 && l.now().Sub(bannedAt) > l.banTTL {
		delete(l.banned, identifier)
		return false
	}
	return true
}

// Ban adds identifier to the ban store.
func (l *Limiter) Ban(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.banned[identifier] = l.now()
}

// ClearBans removes every ban. Intended for scheduled or administrative
// maintenance; nothing unbans automatically when BanTTL is zero.
func (l *Limiter) ClearBans() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.banned = make(map[string]time.Time)
}

// BannedCount returns the number of currently banned identifiers.
func (l *Limiter) BannedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.banned)
}

// ActiveWindows returns the number of identifiers with rate state.
func (l *Limiter) ActiveWindows() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
