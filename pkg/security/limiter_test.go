package security

import (
	"testing"
	"time"
)

// testClock lets tests move time forward explicitly.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, window, banTTL time.Duration) (*Limiter, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Unix(10000, 0)}
	l := NewLimiter(limit, window, banTTL)
	l.now = clock.now
	return l, clock
}

func TestAllowWithinLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 5, time.Minute, 0)

	for i := 0; i < 5; i++ {
		if !l.Allow("client1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("client1") {
		t.Error("6th request within the window should be denied")
	}
}

func TestWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(t, 3, time.Minute, 0)

	for i := 0; i < 3; i++ {
		l.Allow("client1")
	}
	if l.Allow("client1") {
		t.Fatal("expected deny at limit")
	}

	clock.advance(61 * time.Second)
	if !l.Allow("client1") {
		t.Error("expected allow after the window slid past old requests")
	}
}

func TestWindowPartialSlide(t *testing.T) {
	l, clock := newTestLimiter(t, 2, time.Minute, 0)

	l.Allow("client1")
	clock.advance(30 * time.Second)
	l.Allow("client1")

	if l.Allow("client1") {
		t.Fatal("expected deny, both requests still in window")
	}

	// Only the first request has aged out.
	clock.advance(31 * time.Second)
	if !l.Allow("client1") {
		t.Error("expected allow after first request aged out")
	}
	if l.Allow("client1") {
		t.Error("expected deny, window full again")
	}
}

func TestIdentifiersIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute, 0)

	if !l.Allow("a") {
		t.Fatal("first request for a")
	}
	if !l.Allow("b") {
		t.Error("b must not share a's window")
	}
	if l.Allow("a") {
		t.Error("a should be at its limit")
	}
}

func TestBanLifecycle(t *testing.T) {
	l, _ := newTestLimiter(t, 100, time.Minute, 0)

	if l.IsBanned("client1") {
		t.Fatal("fresh client should not be banned")
	}

	l.Ban("client1")
	if !l.IsBanned("client1") {
		t.Fatal("expected ban to hold")
	}
	if l.BannedCount() != 1 {
		t.Errorf("banned count = %d", l.BannedCount())
	}

	l.ClearBans()
	if l.IsBanned("client1") {
		t.Error("expected ban cleared")
	}
	if l.BannedCount() != 0 {
		t.Errorf("banned count = %d after clear", l.BannedCount())
	}
}

func TestBanDoesNotExpireWithoutTTL(t *testing.T) {
	l, clock := newTestLimiter(t, 100, time.Minute, 0)

	l.Ban("client1")
	clock.advance(24 * time.Hour)
	if !l.IsBanned("client1") {
		t.Error("bans without TTL only clear administratively")
	}
}

func TestBanTTLExpires(t *testing.T) {
	l, clock := newTestLimiter(t, 100, time.Minute, 10*time.Minute)

	l.Ban("client1")
	clock.advance(5 * time.Minute)
	if !l.IsBanned("client1") {
		t.Fatal("ban should still hold inside TTL")
	}

	clock.advance(6 * time.Minute)
	if l.IsBanned("client1") {
		t.Error("ban should have expired")
	}
}

func TestActiveWindows(t *testing.T) {
	l, _ := newTestLimiter(t, 10, time.Minute, 0)

	l.Allow("a")
	l.Allow("b")
	if l.ActiveWindows() != 2 {
		t.Errorf("active windows = %d, want 2", l.ActiveWindows())
	}
}

func TestDenyConsumesNoBudget(t *testing.T) {
	l, clock := newTestLimiter(t, 2, time.Minute, 0)

	l.Allow("client1")
	l.Allow("client1")
	for i := 0; i < 10; i++ {
		if l.Allow("client1") {
			t.Fatal("expected deny")
		}
	}

	// Denied attempts appended nothing, so the window clears as soon as
	// the two allowed requests age out.
	clock.advance(61 * time.Second)
	if !l.Allow("client1") {
		t.Error("denied requests must not extend the window")
	}
}
