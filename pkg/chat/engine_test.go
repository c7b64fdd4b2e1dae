package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ama-arogya/arogya/pkg/config"
	"github.com/ama-arogya/arogya/pkg/models"
	"github.com/ama-arogya/arogya/pkg/security"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	cfg.RateLimit.Requests = 3
	cfg.RateLimit.Window = time.Minute
	eng, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestAdmitUnderLimit(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 3; i++ {
		if err := eng.Admit("client-a", nil); err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
	}
}

func TestAdmitRateLimitEscalatesToBan(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 3; i++ {
		if err := eng.Admit("client-a", nil); err != nil {
			t.Fatal(err)
		}
	}

	err := eng.Admit("client-a", nil)
	if !errors.Is(err, security.ErrRateLimited) {
		t.Fatalf("4th request: got %v, want ErrRateLimited", err)
	}

	// The violation bans the client, so subsequent requests are rejected
	// before any window accounting.
	err = eng.Admit("client-a", nil)
	if !errors.Is(err, security.ErrBanned) {
		t.Fatalf("post-ban request: got %v, want ErrBanned", err)
	}

	stats := eng.SecurityStats()
	if stats.BannedClients != 1 {
		t.Errorf("banned clients = %d, want 1", stats.BannedClients)
	}
	if stats.RecentEvents < 2 {
		t.Errorf("recent events = %d, want at least 2", stats.RecentEvents)
	}

	// Other clients are unaffected.
	if err := eng.Admit("client-b", nil); err != nil {
		t.Errorf("client-b: %v", err)
	}
}

func TestRespondClassifiesAcrossLanguages(t *testing.T) {
	eng := newTestEngine(t)
	cases := []struct {
		message  string
		language string
		topic    string
	}{
		{"I have fever", "en", "fever"},
		{"मुझे बुखार है", "hi", "fever"},
		{"ମୋର ଜ୍ବର ଅଛି", "or", "fever"},
		{"hello", "en", "general"},
	}
	for _, tc := range cases {
		res, err := eng.Respond(tc.message, tc.language)
		if err != nil {
			t.Fatalf("%q: %v", tc.message, err)
		}
		if res.Topic != tc.topic {
			t.Errorf("%q: topic = %q, want %q", tc.message, res.Topic, tc.topic)
		}
		if res.Language != tc.language {
			t.Errorf("%q: language = %q, want %q", tc.message, res.Language, tc.language)
		}
		if res.Response == "" {
			t.Errorf("%q: empty response", tc.message)
		}
	}
}

func TestRespondHindiStomachPain(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Respond("stomach pain", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if res.Topic != "stomach_pain" {
		t.Errorf("topic = %q, want stomach_pain", res.Topic)
	}
	if !strings.ContainsRune(res.Response, 'प') && !strings.ContainsRune(res.Response, 'द') {
		t.Errorf("response does not look like Hindi: %q", res.Response)
	}
}

func TestRespondCachesByNormalizedMessage(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.Respond("I have fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first response unexpectedly cached")
	}

	// Same message after normalization hits the cache.
	second, err := eng.Respond("  I HAVE   Fever  ", "en")
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second response not cached")
	}
	if second.Response != first.Response {
		t.Errorf("cached response differs: %q vs %q", second.Response, first.Response)
	}
	if second.Topic != "fever" {
		t.Errorf("cached topic = %q", second.Topic)
	}

	if hits, _ := eng.Cache().Stats(); hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}
}

func TestRespondValidationErrors(t *testing.T) {
	eng := newTestEngine(t)
	cases := []struct {
		name    string
		message string
		kind    security.ErrorKind
	}{
		{"missing", "", security.KindMissingField},
		{"too long", strings.Repeat("a", 1001), security.KindTooLong},
		{"unsafe", "<script>alert(1)</script>", security.KindUnsafeContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Respond(tc.message, "en")
			ve, ok := security.AsValidation(err)
			if !ok {
				t.Fatalf("got %v, want validation error", err)
			}
			if ve.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", ve.Kind, tc.kind)
			}
		})
	}

	if eng.SecurityStats().RecentEvents != len(cases) {
		t.Errorf("events = %d, want %d", eng.SecurityStats().RecentEvents, len(cases))
	}
}

func TestRespondBoundaryLength(t *testing.T) {
	eng := newTestEngine(t)
	if _, err := eng.Respond(strings.Repeat("a", 1000), "en"); err != nil {
		t.Errorf("1000-char message rejected: %v", err)
	}
}

type fakeContent struct {
	entries map[string]string
	calls   int
	err     error
}

func (f *fakeContent) Content(_ context.Context, topic, language string) (*models.HealthContent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.entries[topic+"/"+language]
	if !ok {
		return nil, nil
	}
	return &models.HealthContent{Topic: topic, Language: language, Content: body, IsActive: true}, nil
}

func TestTopicContent(t *testing.T) {
	cfg := config.Default()
	provider := &fakeContent{entries: map[string]string{
		"fever/en": "Rest and drink fluids.",
	}}
	eng, err := New(cfg, provider)
	if err != nil {
		t.Fatal(err)
	}

	got, err := eng.TopicContent(context.Background(), "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Rest and drink fluids." {
		t.Errorf("content = %q", got)
	}

	// Second lookup is served from cache.
	if _, err := eng.TopicContent(context.Background(), "fever", "en"); err != nil {
		t.Fatal(err)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}

	// Missing entries return empty without error.
	got, err = eng.TopicContent(context.Background(), "cough", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("missing topic content = %q", got)
	}
}

func TestTopicContentNilProvider(t *testing.T) {
	eng := newTestEngine(t)
	got, err := eng.TopicContent(context.Background(), "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("content = %q with nil provider", got)
	}
}

func TestTopicContentProviderError(t *testing.T) {
	provider := &fakeContent{err: fmt.Errorf("db closed")}
	eng, err := New(config.Default(), provider)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := eng.TopicContent(context.Background(), "fever", "en"); err == nil {
		t.Error("expected error from failing provider")
	}
}
