package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ama-arogya/arogya/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestRecordInteractionAndStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	interactions := []models.Interaction{
		{SenderID: "u1", Message: "i have fever", Response: "rest", Topic: "fever", Language: "en", ResponseTimeMs: 4, CreatedAt: now},
		{SenderID: "u2", Message: "मुझे बुखार है", Response: "आराम", Topic: "fever", Language: "hi", ResponseTimeMs: 6, CreatedAt: now},
		{SenderID: "u3", Message: "hello", Response: "how can i help", Topic: "general", Language: "en", ResponseTimeMs: 2, IsFallback: true, CreatedAt: now},
	}
	for _, in := range interactions {
		if err := st.RecordInteraction(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalInteractions != 3 {
		t.Errorf("total = %d, want 3", stats.TotalInteractions)
	}
	if stats.Languages["en"] != 2 || stats.Languages["hi"] != 1 {
		t.Errorf("language distribution = %v", stats.Languages)
	}
	if stats.AvgResponseTimeMs != 4 {
		t.Errorf("avg response time = %v, want 4", stats.AvgResponseTimeMs)
	}
	if len(stats.PopularTopics) == 0 || stats.PopularTopics[0].Topic != "fever" {
		t.Errorf("popular topics = %v", stats.PopularTopics)
	}
	if stats.PopularTopics[0].Count != 2 {
		t.Errorf("fever count = %d, want 2", stats.PopularTopics[0].Count)
	}
}

func TestRecordInteractionTruncates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	long := strings.Repeat("x", 5000)
	err := st.RecordInteraction(ctx, models.Interaction{
		SenderID: "u1", Message: long, Response: long,
		Topic: "general", Language: "en",
	})
	if err != nil {
		t.Fatal(err)
	}

	var stored string
	err = st.db.QueryRowContext(ctx,
		`SELECT message FROM interactions WHERE sender_id = ?`, "u1").Scan(&stored)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1000 {
		t.Errorf("stored length = %d, want 1000", len(stored))
	}
}

func TestRecordInteractionTruncatesOnRuneBoundary(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// 1200 runes at 3 bytes each. A byte-wise cut would land mid-rune.
	long := strings.Repeat("ब", 1200)
	err := st.RecordInteraction(ctx, models.Interaction{
		SenderID: "u1", Message: long, Response: long,
		Topic: "fever", Language: "hi",
	})
	if err != nil {
		t.Fatal(err)
	}

	var stored string
	err = st.db.QueryRowContext(ctx,
		`SELECT message FROM interactions WHERE sender_id = ?`, "u1").Scan(&stored)
	if err != nil {
		t.Fatal(err)
	}
	if !utf8.ValidString(stored) {
		t.Fatalf("stored message is not valid UTF-8 (tail %q)", stored[len(stored)-4:])
	}
	if got := utf8.RuneCountInString(stored); got != 1000 {
		t.Errorf("stored rune count = %d, want 1000", got)
	}
	if stored != strings.Repeat("ब", 1000) {
		t.Error("stored message differs from the rune-truncated original")
	}
}

func TestRecordInteractionKeepsShortMultibyte(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// 400 runes, 1200 bytes: over the limit in bytes but not in runes.
	msg := strings.Repeat("ब", 400)
	err := st.RecordInteraction(ctx, models.Interaction{
		SenderID: "u1", Message: msg, Response: "ok",
		Topic: "fever", Language: "hi",
	})
	if err != nil {
		t.Fatal(err)
	}

	var stored string
	err = st.db.QueryRowContext(ctx,
		`SELECT message FROM interactions WHERE sender_id = ?`, "u1").Scan(&stored)
	if err != nil {
		t.Fatal(err)
	}
	if stored != msg {
		t.Errorf("stored message altered: %d bytes, want %d", len(stored), len(msg))
	}
}

func TestStatsEmpty(t *testing.T) {
	st := newTestStore(t)

	stats, err := st.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalInteractions != 0 {
		t.Errorf("total = %d on empty store", stats.TotalInteractions)
	}
	if stats.AvgResponseTimeMs != 0 {
		t.Errorf("avg = %v on empty store", stats.AvgResponseTimeMs)
	}
}

func TestContentUpsertAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	entry := models.HealthContent{
		Topic: "fever", Language: "en",
		Title: "Fever", Content: "Rest and hydrate.", IsActive: true,
	}
	if err := st.UpsertContent(ctx, entry); err != nil {
		t.Fatal(err)
	}

	got, err := st.Content(ctx, "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Content != "Rest and hydrate." {
		t.Fatalf("got %+v", got)
	}

	// Upsert replaces in place.
	entry.Content = "Updated advice."
	if err := st.UpsertContent(ctx, entry); err != nil {
		t.Fatal(err)
	}
	got, err = st.Content(ctx, "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "Updated advice." {
		t.Errorf("content = %q after upsert", got.Content)
	}

	entries, err := st.ListContent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("list = %d entries, want 1", len(entries))
	}
}

func TestContentMissingAndInactive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	got, err := st.Content(ctx, "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil for missing content, got %+v", got)
	}

	err = st.UpsertContent(ctx, models.HealthContent{
		Topic: "fever", Language: "en", Title: "Fever",
		Content: "hidden", IsActive: false,
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err = st.Content(ctx, "fever", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("inactive content should not be returned")
	}
}
