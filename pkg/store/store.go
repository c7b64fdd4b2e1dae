// Package store persists interaction logs and health content in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite"

	"github.com/ama-arogya/arogya/pkg/models"
)

// maxLoggedLen truncates messages and responses before they are persisted.
const maxLoggedLen = 1000

// Store wraps the SQLite database holding interactions and health content.
type Store struct {
	db *sql.DB
}

const createInteractionsTable = `
CREATE TABLE IF NOT EXISTS interactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sender_id TEXT NOT NULL,
	message TEXT NOT NULL,
	response TEXT NOT NULL,
	topic TEXT NOT NULL,
	language TEXT NOT NULL,
	response_time_ms INTEGER NOT NULL,
	is_fallback INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_interactions_topic ON interactions(topic);
CREATE INDEX IF NOT EXISTS idx_interactions_created ON interactions(created_at);
`

const createContentTable = `
CREATE TABLE IF NOT EXISTS health_content (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	topic TEXT NOT NULL,
	language TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	UNIQUE(topic, language)
);
`

// New opens the database at dbPath and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open store db: %w", err)
	}

	if _, err := db.Exec(createInteractionsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate interactions table: %w", err)
	}
	if _, err := db.Exec(createContentTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate health_content table: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordInteraction logs one chat exchange. Message and response are
// truncated before storage.
func (s *Store) RecordInteraction(ctx context.Context, in models.Interaction) error {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (sender_id, message, response, topic, language, response_time_ms, is_fallback, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.SenderID, truncate(in.Message), truncate(in.Response),
		in.Topic, in.Language, in.ResponseTimeMs, in.IsFallback, in.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// Content returns the active content entry for a topic and language.
func (s *Store) Content(ctx context.Context, topic, language string) (*models.HealthContent, error) {
	var c models.HealthContent
	err := s.db.QueryRowContext(ctx,
		`SELECT id, topic, language, title, content, is_active
		 FROM health_content WHERE topic = ? AND language = ? AND is_active = 1`,
		topic, language,
	).Scan(&c.ID, &c.Topic, &c.Language, &c.Title, &c.Content, &c.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	return &c, nil
}

// UpsertContent inserts or replaces the content entry for a topic/language.
func (s *Store) UpsertContent(ctx context.Context, c models.HealthContent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO health_content (topic, language, title, content, is_active)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(topic, language) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			is_active = excluded.is_active`,
		c.Topic, c.Language, c.Title, c.Content, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}
	return nil
}

// ListContent returns all content entries ordered by topic then language.
func (s *Store) ListContent(ctx context.Context) ([]models.HealthContent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, language, title, content, is_active
		 FROM health_content ORDER BY topic, language`)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var out []models.HealthContent
	for rows.Next() {
		var c models.HealthContent
		if err := rows.Scan(&c.ID, &c.Topic, &c.Language, &c.Title, &c.Content, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Stats aggregates the interaction log: totals, language distribution, and
// the ten most frequent topics with their average response time.
func (s *Store) Stats(ctx context.Context) (*models.InteractionStats, error) {
	stats := &models.InteractionStats{Languages: make(map[string]int)}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM interactions`).Scan(&stats.TotalInteractions); err != nil {
		return nil, fmt.Errorf("count interactions: %w", err)
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx,
		`SELECT AVG(response_time_ms) FROM interactions`).Scan(&avg); err != nil {
		return nil, fmt.Errorf("avg response time: %w", err)
	}
	stats.AvgResponseTimeMs = avg.Float64

	rows, err := s.db.QueryContext(ctx,
		`SELECT language, COUNT(*) FROM interactions GROUP BY language`)
	if err != nil {
		return nil, fmt.Errorf("language distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lang string
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, fmt.Errorf("scan language row: %w", err)
		}
		stats.Languages[lang] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topicRows, err := s.db.QueryContext(ctx,
		`SELECT topic, COUNT(*) AS cnt, AVG(response_time_ms)
		 FROM interactions GROUP BY topic ORDER BY cnt DESC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("popular topics: %w", err)
	}
	defer topicRows.Close()
	for topicRows.Next() {
		var t models.TopicStat
		var avgMs sql.NullFloat64
		if err := topicRows.Scan(&t.Topic, &t.Count, &avgMs); err != nil {
			return nil, fmt.Errorf("scan topic row: %w", err)
		}
		t.AvgResponseTimeMs = avgMs.Float64
		stats.PopularTopics = append(stats.PopularTopics, t)
	}
	return stats, topicRows.Err()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// truncate cuts s to maxLoggedLen code points. Cutting on bytes would split
// multi-byte Devanagari and Odia runes and store invalid UTF-8.
func truncate(s string) string {
	if utf8.RuneCountInString(s) > maxLoggedLen {
		return string([]rune(s)[:maxLoggedLen])
	}
	return s
}
