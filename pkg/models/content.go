package models

import "time"

// HealthContent is a static per-topic, per-language content entry.
type HealthContent struct {
	ID       int64  `json:"id"`
	Topic    string `json:"topic"`
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

// Interaction is one logged chat exchange. Logging is best effort;
// a failure to persist never fails the request.
type Interaction struct {
	ID             int64     `json:"id"`
	SenderID       string    `json:"sender_id"`
	Message        string    `json:"message"`
	Response       string    `json:"response"`
	Topic          string    `json:"topic"`
	Language       string    `json:"language"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	IsFallback     bool      `json:"is_fallback"`
	CreatedAt      time.Time `json:"created_at"`
}

// TopicStat is one row of the popular-topics aggregation.
type TopicStat struct {
	Topic             string  `json:"topic"`
	Count             int     `json:"count"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// InteractionStats aggregates the interaction log for reporting.
type InteractionStats struct {
	TotalInteractions int            `json:"total_interactions"`
	Languages         map[string]int `json:"language_distribution"`
	PopularTopics     []TopicStat    `json:"popular_topics"`
	AvgResponseTimeMs float64        `json:"response_time_avg"`
}
