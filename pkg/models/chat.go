package models

// ChatRequest is an inbound chat message from a client.
type ChatRequest struct {
	Message  string `json:"message"`
	SenderID string `json:"sender_id"`
	Language string `json:"language,omitempty"`
}

// ChatResponse is the bot's reply to a chat request.
type ChatResponse struct {
	Response   string  `json:"response"`
	Language   string  `json:"language"`
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
	SessionID  string  `json:"session_id,omitempty"`
	Cached     bool    `json:"cached,omitempty"`
}

// HealthCheck reports service status for the /health endpoint.
type HealthCheck struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Database  string `json:"database"`
	Security  string `json:"security"`
	CacheSize int    `json:"cache_size"`
}
