package models

import "time"

// RequestContext carries request metadata attached to a security event.
type RequestContext struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	UserAgent string `json:"user_agent"`
	ClientIP  string `json:"client_ip"`
}

// SecurityEvent is one security-relevant occurrence. Events live in a
// fixed-capacity ring buffer; the oldest are dropped once it fills.
type SecurityEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	Type      string            `json:"type"`
	Details   map[string]string `json:"details,omitempty"`
	Request   *RequestContext   `json:"request,omitempty"`
}

// SecurityStats aggregates the state of the defense components.
type SecurityStats struct {
	BannedClients int `json:"banned_clients"`
	ActiveWindows int `json:"active_windows"`
	RecentEvents  int `json:"recent_events"`
}
