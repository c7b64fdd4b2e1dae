// Package server is the HTTP boundary around the chat engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ama-arogya/arogya/pkg/cache"
	"github.com/ama-arogya/arogya/pkg/chat"
	"github.com/ama-arogya/arogya/pkg/classify"
	"github.com/ama-arogya/arogya/pkg/config"
	"github.com/ama-arogya/arogya/pkg/models"
	"github.com/ama-arogya/arogya/pkg/security"
	"github.com/ama-arogya/arogya/pkg/store"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Server serves the chat API.
type Server struct {
	cfg     *config.Config
	engine  *chat.Engine
	store   *store.Store
	handler http.Handler
}

// New creates a Server. st may be nil to run without persistence.
func New(cfg *config.Config, engine *chat.Engine, st *store.Store) *Server {
	s := &Server{cfg: cfg, engine: engine, store: st}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/content", s.handleContent)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/admin/security", s.handleSecurityStats)
	mux.HandleFunc("/admin/cache/clear", s.handleCacheClear)
	mux.HandleFunc("/admin/bans/clear", s.handleBansClear)

	// Client IP resolution must precede timing so slow-request events can
	// attribute the request.
	s.handler = Chain(mux,
		withRequestID,
		withRecover,
		withClientIP,
		s.withTiming,
		s.withAdmission,
	)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the server with graceful shutdown support.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("arogya listening on %s", s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	r.Body.Close()

	if err := s.engine.Validator().ValidateSenderID(req.SenderID); err != nil {
		writeValidationError(w, err)
		return
	}

	s.engine.Events().Record("chat_request", map[string]string{
		"sender_id":      req.SenderID,
		"language":       req.Language,
		"message_length": fmt.Sprintf("%d", len(req.Message)),
	}, requestContext(r))

	start := time.Now()
	result, err := s.engine.Respond(req.Message, req.Language)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	elapsed := time.Since(start)

	if s.store != nil && s.cfg.LogInteractions {
		in := models.Interaction{
			SenderID:       req.SenderID,
			Message:        req.Message,
			Response:       result.Response,
			Topic:          result.Topic,
			Language:       result.Language,
			ResponseTimeMs: elapsed.Milliseconds(),
			IsFallback:     result.Topic == classify.GeneralTopic,
			CreatedAt:      time.Now().UTC(),
		}
		go func() {
			if err := s.store.RecordInteraction(context.Background(), in); err != nil {
				log.Printf("interaction log error: %v", err)
			}
		}()
	}

	confidence := 0.6
	if result.Cached {
		confidence = 0.95
	}
	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:   result.Response,
		Language:   result.Language,
		Topic:      result.Topic,
		Confidence: confidence,
		Timestamp:  time.Now().UTC().Format("2006-01-02 15:04:05"),
		SessionID:  "session_" + cache.HashMessage(req.SenderID)[:8],
		Cached:     result.Cached,
	})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeJSONError(w, http.StatusBadRequest, "topic is required")
		return
	}
	language := r.URL.Query().Get("language")

	content, err := s.engine.TopicContent(r.Context(), topic, language)
	if err != nil {
		log.Printf("content lookup error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "error retrieving content")
		return
	}
	if content == "" {
		writeJSONError(w, http.StatusNotFound, "no content for topic")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"topic":    topic,
		"language": s.engine.Validator().NormalizeLanguage(language),
		"content":  content,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disabled"
	status := "healthy"
	if s.store != nil {
		dbStatus = "healthy"
		if err := s.store.Ping(r.Context()); err != nil {
			dbStatus = "unhealthy"
			status = "degraded"
		}
	}

	// A large banned set is a sign of an ongoing attack.
	secStatus := "healthy"
	if s.engine.Limiter().BannedCount() > 100 {
		secStatus = "warning"
	}

	writeJSON(w, http.StatusOK, models.HealthCheck{
		Status:    status,
		Timestamp: time.Now().UTC().Format("2006-01-02 15:04:05"),
		Version:   Version,
		Database:  dbStatus,
		Security:  secStatus,
		CacheSize: s.engine.Cache().Len(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "persistence disabled")
		return
	}
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		log.Printf("stats error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "error retrieving statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSecurityStats(w http.ResponseWriter, r *http.Request) {
	type securityReport struct {
		models.SecurityStats
		Events []models.SecurityEvent `json:"events"`
	}
	writeJSON(w, http.StatusOK, securityReport{
		SecurityStats: s.engine.SecurityStats(),
		Events:        s.engine.Events().Recent(50),
	})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engine.Cache().Clear()
	writeJSON(w, http.StatusOK, map[string]string{"message": "cache cleared"})
}

func (s *Server) handleBansClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engine.Limiter().ClearBans()
	s.engine.Events().Record("bans_cleared", nil, requestContext(r))
	writeJSON(w, http.StatusOK, map[string]string{"message": "bans cleared"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	if ve, ok := security.AsValidation(err); ok {
		writeJSONError(w, http.StatusBadRequest, ve.Message)
		return
	}
	writeJSONError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"message":%q,"code":%d}}`+"\n", message, code)
}
