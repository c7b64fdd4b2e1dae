// Package chat composes the request-defense and response-generation
// pipeline: rate limiting, validation, normalization, caching, and
// classification, with security events emitted along the way.
package chat

import (
	"context"
	"fmt"

	"github.com/ama-arogya/arogya/pkg/cache"
	"github.com/ama-arogya/arogya/pkg/classify"
	"github.com/ama-arogya/arogya/pkg/config"
	"github.com/ama-arogya/arogya/pkg/models"
	"github.com/ama-arogya/arogya/pkg/security"
	"github.com/ama-arogya/arogya/pkg/store"
	"github.com/ama-arogya/arogya/pkg/text"
)

// ContentProvider is the persistence hook for static health content.
// *store.Store satisfies it; tests may substitute their own.
type ContentProvider interface {
	Content(ctx context.Context, topic, language string) (*models.HealthContent, error)
}

// Result is the outcome of a processed message.
type Result struct {
	Response string
	Topic    string
	Language string
	Cached   bool
}

// Engine owns the pipeline components. Construct one per process and share
// it across request handlers; each component guards its own state.
type Engine struct {
	cfg        *config.Config
	limiter    *security.Limiter
	validator  *security.Validator
	events     *security.EventLog
	cache      *cache.Cache
	norm       *text.Normalizer
	classifier *classify.Classifier
	content    ContentProvider
}

// New wires an Engine from configuration. content may be nil when no
// persistence layer is attached.
func New(cfg *config.Config, content ContentProvider) (*Engine, error) {
	norm, err := text.New(cfg.Cache.NormalizerSize)
	if err != nil {
		return nil, fmt.Errorf("init normalizer: %w", err)
	}
	return &Engine{
		cfg: cfg,
		limiter: security.NewLimiter(
			cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.BanTTL),
		validator: security.NewValidator(
			cfg.Security.MaxMessageLength, cfg.Security.MaxSenderIDLength,
			cfg.Languages.Default, cfg.Languages.Supported),
		events:     security.NewEventLog(cfg.Security.EventLogSize),
		cache:      cache.New(cfg.Cache.Capacity),
		norm:       norm,
		classifier: classify.New(norm),
		content:    content,
	}, nil
}

// Admit runs the admission checks for one request from identifier: a ban
// short-circuits to a deny without consuming window budget; a window
// violation denies, escalates to a ban, and records an event. Returns nil
// when the request may proceed.
func (e *Engine) Admit(identifier string, reqCtx *models.RequestContext) error {
	if e.limiter.IsBanned(identifier) {
		e.events.Record("blocked_request", map[string]string{
			"client": identifier,
			"reason": "banned",
		}, reqCtx)
		return security.ErrBanned
	}
	if !e.limiter.Allow(identifier) {
		e.limiter.Ban(identifier)
		e.events.Record("rate_limit_exceeded", map[string]string{
			"client": identifier,
		}, reqCtx)
		return security.ErrRateLimited
	}
	return nil
}

// Respond validates, normalizes, and answers a message. Cache hits skip the
// classifier; everything leaving here has passed through the sanitizer,
// cached values included.
func (e *Engine) Respond(message, language string) (*Result, error) {
	validated, err := e.validator.ValidateMessage(message, language)
	if err != nil {
		e.events.Record("validation_failed", map[string]string{
			"error": err.Error(),
		}, nil)
		return nil, err
	}

	normalized := e.norm.Normalize(validated.Text)
	key := cache.ResponseKey(normalized, validated.Language)

	if cached, ok := e.cache.Get(key); ok {
		topic, _ := e.classifier.Classify(normalized)
		if topic == "" {
			topic = classify.GeneralTopic
		}
		return &Result{
			Response: security.Sanitize(cached),
			Topic:    topic,
			Language: validated.Language,
			Cached:   true,
		}, nil
	}

	topic, ok := e.classifier.Classify(normalized)
	if !ok {
		topic = classify.GeneralTopic
	}
	response := security.Sanitize(e.classifier.Respond(topic, validated.Language))
	e.cache.Set(key, response)

	return &Result{
		Response: response,
		Topic:    topic,
		Language: validated.Language,
	}, nil
}

// TopicContent returns the stored content entry for a topic, going through
// the response cache under a content: key. Returns nil when the topic has
// no content in that language.
func (e *Engine) TopicContent(ctx context.Context, topic, language string) (string, error) {
	language = e.validator.NormalizeLanguage(language)
	key := cache.ContentKey(topic, language)

	if cached, ok := e.cache.Get(key); ok {
		return security.Sanitize(cached), nil
	}
	if e.content == nil {
		return "", nil
	}

	entry, err := e.content.Content(ctx, topic, language)
	if err != nil {
		return "", fmt.Errorf("content lookup: %w", err)
	}
	if entry == nil {
		return "", nil
	}

	sanitized := security.Sanitize(entry.Content)
	e.cache.Set(key, sanitized)
	return sanitized, nil
}

// SecurityStats reports the state of the defense components.
func (e *Engine) SecurityStats() models.SecurityStats {
	return models.SecurityStats{
		BannedClients: e.limiter.BannedCount(),
		ActiveWindows: e.limiter.ActiveWindows(),
		RecentEvents:  e.events.Len(),
	}
}

// Limiter exposes the rate limiter for administrative operations.
func (e *Engine) Limiter() *security.Limiter { return e.limiter }

// Events exposes the security event log.
func (e *Engine) Events() *security.EventLog { return e.events }

// Cache exposes the response cache for administrative operations.
func (e *Engine) Cache() *cache.Cache { return e.cache }

// Validator exposes the message validator.
func (e *Engine) Validator() *security.Validator { return e.validator }

// Normalize canonicalizes text through the shared memoized normalizer.
func (e *Engine) Normalize(s string) string { return e.norm.Normalize(s) }

var _ ContentProvider = (*store.Store)(nil)
