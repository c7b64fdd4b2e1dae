package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ama-arogya/arogya/pkg/models"
	"github.com/ama-arogya/arogya/pkg/security"
)

// Middleware is one stage of the request-processing chain. Stages wrap the
// next handler and may short-circuit with a deny.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so the first listed runs outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type contextKey string

const (
	clientIPKey  contextKey = "client_ip"
	requestIDKey contextKey = "request_id"
)

// clientIP returns the client identifier resolved by the middleware chain.
func clientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey).(string); ok {
		return ip
	}
	return "unknown"
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// requestContext captures the metadata attached to security events.
func requestContext(r *http.Request) *models.RequestContext {
	return &models.RequestContext{
		Method:    r.Method,
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	}
}

// withRequestID assigns each request an ID, honoring an inbound header.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withRecover converts handler panics into 500 responses.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withClientIP resolves the client identifier. Proxy headers take
// precedence over the socket origin: first hop of X-Forwarded-For, then
// X-Real-IP, then RemoteAddr.
func withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientIPKey, resolveClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// withTiming logs slow requests and stamps the processing time header.
func (s *Server) withTiming(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		if s.cfg.Security.SlowRequest > 0 && elapsed > s.cfg.Security.SlowRequest {
			s.engine.Events().Record("slow_request", map[string]string{
				"client":     clientIP(r),
				"path":       r.URL.Path,
				"elapsed_ms": elapsed.Round(time.Millisecond).String(),
			}, requestContext(r))
			log.Printf("slow request %s %s took %s", r.Method, r.URL.Path, elapsed)
		}
	})
}

// withAdmission enforces the ban store and the rate limiter. Health checks
// are exempt so monitoring never competes with clients for window budget.
func (s *Server) withAdmission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		switch err := s.engine.Admit(clientIP(r), requestContext(r)); {
		case errors.Is(err, security.ErrBanned):
			writeJSONError(w, http.StatusForbidden, "access denied")
		case errors.Is(err, security.ErrRateLimited):
			writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
		default:
			next.ServeHTTP(w, r)
		}
	})
}
