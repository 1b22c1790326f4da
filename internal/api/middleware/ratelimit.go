package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taskbridge/taskbridge/internal/api/shared"
)

// RateLimiterStore hands out one token-bucket limiter per client key. It is
// safe for concurrent use; the per-key limiters guarantee the cap cannot be
// exceeded by simultaneous requests.
//
// Idle entries are swept inline at most once per TTL period, so no background
// janitor goroutine is needed.
type RateLimiterStore struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiterStore builds a store allowing requests requests per window
// from each key, with bursts up to the full allowance. Entries idle for three
// windows are evicted; by then their buckets are fully refilled anyway.
func NewRateLimiterStore(requests int, window time.Duration) *RateLimiterStore {
	return &RateLimiterStore{
		entries:   make(map[string]*limiterEntry),
		limit:     rate.Limit(float64(requests) / window.Seconds()),
		burst:     requests,
		idleTTL:   3 * window,
		lastSweep: time.Now(),
	}
}

// Allow reports whether key may proceed, consuming one token when it can.
func (s *RateLimiterStore) Allow(key string) bool {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.idleTTL {
		for k, ent := range s.entries {
			if now.Sub(ent.lastSeen) > s.idleTTL {
				delete(s.entries, k)
			}
		}
		s.lastSweep = now
	}

	ent, ok := s.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = ent
	}
	ent.lastSeen = now

	return ent.lim.Allow()
}

// Len returns the number of tracked keys. Intended for tests and diagnostics.
func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RateLimit rejects requests whose client address has exhausted its allowance
// before any handler work happens. The store is injected so tests can
// construct it with short windows.
func RateLimit(store *RateLimiterStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !store.Allow(key) {
				logger.Warn("rate limit exceeded",
					"client", key,
					"path", r.URL.Path,
					"trace_id", shared.GetTraceID(r.Context()))
				shared.RespondWithError(w, r, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client network address used as the rate-limit key.
// chi's RealIP middleware runs earlier in the chain and rewrites RemoteAddr
// from X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
