package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultIdleTTL = 15 * time.Minute

// RateLimitMiddleware keeps one token bucket per client. Clients are keyed by
// the username header, falling back to the remote address. Buckets idle for
// longer than the idle TTL are dropped on a later lookup.
type RateLimitMiddleware struct {
	logs      *zap.SugaredLogger
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type RateLimitOption func(*RateLimitMiddleware)

// WithIdleTTL sets how long a client bucket survives without requests.
// Non-positive durations keep the default.
func WithIdleTTL(d time.Duration) RateLimitOption {
	return func(m *RateLimitMiddleware) {
		if d > 0 {
			m.idleTTL = d
		}
	}
}

// NewRateLimitMiddleware returns a limiter allowing rps requests per second
// with the given burst. A non-positive rps disables limiting.
func NewRateLimitMiddleware(logger *zap.SugaredLogger, rps float64, burst int, opts ...RateLimitOption) *RateLimitMiddleware {
	if burst <= 0 {
		burst = 1
	}

	m := &RateLimitMiddleware{
		logs:      logger,
		rps:       rate.Limit(rps),
		burst:     burst,
		idleTTL:   defaultIdleTTL,
		entries:   make(map[string]*limiterEntry),
		lastSweep: time.Now(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	if m.rps <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if m.limiter(key).Allow() {
			next.ServeHTTP(w, r)
			return
		}

		m.logs.Warnw("rate limit exceeded",
			"key", key,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Too many requests",
			"error":   "rate limit exceeded",
		})
	})
}

func (m *RateLimitMiddleware) limiter(key string) *rate.Limiter {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= m.idleTTL {
		m.sweep(now)
	}

	ent, ok := m.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(m.rps, m.burst)}
		m.entries[key] = ent
	}
	ent.lastSeen = now
	return ent.lim
}

// Tracked returns the number of clients that currently hold a bucket.
func (m *RateLimitMiddleware) Tracked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *RateLimitMiddleware) sweep(now time.Time) {
	cutoff := now.Add(-m.idleTTL)
	for key, ent := range m.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(m.entries, key)
		}
	}
	m.lastSweep = now
}

func clientKey(r *http.Request) string {
	if username := strings.TrimSpace(r.Header.Get("username")); username != "" {
		return "user:" + username
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return "ip:" + host
	}
	if r.RemoteAddr != "" {
		return "ip:" + r.RemoteAddr
	}
	return "unknown"
}
