// Package ratelimit provides rate limiting for public form submissions.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds rate limit configuration.
type Config struct {
	Cooldown   time.Duration // Minimum time between submissions per client (default: 30s)
	MaxPerHour int           // Max submissions per client per hour (default: 10)

	// Clock for testing (nil uses real time)
	Clock Clock
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		Cooldown:   30 * time.Second,
		MaxPerHour: 10,
	}
}

// LimitResult contains the result of a rate limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

// entry tracks submission counts and timestamps for one client.
type entry struct {
	count   int
	firstAt time.Time // First submission in the hourly window
	lastAt  time.Time // Most recent submission (for cooldown)
}

// Limiter tracks submissions per client key, usually the client IP.
type Limiter struct {
	config *Config
	clock  Clock

	mu      sync.Mutex
	clients map[string]*entry
}

// New creates a new rate limiter with the given config.
func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Limiter{
		config:  cfg,
		clock:   clock,
		clients: make(map[string]*entry),
	}
}

// Allow checks and records one submission for the client key.
func (l *Limiter) Allow(key string) LimitResult {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	e, ok := l.clients[key]
	if !ok {
		l.clients[key] = &entry{count: 1, firstAt: now, lastAt: now}
		return LimitResult{Allowed: true}
	}

	if since := now.Sub(e.lastAt); since < l.config.Cooldown {
		return LimitResult{Allowed: false, RetryAfter: l.config.Cooldown - since}
	}

	// Hourly window resets relative to the first submission in it.
	if now.Sub(e.firstAt) >= time.Hour {
		e.count = 0
		e.firstAt = now
	}
	if e.count >= l.config.MaxPerHour {
		return LimitResult{Allowed: false, RetryAfter: e.firstAt.Add(time.Hour).Sub(now)}
	}

	e.count++
	e.lastAt = now
	return LimitResult{Allowed: true}
}

// prune drops clients idle for more than an hour. Caller holds the lock.
func (l *Limiter) prune(now time.Time) {
	for key, e := range l.clients {
		if now.Sub(e.lastAt) > time.Hour {
			delete(l.clients, key)
		}
	}
}

// GetClientIP extracts the client IP from a request.
// When trustProxy is true, uses the rightmost IP from X-Forwarded-For.
// When trustProxy is false, ignores X-Forwarded-For entirely.
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			return strings.TrimSpace(parts[len(parts)-1])
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
