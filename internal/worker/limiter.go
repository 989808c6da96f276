package worker

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter implements a token bucket per key (typically a client address)
type Limiter struct {
	limiters     map[string]*limiterEntry
	overrides    map[string]keyRate
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

type keyRate struct {
	limit rate.Limit
	burst int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a new keyed rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*limiterEntry),
		overrides:    make(map[string]keyRate),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow reports whether the key may proceed now, consuming a token if so
func (l *Limiter) Allow(key string) bool {
	return l.getLimiter(key).Allow()
}

// getLimiter returns the limiter for a key, creating it on first use
func (l *Limiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.limiters[key]
	if !exists {
		kr, ok := l.overrides[key]
		if !ok {
			kr = keyRate{limit: l.defaultRate, burst: l.defaultBurst}
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(kr.limit, kr.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter
}

// SetKeyRate sets a custom rate limit for a specific key. The override
// outlives Prune: a pruned key gets its custom rate back on next use.
func (l *Limiter) SetKeyRate(key string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	kr := keyRate{limit: rate.Limit(requestsPerSecond), burst: burst}
	l.overrides[key] = kr
	l.limiters[key] = &limiterEntry{
		limiter:  rate.NewLimiter(kr.limit, kr.burst),
		lastSeen: time.Now(),
	}
}

// Prune drops limiters idle for longer than maxIdle and returns how many were removed
func (l *Limiter) Prune(maxIdle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
