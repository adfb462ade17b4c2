// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// cleanupInterval is how often idle buckets are swept.
const cleanupInterval = time.Minute

// Info reports the state of a client's bucket after an Allow call.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket tracks the token balance for one client.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Limiter manages one token bucket per client identifier.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine.
func NewLimiter(cfg *Config) *Limiter {
	l := &Limiter{
		buckets:       make(map[string]*bucket),
		cfg:           cfg,
		cleanupTicker: time.NewTicker(cleanupInterval),
		cleanupStop:   make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes a token for the client if one is available.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastSeen: now}
		l.buckets[clientID] = b
	}

	// Refill from the time elapsed since the last request, capped at burst.
	refillRate := float64(l.cfg.RequestsPerMinute) / 60.0
	b.tokens = min(float64(l.cfg.Burst), b.tokens+now.Sub(b.lastSeen).Seconds()*refillRate)
	b.lastSeen = now

	info := Info{Limit: l.cfg.Burst, ResetTime: l.resetTime(b, now, refillRate)}
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		info.Allowed = true
		info.Remaining = int(b.tokens)
		return true, info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1.0 - b.tokens) / refillRate * float64(time.Second))
	return false, info
}

// resetTime is when the bucket would be full again at the current rate.
func (l *Limiter) resetTime(b *bucket, now time.Time, refillRate float64) time.Time {
	missing := float64(l.cfg.Burst) - b.tokens
	if missing <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / refillRate * float64(time.Second)))
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	})
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) removeIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.cfg.IdleTTL)
	for id, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}

// size reports how many buckets are tracked. Used by tests.
func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
