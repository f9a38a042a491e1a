// Package ratelimiter throttles callers with one token bucket per client
// key. Keys are derived by ClientKey from the gRPC peer address and, for
// calls relayed by the in-process gateway, the forwarded client address.
package ratelimiter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultIdleTTL = 10 * time.Minute

// KeyLimiter applies a token bucket per key. Buckets idle for longer than
// the TTL are dropped, at most once per TTL.
//
// A nil *KeyLimiter allows everything.
type KeyLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu      sync.Mutex
	buckets map[string]*clientBucket
	swept   time.Time
}

type clientBucket struct {
	tokens *rate.Limiter
	seen   time.Time
}

// New returns a limiter admitting rps requests per second per key with the
// given burst. It returns nil when rps is not positive. A non-positive
// burst is raised to one.
func New(rps float64, burst int, idleTTL time.Duration) *KeyLimiter {
	if rps <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &KeyLimiter{
		limit:   rate.Limit(rps),
		burst:   max(burst, 1),
		idleTTL: idleTTL,
		buckets: make(map[string]*clientBucket),
	}
}

// Allow reports whether key may make one more call at now. Blank keys are
// never throttled.
func (l *KeyLimiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) >= l.idleTTL {
		l.dropIdle(now)
	}

	b := l.buckets[key]
	if b == nil {
		b = &clientBucket{tokens: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.tokens.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *KeyLimiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *KeyLimiter) dropIdle(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, k)
		}
	}
	l.swept = now
}
