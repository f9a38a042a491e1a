package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DisabledWhenRateNotPositive(t *testing.T) {
	assert.Nil(t, New(0, 10, 0))
	assert.Nil(t, New(-1, 10, 0))

	var l *KeyLimiter
	assert.True(t, l.Allow("peer", time.Now()))
	assert.Zero(t, l.Len())
}

func TestAllow_BurstThenThrottle(t *testing.T) {
	l := New(1, 3, time.Minute)
	require.NotNil(t, l)
	now := time.Unix(1_700_000_000, 0)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a", now), "request %d within burst", i)
	}
	assert.False(t, l.Allow("a", now))

	// other keys have their own bucket
	assert.True(t, l.Allow("b", now))

	// one token refills after a second
	assert.True(t, l.Allow("a", now.Add(time.Second)))
}

func TestAllow_BlankKeyIsNotThrottled(t *testing.T) {
	l := New(1, 1, time.Minute)
	now := time.Now()
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("  ", now))
	}
	assert.Zero(t, l.Len())
}

func TestAllow_EvictsIdleKeys(t *testing.T) {
	l := New(1000, 1000, time.Minute)
	start := time.Unix(1_700_000_000, 0)

	l.Allow("stale", start)

	l.Allow("recent", start.Add(30*time.Second))
	assert.Equal(t, 2, l.Len())

	l.Allow("fresh", start.Add(70*time.Second))

	assert.Equal(t, 2, l.Len())
	l.mu.Lock()
	_, stale := l.buckets["stale"]
	l.mu.Unlock()
	assert.False(t, stale)
}

func TestNew_ZeroBurstRaisedToOne(t *testing.T) {
	l := New(1, 0, 0)
	now := time.Now()
	assert.True(t, l.Allow("k", now))
	assert.False(t, l.Allow("k", now))
}
