package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToBurst(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 60, Burst: 3, IdleTTL: time.Minute})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 60, Burst: 1, IdleTTL: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, RequestsPerMinute: 1, Burst: 1, IdleTTL: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		require.True(t, allowed)
	}
}

func TestLimiter_RefillsOverTime(t *testing.T) {
	// 6000 requests per minute = 100 tokens per second, so a drained
	// bucket recovers within a few milliseconds.
	l := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 6000, Burst: 1, IdleTTL: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed, "bucket should refill after waiting")
}

func TestLimiter_RemovesIdleBuckets(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, RequestsPerMinute: 60, Burst: 1, IdleTTL: 10 * time.Millisecond})
	defer l.Stop()

	l.Allow("client-a")
	require.Equal(t, 1, l.size())

	time.Sleep(20 * time.Millisecond)
	l.removeIdle()

	assert.Equal(t, 0, l.size())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, DefaultRequestsPerMinute, cfg.RequestsPerMinute)
	assert.Equal(t, DefaultBurst, cfg.Burst)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPM", "120")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.Equal(t, 5, cfg.Burst)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPM", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "-3")

	cfg := LoadConfig()
	assert.Equal(t, DefaultRequestsPerMinute, cfg.RequestsPerMinute)
	assert.Equal(t, DefaultBurst, cfg.Burst)
}
