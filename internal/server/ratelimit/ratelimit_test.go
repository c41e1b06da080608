package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyze", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
			{Path: "/users/", Method: "POST", Limit: 5, Window: time.Minute, Burst: 5},
		},
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/analyze", "POST")
	assert.True(t, allowed)
}

func TestAllow_BurstExhausted(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/analyze", "POST")
	limiter.Allow("1.2.3.4", "/analyze", "POST")

	allowed, info := limiter.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/analyze", "POST")
	limiter.Allow("1.2.3.4", "/analyze", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/analyze", "POST")
	assert.True(t, allowed)
}

func TestAllow_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestAllow_UnknownEndpointUsesDefault(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/parse", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestMatch_PrefixPaths(t *testing.T) {
	cfg := testConfig()

	matched := cfg.match("/users/abc/enhancements", "POST")
	assert.Equal(t, 5, matched.Limit)

	matched = cfg.match("/users/abc/enhancements", "GET")
	assert.Equal(t, cfg.DefaultLimit, matched.Limit)
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	bucket := newTokenBucket(1, 100) // 100 tokens/sec for a fast test

	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}
