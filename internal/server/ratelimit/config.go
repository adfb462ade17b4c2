package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultRequestsPerMinute = 60
	DefaultBurst             = 10
	DefaultIdleTTL           = 10 * time.Minute
)

// Config controls the per-client token buckets.
type Config struct {
	// Enabled turns rate limiting on. Disabled limiters allow everything.
	Enabled bool
	// RequestsPerMinute is the sustained refill rate per client.
	RequestsPerMinute int
	// Burst is the bucket capacity, i.e. how many requests a client can
	// make back to back before the refill rate applies.
	Burst int
	// IdleTTL is how long an inactive client's bucket survives before the
	// cleanup pass drops it.
	IdleTTL time.Duration
}

// LoadConfig reads the rate limit configuration from the environment.
// Invalid values fall back to the defaults.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:           true,
		RequestsPerMinute: DefaultRequestsPerMinute,
		Burst:             DefaultBurst,
		IdleTTL:           DefaultIdleTTL,
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		if rpm, err := strconv.Atoi(v); err == nil && rpm > 0 {
			cfg.RequestsPerMinute = rpm
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}

	return cfg
}
