package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig defines settings for the token-bucket rate limiter. When
// Enabled is false or no Redis client is available the middleware becomes a
// pass-through. KeyStrategy selects which request attributes form the bucket
// key ("ip" or "ip_route").
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a RateLimitConfig.
// Defaults allow a burst of 20 requests refilled at 10/s per client IP.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", false),
		Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "20")),
		RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "10")),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		KeyStrategy:    getenv("RATE_LIMIT_KEY_STRATEGY", "ip"),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "ratelimit"),
	}
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
