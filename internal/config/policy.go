package config

import (
	"lms-admin/internal/resilience/circuitbreaker"
	"lms-admin/internal/resilience/retry"
)

// RetryPolicy converts the retry settings into the backoff configuration
// used for list fetches. The multiplier and jitter stay fixed; only the
// attempt count and delay window are deployment-tunable.
func (c *Config) RetryPolicy() retry.Config {
	policy := retry.ListFetchConfig()
	policy.MaxAttempts = c.Retry.MaxAttempts
	policy.InitialDelay = c.Retry.InitialDelay
	policy.MaxDelay = c.Retry.MaxDelay
	return policy
}

// BreakerPolicy converts the breaker settings into the circuit breaker
// configuration guarding the backend.
func (c *Config) BreakerPolicy() circuitbreaker.Config {
	policy := circuitbreaker.AdminAPIConfig()
	policy.MaxRequests = c.Breaker.MaxRequests
	policy.Interval = c.Breaker.Interval
	policy.Timeout = c.Breaker.Timeout
	policy.FailureThreshold = c.Breaker.FailureThreshold
	policy.MinRequests = c.Breaker.MinRequests
	return policy
}
