// Package config loads the admin console configuration. Environment
// variables provide the base settings; an optional YAML file overlays
// non-secret tuning values so deployments can be versioned without
// touching the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	envutil "lms-admin/pkg/config"
)

// Config holds everything the admin console needs to talk to the backend.
type Config struct {
	API        APIConfig
	Auth       AuthConfig
	Retry      RetryConfig
	Breaker    BreakerConfig
	Pagination PaginationConfig
}

// APIConfig locates the backend and bounds outbound traffic.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "https://api.lms.internal".
	BaseURL string
	// Timeout bounds one HTTP request end to end.
	Timeout time.Duration
	// RateLimit is the sustained request rate in requests per second.
	RateLimit float64
	// Burst is the rate limiter burst size.
	Burst int
}

// AuthConfig carries the bearer token settings. The token value itself only
// ever comes from the environment, never from the YAML file.
type AuthConfig struct {
	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string
	// RefreshLeeway is how long before expiry a token counts as stale.
	RefreshLeeway time.Duration
}

// RetryConfig tunes the list-fetch retry policy.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// BreakerConfig tunes the circuit breaker guarding the backend.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// PaginationConfig sets the list defaults.
type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// duration parses YAML durations written as Go duration strings ("15s").
type duration time.Duration

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = duration(parsed)
	return nil
}

// fileOverlay mirrors Config for YAML decoding. Absent fields stay zero and
// leave the environment-derived values untouched.
type fileOverlay struct {
	API struct {
		BaseURL   string   `yaml:"base_url"`
		Timeout   duration `yaml:"timeout"`
		RateLimit float64  `yaml:"rate_limit"`
		Burst     int      `yaml:"burst"`
	} `yaml:"api"`
	Auth struct {
		TokenEnv      string   `yaml:"token_env"`
		RefreshLeeway duration `yaml:"refresh_leeway"`
	} `yaml:"auth"`
	Retry struct {
		MaxAttempts  int      `yaml:"max_attempts"`
		InitialDelay duration `yaml:"initial_delay"`
		MaxDelay     duration `yaml:"max_delay"`
	} `yaml:"retry"`
	Breaker struct {
		MaxRequests      uint32   `yaml:"max_requests"`
		Interval         duration `yaml:"interval"`
		Timeout          duration `yaml:"timeout"`
		FailureThreshold float64  `yaml:"failure_threshold"`
		MinRequests      uint32   `yaml:"min_requests"`
	} `yaml:"breaker"`
	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`
}

// Load reads configuration from the environment, applying defaults for
// everything except the base URL, which is required.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:   os.Getenv("ADMIN_API_BASE_URL"),
			Timeout:   envutil.GetEnvDuration("ADMIN_API_TIMEOUT", 30*time.Second),
			RateLimit: float64(envutil.GetEnvInt("ADMIN_API_RATE_LIMIT", 20)),
			Burst:     envutil.GetEnvInt("ADMIN_API_RATE_BURST", 40),
		},
		Auth: AuthConfig{
			TokenEnv:      envutil.GetEnvString("ADMIN_API_TOKEN_ENV", "ADMIN_API_TOKEN"),
			RefreshLeeway: envutil.GetEnvDuration("ADMIN_API_TOKEN_LEEWAY", 30*time.Second),
		},
		Retry: RetryConfig{
			MaxAttempts:  envutil.GetEnvInt("ADMIN_RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: envutil.GetEnvDuration("ADMIN_RETRY_INITIAL_DELAY", 200*time.Millisecond),
			MaxDelay:     envutil.GetEnvDuration("ADMIN_RETRY_MAX_DELAY", 2*time.Second),
		},
		Breaker: BreakerConfig{
			MaxRequests:      uint32(envutil.GetEnvInt("ADMIN_BREAKER_MAX_REQUESTS", 3)),
			Interval:         envutil.GetEnvDuration("ADMIN_BREAKER_INTERVAL", 30*time.Second),
			Timeout:          envutil.GetEnvDuration("ADMIN_BREAKER_TIMEOUT", 30*time.Second),
			FailureThreshold: 0.6,
			MinRequests:      uint32(envutil.GetEnvInt("ADMIN_BREAKER_MIN_REQUESTS", 5)),
		},
		Pagination: PaginationConfig{
			DefaultLimit: envutil.GetEnvInt("PAGINATION_DEFAULT_LIMIT", 10),
			MaxLimit:     envutil.GetEnvInt("PAGINATION_MAX_LIMIT", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile loads the environment configuration and overlays values from a
// YAML file. Zero-valued YAML fields leave the environment values in place.
// The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overlay fileOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.merge(&overlay)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Token reads the bearer token from the configured environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.Auth.TokenEnv)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("ADMIN_API_BASE_URL is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL must be an absolute http(s) URL: %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}
	if c.API.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max_attempts must be at least 1")
	}
	if c.Breaker.FailureThreshold <= 0 || c.Breaker.FailureThreshold > 1 {
		return fmt.Errorf("breaker failure_threshold must be in (0, 1]")
	}
	if c.Pagination.DefaultLimit <= 0 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("pagination limits are inconsistent")
	}
	return nil
}

func (c *Config) merge(overlay *fileOverlay) {
	if overlay.API.BaseURL != "" {
		c.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout > 0 {
		c.API.Timeout = time.Duration(overlay.API.Timeout)
	}
	if overlay.API.RateLimit > 0 {
		c.API.RateLimit = overlay.API.RateLimit
	}
	if overlay.API.Burst > 0 {
		c.API.Burst = overlay.API.Burst
	}
	if overlay.Auth.TokenEnv != "" {
		c.Auth.TokenEnv = overlay.Auth.TokenEnv
	}
	if overlay.Auth.RefreshLeeway > 0 {
		c.Auth.RefreshLeeway = time.Duration(overlay.Auth.RefreshLeeway)
	}
	if overlay.Retry.MaxAttempts > 0 {
		c.Retry.MaxAttempts = overlay.Retry.MaxAttempts
	}
	if overlay.Retry.InitialDelay > 0 {
		c.Retry.InitialDelay = time.Duration(overlay.Retry.InitialDelay)
	}
	if overlay.Retry.MaxDelay > 0 {
		c.Retry.MaxDelay = time.Duration(overlay.Retry.MaxDelay)
	}
	if overlay.Breaker.MaxRequests > 0 {
		c.Breaker.MaxRequests = overlay.Breaker.MaxRequests
	}
	if overlay.Breaker.Interval > 0 {
		c.Breaker.Interval = time.Duration(overlay.Breaker.Interval)
	}
	if overlay.Breaker.Timeout > 0 {
		c.Breaker.Timeout = time.Duration(overlay.Breaker.Timeout)
	}
	if overlay.Breaker.FailureThreshold > 0 {
		c.Breaker.FailureThreshold = overlay.Breaker.FailureThreshold
	}
	if overlay.Breaker.MinRequests > 0 {
		c.Breaker.MinRequests = overlay.Breaker.MinRequests
	}
	if overlay.Pagination.DefaultLimit > 0 {
		c.Pagination.DefaultLimit = overlay.Pagination.DefaultLimit
	}
	if overlay.Pagination.MaxLimit > 0 {
		c.Pagination.MaxLimit = overlay.Pagination.MaxLimit
	}
}
