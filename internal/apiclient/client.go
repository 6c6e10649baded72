package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"lms-admin/internal/observability/logging"
	"lms-admin/internal/observability/tracing"
	"lms-admin/internal/requestid"
	"lms-admin/internal/resilience/circuitbreaker"
	"lms-admin/internal/resilience/retry"
)

// maxResponseBytes caps how much of a response body the client will read.
// Admin list pages are small; anything larger is a backend bug.
const maxResponseBytes = 8 << 20 // 8 MiB

// Client performs requests against the admin backend base URL.
// It is safe for concurrent use by multiple screens.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	breaker    *circuitbreaker.CircuitBreaker
	limiter    *rate.Limiter
	getRetry   retry.Config
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets the bearer token source for outbound requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRetryConfig overrides the retry policy applied to GET requests.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.getRetry = cfg }
}

// WithRateLimit overrides the client-side request rate limit.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst) }
}

// WithBreakerConfig overrides the circuit breaker settings.
func WithBreakerConfig(cfg circuitbreaker.Config) Option {
	return func(c *Client) { c.breaker = circuitbreaker.New(cfg) }
}

// New creates a Client for the given backend base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute http(s)", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    circuitbreaker.New(circuitbreaker.AdminAPIConfig()),
		limiter:    rate.NewLimiter(rate.Limit(20), 40),
		getRetry:   retry.ListFetchConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetData performs a GET against path with the given query parameters and
// decodes the envelope's data field into T. Failed attempts are retried per
// the client's GET retry policy.
func GetData[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	var (
		status int
		raw    []byte
	)
	err := retry.WithBackoff(ctx, c.getRetry, func() error {
		var doErr error
		status, raw, doErr = c.do(ctx, http.MethodGet, path, query, nil, "")
		return doErr
	})
	return decode[T](status, raw, err)
}

// PostData performs a POST with either a JSON-serializable body or a *Form
// (multipart). Mutations are never retried.
func PostData[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return mutate[T](ctx, c, http.MethodPost, path, body)
}

// PatchData performs a PATCH with either a JSON-serializable body or a *Form
// (multipart). Mutations are never retried.
func PatchData[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return mutate[T](ctx, c, http.MethodPatch, path, body)
}

// DeleteData performs a DELETE with no body.
func DeleteData(ctx context.Context, c *Client, path string) Result[struct{}] {
	status, raw, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return decode[struct{}](status, raw, err)
}

func mutate[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	contentType, reader, err := encodeBody(body)
	if err != nil {
		return failure[T]("encode request body: %v", err)
	}
	status, raw, doErr := c.do(ctx, method, path, nil, reader, contentType)
	return decode[T](status, raw, doErr)
}

// encodeBody renders a request body. A *Form becomes multipart/form-data with
// its own boundary; everything else is marshaled as JSON.
func encodeBody(body any) (contentType string, reader io.Reader, err error) {
	switch v := body.(type) {
	case nil:
		return "", nil, nil
	case *Form:
		return v.Encode()
	default:
		data, err := jsonMarshal(v)
		if err != nil {
			return "", nil, err
		}
		return "application/json", data, nil
	}
}

func jsonMarshal(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal JSON body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// httpOutcome carries the response through the circuit breaker.
type httpOutcome struct {
	status int
	body   []byte
}

// do issues one HTTP request and returns the status, raw body, and a
// classification error (transport failure or retry.HTTPError for non-2xx).
// The body is returned even on non-2xx so the caller can extract the
// backend's message from the envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return 0, nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	ctx, _ = requestid.Ensure(ctx, req)
	_, span := tracing.StartRequestSpan(ctx, req)
	logger := logging.WithRequestID(ctx, c.logger)
	start := time.Now()

	out, doErr := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		// Only 5xx counts as a breaker failure: a 404 or validation 400 says
		// nothing about backend health.
		if resp.StatusCode >= 500 {
			return httpOutcome{status: resp.StatusCode, body: data},
				&retry.HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return httpOutcome{status: resp.StatusCode, body: data}, nil
	})

	duration := time.Since(start)
	status := 0
	var data []byte
	if outcome, ok := out.(httpOutcome); ok {
		status = outcome.status
		data = outcome.body
	}
	recordRequest(method, status, duration)

	if doErr == nil && (status < 200 || status >= 300) {
		doErr = &retry.HTTPError{StatusCode: status, Message: http.StatusText(status)}
	}

	if status == 0 {
		tracing.EndRequestSpan(span, 0, doErr)
		logger.Warn("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", duration),
			slog.Any("error", doErr))
		return 0, nil, doErr
	}

	tracing.EndRequestSpan(span, status, nil)
	logger.Debug("request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", duration))
	return status, data, doErr
}
