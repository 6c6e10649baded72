// Package requestid provides utilities for managing request IDs on outbound
// API calls. Every request to the admin backend carries an X-Request-ID header
// so that client logs can be correlated with backend logs.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// RequestIDKey is the context key for storing request IDs.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the HTTP header name for request IDs.
	RequestIDHeader = "X-Request-ID"
)

// New generates a fresh request ID (UUID v4).
func New() string {
	return uuid.New().String()
}

// FromContext retrieves the request ID from the context.
// Returns an empty string if no request ID is found.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Ensure attaches the request ID from the context to an outbound request,
// generating a new one when the context carries none. The (possibly updated)
// context and the effective ID are returned so callers can log it.
func Ensure(ctx context.Context, req *http.Request) (context.Context, string) {
	id := FromContext(ctx)
	if id == "" {
		id = New()
		ctx = WithRequestID(ctx, id)
	}
	req.Header.Set(RequestIDHeader, id)
	return ctx, id
}
