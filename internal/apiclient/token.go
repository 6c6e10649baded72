package apiclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource supplies the bearer token attached to outbound requests.
// The session/refresh flow itself belongs to an external collaborator; the
// client only asks for a usable token per request.
type TokenSource interface {
	// Token returns the current access token, or an empty string when the
	// request should go out unauthenticated.
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token for every request.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a token source around a fixed token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token implements TokenSource.
func (s *StaticTokenSource) Token(context.Context) (string, error) {
	return s.token, nil
}

// RefreshFunc exchanges the session's refresh credential for a fresh access
// token. It is supplied by the auth collaborator.
type RefreshFunc func(ctx context.Context) (string, error)

// RefreshingTokenSource caches a JWT access token and calls refresh when the
// cached token is missing or within leeway of its exp claim. The token is
// inspected without signature verification; the backend is the verifier, the
// client only needs the expiry.
type RefreshingTokenSource struct {
	mu      sync.Mutex
	current string
	leeway  time.Duration
	refresh RefreshFunc
	now     func() time.Time
}

// NewRefreshingTokenSource creates a refreshing token source. leeway is how
// long before expiry a token is already considered stale (a token expiring
// mid-request is as useless as an expired one).
func NewRefreshingTokenSource(refresh RefreshFunc, leeway time.Duration) *RefreshingTokenSource {
	return &RefreshingTokenSource{
		leeway:  leeway,
		refresh: refresh,
		now:     time.Now,
	}
}

// Token implements TokenSource.
func (s *RefreshingTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" && !s.stale(s.current) {
		return s.current, nil
	}

	token, err := s.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	s.current = token
	return token, nil
}

// stale reports whether the token's exp claim is within leeway of now.
// Tokens that cannot be parsed or carry no expiry are treated as stale.
func (s *RefreshingTokenSource) stale(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return s.now().Add(s.leeway).After(exp.Time)
}
