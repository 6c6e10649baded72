package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sony/gobreaker"
)

// Result is the normalized outcome of one backend call.
//
// Exactly one of the two shapes occurs:
//   - Success=true: Data holds the decoded payload, Message may carry an
//     informational note from the backend.
//   - Success=false: Data is the zero value and Message explains the failure
//     (backend-reported message when one exists, a transport description
//     otherwise).
type Result[T any] struct {
	Success bool
	Data    T
	Message string
}

// envelope is the wire shape every backend response uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decode folds status, body, and transport error into a Result.
func decode[T any](status int, raw []byte, err error) Result[T] {
	// No response at all: DNS failure, refused connection, timeout, open breaker.
	if status == 0 {
		return Result[T]{Message: transportMessage(err)}
	}

	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil {
		if status >= 200 && status < 300 {
			return Result[T]{Message: "invalid response from server"}
		}
		return Result[T]{Message: fmt.Sprintf("request failed with status %d", status)}
	}

	if status < 200 || status >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", status)
		}
		return Result[T]{Message: msg}
	}

	out := Result[T]{Success: true, Message: env.Message}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if jsonErr := json.Unmarshal(env.Data, &out.Data); jsonErr != nil {
			return Result[T]{Message: "invalid response from server"}
		}
	}
	return out
}

// failure builds a Result for errors raised before any request went out,
// e.g. a body that could not be encoded.
func failure[T any](format string, args ...any) Result[T] {
	return Result[T]{Message: fmt.Sprintf(format, args...)}
}

// transportMessage maps a transport-level error to a user-facing message.
func transportMessage(err error) string {
	switch {
	case err == nil:
		return "request failed"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "backend unavailable, please retry shortly"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return "network error: " + err.Error()
	}
}

// statusLabel renders an HTTP status for metric labels; 0 means the request
// never produced a response.
func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
