// Package notify provides the operator feedback surface for admin screens.
// Every mutation outcome (delete confirmed, save failed, validation rejected)
// is reported through the Notifier interface so screens stay decoupled from
// how feedback is rendered.
//
// The package includes a console implementation backed by structured logging
// and a no-op implementation for when feedback is disabled.
package notify

import (
	"context"
	"log/slog"
)

// Severity classifies a notification for rendering and filtering.
type Severity string

const (
	// SeveritySuccess indicates a completed operation (row deleted, form saved).
	SeveritySuccess Severity = "success"
	// SeverityError indicates a failed operation; the message is the
	// human-readable failure reason surfaced to the operator.
	SeverityError Severity = "error"
	// SeverityInfo indicates neutral progress information.
	SeverityInfo Severity = "info"
)

// Notifier delivers operation feedback to the operator.
// Implementations must be safe for concurrent use and must never block the
// caller on slow delivery.
type Notifier interface {
	// Notify reports one operation outcome. The entity names the screen the
	// message belongs to (e.g. "courses", "enrollment") and message is the
	// already-humanized text to display.
	Notify(ctx context.Context, severity Severity, entity, message string)
}

// Success is shorthand for Notify with SeveritySuccess.
func Success(ctx context.Context, n Notifier, entity, message string) {
	n.Notify(ctx, SeveritySuccess, entity, message)
}

// Error is shorthand for Notify with SeverityError.
func Error(ctx context.Context, n Notifier, entity, message string) {
	n.Notify(ctx, SeverityError, entity, message)
}

// ConsoleNotifier renders notifications through a structured logger. It is
// the default feedback surface for the admin console.
type ConsoleNotifier struct {
	logger *slog.Logger
}

// NewConsoleNotifier creates a notifier that logs through the given logger.
// A nil logger falls back to slog.Default().
func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleNotifier{logger: logger}
}

// Notify logs the notification at a level matching its severity.
func (c *ConsoleNotifier) Notify(ctx context.Context, severity Severity, entity, message string) {
	attrs := []any{
		slog.String("entity", entity),
		slog.String("severity", string(severity)),
	}
	switch severity {
	case SeverityError:
		c.logger.ErrorContext(ctx, message, attrs...)
	case SeveritySuccess:
		c.logger.InfoContext(ctx, message, attrs...)
	default:
		c.logger.InfoContext(ctx, message, attrs...)
	}
}

// NoOpNotifier discards all notifications. Used when feedback is disabled
// so callers never need a nil check.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a notifier that drops everything.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Notify does nothing.
func (*NoOpNotifier) Notify(context.Context, Severity, string, string) {}
