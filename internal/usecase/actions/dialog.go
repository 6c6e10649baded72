// Package actions implements the mutation workflows of the admin screens:
// the confirmation dialog driving the soft-delete / hard-delete / restore
// lifecycle, and debounced inline field edits. Both resynchronize the list
// by refetching after a mutation instead of patching rows locally, so the
// table always shows backend truth.
package actions

import (
	"context"
	"log/slog"
	"sync"

	"lms-admin/internal/notify"
	"lms-admin/internal/resource"
)

// Action identifies a row-level lifecycle operation.
type Action string

const (
	// ActionSoftDelete marks the row deleted; reversible via restore.
	ActionSoftDelete Action = "soft-delete"
	// ActionHardDelete removes the row permanently; irreversible.
	ActionHardDelete Action = "hard-delete"
	// ActionRestore clears the deleted flag on a soft-deleted row.
	ActionRestore Action = "restore"
)

// ConfirmLabel is the confirm-button text for the action. Hard delete gets
// explicit irreversibility wording so it can never be mistaken for the
// reversible variant.
func (a Action) ConfirmLabel() string {
	switch a {
	case ActionHardDelete:
		return "Delete Permanently"
	case ActionRestore:
		return "Restore"
	default:
		return "Delete"
	}
}

// Prompt is the dialog body text for the action.
func (a Action) Prompt() string {
	switch a {
	case ActionHardDelete:
		return "This will permanently remove the record. This cannot be undone."
	case ActionRestore:
		return "This will restore the record to the active view."
	default:
		return "This will move the record to the deleted view. You can restore it later."
	}
}

// State is the dialog lifecycle phase.
type State string

const (
	// StateIdle means no dialog is showing.
	StateIdle State = "idle"
	// StateOpen means the dialog is showing and awaiting confirmation.
	StateOpen State = "open"
	// StateInFlight means the mutation request has been issued and the
	// confirm button is disabled.
	StateInFlight State = "in-flight"
)

// Refetcher resynchronizes a list after a mutation. *listing.Fetcher
// satisfies it.
type Refetcher interface {
	Refetch(ctx context.Context)
}

// Dialog owns the confirmation flow for one screen's row actions.
// It is safe for concurrent use.
//
// Lifecycle: Open moves idle to open, Confirm moves open to in-flight and
// issues the request. On success the dialog closes, the list refetches, and
// a success notification fires. On failure the dialog stays open with an
// error notification so the operator can retry or cancel. The in-flight
// state always clears, whatever the outcome.
type Dialog[T any] struct {
	res      *resource.Resource[T]
	list     Refetcher
	notifier notify.Notifier
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	action Action
	rowID  int64
}

// NewDialog creates an idle dialog for one entity's resource.
func NewDialog[T any](res *resource.Resource[T], list Refetcher, notifier notify.Notifier, logger *slog.Logger) *Dialog[T] {
	if notifier == nil {
		notifier = notify.NewNoOpNotifier()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dialog[T]{
		res:      res,
		list:     list,
		notifier: notifier,
		logger:   logger,
		state:    StateIdle,
	}
}

// Open shows the dialog for the given action and row. Opening while a
// request is in flight is ignored.
func (d *Dialog[T]) Open(action Action, rowID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateInFlight {
		return
	}
	d.state = StateOpen
	d.action = action
	d.rowID = rowID
}

// Cancel closes the dialog without mutating anything. Ignored while a
// request is in flight.
func (d *Dialog[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateInFlight {
		return
	}
	d.state = StateIdle
}

// State returns the current lifecycle phase.
func (d *Dialog[T]) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Pending returns the action and row the open dialog is about.
func (d *Dialog[T]) Pending() (Action, int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.action, d.rowID
}

// Confirm executes the pending action. It returns true when the mutation
// succeeded and the dialog closed. Calling Confirm when the dialog is not
// open is a no-op returning false.
func (d *Dialog[T]) Confirm(ctx context.Context) bool {
	d.mu.Lock()
	if d.state != StateOpen {
		d.mu.Unlock()
		return false
	}
	action := d.action
	rowID := d.rowID
	d.state = StateInFlight
	d.mu.Unlock()

	success, message := d.execute(ctx, action, rowID)

	d.mu.Lock()
	if success {
		d.state = StateIdle
	} else {
		// Keep the dialog open so the operator can retry or cancel.
		d.state = StateOpen
	}
	d.mu.Unlock()

	entity := d.res.Entity()
	if success {
		d.list.Refetch(ctx)
		notify.Success(ctx, d.notifier, entity, message)
	} else {
		notify.Error(ctx, d.notifier, entity, message)
		d.logger.Warn("row action failed",
			slog.String("entity", entity),
			slog.String("action", string(action)),
			slog.Int64("row_id", rowID),
			slog.String("message", message))
	}
	return success
}

func (d *Dialog[T]) execute(ctx context.Context, action Action, rowID int64) (bool, string) {
	switch action {
	case ActionHardDelete:
		res := d.res.HardDelete(ctx, rowID)
		return res.Success, messageOr(res.Message, res.Success, "record deleted permanently")
	case ActionRestore:
		res := d.res.Restore(ctx, rowID)
		return res.Success, messageOr(res.Message, res.Success, "record restored")
	default:
		res := d.res.SoftDelete(ctx, rowID)
		return res.Success, messageOr(res.Message, res.Success, "record deleted")
	}
}

func messageOr(message string, success bool, fallback string) string {
	if message != "" {
		return message
	}
	if success {
		return fallback
	}
	return "request failed"
}
