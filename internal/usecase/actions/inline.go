package actions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lms-admin/internal/notify"
	"lms-admin/internal/resource"
)

// DefaultDebounce is how long an inline edit waits for further keystrokes
// on the same row and field before committing.
const DefaultDebounce = 400 * time.Millisecond

type editKey struct {
	rowID int64
	field string
}

type pendingEdit struct {
	value any
	timer *time.Timer
}

// InlineEditor commits single-field edits made directly in a table row.
//
// Edits are debounced per row and field: rapid changes to the same cell
// collapse into one PATCH carrying the latest value, while edits to
// different cells commit independently. After a successful PATCH the list
// refetches so the visible row reflects what the backend actually stored.
// The local value is never applied optimistically; a failed PATCH followed
// by the refetch shows the backend's value, not the operator's input.
type InlineEditor[T any] struct {
	res      *resource.Resource[T]
	list     Refetcher
	notifier notify.Notifier
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[editKey]*pendingEdit
	closed  bool
	wg      sync.WaitGroup
}

// EditorOption configures an InlineEditor.
type EditorOption[T any] func(*InlineEditor[T])

// WithDebounce overrides the debounce window.
func WithDebounce[T any](d time.Duration) EditorOption[T] {
	return func(e *InlineEditor[T]) { e.debounce = d }
}

// NewInlineEditor creates an editor for one entity's resource.
func NewInlineEditor[T any](res *resource.Resource[T], list Refetcher, notifier notify.Notifier, logger *slog.Logger, opts ...EditorOption[T]) *InlineEditor[T] {
	if notifier == nil {
		notifier = notify.NewNoOpNotifier()
	}
	if logger == nil {
		logger = slog.Default()
	}
	e := &InlineEditor[T]{
		res:      res,
		list:     list,
		notifier: notifier,
		logger:   logger,
		debounce: DefaultDebounce,
		pending:  make(map[editKey]*pendingEdit),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Set records an edit of one field on one row. The commit fires after the
// debounce window unless a newer value for the same row and field replaces
// it first.
func (e *InlineEditor[T]) Set(ctx context.Context, rowID int64, field string, value any) {
	key := editKey{rowID: rowID, field: field}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if p, ok := e.pending[key]; ok {
		p.value = value
		p.timer.Reset(e.debounce)
		return
	}
	p := &pendingEdit{value: value}
	e.wg.Add(1)
	p.timer = time.AfterFunc(e.debounce, func() {
		defer e.wg.Done()
		e.fire(ctx, key)
	})
	e.pending[key] = p
}

// Flush commits every pending edit immediately and waits for the requests
// to settle. Intended for tests and for ordered shutdown.
func (e *InlineEditor[T]) Flush(ctx context.Context) {
	e.mu.Lock()
	keys := make([]editKey, 0, len(e.pending))
	for key, p := range e.pending {
		if p.timer.Stop() {
			keys = append(keys, key)
		}
	}
	e.mu.Unlock()

	for _, key := range keys {
		e.fire(ctx, key)
		e.wg.Done()
	}
	e.wg.Wait()
}

// Close drops all pending edits without committing them.
func (e *InlineEditor[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for key, p := range e.pending {
		if p.timer.Stop() {
			e.wg.Done()
		}
		delete(e.pending, key)
	}
}

// fire commits the latest value recorded for the key. The refetch runs on
// success and failure alike: either way the table must converge on what the
// backend holds.
func (e *InlineEditor[T]) fire(ctx context.Context, key editKey) {
	e.mu.Lock()
	p, ok := e.pending[key]
	if !ok {
		e.mu.Unlock()
		return
	}
	delete(e.pending, key)
	value := p.value
	e.mu.Unlock()

	res := e.res.Update(ctx, key.rowID, map[string]any{key.field: value})
	entity := e.res.Entity()
	if res.Success {
		notify.Success(ctx, e.notifier, entity, messageOr(res.Message, true, "saved"))
	} else {
		notify.Error(ctx, e.notifier, entity, messageOr(res.Message, false, ""))
		e.logger.Warn("inline edit failed",
			slog.String("entity", entity),
			slog.Int64("row_id", key.rowID),
			slog.String("field", key.field),
			slog.String("message", res.Message))
	}
	e.list.Refetch(ctx)
}
