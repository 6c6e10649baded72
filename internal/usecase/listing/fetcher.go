// Package listing implements the generic paginated list engine behind every
// admin screen: it turns a filter snapshot into rows plus loading/error state,
// and guarantees that out-of-order responses can never clobber newer data.
package listing

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"lms-admin/internal/common/pagination"
)

// QueryFunc performs one list request for the encoded filter and returns the
// page of rows with its metadata. Implementations typically close over a
// resource client's List call.
type QueryFunc[T any] func(ctx context.Context, query url.Values) (pagination.Response[T], error)

// Snapshot is the state a screen renders from.
//
// Items and Meta are never nil/undefined so a table can render immediately.
// Loading is true only before the first request of this fetcher's lifetime
// settles; Fetching is true whenever any request is in flight, including
// background refetches while stale rows stay visible. Err is set when the
// most recently applied request failed, and is mutually exclusive with a
// populated Items.
type Snapshot[T any] struct {
	Items    []T
	Meta     pagination.Metadata
	Loading  bool
	Fetching bool
	Err      error
}

// Fetcher owns the list state for one screen. It is safe for concurrent use.
//
// Every issued request gets a monotonically increasing sequence number.
// A response is applied only if its sequence is greater than the last applied
// one; anything else is a stale response from an abandoned filter state and is
// dropped. This keeps state in request-issuance order regardless of response
// arrival order.
type Fetcher[T any] struct {
	entity string
	query  QueryFunc[T]
	logger *slog.Logger

	mu       sync.Mutex
	filter   url.Values
	encoded  string
	started  bool
	seq      uint64
	applied  uint64
	inflight int
	settled  bool
	items    []T
	meta     pagination.Metadata
	err      error
	closed   bool
	subs     []chan Snapshot[T]

	wg sync.WaitGroup
}

// Option configures a Fetcher.
type Option[T any] func(*Fetcher[T])

// WithLogger sets the logger used for fetch lifecycle logging.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(f *Fetcher[T]) { f.logger = logger }
}

// New creates a Fetcher for one entity's list endpoint. The entity name is
// used for logging and metric labels only.
func New[T any](entity string, query QueryFunc[T], opts ...Option[T]) *Fetcher[T] {
	f := &Fetcher[T]{
		entity: entity,
		query:  query,
		logger: slog.Default(),
		items:  []T{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetFilter installs a new filter snapshot and triggers a fetch when the
// filter differs by value from the current one (or nothing has been fetched
// yet). Setting an identical filter is a no-op, so screens can call this on
// every render without flooding the backend.
func (f *Fetcher[T]) SetFilter(ctx context.Context, filter url.Values) {
	encoded := filter.Encode()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if f.started && encoded == f.encoded {
		return
	}
	f.filter = cloneValues(filter)
	f.encoded = encoded
	f.started = true
	f.issueLocked(ctx)
}

// Refetch re-issues the current filter snapshot. Screens call this after a
// mutation to resynchronize with backend truth instead of patching rows
// optimistically.
func (f *Fetcher[T]) Refetch(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.started {
		return
	}
	f.issueLocked(ctx)
}

// Snapshot returns the current list state.
func (f *Fetcher[T]) Snapshot() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Subscribe returns a channel that receives the latest snapshot after every
// state change. The channel has a buffer of one and is latest-wins: a slow
// consumer observes the newest state, not every intermediate one.
func (f *Fetcher[T]) Subscribe() <-chan Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan Snapshot[T], 1)
	f.subs = append(f.subs, ch)
	return ch
}

// Close stops the fetcher. In-flight responses arriving after Close are
// dropped without touching state, mirroring cleanup-on-unmount discipline.
func (f *Fetcher[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for _, ch := range f.subs {
		close(ch)
	}
	f.subs = nil
}

// Wait blocks until every issued request has settled. Intended for tests and
// for draining before process shutdown.
func (f *Fetcher[T]) Wait() {
	f.wg.Wait()
}

// issueLocked starts one request for the current filter. Caller holds f.mu.
func (f *Fetcher[T]) issueLocked(ctx context.Context) {
	f.seq++
	seq := f.seq
	filter := cloneValues(f.filter)
	f.inflight++
	f.wg.Add(1)
	fetchesStarted.WithLabelValues(f.entity).Inc()

	go func() {
		defer f.wg.Done()
		resp, err := f.query(ctx, filter)
		f.apply(seq, resp, err)
	}()

	f.notifyLocked()
}

// apply settles one request's outcome under the race guard.
func (f *Fetcher[T]) apply(seq uint64, resp pagination.Response[T], err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inflight--
	if f.closed {
		return
	}
	if seq <= f.applied {
		staleDropped.WithLabelValues(f.entity).Inc()
		f.logger.Debug("stale list response dropped",
			slog.String("entity", f.entity),
			slog.Uint64("seq", seq),
			slog.Uint64("applied", f.applied))
		f.notifyLocked()
		return
	}

	f.applied = seq
	f.settled = true
	if err != nil {
		f.err = err
		f.items = []T{}
		f.meta = pagination.Metadata{}
		f.logger.Warn("list fetch failed",
			slog.String("entity", f.entity),
			slog.Any("error", err))
	} else {
		f.err = nil
		f.items = resp.Data
		if f.items == nil {
			f.items = []T{}
		}
		f.meta = resp.Meta.Normalize()
	}
	f.notifyLocked()
}

func (f *Fetcher[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Items:    f.items,
		Meta:     f.meta,
		Loading:  !f.settled && f.inflight > 0,
		Fetching: f.inflight > 0,
		Err:      f.err,
	}
}

// notifyLocked pushes the latest snapshot to subscribers, replacing any
// unconsumed previous one. Caller holds f.mu.
func (f *Fetcher[T]) notifyLocked() {
	snap := f.snapshotLocked()
	for _, ch := range f.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func cloneValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		out[k] = append([]string(nil), v...)
	}
	return out
}
