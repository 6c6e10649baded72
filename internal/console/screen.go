// Package console renders the admin screens in the terminal. A screen
// composes the list engine, the row-action dialog, and the inline editor
// for one entity, and prints the current page as a table.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"text/tabwriter"

	"lms-admin/internal/notify"
	"lms-admin/internal/resource"
	"lms-admin/internal/usecase/actions"
	"lms-admin/internal/usecase/listing"
)

// Columns defines how one entity renders as a table.
type Columns[T any] struct {
	Headers []string
	Row     func(T) []string
}

// Lister is the entity-agnostic surface a screen exposes to the CLI.
type Lister interface {
	// Show installs the filter and renders the resulting page.
	Show(ctx context.Context, filter url.Values) error
	// Refresh re-fetches the current filter and renders.
	Refresh(ctx context.Context) error
	// Act runs one row action through the confirmation dialog. When
	// confirmed is false the dialog prompt is printed and nothing mutates.
	Act(ctx context.Context, action actions.Action, id int64, confirmed bool) bool
	// EditField commits a single-field edit on a row and renders the
	// refetched state.
	EditField(ctx context.Context, id int64, field string, value any)
	// Close releases the screen; late responses no longer render.
	Close()
}

// Screen is the terminal rendition of one entity's list page.
type Screen[T any] struct {
	entity   string
	fetcher  *listing.Fetcher[T]
	dialog   *actions.Dialog[T]
	editor   *actions.InlineEditor[T]
	notifier notify.Notifier
	cols     Columns[T]
	out      io.Writer
}

// NewScreen wires the list engine, dialog, and editor for one resource.
func NewScreen[T any](res *resource.Resource[T], notifier notify.Notifier, logger *slog.Logger, cols Columns[T], out io.Writer) *Screen[T] {
	if logger == nil {
		logger = slog.Default()
	}
	fetcher := listing.New(res.Entity(), res.QueryFunc(), listing.WithLogger[T](logger))
	return &Screen[T]{
		entity:   res.Entity(),
		fetcher:  fetcher,
		dialog:   actions.NewDialog(res, fetcher, notifier, logger),
		editor:   actions.NewInlineEditor(res, fetcher, notifier, logger),
		notifier: notifier,
		cols:     cols,
		out:      out,
	}
}

// Fetcher exposes the underlying list engine, mainly for composition in
// dashboards and tests.
func (s *Screen[T]) Fetcher() *listing.Fetcher[T] {
	return s.fetcher
}

func (s *Screen[T]) Show(ctx context.Context, filter url.Values) error {
	s.fetcher.SetFilter(ctx, filter)
	s.fetcher.Wait()
	return s.render()
}

func (s *Screen[T]) Refresh(ctx context.Context) error {
	s.fetcher.Refetch(ctx)
	s.fetcher.Wait()
	return s.render()
}

func (s *Screen[T]) Act(ctx context.Context, action actions.Action, id int64, confirmed bool) bool {
	s.dialog.Open(action, id)
	if !confirmed {
		fmt.Fprintf(s.out, "%s\n[%s] requires confirmation for %s #%d\n", action.Prompt(), action.ConfirmLabel(), s.entity, id)
		s.dialog.Cancel()
		return false
	}
	ok := s.dialog.Confirm(ctx)
	if ok {
		s.fetcher.Wait()
		_ = s.render()
	}
	return ok
}

func (s *Screen[T]) EditField(ctx context.Context, id int64, field string, value any) {
	s.editor.Set(ctx, id, field, value)
	s.editor.Flush(ctx)
	s.fetcher.Wait()
	_ = s.render()
}

func (s *Screen[T]) Close() {
	s.editor.Close()
	s.fetcher.Close()
}

// render prints the current snapshot. A fetch error renders as an inline
// message with an empty table, never a crash.
func (s *Screen[T]) render() error {
	snap := s.fetcher.Snapshot()

	fmt.Fprintf(s.out, "== %s ==\n", s.entity)
	if snap.Err != nil {
		fmt.Fprintf(s.out, "error: %v\n", snap.Err)
		return snap.Err
	}

	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(s.cols.Headers, "\t"))
	for _, item := range snap.Items {
		fmt.Fprintln(w, strings.Join(s.cols.Row(item), "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(snap.Items) == 0 {
		fmt.Fprintln(s.out, "(no rows)")
	}
	fmt.Fprintf(s.out, "page %d of %d, %d total\n", snap.Meta.Page, snap.Meta.TotalPages, snap.Meta.Total)
	return nil
}
