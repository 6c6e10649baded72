package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"lms-admin/internal/resource"
)

// Dashboard summarizes the platform at a glance: row counts per collection,
// split into active and soft-deleted. Counts come from each list endpoint's
// metadata, fetched in parallel with a page size of one so no row payloads
// are transferred.
type Dashboard struct {
	reg    *resource.Registry
	logger *slog.Logger
	out    io.Writer
	cron   *cron.Cron
}

// EntityCount is one collection's totals.
type EntityCount struct {
	Entity  string
	Active  int64
	Deleted int64
}

// NewDashboard creates a dashboard over the resource registry.
func NewDashboard(reg *resource.Registry, logger *slog.Logger, out io.Writer) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{reg: reg, logger: logger, out: out}
}

// Counts fetches the totals for every collection concurrently. A single
// failing collection fails the whole refresh; the caller renders the previous
// state or the error.
func (d *Dashboard) Counts(ctx context.Context) ([]EntityCount, error) {
	counts := []EntityCount{
		{Entity: d.reg.Courses.Entity()},
		{Entity: d.reg.Users.Entity()},
		{Entity: d.reg.Instructors.Entity()},
		{Entity: d.reg.Enrollments.Entity()},
		{Entity: d.reg.Leads.Entity()},
		{Entity: d.reg.Reviews.Entity()},
	}

	totals := []func(context.Context, bool) (int64, error){
		countFunc(d.reg.Courses),
		countFunc(d.reg.Users),
		countFunc(d.reg.Instructors),
		countFunc(d.reg.Enrollments),
		countFunc(d.reg.Leads),
		countFunc(d.reg.Reviews),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range counts {
		g.Go(func() error {
			active, err := totals[i](gctx, false)
			if err != nil {
				return err
			}
			deleted, err := totals[i](gctx, true)
			if err != nil {
				return err
			}
			counts[i].Active = active
			counts[i].Deleted = deleted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Render fetches and prints the dashboard table.
func (d *Dashboard) Render(ctx context.Context) error {
	counts, err := d.Counts(ctx)
	if err != nil {
		fmt.Fprintf(d.out, "dashboard unavailable: %v\n", err)
		return err
	}

	w := tabwriter.NewWriter(d.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENTITY\tACTIVE\tDELETED")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\t%d\n", c.Entity, c.Active, c.Deleted)
	}
	return w.Flush()
}

// StartAutoRefresh re-renders the dashboard on the given cron schedule
// (e.g. "@every 30s") until ctx is cancelled.
func (d *Dashboard) StartAutoRefresh(ctx context.Context, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := d.Render(ctx); err != nil {
			d.logger.Warn("dashboard refresh failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	c.Start()
	d.cron = c

	go func() {
		<-ctx.Done()
		d.Stop()
	}()
	return nil
}

// Stop halts the auto-refresh schedule, waiting for a running render.
func (d *Dashboard) Stop() {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}
}

// countFunc reads one collection's total from its list metadata, requesting
// a single row so the payload stays minimal.
func countFunc[T any](res *resource.Resource[T]) func(context.Context, bool) (int64, error) {
	return func(ctx context.Context, deleted bool) (int64, error) {
		filter := resource.ListFilter{Page: 1, Limit: 1, IsDeleted: &deleted}
		result := res.List(ctx, filter.Values())
		if !result.Success {
			return 0, &resource.ListError{Entity: res.Entity(), Message: result.Message}
		}
		return result.Data.Meta.Total, nil
	}
}
