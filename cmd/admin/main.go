// Package main provides the admin console CLI for the learning-management
// backend.
//
// Usage:
//
//	lms-admin list <entity> [--page N] [--limit N] [--search Q] [--deleted]
//	lms-admin delete <entity> <id> [--hard] [--yes]
//	lms-admin restore <entity> <id> [--yes]
//	lms-admin edit <entity> <id> <field> <value>
//	lms-admin create course --title T --category N --instructor N [...]
//	lms-admin create enrollment --student N --course N [...]
//	lms-admin dashboard [--watch SCHEDULE]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"lms-admin/internal/apiclient"
	"lms-admin/internal/config"
	"lms-admin/internal/console"
	"lms-admin/internal/notify"
	"lms-admin/internal/observability/logging"
	"lms-admin/internal/resource"
	"lms-admin/internal/usecase/actions"
	"lms-admin/internal/usecase/forms"
)

func main() {
	var (
		envFile     string
		configFile  string
		metricsAddr string
	)
	flag.StringVar(&envFile, "env", "", "Path to a .env file to load before reading configuration")
	flag.StringVar(&configFile, "config", "", "Path to a YAML configuration overlay")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on (disabled when empty)")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load env file: %v\n", err)
			os.Exit(1)
		}
	} else {
		// A missing default .env is fine; explicit paths are not.
		_ = godotenv.Load()
	}

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := loadConfig(configFile)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		startMetricsServer(ctx, logger, metricsAddr)
	}

	client, err := buildClient(cfg, logger)
	if err != nil {
		logger.Error("failed to build API client", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reg := resource.NewRegistry(client)
	notifier := notify.NewConsoleNotifier(logger)
	screens := console.Build(reg, notifier, logger, os.Stdout)
	defer func() {
		for _, s := range screens {
			s.Close()
		}
	}()

	if err := run(ctx, flag.Args(), cfg, reg, screens, notifier, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func buildClient(cfg *config.Config, logger *slog.Logger) (*apiclient.Client, error) {
	opts := []apiclient.Option{
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		apiclient.WithLogger(logger),
		apiclient.WithRetryConfig(cfg.RetryPolicy()),
		apiclient.WithBreakerConfig(cfg.BreakerPolicy()),
		apiclient.WithRateLimit(cfg.API.RateLimit, cfg.API.Burst),
	}
	if token := cfg.Token(); token != "" {
		opts = append(opts, apiclient.WithTokenSource(apiclient.NewStaticTokenSource(token)))
	}
	return apiclient.New(cfg.API.BaseURL, opts...)
}

func run(ctx context.Context, args []string, cfg *config.Config, reg *resource.Registry, screens map[string]console.Lister, notifier notify.Notifier, logger *slog.Logger) error {
	switch args[0] {
	case "list":
		return runList(ctx, args[1:], cfg, screens)
	case "delete":
		return runAction(ctx, args[1:], screens, false)
	case "restore":
		return runAction(ctx, args[1:], screens, true)
	case "edit":
		return runEdit(ctx, args[1:], screens)
	case "create":
		return runCreate(ctx, args[1:], reg, notifier)
	case "dashboard":
		return runDashboard(ctx, args[1:], reg, logger)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runList(ctx context.Context, args []string, cfg *config.Config, screens map[string]console.Lister) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	page := fs.Int("page", 1, "Page number")
	limit := fs.Int("limit", cfg.Pagination.DefaultLimit, "Rows per page")
	search := fs.String("search", "", "Free-text search")
	deleted := fs.Bool("deleted", false, "Show soft-deleted rows instead of active ones")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: list <entity> [--page N] [--limit N] [--search Q] [--deleted]")
	}

	screen, err := lookupScreen(screens, fs.Arg(0))
	if err != nil {
		return err
	}

	filter := resource.ListFilter{Page: *page, Limit: *limit}
	showDeleted := *deleted
	filter.IsDeleted = &showDeleted
	if *search != "" {
		filter.Search = search
	}
	return screen.Show(ctx, filter.Values())
}

func runAction(ctx context.Context, args []string, screens map[string]console.Lister, restore bool) error {
	name := "delete"
	if restore {
		name = "restore"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var hard bool
	if !restore {
		fs.BoolVar(&hard, "hard", false, "Permanently delete instead of soft delete")
	}
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		if restore {
			return fmt.Errorf("usage: restore <entity> <id> [--yes]")
		}
		return fmt.Errorf("usage: delete <entity> <id> [--hard] [--yes]")
	}

	screen, err := lookupScreen(screens, fs.Arg(0))
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", fs.Arg(1))
	}

	action := actions.ActionSoftDelete
	switch {
	case restore:
		action = actions.ActionRestore
	case hard:
		action = actions.ActionHardDelete
	}

	confirmed := *yes || promptConfirm(action)
	if !screen.Act(ctx, action, id, confirmed) {
		return fmt.Errorf("%s not performed", action)
	}
	return nil
}

func runEdit(ctx context.Context, args []string, screens map[string]console.Lister) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		return fmt.Errorf("usage: edit <entity> <id> <field> <value>")
	}

	screen, err := lookupScreen(screens, fs.Arg(0))
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(fs.Arg(1), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", fs.Arg(1))
	}

	screen.EditField(ctx, id, fs.Arg(2), parseValue(fs.Arg(3)))
	return nil
}

func runCreate(ctx context.Context, args []string, reg *resource.Registry, notifier notify.Notifier) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: create course|enrollment [flags]")
	}
	switch args[0] {
	case "course":
		return runCreateCourse(ctx, args[1:], reg, notifier)
	case "enrollment":
		return runCreateEnrollment(ctx, args[1:], reg, notifier)
	default:
		return fmt.Errorf("unknown create target %q (known: course, enrollment)", args[0])
	}
}

func runCreateCourse(ctx context.Context, args []string, reg *resource.Registry, notifier notify.Notifier) error {
	fs := flag.NewFlagSet("create course", flag.ContinueOnError)
	title := fs.String("title", "", "Course title")
	category := fs.Int64("category", 0, "Category ID")
	instructor := fs.Int64("instructor", 0, "Instructor ID")
	description := fs.String("description", "", "Course description")
	price := fs.Int64("price", 0, "Price in the platform currency")
	video := fs.String("video", "", "Intro video URL (YouTube watch, short, or embed)")
	published := fs.Bool("published", false, "Publish immediately")
	if err := fs.Parse(args); err != nil {
		return err
	}

	refs, err := console.LoadReferences(ctx, reg)
	if err != nil {
		return fmt.Errorf("loading form references: %w", err)
	}
	if *category != 0 && !refs.HasCategory(*category) {
		return fmt.Errorf("category %d not found among %d active categories", *category, len(refs.Categories))
	}
	if *instructor != 0 && !refs.HasInstructor(*instructor) {
		return fmt.Errorf("instructor %d not found among %d active instructors", *instructor, len(refs.Instructors))
	}

	form := forms.CourseForm{
		Title:        *title,
		CategoryID:   *category,
		InstructorID: *instructor,
		Description:  *description,
		Price:        *price,
		IntroVideo:   *video,
		Published:    *published,
	}
	if _, ok := forms.Submit(ctx, reg.Courses, nil, notifier, form); !ok {
		return fmt.Errorf("course not created")
	}
	return nil
}

func runCreateEnrollment(ctx context.Context, args []string, reg *resource.Registry, notifier notify.Notifier) error {
	fs := flag.NewFlagSet("create enrollment", flag.ContinueOnError)
	student := fs.Int64("student", 0, "Student user ID")
	course := fs.Int64("course", 0, "Course ID")
	batch := fs.String("batch", "", "Batch name")
	total := fs.Int64("total", 0, "Total amount")
	paid := fs.Int64("paid", 0, "Amount already paid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := forms.EnrollmentForm{
		StudentID:   *student,
		CourseID:    *course,
		BatchName:   *batch,
		TotalAmount: *total,
		PaidAmount:  *paid,
	}
	if _, ok := forms.Submit(ctx, reg.Enrollments, nil, notifier, form); !ok {
		return fmt.Errorf("enrollment not created")
	}
	return nil
}

func runDashboard(ctx context.Context, args []string, reg *resource.Registry, logger *slog.Logger) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	watch := fs.String("watch", "", "Cron schedule for auto-refresh, e.g. \"@every 30s\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dash := console.NewDashboard(reg, logger, os.Stdout)
	if err := dash.Render(ctx); err != nil {
		return err
	}
	if *watch == "" {
		return nil
	}

	if err := dash.StartAutoRefresh(ctx, *watch); err != nil {
		return err
	}
	<-ctx.Done()
	dash.Stop()
	return nil
}

func lookupScreen(screens map[string]console.Lister, name string) (console.Lister, error) {
	screen, ok := screens[name]
	if !ok {
		known := make([]string, 0, len(screens))
		for k := range screens {
			known = append(known, k)
		}
		return nil, fmt.Errorf("unknown entity %q (known: %s)", name, strings.Join(known, ", "))
	}
	return screen, nil
}

// parseValue turns a CLI value into the JSON type the backend expects.
func parseValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func promptConfirm(action actions.Action) bool {
	fmt.Printf("%s\nType %q to confirm: ", action.Prompt(), action.ConfirmLabel())
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), action.ConfirmLabel())
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: lms-admin [flags] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  list <entity>               Browse a paginated collection")
	fmt.Fprintln(os.Stderr, "  delete <entity> <id>        Soft delete a row (--hard for permanent)")
	fmt.Fprintln(os.Stderr, "  restore <entity> <id>       Restore a soft-deleted row")
	fmt.Fprintln(os.Stderr, "  edit <entity> <id> <f> <v>  Patch a single field")
	fmt.Fprintln(os.Stderr, "  create course|enrollment    Create a record from flag values")
	fmt.Fprintln(os.Stderr, "  dashboard                   Show collection totals (--watch to auto-refresh)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
