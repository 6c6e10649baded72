// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used throughout the admin client: JSON or text output,
// request ID propagation for outbound API calls, and context-aware loggers.
//
// Example usage:
//
//	import "lms-admin/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("admin console started", slog.String("version", "1.0"))
//	}
//
//	func listCourses(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("fetching course list")
//	}
package logging
