// Package observability provides the observability infrastructure for the
// admin console: structured logging and OpenTelemetry tracing. Prometheus
// metrics live next to the code they instrument (the API client and the
// list engine) and are exposed through the optional metrics server.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - tracing: OpenTelemetry tracing for outbound backend requests
//
// Example usage:
//
//	import "lms-admin/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("admin console started")
//	}
package observability
