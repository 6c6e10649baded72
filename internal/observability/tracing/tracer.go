// Package tracing provides OpenTelemetry instrumentation for outbound API calls.
// Every request to the admin backend gets a client span carrying the HTTP method,
// path, and response status, and the trace context is propagated via W3C headers
// so backend spans join the same trace.
package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the admin client.
var tracer = otel.Tracer("lms-admin")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// StartRequestSpan starts a client span for an outbound API request and injects
// the trace context into the request headers. The caller must end the span via
// EndRequestSpan once the response (or error) is known.
func StartRequestSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, req.Method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.URL.Path),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// EndRequestSpan records the outcome on the span and ends it. A non-nil err or
// a status >= 400 marks the span as failed.
func EndRequestSpan(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case status >= 400:
		span.SetStatus(codes.Error, http.StatusText(status))
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
