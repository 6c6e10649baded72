// Package apiclient implements the generic HTTP layer between the admin
// screens and the platform's REST backend.
//
// The four verb helpers (GetData, PostData, PatchData, DeleteData) never
// return Go errors to their callers. Transport failures, non-2xx statuses,
// and malformed response bodies all collapse into a normalized Result with
// Success=false and a human-readable Message, which screens surface as a
// toast. Callers must check Success before touching Data.
//
// Every request goes through a shared circuit breaker and a client-side rate
// limiter, carries an X-Request-ID header and an OpenTelemetry client span,
// and attaches a bearer token when a TokenSource is configured. GETs are
// retried with exponential backoff; mutations are never replayed.
package apiclient
