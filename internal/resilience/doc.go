// Package resilience provides reliability patterns for calls to the admin backend.
// It includes a circuit breaker wrapper and retry logic with exponential backoff
// so a flaky or unavailable backend degrades screens gracefully instead of
// hanging them.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.AdminAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callBackend()
//	})
//
//	err := retry.WithBackoff(ctx, retry.ListFetchConfig(), func() error {
//	    return fetchPage()
//	})
package resilience
