package pagination

// Response is the inner payload of a paginated list endpoint.
// T is the row type (e.g., entity.Course, entity.User).
//
// The backend wraps it in the standard envelope:
//
//	{"success": true, "data": {"data": [...], "meta": {...}}}
type Response[T any] struct {
	Data []T      `json:"data"` // Rows for the current page
	Meta Metadata `json:"meta"` // Pagination metadata (total, page, limit, totalPages)
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, meta Metadata) Response[T] {
	return Response[T]{Data: data, Meta: meta}
}
