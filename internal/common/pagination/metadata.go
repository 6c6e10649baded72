package pagination

// Metadata contains the pagination metadata block returned alongside every
// admin list. JSON field names follow the backend contract.
//
// Total is the server's count of rows matching the current filters. It is
// independent of the number of items actually returned for the page, and it
// must not change when only the page number changes.
type Metadata struct {
	Total      int64 `json:"total"`      // Total number of matching items across all pages
	Page       int   `json:"page"`       // Current page number (1-based)
	Limit      int   `json:"limit"`      // Items per page
	TotalPages int   `json:"totalPages"` // Total number of pages
}

// Normalize fills in TotalPages when the backend omits it from the meta block.
func (m Metadata) Normalize() Metadata {
	if m.TotalPages == 0 && m.Limit > 0 {
		m.TotalPages = CalculateTotalPages(m.Total, m.Limit)
	}
	return m
}
