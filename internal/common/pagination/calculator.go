package pagination

// CalculateOffset calculates the 0-based item offset for a page.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items
// and limit, using ceiling division.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < limit, returns 1
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 23, Limit 10 -> 3 pages
//   - Total 30, Limit 10 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
