// Package entity defines the admin-side view of the platform's domain records.
// These structs mirror the JSON the backend returns for each entity; the
// backend owns the business rules, the client only carries the data.
//
// Every record the backend soft-deletes keeps its row and gets IsDeleted set;
// restore clears the flag; hard delete removes the row entirely.
package entity

// SortOrder is the direction of a sorted list request.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
