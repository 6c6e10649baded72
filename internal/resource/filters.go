package resource

import (
	"net/url"
	"time"

	"lms-admin/internal/apiclient"
	"lms-admin/internal/common/pagination"
	"lms-admin/internal/domain/entity"
)

// ListFilter is the filter state every list screen shares: pagination,
// free-text search, sorting, and the deleted-view toggle.
//
// Pointer fields are tri-state: nil means "not filtering on this", so the
// key is omitted from the query entirely. A non-nil false still serializes
// as "false" because the backend distinguishes "only active rows" from
// "no deletion filter at all".
type ListFilter struct {
	Page      int
	Limit     int
	Search    *string
	SortBy    *string
	SortOrder *entity.SortOrder
	IsDeleted *bool
}

// Values encodes the shared filter fields into query parameters.
func (f ListFilter) Values() url.Values {
	params := pagination.Params{Page: f.Page, Limit: f.Limit}.WithDefaults(pagination.DefaultConfig())

	q := apiclient.NewQuery().
		String("search", f.Search).
		String("sortBy", f.SortBy).
		Bool("isDeleted", f.IsDeleted)
	if f.SortOrder != nil {
		q.Set("sortOrder", string(*f.SortOrder))
	}

	values := q.Values()
	params.Encode(values)
	return values
}

// ActiveView returns a filter showing only non-deleted rows, the default
// view of every screen.
func ActiveView(page, limit int) ListFilter {
	deleted := false
	return ListFilter{Page: page, Limit: limit, IsDeleted: &deleted}
}

// DeletedView returns a filter showing only soft-deleted rows.
func DeletedView(page, limit int) ListFilter {
	deleted := true
	return ListFilter{Page: page, Limit: limit, IsDeleted: &deleted}
}

// CourseFilter narrows the course list by category, instructor, or
// publication state.
type CourseFilter struct {
	ListFilter
	CategoryID   *int64
	InstructorID *int64
	Published    *bool
}

func (f CourseFilter) Values() url.Values {
	values := f.ListFilter.Values()
	extra := apiclient.NewQuery().
		Int64("categoryId", f.CategoryID).
		Int64("instructorId", f.InstructorID).
		Bool("published", f.Published).
		Values()
	merge(values, extra)
	return values
}

// UserFilter narrows the user list by role or account status.
type UserFilter struct {
	ListFilter
	Role   *entity.Role
	Status *entity.UserStatus
}

func (f UserFilter) Values() url.Values {
	values := f.ListFilter.Values()
	if f.Role != nil {
		values.Set("role", string(*f.Role))
	}
	if f.Status != nil {
		values.Set("status", string(*f.Status))
	}
	return values
}

// EnrollmentFilter narrows the enrollment list by course or payment state.
type EnrollmentFilter struct {
	ListFilter
	CourseID *int64
	FullPaid *bool
}

func (f EnrollmentFilter) Values() url.Values {
	values := f.ListFilter.Values()
	extra := apiclient.NewQuery().
		Int64("courseId", f.CourseID).
		Bool("fullPaid", f.FullPaid).
		Values()
	merge(values, extra)
	return values
}

// AttendanceFilter narrows the attendance list by course, date, or status.
type AttendanceFilter struct {
	ListFilter
	CourseID *int64
	Date     *time.Time
	Status   *entity.AttendanceStatus
}

func (f AttendanceFilter) Values() url.Values {
	values := f.ListFilter.Values()
	extra := apiclient.NewQuery().
		Int64("courseId", f.CourseID).
		Date("date", f.Date).
		Values()
	merge(values, extra)
	if f.Status != nil {
		values.Set("status", string(*f.Status))
	}
	return values
}

// LeadFilter narrows the lead list by course, acquisition source, or
// pipeline status.
type LeadFilter struct {
	ListFilter
	CourseID *int64
	Source   *string
	Status   *string
}

func (f LeadFilter) Values() url.Values {
	values := f.ListFilter.Values()
	extra := apiclient.NewQuery().
		Int64("courseId", f.CourseID).
		String("source", f.Source).
		String("status", f.Status).
		Values()
	merge(values, extra)
	return values
}

func merge(dst, src url.Values) {
	for k, vs := range src {
		for _, v := range vs {
			dst.Set(k, v)
		}
	}
}
