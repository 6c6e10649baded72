package apiclient

import (
	"net/url"
	"strconv"
	"time"
)

// Query accumulates optional list-filter parameters for a GET request.
//
// The omission rule matters for tri-state filters: a nil pointer means "don't
// filter on this key" and the key is left out of the query string entirely,
// while a pointer to false is serialized as "false". "all records" vs "only
// non-deleted records" are different requests, and an empty-string value is
// treated the same as absent (a cleared search box is not a search for "").
type Query struct {
	values url.Values
}

// NewQuery creates an empty query builder.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Set unconditionally sets a key. Used for parameters that are always sent,
// such as page and limit.
func (q *Query) Set(key, value string) *Query {
	q.values.Set(key, value)
	return q
}

// String sets key from an optional string. Nil and empty values are omitted.
func (q *Query) String(key string, v *string) *Query {
	if v != nil && *v != "" {
		q.values.Set(key, *v)
	}
	return q
}

// Bool sets key from an optional boolean. Nil is omitted; false is sent as
// the literal "false".
func (q *Query) Bool(key string, v *bool) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatBool(*v))
	}
	return q
}

// Int sets key from an optional int. Nil is omitted.
func (q *Query) Int(key string, v *int) *Query {
	if v != nil {
		q.values.Set(key, strconv.Itoa(*v))
	}
	return q
}

// Int64 sets key from an optional int64. Nil is omitted.
func (q *Query) Int64(key string, v *int64) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatInt(*v, 10))
	}
	return q
}

// Date sets key from an optional time, serialized as a calendar date.
func (q *Query) Date(key string, v *time.Time) *Query {
	if v != nil && !v.IsZero() {
		q.values.Set(key, v.Format("2006-01-02"))
	}
	return q
}

// Values returns the accumulated parameters.
func (q *Query) Values() url.Values {
	return q.values
}
