// Package resource exposes one typed REST client per admin entity. Each
// Resource wraps the generic API client with the entity's endpoint layout:
// list, get, create, update, and the three-way soft-delete / hard-delete /
// restore lifecycle.
package resource

import (
	"context"
	"net/url"
	"strconv"

	"lms-admin/internal/apiclient"
	"lms-admin/internal/common/pagination"
	"lms-admin/internal/usecase/listing"
)

// Resource is a typed client for one entity collection under /v1/<entity>.
type Resource[T any] struct {
	client *apiclient.Client
	entity string
	base   string
}

// NewResource creates a resource rooted at /v1/<entity>.
func NewResource[T any](client *apiclient.Client, entity string) *Resource[T] {
	return &Resource[T]{
		client: client,
		entity: entity,
		base:   "/v1/" + entity,
	}
}

// Entity returns the collection name, used for logging and metric labels.
func (r *Resource[T]) Entity() string {
	return r.entity
}

// List fetches one page of rows for the encoded filter.
func (r *Resource[T]) List(ctx context.Context, query url.Values) apiclient.Result[pagination.Response[T]] {
	return apiclient.GetData[pagination.Response[T]](ctx, r.client, r.base, query)
}

// Get fetches a single row by ID.
func (r *Resource[T]) Get(ctx context.Context, id int64) apiclient.Result[T] {
	return apiclient.GetData[T](ctx, r.client, r.item(id), nil)
}

// Create posts a new row. The body may be a JSON-serializable struct or an
// *apiclient.Form when the payload carries a file.
func (r *Resource[T]) Create(ctx context.Context, body any) apiclient.Result[T] {
	return apiclient.PostData[T](ctx, r.client, r.base, body)
}

// Update patches an existing row by ID.
func (r *Resource[T]) Update(ctx context.Context, id int64, body any) apiclient.Result[T] {
	return apiclient.PatchData[T](ctx, r.client, r.item(id), body)
}

// SoftDelete marks the row deleted without removing it. Reversible via
// Restore; the row moves to the deleted filter view.
func (r *Resource[T]) SoftDelete(ctx context.Context, id int64) apiclient.Result[struct{}] {
	return apiclient.DeleteData(ctx, r.client, r.base+"/soft/"+formatID(id))
}

// HardDelete permanently removes the row. Irreversible.
func (r *Resource[T]) HardDelete(ctx context.Context, id int64) apiclient.Result[struct{}] {
	return apiclient.DeleteData(ctx, r.client, r.base+"/hard/"+formatID(id))
}

// Restore clears the deleted flag on a soft-deleted row.
func (r *Resource[T]) Restore(ctx context.Context, id int64) apiclient.Result[T] {
	return apiclient.PatchData[T](ctx, r.client, r.base+"/restore/"+formatID(id), nil)
}

// QueryFunc adapts List into the listing engine's fetch callback. A failed
// envelope (Success=false) surfaces as an error carrying the backend message.
func (r *Resource[T]) QueryFunc() listing.QueryFunc[T] {
	return func(ctx context.Context, query url.Values) (pagination.Response[T], error) {
		res := r.List(ctx, query)
		if !res.Success {
			return pagination.Response[T]{}, &ListError{Entity: r.entity, Message: res.Message}
		}
		return res.Data, nil
	}
}

func (r *Resource[T]) item(id int64) string {
	return r.base + "/" + formatID(id)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ListError is a failed list fetch, carrying the normalized backend message.
type ListError struct {
	Entity  string
	Message string
}

func (e *ListError) Error() string {
	return "list " + e.Entity + ": " + e.Message
}
