// Package forms implements the create and edit payload builders behind the
// admin screens. Each form validates its input, derives the computed fields
// the operator never types (due amount, embed URLs), and produces either a
// JSON body or a multipart body when a file is attached.
//
// A validation failure surfaces as an operator notification only; no
// network request is issued.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"lms-admin/internal/apiclient"
	"lms-admin/internal/notify"
	"lms-admin/internal/resource"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form is a validated payload builder for one create or edit submission.
type Form interface {
	// Validate checks the operator's input before any request is issued.
	Validate() error
	// Body returns the request payload: a JSON-serializable value or an
	// *apiclient.Form when the submission carries a file.
	Body() (any, error)
}

// Refetcher resynchronizes a list after a successful submission.
type Refetcher interface {
	Refetch(ctx context.Context)
}

// Submit validates the form and creates the record. It returns the typed
// result and whether the submission succeeded. Validation failures notify
// the operator and return without touching the network.
func Submit[T any](ctx context.Context, res *resource.Resource[T], list Refetcher, notifier notify.Notifier, form Form) (apiclient.Result[T], bool) {
	body, ok := prepare(ctx, res.Entity(), notifier, form)
	if !ok {
		return apiclient.Result[T]{}, false
	}
	return settle(ctx, res.Entity(), list, notifier, res.Create(ctx, body), "record created")
}

// SubmitUpdate validates the form and patches an existing record.
func SubmitUpdate[T any](ctx context.Context, res *resource.Resource[T], list Refetcher, notifier notify.Notifier, id int64, form Form) (apiclient.Result[T], bool) {
	body, ok := prepare(ctx, res.Entity(), notifier, form)
	if !ok {
		return apiclient.Result[T]{}, false
	}
	return settle(ctx, res.Entity(), list, notifier, res.Update(ctx, id, body), "record updated")
}

func prepare(ctx context.Context, entity string, notifier notify.Notifier, form Form) (any, bool) {
	if err := form.Validate(); err != nil {
		notify.Error(ctx, notifier, entity, validationMessage(err))
		return nil, false
	}
	body, err := form.Body()
	if err != nil {
		notify.Error(ctx, notifier, entity, err.Error())
		return nil, false
	}
	return body, true
}

func settle[T any](ctx context.Context, entity string, list Refetcher, notifier notify.Notifier, res apiclient.Result[T], fallback string) (apiclient.Result[T], bool) {
	if !res.Success {
		message := res.Message
		if message == "" {
			message = "request failed"
		}
		notify.Error(ctx, notifier, entity, message)
		return res, false
	}
	if list != nil {
		list.Refetch(ctx)
	}
	message := res.Message
	if message == "" {
		message = fallback
	}
	notify.Success(ctx, notifier, entity, message)
	return res, true
}

// lowerFirst lowercases the leading character so struct field names read as
// toast copy. Empty input stays empty.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// validationMessage humanizes the first failed rule into toast copy.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	case "ltefield":
		return field + " must not exceed " + lowerFirst(fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
