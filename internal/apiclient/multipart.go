package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Form is a multipart request body, used when a create or update payload
// includes a file (course thumbnails, lesson attachments). Passing a *Form to
// PostData or PatchData switches the request to multipart/form-data; the
// content type, including the boundary, comes from the multipart writer and
// must never be overridden with application/json.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Set adds a plain text field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddFile adds a file part read from content.
func (f *Form) AddFile(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

// Encode renders the form into a request body and returns the negotiated
// content type (multipart/form-data with boundary).
func (f *Form) Encode() (contentType string, body io.Reader, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return "", nil, fmt.Errorf("write form field %q: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("create form file %q: %w", file.field, err)
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return "", nil, fmt.Errorf("copy form file %q: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	return w.FormDataContentType(), buf, nil
}
