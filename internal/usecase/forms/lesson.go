package forms

import (
	"bytes"
	"strconv"

	"lms-admin/internal/apiclient"
)

// FileUpload is a file the operator attached to a form.
type FileUpload struct {
	Filename string
	Content  []byte
}

// LessonForm captures a lesson create or edit submission. When a thumbnail
// is attached the payload goes out as multipart form data with the boundary
// negotiated by the encoder; without one it is plain JSON.
type LessonForm struct {
	CourseID  int64  `validate:"required"`
	Title     string `validate:"required"`
	VideoURL  string
	Duration  int `validate:"gte=0"`
	Position  int `validate:"gte=0"`
	Published bool
	Thumbnail *FileUpload
}

type lessonPayload struct {
	CourseID  int64  `json:"courseId"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl,omitempty"`
	Duration  int    `json:"duration"`
	Position  int    `json:"position"`
	Published bool   `json:"published"`
}

// Validate checks the required fields.
func (f LessonForm) Validate() error {
	return validate.Struct(f)
}

// Body returns a multipart form when a thumbnail is attached, otherwise the
// JSON payload.
func (f LessonForm) Body() (any, error) {
	if f.Thumbnail == nil {
		return lessonPayload{
			CourseID:  f.CourseID,
			Title:     f.Title,
			VideoURL:  f.VideoURL,
			Duration:  f.Duration,
			Position:  f.Position,
			Published: f.Published,
		}, nil
	}

	form := apiclient.NewForm().
		Set("courseId", strconv.FormatInt(f.CourseID, 10)).
		Set("title", f.Title).
		Set("duration", strconv.Itoa(f.Duration)).
		Set("position", strconv.Itoa(f.Position)).
		Set("published", strconv.FormatBool(f.Published)).
		AddFile("thumbnail", f.Thumbnail.Filename, bytes.NewReader(f.Thumbnail.Content))
	if f.VideoURL != "" {
		form.Set("videoUrl", f.VideoURL)
	}
	return form, nil
}
