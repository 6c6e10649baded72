package forms

import (
	"errors"
	"regexp"
)

// youtubeID matches the 11-character video ID out of the URL shapes
// operators paste: watch URLs, short youtu.be links, and embed URLs.
var youtubeID = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// ErrInvalidVideoURL indicates the intro video URL carries no recognizable
// YouTube video ID.
var ErrInvalidVideoURL = errors.New("intro video must be a YouTube URL")

// EmbedURL converts any recognized YouTube URL to its embed form. Embed
// URLs pass through unchanged. The second return is false when no video ID
// could be extracted.
func EmbedURL(raw string) (string, bool) {
	m := youtubeID.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return "https://www.youtube.com/embed/" + m[1], true
}

// CourseForm captures a course create or edit submission. The intro video
// accepts whatever YouTube URL the operator pastes and is stored as an
// embed URL.
type CourseForm struct {
	Title        string `validate:"required"`
	CategoryID   int64  `validate:"required"`
	InstructorID int64  `validate:"required"`
	Description  string
	Price        int64 `validate:"gte=0"`
	IntroVideo   string
	Published    bool
}

type coursePayload struct {
	Title        string `json:"title"`
	CategoryID   int64  `json:"categoryId"`
	InstructorID int64  `json:"instructorId"`
	Description  string `json:"description,omitempty"`
	Price        int64  `json:"price"`
	IntroVideo   string `json:"introVideo,omitempty"`
	Published    bool   `json:"published"`
}

// Validate checks the required fields and price bounds.
func (f CourseForm) Validate() error {
	return validate.Struct(f)
}

// Body returns the JSON payload with the intro video normalized to an
// embed URL. An unrecognizable video URL fails the submission before any
// request is issued.
func (f CourseForm) Body() (any, error) {
	p := coursePayload{
		Title:        f.Title,
		CategoryID:   f.CategoryID,
		InstructorID: f.InstructorID,
		Description:  f.Description,
		Price:        f.Price,
		Published:    f.Published,
	}
	if f.IntroVideo != "" {
		embed, ok := EmbedURL(f.IntroVideo)
		if !ok {
			return nil, ErrInvalidVideoURL
		}
		p.IntroVideo = embed
	}
	return p, nil
}
