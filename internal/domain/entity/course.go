package entity

import "time"

// Course represents a course record in the catalog.
type Course struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"categoryId"`
	InstructorID int64     `json:"instructorId"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Thumbnail    string    `json:"thumbnail"`
	IntroVideo   string    `json:"introVideo"` // embed URL, never a watch URL
	Published    bool      `json:"published"`
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Lesson represents a single lesson within a course.
type Lesson struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"videoUrl"`
	Duration  int       `json:"duration"` // minutes
	Position  int       `json:"position"`
	Published bool      `json:"published"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Quiz represents a quiz attached to a lesson.
type Quiz struct {
	ID        int64     `json:"id"`
	LessonID  int64     `json:"lessonId"`
	Title     string    `json:"title"`
	Questions int       `json:"questions"`
	PassMark  int       `json:"passMark"` // percent
	Published bool      `json:"published"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category groups courses in the catalog.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}
