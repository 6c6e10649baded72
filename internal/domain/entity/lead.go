package entity

import "time"

// Lead is a prospective student captured from the marketing site.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CourseID  int64     `json:"courseId"`
	Source    string    `json:"source"` // facebook, organic, referral...
	Status    string    `json:"status"` // new, contacted, converted, lost
	Note      string    `json:"note"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Review is a student's course review awaiting moderation.
type Review struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	StudentID int64     `json:"studentId"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
}
