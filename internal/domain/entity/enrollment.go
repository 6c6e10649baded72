package entity

import "time"

// Enrollment links a student to a course together with its payment state.
// DueAmount is always TotalAmount - PaidAmount; the admin client computes it
// when submitting an enrollment so the operator never types it.
type Enrollment struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	CourseID    int64     `json:"courseId"`
	BatchName   string    `json:"batchName"`
	TotalAmount int64     `json:"totalAmount"`
	PaidAmount  int64     `json:"paidAmount"`
	DueAmount   int64     `json:"dueAmount"`
	Status      string    `json:"status"` // active, completed, cancelled
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AttendanceStatus is the per-session presence state of a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance is one student's presence record for one class session.
type Attendance struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"studentId"`
	CourseID  int64            `json:"courseId"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	IsDeleted bool             `json:"isDeleted"`
	CreatedAt time.Time        `json:"createdAt"`
}
