package forms

// EnrollmentForm captures an enrollment create or edit submission.
// The operator enters the total and paid amounts; the due amount is never
// typed, it is derived at submission time.
type EnrollmentForm struct {
	StudentID   int64 `validate:"required"`
	CourseID    int64 `validate:"required"`
	BatchName   string
	TotalAmount int64 `validate:"gte=0"`
	PaidAmount  int64 `validate:"gte=0,ltefield=TotalAmount"`
}

// enrollmentPayload is the wire shape, carrying the computed due amount.
type enrollmentPayload struct {
	StudentID   int64  `json:"studentId"`
	CourseID    int64  `json:"courseId"`
	BatchName   string `json:"batchName,omitempty"`
	TotalAmount int64  `json:"totalAmount"`
	PaidAmount  int64  `json:"paidAmount"`
	DueAmount   int64  `json:"dueAmount"`
}

// Validate checks the amounts and required references.
func (f EnrollmentForm) Validate() error {
	return validate.Struct(f)
}

// Body computes dueAmount = totalAmount - paidAmount and returns the JSON
// payload.
func (f EnrollmentForm) Body() (any, error) {
	return enrollmentPayload{
		StudentID:   f.StudentID,
		CourseID:    f.CourseID,
		BatchName:   f.BatchName,
		TotalAmount: f.TotalAmount,
		PaidAmount:  f.PaidAmount,
		DueAmount:   f.TotalAmount - f.PaidAmount,
	}, nil
}

// DueAmount returns the derived outstanding balance.
func (f EnrollmentForm) DueAmount() int64 {
	return f.TotalAmount - f.PaidAmount
}
