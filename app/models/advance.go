package models

import "time"

// TeacherAdvance is salary handed out ahead of payday. Month is the fee-month
// the advance offsets, not the date it was given. An advance reduces the
// payable amount for that month once; it is never decremented by later
// payroll runs.
type TeacherAdvance struct {
	ID          string      `json:"id"`
	TeacherID   string      `json:"teacher_id" validate:"required,uuid"`
	Month       string      `json:"month" validate:"required"`
	Amount      float64     `json:"amount" validate:"gt=0"`
	DateGiven   time.Time   `json:"date_given"`
	PaymentMode PaymentMode `json:"payment_mode"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}
