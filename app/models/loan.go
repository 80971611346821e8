package models

import "time"

// TeacherLoan represents money lent to a teacher, recovered against salary
// according to its repayment type. Remaining starts at Amount and only ever
// decreases; the loan turns paid when it reaches zero.
type TeacherLoan struct {
	ID                  string        `json:"id"`
	TeacherID           string        `json:"teacher_id" validate:"required,uuid"`
	Amount              float64       `json:"amount" validate:"gt=0"`
	Remaining           float64       `json:"remaining"`
	DateIssued          time.Time     `json:"date_issued"`
	Notes               string        `json:"notes"`
	Status              LoanStatus    `json:"status"`
	RepaymentType       RepaymentType `json:"repayment_type"`
	RepaymentMonth      *string       `json:"repayment_month,omitempty"`
	RepaymentPercentage *float64      `json:"repayment_percentage,omitempty"`
	RepaymentAmount     *float64      `json:"repayment_amount,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}
