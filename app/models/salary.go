package models

import "time"

// TeacherSalary is one salary disbursement. Rows are append-only: partial
// payments in the same month create additional rows, and "paid so far" for a
// month is the sum of NetPaid across them.
//
// AdvanceDeduction is stored separately from LoanDeduction so the ledger
// keeps the two kinds of withholding distinguishable.
type TeacherSalary struct {
	ID               string      `json:"id"`
	TeacherID        string      `json:"teacher_id"`
	Month            string      `json:"month"`
	BaseSalary       float64     `json:"base_salary"`
	LoanDeduction    float64     `json:"loan_deduction"`
	AdvanceDeduction float64     `json:"advance_deduction"`
	OtherDeduction   float64     `json:"other_deduction"`
	NetPaid          float64     `json:"net_paid"`
	CustomAmount     float64     `json:"custom_amount"`
	DatePaid         time.Time   `json:"date_paid"`
	PaymentMode      PaymentMode `json:"payment_mode"`
	Notes            string      `json:"notes"`
	ReceiptURL       string      `json:"receipt_url"`
	ProofImageURL    string      `json:"proof_image_url"`
	CreatedAt        time.Time   `json:"created_at"`
}
