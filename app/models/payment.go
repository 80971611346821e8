package models

import "time"

// Payment is a student fee payment with its receipt.
type Payment struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"student_id" validate:"required,uuid"`
	FeeType        FeeType   `json:"fee_type" validate:"required,oneof=tuition registration"`
	AmountPaid     float64   `json:"amount_paid" validate:"gt=0"`
	Date           time.Time `json:"date"`
	FeeMonth       string    `json:"fee_month" validate:"required"`
	ReceiptNumber  string    `json:"receipt_number"`
	ReceiptPrinted bool      `json:"receipt_printed"`
	PaymentMode    PaymentMode `json:"payment_mode"`
	Notes          string    `json:"notes"`
	CollectedBy    string    `json:"collected_by"`
	CreatedAt      time.Time `json:"created_at"`
}
