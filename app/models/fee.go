package models

import "time"

// FeeStructure defines the scheduled fee amount for a class grade and fee
// type. One row per (class_grade, fee_type).
type FeeStructure struct {
	ID         string    `json:"id"`
	ClassGrade string    `json:"class_grade" validate:"required"`
	FeeType    FeeType   `json:"fee_type" validate:"required,oneof=tuition registration"`
	Amount     float64   `json:"amount" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`
}
