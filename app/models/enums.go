package models

// TeacherStatus defines whether a teacher is part of active payroll runs.
type TeacherStatus string

const (
	TeacherActive   TeacherStatus = "active"
	TeacherInactive TeacherStatus = "inactive"
)

// LoanStatus defines the lifecycle state of a teacher loan.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanPaid   LoanStatus = "paid"
)

// RepaymentType selects how a loan is recovered from monthly salary.
type RepaymentType string

const (
	// RepaymentSpecificMonth recovers the full remaining balance in one
	// designated month.
	RepaymentSpecificMonth RepaymentType = "specific_month"
	// RepaymentPercentage deducts a percentage of the month's base salary
	// on every pay run.
	RepaymentPercentage RepaymentType = "percentage"
	// RepaymentCustomAmount deducts a fixed amount on every pay run.
	RepaymentCustomAmount RepaymentType = "custom_amount"
	// RepaymentManual is never auto-deducted; the balance only changes
	// through explicit administrative edits.
	RepaymentManual RepaymentType = "manual"
)

// PaymentMode defines how money changed hands.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "cash"
	PaymentOnline PaymentMode = "online"
)

// FeeType defines the kinds of student fees the school charges.
type FeeType string

const (
	FeeTuition      FeeType = "tuition"
	FeeRegistration FeeType = "registration"
)

// StudentStatus defines whether a student is currently enrolled.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)
