// Package payroll computes teacher pay for a target month from a snapshot of
// loans, advances and prior disbursements, and applies realized payments
// against outstanding loan balances.
//
// Every function here is a pure computation over the snapshot it is handed:
// nothing is fetched, nothing is persisted. Callers fetch a consistent
// snapshot, compute, and write the results back; multi-row writes belong in
// one database transaction on the caller side.
package payroll

import (
	"sort"

	"github.com/masrooor/islamic-fees-hub/app/models"
)

// PayStatus classifies how much of the expected salary has been disbursed.
type PayStatus string

const (
	StatusUnpaid  PayStatus = "unpaid"
	StatusPartial PayStatus = "partial"
	StatusPaid    PayStatus = "paid"
)

// PayBreakdown is the result of one expected-pay computation.
//
// ExpectedSalary is intentionally not floored at zero: when deductions exceed
// base pay the negative value is surfaced through NegativeExpected so
// administrators can spot misconfigured loans instead of having the problem
// silently clamped away. PendingAmount is floored, since nothing can be owed
// below zero.
type PayBreakdown struct {
	TeacherID        string    `json:"teacher_id"`
	Month            Month     `json:"month"`
	BaseSalary       float64   `json:"base_salary"`
	LoanDeduction    float64   `json:"loan_deduction"`
	AdvanceDeduction float64   `json:"advance_deduction"`
	ExpectedSalary   float64   `json:"expected_salary"`
	AlreadyPaid      float64   `json:"already_paid"`
	PendingAmount    float64   `json:"pending_amount"`
	Status           PayStatus `json:"status"`

	// NegativeExpected flags a configuration anomaly: combined deductions
	// exceed the base salary.
	NegativeExpected bool `json:"negative_expected"`
	// InactiveTeacher flags that the result is informational only because
	// the teacher is not on active payroll.
	InactiveTeacher bool `json:"inactive_teacher"`
}

// ComputeExpectedPay computes the pay breakdown for teacher and targetMonth.
//
// activeLoans must be the teacher's loans with status active; paid loans
// contribute nothing even if passed in. advances must be the teacher's
// advances whose month equals targetMonth. priorRecords must be the existing
// salary rows for (teacher, targetMonth); their NetPaid sum is what has been
// disbursed so far. baseOverride, when positive, replaces the teacher's
// monthly salary for this computation only.
func ComputeExpectedPay(teacher *models.Teacher, targetMonth Month,
	activeLoans []*models.TeacherLoan, advances []*models.TeacherAdvance,
	priorRecords []*models.TeacherSalary, baseOverride float64) PayBreakdown {

	baseSalary := teacher.MonthlySalary
	if baseOverride > 0 {
		baseSalary = baseOverride
	}

	var loanDeduction float64
	for _, loan := range activeLoans {
		if loan.Status != models.LoanActive {
			continue
		}
		candidate := PolicyOf(loan).Candidate(baseSalary, loan.Remaining, targetMonth)
		// A loan can never be deducted beyond what remains on it.
		if candidate > loan.Remaining {
			candidate = loan.Remaining
		}
		if candidate > 0 {
			loanDeduction += candidate
		}
	}

	var advanceDeduction float64
	for _, adv := range advances {
		if Month(adv.Month) == targetMonth {
			advanceDeduction += adv.Amount
		}
	}

	var alreadyPaid float64
	for _, rec := range priorRecords {
		if Month(rec.Month) == targetMonth {
			alreadyPaid += rec.NetPaid
		}
	}

	expected := baseSalary - loanDeduction - advanceDeduction
	pending := expected - alreadyPaid
	if pending < 0 {
		pending = 0
	}

	// A month is only paid once money actually went out; a non-positive
	// expected salary with no disbursement stays unpaid so the anomaly keeps
	// showing up in pending views.
	status := StatusUnpaid
	switch {
	case alreadyPaid > 0 && alreadyPaid >= expected:
		status = StatusPaid
	case alreadyPaid > 0:
		status = StatusPartial
	}

	return PayBreakdown{
		TeacherID:        teacher.ID,
		Month:            targetMonth,
		BaseSalary:       baseSalary,
		LoanDeduction:    loanDeduction,
		AdvanceDeduction: advanceDeduction,
		ExpectedSalary:   expected,
		AlreadyPaid:      alreadyPaid,
		PendingAmount:    pending,
		Status:           status,
		NegativeExpected: expected < 0,
		InactiveTeacher:  !teacher.IsActive(),
	}
}

// ApplyPayment distributes a realized loan deduction across the teacher's
// active loans, mutating their Remaining balances in place, and returns the
// amount actually applied.
//
// Loans are processed in ascending (DateIssued, ID) order. The order is part
// of the contract: when the budget is smaller than the combined candidates it
// decides which loan is paid off first. A loan whose balance reaches zero
// turns paid permanently; loans the budget never reaches are left untouched.
func ApplyPayment(loans []*models.TeacherLoan, budget float64) float64 {
	ordered := make([]*models.TeacherLoan, 0, len(loans))
	for _, loan := range loans {
		if loan.Status == models.LoanActive {
			ordered = append(ordered, loan)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].DateIssued.Equal(ordered[j].DateIssued) {
			return ordered[i].DateIssued.Before(ordered[j].DateIssued)
		}
		return ordered[i].ID < ordered[j].ID
	})

	var applied float64
	for _, loan := range ordered {
		if budget <= 0 {
			break
		}
		deduct := budget
		if deduct > loan.Remaining {
			deduct = loan.Remaining
		}
		loan.Remaining -= deduct
		budget -= deduct
		applied += deduct
		if loan.Remaining == 0 {
			loan.Status = models.LoanPaid
		}
	}
	return applied
}
