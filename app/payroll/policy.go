package payroll

import "github.com/masrooor/islamic-fees-hub/app/models"

// RepaymentPolicy computes the candidate deduction a loan claims from one pay
// run. One implementation exists per repayment type; each carries only the
// fields its type needs. Candidates are computed before clamping - the engine
// caps every candidate at the loan's remaining balance.
type RepaymentPolicy interface {
	// Candidate returns the amount this policy wants to deduct for
	// targetMonth from a run with the given base salary, given the loan's
	// current remaining balance.
	Candidate(baseSalary, remaining float64, targetMonth Month) float64
}

// PercentagePolicy deducts a share of the month's base salary (not of the
// remaining balance) on every run.
type PercentagePolicy struct {
	Percent float64
}

func (p PercentagePolicy) Candidate(baseSalary, _ float64, _ Month) float64 {
	return baseSalary * p.Percent / 100
}

// FixedAmountPolicy deducts the same amount on every run.
type FixedAmountPolicy struct {
	Amount float64
}

func (p FixedAmountPolicy) Candidate(_, _ float64, _ Month) float64 {
	return p.Amount
}

// SpecificMonthPolicy recovers the whole remaining balance in one designated
// month and nothing in any other.
type SpecificMonthPolicy struct {
	Due Month
}

func (p SpecificMonthPolicy) Candidate(_, remaining float64, targetMonth Month) float64 {
	if p.Due == targetMonth {
		return remaining
	}
	return 0
}

// ManualPolicy never auto-deducts.
type ManualPolicy struct{}

func (ManualPolicy) Candidate(_, _ float64, _ Month) float64 {
	return 0
}

// PolicyOf maps a stored loan record onto its repayment policy. Records with
// an unknown type or missing policy fields degrade to manual, which deducts
// nothing rather than guessing.
func PolicyOf(loan *models.TeacherLoan) RepaymentPolicy {
	switch loan.RepaymentType {
	case models.RepaymentPercentage:
		if loan.RepaymentPercentage != nil {
			return PercentagePolicy{Percent: *loan.RepaymentPercentage}
		}
	case models.RepaymentCustomAmount:
		if loan.RepaymentAmount != nil {
			return FixedAmountPolicy{Amount: *loan.RepaymentAmount}
		}
	case models.RepaymentSpecificMonth:
		if loan.RepaymentMonth != nil {
			return SpecificMonthPolicy{Due: Month(*loan.RepaymentMonth)}
		}
	}
	return ManualPolicy{}
}
