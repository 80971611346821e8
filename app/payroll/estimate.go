package payroll

import (
	"math"
	"time"

	"github.com/masrooor/islamic-fees-hub/app/models"
)

// PayoffKind tells how a payoff estimate should be read.
type PayoffKind string

const (
	// PayoffCompleted means the loan balance is already zero.
	PayoffCompleted PayoffKind = "completed"
	// PayoffMonth means Month holds the projected payoff month.
	PayoffMonth PayoffKind = "month"
	// PayoffManual means no projection exists: the loan is manual or its
	// monthly rate is zero.
	PayoffManual PayoffKind = "manual"
)

// PayoffEstimate is an advisory projection of when a loan clears. It is
// display-only and never authoritative - actual payoff depends on the pay
// runs that really happen.
type PayoffEstimate struct {
	Kind  PayoffKind `json:"kind"`
	Month Month      `json:"month,omitempty"`
}

// EstimateLoanPayoff projects the payoff month for a single loan given the
// teacher's current base salary. A zero monthly rate falls back to manual
// instead of dividing by zero.
func EstimateLoanPayoff(loan *models.TeacherLoan, baseSalary float64, now time.Time) PayoffEstimate {
	if loan.Remaining <= 0 {
		return PayoffEstimate{Kind: PayoffCompleted}
	}

	switch policy := PolicyOf(loan).(type) {
	case SpecificMonthPolicy:
		return PayoffEstimate{Kind: PayoffMonth, Month: policy.Due}
	case PercentagePolicy, FixedAmountPolicy:
		rate := policy.Candidate(baseSalary, loan.Remaining, MonthOf(now))
		if rate <= 0 {
			return PayoffEstimate{Kind: PayoffManual}
		}
		monthsLeft := int(math.Ceil(loan.Remaining / rate))
		return PayoffEstimate{Kind: PayoffMonth, Month: MonthOf(now).AddMonths(monthsLeft)}
	}
	return PayoffEstimate{Kind: PayoffManual}
}

// SummarizePayoff projects a single completion month across all of a
// teacher's loans, the way the pending-salary table displays it: the pooled
// remaining balance divided by the pooled monthly rate of percentage and
// fixed-amount loans; when no loan contributes a rate, the latest
// specific-month deadline; otherwise manual.
func SummarizePayoff(loans []*models.TeacherLoan, baseSalary float64, now time.Time) PayoffEstimate {
	var totalRemaining, totalRate float64
	var latestDue Month

	active := 0
	for _, loan := range loans {
		if loan.Status != models.LoanActive {
			continue
		}
		active++
		totalRemaining += loan.Remaining

		switch policy := PolicyOf(loan).(type) {
		case SpecificMonthPolicy:
			if latestDue == "" || latestDue.Before(policy.Due) {
				latestDue = policy.Due
			}
		case PercentagePolicy, FixedAmountPolicy:
			totalRate += policy.Candidate(baseSalary, loan.Remaining, MonthOf(now))
		}
	}

	switch {
	case active == 0:
		return PayoffEstimate{Kind: PayoffManual}
	case totalRemaining <= 0:
		return PayoffEstimate{Kind: PayoffCompleted}
	case totalRate > 0:
		monthsLeft := int(math.Ceil(totalRemaining / totalRate))
		return PayoffEstimate{Kind: PayoffMonth, Month: MonthOf(now).AddMonths(monthsLeft)}
	case latestDue != "":
		return PayoffEstimate{Kind: PayoffMonth, Month: latestDue}
	}
	return PayoffEstimate{Kind: PayoffManual}
}
