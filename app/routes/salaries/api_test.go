package salaries

import (
	"testing"

	"github.com/masrooor/islamic-fees-hub/app/payroll"
)

func TestRealizedDeductions(t *testing.T) {
	tests := []struct {
		name        string
		breakdown   payroll.PayBreakdown
		wantLoan    float64
		wantAdvance float64
	}{
		{
			name: "first disbursement carries both deductions",
			breakdown: payroll.PayBreakdown{
				LoanDeduction:    4000,
				AdvanceDeduction: 5000,
				AlreadyPaid:      0,
			},
			wantLoan:    4000,
			wantAdvance: 5000,
		},
		{
			name: "follow-up partial payment records zero for both",
			breakdown: payroll.PayBreakdown{
				LoanDeduction:    4000,
				AdvanceDeduction: 5000,
				AlreadyPaid:      20000,
			},
			wantLoan:    0,
			wantAdvance: 0,
		},
		{
			name: "no deductions to begin with",
			breakdown: payroll.PayBreakdown{
				AlreadyPaid: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan, advance := realizedDeductions(tt.breakdown)
			if loan != tt.wantLoan {
				t.Errorf("loan deduction = %v, want %v", loan, tt.wantLoan)
			}
			if advance != tt.wantAdvance {
				t.Errorf("advance deduction = %v, want %v", advance, tt.wantAdvance)
			}
		})
	}
}

// Two partial payments for the same month must withhold an advance exactly
// once: the sum of the rows' advance_deduction equals the month's advance.
func TestRealizedDeductionsSumAcrossPartialPayments(t *testing.T) {
	firstRun := payroll.PayBreakdown{LoanDeduction: 3000, AdvanceDeduction: 5000, AlreadyPaid: 0}
	secondRun := payroll.PayBreakdown{LoanDeduction: 3000, AdvanceDeduction: 5000, AlreadyPaid: 15000}

	l1, a1 := realizedDeductions(firstRun)
	l2, a2 := realizedDeductions(secondRun)

	if got := a1 + a2; got != 5000 {
		t.Errorf("summed advance deduction = %v, want 5000", got)
	}
	if got := l1 + l2; got != 3000 {
		t.Errorf("summed loan deduction = %v, want 3000", got)
	}
}
