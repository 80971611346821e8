package payroll

import (
	"testing"
	"time"

	"github.com/masrooor/islamic-fees-hub/app/models"
)

var estimateNow = time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

func TestEstimateLoanPayoff(t *testing.T) {
	zeroPct := 0.0

	tests := []struct {
		name      string
		loan      *models.TeacherLoan
		wantKind  PayoffKind
		wantMonth Month
	}{
		{
			name:     "cleared loan reports completed",
			loan:     &models.TeacherLoan{Remaining: 0, Status: models.LoanActive, RepaymentType: models.RepaymentCustomAmount},
			wantKind: PayoffCompleted,
		},
		{
			name:      "specific month projects its due month",
			loan:      specificMonthLoan("l1", 20000, "2025-09"),
			wantKind:  PayoffMonth,
			wantMonth: "2025-09",
		},
		{
			name:      "percentage projects ceil of remaining over rate",
			loan:      percentageLoan("l1", 12000, 10), // rate 5000 on 50k salary -> 3 months
			wantKind:  PayoffMonth,
			wantMonth: "2025-08",
		},
		{
			name: "fixed amount projects from monthly deduction",
			loan: customLoan("l1", 9000, 4000, estimateNow), // ceil(9000/4000) = 3
			wantKind:  PayoffMonth,
			wantMonth: "2025-08",
		},
		{
			name: "zero percentage falls back to manual instead of dividing",
			loan: &models.TeacherLoan{
				Remaining:           5000,
				Status:              models.LoanActive,
				RepaymentType:       models.RepaymentPercentage,
				RepaymentPercentage: &zeroPct,
			},
			wantKind: PayoffManual,
		},
		{
			name:     "manual loan has no projection",
			loan:     &models.TeacherLoan{Remaining: 5000, Status: models.LoanActive, RepaymentType: models.RepaymentManual},
			wantKind: PayoffManual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateLoanPayoff(tt.loan, 50000, estimateNow)
			if got.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if tt.wantKind == PayoffMonth && got.Month != tt.wantMonth {
				t.Errorf("Month = %v, want %v", got.Month, tt.wantMonth)
			}
		})
	}
}

func TestSummarizePayoff(t *testing.T) {
	t.Run("pooled rate wins over specific month deadlines", func(t *testing.T) {
		loans := []*models.TeacherLoan{
			percentageLoan("l1", 6000, 10),                 // rate 5000
			customLoan("l2", 4000, 5000, estimateNow),      // rate 5000
			specificMonthLoan("l3", 10000, "2030-01"),      // deadline ignored while a rate exists
		}
		// pooled remaining 20000 / pooled rate 10000 -> 2 months
		got := SummarizePayoff(loans, 50000, estimateNow)
		if got.Kind != PayoffMonth || got.Month != "2025-07" {
			t.Errorf("got %+v, want month 2025-07", got)
		}
	})

	t.Run("latest specific month deadline when no rate", func(t *testing.T) {
		loans := []*models.TeacherLoan{
			specificMonthLoan("l1", 10000, "2025-08"),
			specificMonthLoan("l2", 5000, "2026-01"),
		}
		got := SummarizePayoff(loans, 50000, estimateNow)
		if got.Kind != PayoffMonth || got.Month != "2026-01" {
			t.Errorf("got %+v, want month 2026-01", got)
		}
	})

	t.Run("only manual loans", func(t *testing.T) {
		loans := []*models.TeacherLoan{
			{Remaining: 5000, Status: models.LoanActive, RepaymentType: models.RepaymentManual},
		}
		if got := SummarizePayoff(loans, 50000, estimateNow); got.Kind != PayoffManual {
			t.Errorf("Kind = %v, want manual", got.Kind)
		}
	})

	t.Run("no active loans", func(t *testing.T) {
		paid := percentageLoan("l1", 0, 10)
		paid.Status = models.LoanPaid
		if got := SummarizePayoff([]*models.TeacherLoan{paid}, 50000, estimateNow); got.Kind != PayoffManual {
			t.Errorf("Kind = %v, want manual", got.Kind)
		}
	})
}

func TestPolicyOfDegradesToManual(t *testing.T) {
	// Records missing their policy field must deduct nothing.
	loans := []*models.TeacherLoan{
		{RepaymentType: models.RepaymentPercentage},
		{RepaymentType: models.RepaymentCustomAmount},
		{RepaymentType: models.RepaymentSpecificMonth},
		{RepaymentType: models.RepaymentType("bogus")},
	}
	for _, loan := range loans {
		if _, ok := PolicyOf(loan).(ManualPolicy); !ok {
			t.Errorf("PolicyOf(%s with nil fields) = %T, want ManualPolicy", loan.RepaymentType, PolicyOf(loan))
		}
	}
}
