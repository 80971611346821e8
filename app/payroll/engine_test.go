package payroll

import (
	"testing"
	"time"

	"github.com/masrooor/islamic-fees-hub/app/models"
)

func activeTeacher(salary float64) *models.Teacher {
	return &models.Teacher{
		ID:            "t1",
		Name:          "Ustad Kareem",
		MonthlySalary: salary,
		Status:        models.TeacherActive,
	}
}

func percentageLoan(id string, remaining, pct float64) *models.TeacherLoan {
	return &models.TeacherLoan{
		ID:                  id,
		TeacherID:           "t1",
		Amount:              remaining,
		Remaining:           remaining,
		Status:              models.LoanActive,
		RepaymentType:       models.RepaymentPercentage,
		RepaymentPercentage: &pct,
	}
}

func customLoan(id string, remaining, monthly float64, issued time.Time) *models.TeacherLoan {
	return &models.TeacherLoan{
		ID:              id,
		TeacherID:       "t1",
		Amount:          remaining,
		Remaining:       remaining,
		DateIssued:      issued,
		Status:          models.LoanActive,
		RepaymentType:   models.RepaymentCustomAmount,
		RepaymentAmount: &monthly,
	}
}

func specificMonthLoan(id string, remaining float64, due string) *models.TeacherLoan {
	return &models.TeacherLoan{
		ID:             id,
		TeacherID:      "t1",
		Amount:         remaining,
		Remaining:      remaining,
		Status:         models.LoanActive,
		RepaymentType:  models.RepaymentSpecificMonth,
		RepaymentMonth: &due,
	}
}

func TestComputeExpectedPay(t *testing.T) {
	may := Month("2025-05")

	tests := []struct {
		name         string
		teacher      *models.Teacher
		month        Month
		loans        []*models.TeacherLoan
		advances     []*models.TeacherAdvance
		prior        []*models.TeacherSalary
		override     float64
		wantLoanDed  float64
		wantAdvDed   float64
		wantExpected float64
		wantPending  float64
		wantStatus   PayStatus
		wantNegative bool
	}{
		{
			name:         "no loans no advances",
			teacher:      activeTeacher(50000),
			month:        may,
			wantExpected: 50000,
			wantPending:  50000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "percentage loan deducts share of base salary",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{percentageLoan("l1", 100000, 10)},
			wantLoanDed:  5000,
			wantExpected: 45000,
			wantPending:  45000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "percentage candidate clamps to remaining balance",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{percentageLoan("l1", 3000, 10)},
			wantLoanDed:  3000,
			wantExpected: 47000,
			wantPending:  47000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "specific month loan before its due month",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{specificMonthLoan("l1", 20000, "2025-06")},
			wantExpected: 50000,
			wantPending:  50000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "specific month loan in its due month takes full remaining",
			teacher:      activeTeacher(50000),
			month:        Month("2025-06"),
			loans:        []*models.TeacherLoan{specificMonthLoan("l1", 20000, "2025-06")},
			wantLoanDed:  20000,
			wantExpected: 30000,
			wantPending:  30000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:    "advance offsets its target month only",
			teacher: activeTeacher(30000),
			month:   Month("2025-04"),
			advances: []*models.TeacherAdvance{
				{TeacherID: "t1", Month: "2025-04", Amount: 5000},
				{TeacherID: "t1", Month: "2025-05", Amount: 9999},
			},
			wantAdvDed:   5000,
			wantExpected: 25000,
			wantPending:  25000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:    "multiple loans sum independently with no shared cap",
			teacher: activeTeacher(50000),
			month:   may,
			loans: []*models.TeacherLoan{
				percentageLoan("l1", 100000, 10),
				percentageLoan("l2", 100000, 10),
				percentageLoan("l3", 100000, 10),
			},
			wantLoanDed:  15000,
			wantExpected: 35000,
			wantPending:  35000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "manual loan never auto-deducts",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{{ID: "l1", Remaining: 40000, Status: models.LoanActive, RepaymentType: models.RepaymentManual}},
			wantExpected: 50000,
			wantPending:  50000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:         "paid loan contributes zero even with stale remaining",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{{ID: "l1", Remaining: 40000, Status: models.LoanPaid, RepaymentType: models.RepaymentCustomAmount}},
			wantExpected: 50000,
			wantPending:  50000,
			wantStatus:   StatusUnpaid,
		},
		{
			name:    "partial payments sum into already paid",
			teacher: activeTeacher(50000),
			month:   may,
			prior: []*models.TeacherSalary{
				{TeacherID: "t1", Month: "2025-05", NetPaid: 20000},
				{TeacherID: "t1", Month: "2025-05", NetPaid: 10000},
				{TeacherID: "t1", Month: "2025-04", NetPaid: 50000},
			},
			wantExpected: 50000,
			wantPending:  20000,
			wantStatus:   StatusPartial,
		},
		{
			name:    "fully paid month",
			teacher: activeTeacher(50000),
			month:   may,
			prior: []*models.TeacherSalary{
				{TeacherID: "t1", Month: "2025-05", NetPaid: 50000},
			},
			wantExpected: 50000,
			wantPending:  0,
			wantStatus:   StatusPaid,
		},
		{
			name:    "deductions exceeding salary flag anomaly without clamping",
			teacher: activeTeacher(50000),
			month:   may,
			loans: []*models.TeacherLoan{
				percentageLoan("l1", 200000, 60),
				percentageLoan("l2", 200000, 60),
			},
			wantLoanDed:  60000,
			wantExpected: -10000,
			wantPending:  0,
			wantStatus:   StatusUnpaid,
			wantNegative: true,
		},
		{
			name:         "fully deducted month with no disbursement stays unpaid",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{percentageLoan("l1", 200000, 100)},
			wantLoanDed:  50000,
			wantExpected: 0,
			wantPending:  0,
			wantStatus:   StatusUnpaid,
		},
		{
			name:    "negative expected turns paid once money goes out",
			teacher: activeTeacher(50000),
			month:   may,
			loans: []*models.TeacherLoan{
				percentageLoan("l1", 200000, 60),
				percentageLoan("l2", 200000, 60),
			},
			prior: []*models.TeacherSalary{
				{TeacherID: "t1", Month: "2025-05", NetPaid: 1000},
			},
			wantLoanDed:  60000,
			wantExpected: -10000,
			wantPending:  0,
			wantStatus:   StatusPaid,
			wantNegative: true,
		},
		{
			name:         "base override replaces salary for this run only",
			teacher:      activeTeacher(50000),
			month:        may,
			loans:        []*models.TeacherLoan{percentageLoan("l1", 100000, 10)},
			override:     40000,
			wantLoanDed:  4000,
			wantExpected: 36000,
			wantPending:  36000,
			wantStatus:   StatusUnpaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExpectedPay(tt.teacher, tt.month, tt.loans, tt.advances, tt.prior, tt.override)

			if got.LoanDeduction != tt.wantLoanDed {
				t.Errorf("LoanDeduction = %v, want %v", got.LoanDeduction, tt.wantLoanDed)
			}
			if got.AdvanceDeduction != tt.wantAdvDed {
				t.Errorf("AdvanceDeduction = %v, want %v", got.AdvanceDeduction, tt.wantAdvDed)
			}
			if got.ExpectedSalary != tt.wantExpected {
				t.Errorf("ExpectedSalary = %v, want %v", got.ExpectedSalary, tt.wantExpected)
			}
			if got.PendingAmount != tt.wantPending {
				t.Errorf("PendingAmount = %v, want %v", got.PendingAmount, tt.wantPending)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.NegativeExpected != tt.wantNegative {
				t.Errorf("NegativeExpected = %v, want %v", got.NegativeExpected, tt.wantNegative)
			}
		})
	}
}

func TestComputeExpectedPayIsDeterministic(t *testing.T) {
	teacher := activeTeacher(50000)
	loans := []*models.TeacherLoan{
		percentageLoan("l1", 100000, 10),
		customLoan("l2", 30000, 4000, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
	}
	advances := []*models.TeacherAdvance{{TeacherID: "t1", Month: "2025-05", Amount: 2000}}

	first := ComputeExpectedPay(teacher, "2025-05", loans, advances, nil, 0)
	second := ComputeExpectedPay(teacher, "2025-05", loans, advances, nil, 0)

	if first != second {
		t.Errorf("repeated computation differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
	// The computation must not touch the snapshot.
	if loans[0].Remaining != 100000 || loans[1].Remaining != 30000 {
		t.Errorf("snapshot mutated: remaining = %v, %v", loans[0].Remaining, loans[1].Remaining)
	}
}

func TestComputeExpectedPayInactiveTeacher(t *testing.T) {
	teacher := activeTeacher(50000)
	teacher.Status = models.TeacherInactive

	got := ComputeExpectedPay(teacher, "2025-05", nil, nil, nil, 0)
	if !got.InactiveTeacher {
		t.Error("InactiveTeacher = false, want true")
	}
	if got.ExpectedSalary != 50000 {
		t.Errorf("ExpectedSalary = %v, want informational 50000", got.ExpectedSalary)
	}
}

func TestApplyPayment(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("full budget clears candidate deductions", func(t *testing.T) {
		loans := []*models.TeacherLoan{
			customLoan("l1", 10000, 4000, jan),
			customLoan("l2", 20000, 6000, mar),
		}
		applied := ApplyPayment(loans, 10000)
		if applied != 10000 {
			t.Errorf("applied = %v, want 10000", applied)
		}
		if loans[0].Remaining != 0 || loans[0].Status != models.LoanPaid {
			t.Errorf("first loan remaining = %v status = %v, want 0/paid", loans[0].Remaining, loans[0].Status)
		}
		if loans[1].Remaining != 20000 || loans[1].Status != models.LoanActive {
			t.Errorf("second loan remaining = %v status = %v, want 20000/active", loans[1].Remaining, loans[1].Status)
		}
	})

	t.Run("reduced budget pays loans in issue order", func(t *testing.T) {
		first := customLoan("l1", 4000, 4000, jan)
		second := customLoan("l2", 20000, 6000, mar)
		// Slice order deliberately reversed; DateIssued decides.
		loans := []*models.TeacherLoan{second, first}

		applied := ApplyPayment(loans, 7000)
		if applied != 7000 {
			t.Errorf("applied = %v, want 7000", applied)
		}
		if first.Remaining != 0 || first.Status != models.LoanPaid {
			t.Errorf("oldest loan remaining = %v status = %v, want 0/paid", first.Remaining, first.Status)
		}
		if second.Remaining != 17000 || second.Status != models.LoanActive {
			t.Errorf("newer loan remaining = %v status = %v, want 17000/active", second.Remaining, second.Status)
		}
	})

	t.Run("ties on date issued break by id", func(t *testing.T) {
		a := customLoan("a", 5000, 1000, jan)
		b := customLoan("b", 5000, 1000, jan)
		loans := []*models.TeacherLoan{b, a}

		ApplyPayment(loans, 5000)
		if a.Remaining != 0 {
			t.Errorf("loan a remaining = %v, want 0", a.Remaining)
		}
		if b.Remaining != 5000 {
			t.Errorf("loan b remaining = %v, want 5000", b.Remaining)
		}
	})

	t.Run("budget larger than balances stops at zero", func(t *testing.T) {
		loans := []*models.TeacherLoan{customLoan("l1", 3000, 5000, jan)}
		applied := ApplyPayment(loans, 9000)
		if applied != 3000 {
			t.Errorf("applied = %v, want 3000", applied)
		}
		if loans[0].Remaining != 0 || loans[0].Status != models.LoanPaid {
			t.Errorf("remaining = %v status = %v, want 0/paid", loans[0].Remaining, loans[0].Status)
		}
	})

	t.Run("paid loans are never touched", func(t *testing.T) {
		paid := customLoan("l1", 2000, 1000, jan)
		paid.Status = models.LoanPaid
		loans := []*models.TeacherLoan{paid}

		applied := ApplyPayment(loans, 2000)
		if applied != 0 {
			t.Errorf("applied = %v, want 0", applied)
		}
		if paid.Remaining != 2000 {
			t.Errorf("remaining = %v, want untouched 2000", paid.Remaining)
		}
	})

	t.Run("zero budget leaves everything unchanged", func(t *testing.T) {
		loans := []*models.TeacherLoan{customLoan("l1", 3000, 1000, jan)}
		if applied := ApplyPayment(loans, 0); applied != 0 {
			t.Errorf("applied = %v, want 0", applied)
		}
		if loans[0].Remaining != 3000 || loans[0].Status != models.LoanActive {
			t.Errorf("loan changed: remaining = %v status = %v", loans[0].Remaining, loans[0].Status)
		}
	})
}

// Remaining balances stay within [0, amount] and status matches the balance
// after every application.
func TestApplyPaymentInvariants(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	budgets := []float64{0, 1500, 4000, 7000, 100000}

	for _, budget := range budgets {
		loans := []*models.TeacherLoan{
			customLoan("l1", 4000, 4000, jan),
			customLoan("l2", 3000, 1000, jan.AddDate(0, 1, 0)),
		}
		ApplyPayment(loans, budget)

		for _, loan := range loans {
			if loan.Remaining < 0 || loan.Remaining > loan.Amount {
				t.Errorf("budget %v: loan %s remaining %v outside [0, %v]",
					budget, loan.ID, loan.Remaining, loan.Amount)
			}
			if (loan.Status == models.LoanPaid) != (loan.Remaining == 0) {
				t.Errorf("budget %v: loan %s status %v with remaining %v",
					budget, loan.ID, loan.Status, loan.Remaining)
			}
		}
	}
}
