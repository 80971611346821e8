package salaries

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/models"
	"github.com/masrooor/islamic-fees-hub/app/payroll"
)

var validate = validator.New()

func GetSalariesAPI(c *fiber.Ctx) error {
	month := c.Query("month")
	if month != "" {
		if _, err := payroll.ParseMonth(month); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
		}
	}
	salaries, err := database.GetSalaries(config.GetDB(), c.Query("teacher_id"), month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch salaries")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"salaries": salaries,
		"count":    len(salaries),
	})
}

// pendingEntry is one row of the pending-salary table: the engine's breakdown
// plus the payoff projection shown beside it.
type pendingEntry struct {
	Teacher        *models.Teacher        `json:"teacher"`
	Breakdown      payroll.PayBreakdown   `json:"breakdown"`
	PayoffEstimate payroll.PayoffEstimate `json:"payoff_estimate"`
}

// GetPendingSalariesAPI computes the expected pay for every active teacher in
// the requested month and returns those not fully paid yet. Results with a
// negative expected salary are included as-is so misconfigured loans stay
// visible.
func GetPendingSalariesAPI(c *fiber.Ctx) error {
	month, err := payroll.ParseMonth(c.Query("month", payroll.MonthOf(time.Now()).String()))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
	}

	db := config.GetDB()
	teachers, err := database.GetAllTeachers(db, true)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	now := time.Now()
	var pending []pendingEntry
	var totalPending float64

	for _, teacher := range teachers {
		loans, err := database.GetActiveLoans(db, teacher.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
		}
		advancesForMonth, err := database.GetAdvances(db, teacher.ID, month.String())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advances")
		}
		prior, err := database.GetSalariesForMonth(db, teacher.ID, month.String())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch salary records")
		}

		breakdown := payroll.ComputeExpectedPay(teacher, month, loans, advancesForMonth, prior, 0)
		if breakdown.Status == payroll.StatusPaid {
			continue
		}

		pending = append(pending, pendingEntry{
			Teacher:        teacher,
			Breakdown:      breakdown,
			PayoffEstimate: payroll.SummarizePayoff(loans, teacher.MonthlySalary, now),
		})
		totalPending += breakdown.PendingAmount
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"month":         month,
		"pending":       pending,
		"count":         len(pending),
		"total_pending": totalPending,
	})
}

type paySalaryRequest struct {
	TeacherID      string  `json:"teacher_id" validate:"required,uuid"`
	Month          string  `json:"month" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	BaseOverride   float64 `json:"base_override" validate:"gte=0"`
	OtherDeduction float64 `json:"other_deduction" validate:"gte=0"`
	PaymentMode    string  `json:"payment_mode" validate:"omitempty,oneof=cash online"`
	Notes          string  `json:"notes"`
	ProofImageURL  string  `json:"proof_image_url"`
}

// realizedDeductions returns the deductions a disbursement row should carry.
// Loan and advance withholding happen once per month, on its first
// disbursement; follow-up partial payments record zero for both so summing
// the ledger's deduction columns never double-counts them.
func realizedDeductions(b payroll.PayBreakdown) (loanDeduction, advanceDeduction float64) {
	if b.AlreadyPaid > 0 {
		return 0, 0
	}
	return b.LoanDeduction, b.AdvanceDeduction
}

// PaySalaryAPI runs one salary disbursement: it recomputes the breakdown from
// a fresh snapshot, enforces the cannot-overpay rule at this boundary, applies
// the loan deduction across active loans and persists the salary record plus
// every changed loan balance in a single transaction.
func PaySalaryAPI(c *fiber.Ctx) error {
	var req paySalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	month, err := payroll.ParseMonth(req.Month)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
	}
	if models.PaymentMode(req.PaymentMode) == models.PaymentOnline && req.ProofImageURL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Payment proof is required for online payment")
	}

	db := config.GetDB()
	teacher, err := database.GetTeacherByID(db, req.TeacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	if !teacher.IsActive() {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot pay salary to an inactive teacher")
	}

	loans, err := database.GetActiveLoans(db, teacher.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
	}
	advancesForMonth, err := database.GetAdvances(db, teacher.ID, month.String())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advances")
	}
	prior, err := database.GetSalariesForMonth(db, teacher.ID, month.String())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch salary records")
	}

	breakdown := payroll.ComputeExpectedPay(teacher, month, loans, advancesForMonth, prior, req.BaseOverride)
	if req.Amount > breakdown.PendingAmount {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Maximum payable amount is %.0f (loan and advance deductions already applied)",
				breakdown.PendingAmount))
	}

	loanDeduction, advanceDeduction := realizedDeductions(breakdown)
	payroll.ApplyPayment(loans, loanDeduction)

	rec := &models.TeacherSalary{
		TeacherID:        teacher.ID,
		Month:            month.String(),
		BaseSalary:       breakdown.BaseSalary,
		LoanDeduction:    loanDeduction,
		AdvanceDeduction: advanceDeduction,
		OtherDeduction:   req.OtherDeduction,
		NetPaid:          req.Amount,
		DatePaid:         time.Now(),
		PaymentMode:      models.PaymentMode(req.PaymentMode),
		Notes:            req.Notes,
		ProofImageURL:    req.ProofImageURL,
	}
	if req.Amount != breakdown.PendingAmount {
		rec.CustomAmount = req.Amount
	}

	if err := database.RecordSalaryPayment(db, rec, loans); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record salary payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":           true,
		"salary":            rec,
		"breakdown":         breakdown,
		"negative_expected": breakdown.NegativeExpected,
	})
}
