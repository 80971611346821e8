package loans

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/models"
	"github.com/masrooor/islamic-fees-hub/app/payroll"
)

var validate = validator.New()

type createLoanRequest struct {
	TeacherID           string  `json:"teacher_id" validate:"required,uuid"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
	DateIssued          string  `json:"date_issued"`
	Notes               string  `json:"notes"`
	RepaymentType       string  `json:"repayment_type" validate:"required,oneof=specific_month percentage custom_amount manual"`
	RepaymentMonth      string  `json:"repayment_month"`
	RepaymentPercentage float64 `json:"repayment_percentage"`
	RepaymentAmount     float64 `json:"repayment_amount"`
}

func GetLoansAPI(c *fiber.Ctx) error {
	status := models.LoanStatus(c.Query("status"))
	if status != "" && status != models.LoanActive && status != models.LoanPaid {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status. Must be 'active' or 'paid'")
	}
	loans, err := database.GetLoans(config.GetDB(), c.Query("teacher_id"), status)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"loans":   loans,
		"count":   len(loans),
	})
}

// GetLoanAPI returns a loan together with its advisory payoff projection.
func GetLoanAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	loan, err := database.GetLoanByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Loan not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loan")
	}

	var baseSalary float64
	if teacher, err := database.GetTeacherByID(db, loan.TeacherID); err == nil {
		baseSalary = teacher.MonthlySalary
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"loan":            loan,
		"payoff_estimate": payroll.EstimateLoanPayoff(loan, baseSalary, time.Now()),
	})
}

func CreateLoanAPI(c *fiber.Ctx) error {
	var req createLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	loan := &models.TeacherLoan{
		TeacherID:     req.TeacherID,
		Amount:        req.Amount,
		Notes:         req.Notes,
		RepaymentType: models.RepaymentType(req.RepaymentType),
		DateIssued:    time.Now(),
	}
	if req.DateIssued != "" {
		issued, err := time.Parse("2006-01-02", req.DateIssued)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date_issued. Use YYYY-MM-DD")
		}
		loan.DateIssued = issued
	}

	// Each repayment type requires exactly its own policy field; the others
	// stay null in storage.
	switch loan.RepaymentType {
	case models.RepaymentSpecificMonth:
		if _, err := payroll.ParseMonth(req.RepaymentMonth); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Select the return month (YYYY-MM)")
		}
		loan.RepaymentMonth = &req.RepaymentMonth
	case models.RepaymentPercentage:
		if req.RepaymentPercentage <= 0 || req.RepaymentPercentage > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Enter a valid percentage (1-100)")
		}
		loan.RepaymentPercentage = &req.RepaymentPercentage
	case models.RepaymentCustomAmount:
		if req.RepaymentAmount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Enter a valid monthly deduction amount")
		}
		loan.RepaymentAmount = &req.RepaymentAmount
	}

	db := config.GetDB()
	teacher, err := database.GetTeacherByID(db, loan.TeacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	if !teacher.IsActive() {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot issue a loan to an inactive teacher")
	}

	if err := database.CreateLoan(db, loan); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create loan")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "loan": loan})
}

// UpdateLoanBalanceAPI is the manual override write: an explicit
// administrative edit of a loan's remaining balance, the only way a manual
// loan is ever reduced.
func UpdateLoanBalanceAPI(c *fiber.Ctx) error {
	type balanceRequest struct {
		Remaining float64 `json:"remaining" validate:"gte=0"`
	}
	var req balanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	db := config.GetDB()
	loan, err := database.GetLoanByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Loan not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loan")
	}
	if req.Remaining > loan.Amount {
		return fiber.NewError(fiber.StatusBadRequest, "Remaining cannot exceed the loan principal")
	}

	if err := database.UpdateLoanBalance(db, loan.ID, req.Remaining); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update loan")
	}

	loan, err = database.GetLoanByID(db, loan.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loan")
	}
	return c.JSON(fiber.Map{"success": true, "loan": loan})
}
