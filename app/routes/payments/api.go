package payments

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

type createPaymentRequest struct {
	StudentID   string  `json:"student_id" validate:"required,uuid"`
	FeeType     string  `json:"fee_type" validate:"required,oneof=tuition registration"`
	AmountPaid  float64 `json:"amount_paid" validate:"required,gt=0"`
	FeeMonth    string  `json:"fee_month" validate:"required"`
	Date        string  `json:"date"`
	PaymentMode string  `json:"payment_mode" validate:"omitempty,oneof=cash online"`
	Notes       string  `json:"notes"`
	CollectedBy string  `json:"collected_by"`
}

func GetPaymentsAPI(c *fiber.Ctx) error {
	feeMonth := c.Query("fee_month")
	if feeMonth != "" {
		if _, err := payroll.ParseMonth(feeMonth); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid fee_month. Use YYYY-MM")
		}
	}
	results, err := database.GetPayments(config.GetDB(), c.Query("student_id"), feeMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"payments": results,
		"count":    len(results),
	})
}

// CreatePaymentAPI records a student fee payment. The receipt number is
// issued server side and returned with the saved record.
func CreatePaymentAPI(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if _, err := payroll.ParseMonth(req.FeeMonth); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid fee_month. Use YYYY-MM")
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	payment := &models.Payment{
		StudentID:   student.ID,
		FeeType:     models.FeeType(req.FeeType),
		AmountPaid:  req.AmountPaid,
		Date:        time.Now(),
		FeeMonth:    req.FeeMonth,
		PaymentMode: models.PaymentMode(req.PaymentMode),
		Notes:       req.Notes,
		CollectedBy: req.CollectedBy,
	}
	if req.Date != "" {
		paidOn, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date. Use YYYY-MM-DD")
		}
		payment.Date = paidOn
	}

	if err := database.CreatePayment(db, payment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "payment": payment})
}

// GetPendingFeesAPI lists every active student's tuition position for a fee
// month, classified as paid, partial or unpaid.
func GetPendingFeesAPI(c *fiber.Ctx) error {
	month, err := payroll.ParseMonth(c.Query("month", payroll.MonthOf(time.Now()).String()))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
	}

	rows, err := database.GetPendingFees(config.GetDB(), month.String())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute pending fees")
	}

	var totalPending float64
	for _, row := range rows {
		totalPending += row.PendingAmount
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"month":         month,
		"students":      rows,
		"count":         len(rows),
		"total_pending": totalPending,
	})
}

func MarkReceiptPrintedAPI(c *fiber.Ctx) error {
	if err := database.MarkReceiptPrinted(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update receipt")
	}
	return c.JSON(fiber.Map{"success": true})
}
