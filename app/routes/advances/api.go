package advances

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

type createAdvanceRequest struct {
	TeacherID   string  `json:"teacher_id" validate:"required,uuid"`
	Month       string  `json:"month" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DateGiven   string  `json:"date_given"`
	PaymentMode string  `json:"payment_mode" validate:"omitempty,oneof=cash online"`
	Notes       string  `json:"notes"`
}

func GetAdvancesAPI(c *fiber.Ctx) error {
	month := c.Query("month")
	if month != "" {
		if _, err := payroll.ParseMonth(month); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
		}
	}
	advances, err := database.GetAdvances(config.GetDB(), c.Query("teacher_id"), month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advances")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"advances": advances,
		"count":    len(advances),
	})
}

func CreateAdvanceAPI(c *fiber.Ctx) error {
	var req createAdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if _, err := payroll.ParseMonth(req.Month); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
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
		return fiber.NewError(fiber.StatusBadRequest, "Cannot issue an advance to an inactive teacher")
	}

	advance := &models.TeacherAdvance{
		TeacherID:   req.TeacherID,
		Month:       req.Month,
		Amount:      req.Amount,
		DateGiven:   time.Now(),
		PaymentMode: models.PaymentMode(req.PaymentMode),
		Notes:       req.Notes,
	}
	if req.DateGiven != "" {
		given, err := time.Parse("2006-01-02", req.DateGiven)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date_given. Use YYYY-MM-DD")
		}
		advance.DateGiven = given
	}

	if err := database.CreateAdvance(db, advance); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create advance")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "advance": advance})
}

func DeleteAdvanceAPI(c *fiber.Ctx) error {
	if err := database.DeleteAdvance(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Advance not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete advance")
	}
	return c.JSON(fiber.Map{"success": true})
}
