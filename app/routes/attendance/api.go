package attendance

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
)

var validate = validator.New()

type attendanceRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Notes     string `json:"notes"`
}

func GetAttendanceAPI(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if q := c.Query("from"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from date. Use YYYY-MM-DD")
		}
		from = parsed
	}
	if q := c.Query("to"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to date. Use YYYY-MM-DD")
		}
		to = parsed
	}

	records, err := database.GetAttendance(config.GetDB(), c.Query("teacher_id"), from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": records,
		"count":      len(records),
	})
}

// CheckInAPI records the teacher's arrival for today. Checking in twice on
// the same day keeps the first time-in.
func CheckInAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
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
		return fiber.NewError(fiber.StatusBadRequest, "Cannot record attendance for an inactive teacher")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	record, err := database.CheckInTeacher(db, teacher.ID, today, now, req.Notes)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record check-in")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "attendance": record})
}

func CheckOutAPI(c *fiber.Ctx) error {
	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	record, err := database.CheckOutTeacher(config.GetDB(), req.TeacherID, today, now)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusBadRequest, "No check-in found for today")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record check-out")
	}
	return c.JSON(fiber.Map{"success": true, "attendance": record})
}
