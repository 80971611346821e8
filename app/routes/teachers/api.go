package teachers

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

type teacherRequest struct {
	Name          string  `json:"name" validate:"required"`
	Contact       string  `json:"contact"`
	CNIC          string  `json:"cnic"`
	JoiningDate   string  `json:"joining_date"`
	MonthlySalary float64 `json:"monthly_salary" validate:"required,gt=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func GetTeachersAPI(c *fiber.Ctx) error {
	activeOnly := c.Query("status") == "active"
	teachers, err := database.GetAllTeachers(config.GetDB(), activeOnly)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	teacher, err := database.GetTeacherByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

// GetTeacherSummaryAPI returns a teacher with their loans, advances, salary
// history and a payoff projection across active loans.
func GetTeacherSummaryAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	teacher, err := database.GetTeacherByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	loans, err := database.GetLoans(db, teacher.ID, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
	}
	advances, err := database.GetAdvances(db, teacher.ID, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advances")
	}
	salaries, err := database.GetSalaries(db, teacher.ID, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch salaries")
	}

	var totalPaid, outstanding float64
	for _, s := range salaries {
		totalPaid += s.NetPaid
	}
	for _, l := range loans {
		if l.Status == models.LoanActive {
			outstanding += l.Remaining
		}
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"teacher":          teacher,
		"loans":            loans,
		"advances":         advances,
		"salaries":         salaries,
		"total_paid":       totalPaid,
		"loan_outstanding": outstanding,
		"payoff_estimate":  payroll.SummarizePayoff(loans, teacher.MonthlySalary, time.Now()),
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	joining := time.Now()
	if req.JoiningDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid joining_date. Use YYYY-MM-DD")
		}
		joining = parsed
	}

	teacher := &models.Teacher{
		Name:          req.Name,
		Contact:       req.Contact,
		CNIC:          req.CNIC,
		JoiningDate:   joining,
		MonthlySalary: req.MonthlySalary,
		Status:        models.TeacherStatus(req.Status),
	}
	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "teacher": teacher})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	teacher, err := database.GetTeacherByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	var req teacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	teacher.Name = req.Name
	teacher.Contact = req.Contact
	teacher.CNIC = req.CNIC
	teacher.MonthlySalary = req.MonthlySalary
	if req.JoiningDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid joining_date. Use YYYY-MM-DD")
		}
		teacher.JoiningDate = parsed
	}
	if req.Status != "" {
		teacher.Status = models.TeacherStatus(req.Status)
	}

	if err := database.UpdateTeacher(db, teacher); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	if err := database.DeleteTeacher(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return c.JSON(fiber.Map{"success": true})
}
