package students

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

var validate = validator.New()

type studentRequest struct {
	StudentCode    string `json:"student_code"`
	Name           string `json:"name" validate:"required"`
	GuardianName   string `json:"guardian_name"`
	Contact        string `json:"contact"`
	ClassGrade     string `json:"class_grade" validate:"required"`
	EnrollmentDate string `json:"enrollment_date"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetStudents(config.GetDB(),
		c.Query("class_grade"), c.Query("search"), c.Query("status") == "active")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return c.JSON(fiber.Map{"success": true, "student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	enrollment := time.Now()
	if req.EnrollmentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EnrollmentDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment_date. Use YYYY-MM-DD")
		}
		enrollment = parsed
	}

	student := &models.Student{
		StudentCode:    req.StudentCode,
		Name:           req.Name,
		GuardianName:   req.GuardianName,
		Contact:        req.Contact,
		ClassGrade:     req.ClassGrade,
		EnrollmentDate: enrollment,
		Status:         models.StudentStatus(req.Status),
	}
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student.Name = req.Name
	student.GuardianName = req.GuardianName
	student.Contact = req.Contact
	student.ClassGrade = req.ClassGrade
	if req.StudentCode != "" {
		student.StudentCode = req.StudentCode
	}
	if req.EnrollmentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EnrollmentDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment_date. Use YYYY-MM-DD")
		}
		student.EnrollmentDate = parsed
	}
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := database.UpdateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return c.JSON(fiber.Map{"success": true, "student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true})
}
