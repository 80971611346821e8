package students

import "github.com/gofiber/fiber/v2"

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Get("/:id", GetStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
