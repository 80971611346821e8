package teachers

import "github.com/gofiber/fiber/v2"

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Get("/", GetTeachersAPI)
	api.Post("/", CreateTeacherAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Get("/:id/summary", GetTeacherSummaryAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}
