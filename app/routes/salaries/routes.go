package salaries

import "github.com/gofiber/fiber/v2"

func SetupSalariesRoutes(app *fiber.App) {
	api := app.Group("/api/salaries")
	api.Get("/", GetSalariesAPI)
	api.Get("/pending", GetPendingSalariesAPI)
	api.Post("/pay", PaySalaryAPI)
}
