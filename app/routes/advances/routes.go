package advances

import "github.com/gofiber/fiber/v2"

func SetupAdvancesRoutes(app *fiber.App) {
	api := app.Group("/api/advances")
	api.Get("/", GetAdvancesAPI)
	api.Post("/", CreateAdvanceAPI)
	api.Delete("/:id", DeleteAdvanceAPI)
}
