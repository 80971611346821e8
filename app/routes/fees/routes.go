package fees

import "github.com/gofiber/fiber/v2"

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Get("/structures", GetFeeStructuresAPI)
	api.Post("/structures", UpsertFeeStructureAPI)
	api.Delete("/structures/:id", DeleteFeeStructureAPI)
}
