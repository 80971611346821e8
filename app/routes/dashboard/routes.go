package dashboard

import "github.com/gofiber/fiber/v2"

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Get("/stats", GetStatsAPI)
}
