package attendance

import "github.com/gofiber/fiber/v2"

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Get("/", GetAttendanceAPI)
	api.Post("/check-in", CheckInAPI)
	api.Post("/check-out", CheckOutAPI)
}
