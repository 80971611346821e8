package loans

import "github.com/gofiber/fiber/v2"

func SetupLoansRoutes(app *fiber.App) {
	api := app.Group("/api/loans")
	api.Get("/", GetLoansAPI)
	api.Post("/", CreateLoanAPI)
	api.Get("/:id", GetLoanAPI)
	api.Put("/:id/balance", UpdateLoanBalanceAPI)
}
