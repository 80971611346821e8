package payments

import "github.com/gofiber/fiber/v2"

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Get("/", GetPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Get("/pending", GetPendingFeesAPI)
	api.Put("/:id/printed", MarkReceiptPrintedAPI)
}
