package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/payroll"
)

// GetStatsAPI returns the headline numbers for the admin dashboard, scoped
// to a fee month (defaults to the current one).
func GetStatsAPI(c *fiber.Ctx) error {
	month, err := payroll.ParseMonth(c.Query("month", payroll.MonthOf(time.Now()).String()))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month. Use YYYY-MM")
	}

	stats, err := database.GetDashboardStats(config.GetDB(), month.String())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute dashboard stats")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"month":   month,
		"stats":   stats,
	})
}
