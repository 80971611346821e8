package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/routes/advances"
	"github.com/masrooor/islamic-fees-hub/app/routes/attendance"
	"github.com/masrooor/islamic-fees-hub/app/routes/dashboard"
	"github.com/masrooor/islamic-fees-hub/app/routes/fees"
	"github.com/masrooor/islamic-fees-hub/app/routes/loans"
	"github.com/masrooor/islamic-fees-hub/app/routes/payments"
	"github.com/masrooor/islamic-fees-hub/app/routes/salaries"
	"github.com/masrooor/islamic-fees-hub/app/routes/students"
	"github.com/masrooor/islamic-fees-hub/app/routes/teachers"
	"github.com/masrooor/islamic-fees-hub/app/services"
)

// customErrorHandler renders every error as the standard JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Pakistan Standard Time
	loc, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Karachi location, falling back to UTC+5: %v", err)
		time.Local = time.FixedZone("PKT", 5*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB(), config.AppConfig.BackupDir)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Islamic Fees Hub",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup loans routes
	loans.SetupLoansRoutes(app)

	// Setup advances routes
	advances.SetupAdvancesRoutes(app)

	// Setup salaries routes
	salaries.SetupSalariesRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
