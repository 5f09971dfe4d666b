package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/routes/auth"
	"uniadmin/app/routes/dashboard"
	"uniadmin/app/routes/expenses"
	"uniadmin/app/routes/fees"
	"uniadmin/app/routes/payments"
	"uniadmin/app/routes/staff"
	"uniadmin/app/routes/students"
)

func main() {
	config.Load()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "UniAdmin",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	fees.SetupFeesRoutes(app)
	payments.SetupPaymentsRoutes(app)
	expenses.SetupExpensesRoutes(app)
	staff.SetupStaffRoutes(app)
	students.SetupStudentsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

// errorHandler turns every unhandled error into a JSON envelope, keeping the
// fiber.Error status when one was set.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
