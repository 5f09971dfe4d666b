package payments

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments", auth.AuthMiddleware)
	api.Get("/", GetPaymentsAPI)
	api.Post("/", RecordPaymentAPI)
	api.Get("/stats", GetPaymentStatsAPI)
	api.Get("/student/:studentId", GetStudentPaymentsAPI)
	api.Get("/:id", GetPaymentByIDAPI)
	api.Delete("/:id", DeletePaymentAPI)
}
