package expenses

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupExpensesRoutes(app *fiber.App) {
	api := app.Group("/api/expenses", auth.AuthMiddleware)
	api.Get("/", GetExpensesAPI)
	api.Post("/", CreateExpenseAPI)
	api.Get("/categories", GetExpenseCategoriesAPI)
	api.Get("/stats", GetExpenseStatsAPI)
	api.Get("/:id", GetExpenseByIDAPI)
	api.Put("/:id", UpdateExpenseAPI)
	api.Delete("/:id", DeleteExpenseAPI)
}
