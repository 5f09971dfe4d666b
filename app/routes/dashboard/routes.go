package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/overview", GetOverviewAPI)
	api.Get("/financial-position", GetFinancialPositionAPI)
	api.Get("/recent-activity", GetRecentActivityAPI)
}
