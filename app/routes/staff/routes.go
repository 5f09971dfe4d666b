package staff

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	api := app.Group("/api/staff", auth.AuthMiddleware)
	api.Get("/", GetStaffAPI)
	api.Post("/", CreateStaffAPI)
	api.Get("/stats", GetStaffStatsAPI)
	api.Get("/:id", GetStaffByIDAPI)
	api.Put("/:id", UpdateStaffAPI)
	api.Delete("/:id", DeleteStaffAPI)
}
