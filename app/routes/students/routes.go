package students

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Get("/stats", GetStudentStatsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
