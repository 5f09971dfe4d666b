package fees

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	structures := app.Group("/api/fee-structures", auth.AuthMiddleware)
	structures.Get("/", GetFeeStructuresAPI)
	structures.Post("/", CreateFeeStructureAPI)
	structures.Get("/academic-years", GetAcademicYearsAPI)
	structures.Get("/stats", GetFeeStatsAPI)
	structures.Get("/:id", GetFeeStructureByIDAPI)
	structures.Put("/:id", UpdateFeeStructureAPI)
	structures.Delete("/:id", DeleteFeeStructureAPI)

	assignments := app.Group("/api/student-fees", auth.AuthMiddleware)
	assignments.Get("/", GetStudentFeesAPI)
	assignments.Post("/", AssignFeeToStudentAPI)
	assignments.Post("/bulk", BulkAssignFeeAPI)
	assignments.Get("/summary/:studentId", GetStudentFeeSummaryAPI)
	assignments.Get("/:id", GetStudentFeeByIDAPI)
}
