package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
)

// GetFinancialPositionAPI returns the consolidated money-in vs money-out
// view: receivables, collections, outstanding balances and expenses.
func GetFinancialPositionAPI(c *fiber.Ctx) error {
	position, err := database.GetFinancialPosition(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch financial position")
	}
	return c.JSON(fiber.Map{"success": true, "data": position})
}

// GetRecentActivityAPI returns the dashboard activity feed built from recent
// payments and pending expenses.
func GetRecentActivityAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	activities, err := database.GetRecentActivity(config.GetDB(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch recent activity")
	}
	return c.JSON(fiber.Map{"success": true, "data": activities})
}

// GetOverviewAPI bundles every stat block into one response for the
// dashboard landing page.
func GetOverviewAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	position, err := database.GetFinancialPosition(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch overview")
	}
	feeStats, err := database.GetFeeStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch overview")
	}
	expenseStats, err := database.GetExpenseStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch overview")
	}
	staffStats, err := database.GetStaffStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch overview")
	}
	studentStats, err := database.GetStudentStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch overview")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"financial_position": position,
			"fees":               feeStats,
			"expenses":           expenseStats,
			"staff":              staffStats,
			"students":           studentStats,
		},
	})
}
