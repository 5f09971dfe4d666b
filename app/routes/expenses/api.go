package expenses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type CreateExpenseRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,min=1"`
}

// CreateExpenseAPI records a new expense in PENDING status.
func CreateExpenseAPI(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	expense := &models.Expense{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}

	if err := database.CreateExpense(config.GetDB(), expense); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create expense")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    expense,
	})
}

// GetExpensesAPI lists expenses with search, filters and pagination.
func GetExpensesAPI(c *fiber.Ctx) error {
	filter := database.ExpenseFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 10),
	}

	expenses, total, err := database.ListExpenses(config.GetDB(), filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	return c.JSON(models.NewPagedResult(expenses, total, filter.Page, filter.Limit))
}

// GetExpenseByIDAPI returns a single expense.
func GetExpenseByIDAPI(c *fiber.Ctx) error {
	expense, err := database.GetExpenseByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch expense")
	}
	return c.JSON(fiber.Map{"success": true, "data": expense})
}

// UpdateExpenseAPI applies a partial update. Status changes must follow the
// approval workflow.
func UpdateExpenseAPI(c *fiber.Ctx) error {
	var patch models.ExpensePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	expense, err := database.UpdateExpense(config.GetDB(), c.Params("id"), &patch)
	if err != nil {
		var invalid *models.InvalidTransitionError
		if errors.As(err, &invalid) {
			return fiber.NewError(fiber.StatusBadRequest, invalid.Error())
		}
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update expense")
	}

	return c.JSON(fiber.Map{"success": true, "data": expense})
}

// DeleteExpenseAPI removes an expense.
func DeleteExpenseAPI(c *fiber.Ctx) error {
	if err := database.DeleteExpense(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete expense")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Expense deleted successfully"})
}

// GetExpenseCategoriesAPI lists the distinct categories in use.
func GetExpenseCategoriesAPI(c *fiber.Ctx) error {
	categories, err := database.GetExpenseCategories(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// GetExpenseStatsAPI returns expense counts and totals by status and
// category.
func GetExpenseStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetExpenseStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch expense stats")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
