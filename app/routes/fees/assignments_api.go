package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type AssignFeeRequest struct {
	StudentID      string            `json:"student_id" validate:"required"`
	FeeStructureID string            `json:"fee_structure_id" validate:"required"`
	AmountDue      int64             `json:"amount_due" validate:"required,min=1"`
	DueDate        models.CustomDate `json:"due_date" validate:"required"`
	AcademicYear   string            `json:"academic_year" validate:"required"`
	Semester       models.Semester   `json:"semester" validate:"required,oneof=SEMESTER_1 SEMESTER_2 SEMESTER_3"`
}

// AssignFeeToStudentAPI creates a single fee assignment. The amount is
// snapshotted on the row, so later edits to the fee structure do not move
// existing balances.
func AssignFeeToStudentAPI(c *fiber.Ctx) error {
	var req AssignFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fee := &models.StudentFee{
		StudentID:      req.StudentID,
		FeeStructureID: req.FeeStructureID,
		AmountDue:      req.AmountDue,
		DueDate:        req.DueDate.Time,
		AcademicYear:   req.AcademicYear,
		Semester:       req.Semester,
	}

	if err := database.AssignFeeToStudent(config.GetDB(), fee); err != nil {
		var dup *models.DuplicateAssignmentError
		if errors.As(err, &dup) {
			return fiber.NewError(fiber.StatusConflict, dup.Error())
		}
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student or fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign fee")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fee,
	})
}

type BulkAssignFeeRequest struct {
	FeeStructureID string            `json:"fee_structure_id" validate:"required"`
	StudentIDs     []string          `json:"student_ids" validate:"required,min=1"`
	DueDate        models.CustomDate `json:"due_date" validate:"required"`
	AcademicYear   string            `json:"academic_year" validate:"required"`
	Semester       models.Semester   `json:"semester" validate:"required,oneof=SEMESTER_1 SEMESTER_2 SEMESTER_3"`
}

// BulkAssignFeeAPI assigns one fee structure to many students at once.
// Students who already hold the assignment are skipped, not failed.
func BulkAssignFeeAPI(c *fiber.Ctx) error {
	var req BulkAssignFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := database.BulkAssignFee(config.GetDB(),
		req.FeeStructureID, req.StudentIDs, req.DueDate.Time, req.AcademicYear, req.Semester)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign fees")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"created": created,
		"skipped": len(req.StudentIDs) - created,
	})
}

// GetStudentFeesAPI lists fee assignments with filters and pagination.
func GetStudentFeesAPI(c *fiber.Ctx) error {
	filter := database.StudentFeeFilter{
		StudentID:    c.Query("student_id"),
		Status:       c.Query("status"),
		AcademicYear: c.Query("academic_year"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 10),
	}

	fees, total, err := database.ListStudentFees(config.GetDB(), filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student fees")
	}

	return c.JSON(models.NewPagedResult(fees, total, filter.Page, filter.Limit))
}

// GetStudentFeeByIDAPI returns a single fee assignment.
func GetStudentFeeByIDAPI(c *fiber.Ctx) error {
	fee, err := database.GetStudentFeeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student fee")
	}
	return c.JSON(fiber.Map{"success": true, "data": fee})
}

// GetStudentFeeSummaryAPI returns every assignment for one student plus the
// aggregate totals used on the student statement.
func GetStudentFeeSummaryAPI(c *fiber.Ctx) error {
	summary, err := database.GetStudentFeeSummary(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee summary")
	}
	return c.JSON(fiber.Map{"success": true, "data": summary})
}
