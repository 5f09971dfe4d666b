package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type CreateFeeStructureRequest struct {
	Name         string          `json:"name" validate:"required"`
	FeeType      models.FeeType  `json:"fee_type" validate:"required,oneof=TUITION ACCOMMODATION LIBRARY LABORATORY REGISTRATION EXAMINATION SCHOOL_TRIP SPORTS MEDICAL OTHER"`
	Amount       int64           `json:"amount" validate:"required,min=1"`
	Program      *string         `json:"program"`
	Year         *int            `json:"year"`
	Semester     models.Semester `json:"semester" validate:"required,oneof=SEMESTER_1 SEMESTER_2 SEMESTER_3"`
	AcademicYear string          `json:"academic_year" validate:"required"`
	Description  *string         `json:"description"`
	IsActive     *bool           `json:"is_active"`
}

// CreateFeeStructureAPI creates a new fee template.
func CreateFeeStructureAPI(c *fiber.Ctx) error {
	var req CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fs := &models.FeeStructure{
		Name:         req.Name,
		FeeType:      req.FeeType,
		Amount:       req.Amount,
		Program:      req.Program,
		Year:         req.Year,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		Description:  req.Description,
		IsActive:     true,
	}
	if req.IsActive != nil {
		fs.IsActive = *req.IsActive
	}

	if err := database.CreateFeeStructure(config.GetDB(), fs); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee structure")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fs,
	})
}

// GetFeeStructuresAPI lists fee templates with search, filters and
// pagination.
func GetFeeStructuresAPI(c *fiber.Ctx) error {
	filter := database.FeeStructureFilter{
		Search:       c.Query("search"),
		FeeType:      c.Query("fee_type"),
		AcademicYear: c.Query("academic_year"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 10),
	}
	if v := c.Query("is_active"); v != "" {
		isActive := v == "true"
		filter.IsActive = &isActive
	}

	structures, total, err := database.ListFeeStructures(config.GetDB(), filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structures")
	}

	return c.JSON(models.NewPagedResult(structures, total, filter.Page, filter.Limit))
}

// GetFeeStructureByIDAPI returns a single fee template.
func GetFeeStructureByIDAPI(c *fiber.Ctx) error {
	fs, err := database.GetFeeStructureByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structure")
	}
	return c.JSON(fiber.Map{"success": true, "data": fs})
}

// UpdateFeeStructureAPI applies a partial update. Fields omitted from the
// body are left untouched; program, year and description may be set to null
// to clear scoping.
func UpdateFeeStructureAPI(c *fiber.Ctx) error {
	var patch models.FeeStructurePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fs, err := database.UpdateFeeStructure(config.GetDB(), c.Params("id"), &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee structure")
	}

	return c.JSON(fiber.Map{"success": true, "data": fs})
}

// DeleteFeeStructureAPI deletes a fee template. Existing assignments keep
// their snapshotted amounts.
func DeleteFeeStructureAPI(c *fiber.Ctx) error {
	if err := database.DeleteFeeStructure(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee structure")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Fee structure deleted successfully"})
}

// GetAcademicYearsAPI lists the distinct academic years in the catalog.
func GetAcademicYearsAPI(c *fiber.Ctx) error {
	years, err := database.GetAcademicYears(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch academic years")
	}
	return c.JSON(fiber.Map{"success": true, "data": years})
}

// GetFeeStatsAPI returns fee collection statistics.
func GetFeeStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetFeeStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee stats")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
