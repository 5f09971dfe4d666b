package staff

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type CreateStaffRequest struct {
	FullName   string             `json:"full_name" validate:"required,min=2"`
	Role       models.StaffRole   `json:"role" validate:"required,oneof=LECTURER SECURITY CLEANER ADMIN OTHER"`
	Department *string            `json:"department"`
	Salary     int64              `json:"salary" validate:"min=0"`
	DOB        *models.CustomDate `json:"dob"`
	StartDate  models.CustomDate  `json:"start_date" validate:"required"`
	Status     models.StaffStatus `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED EXITED"`
}

// CreateStaffAPI registers a new staff member.
func CreateStaffAPI(c *fiber.Ctx) error {
	var req CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	member := &models.Staff{
		FullName:   req.FullName,
		Role:       req.Role,
		Department: req.Department,
		Salary:     req.Salary,
		StartDate:  req.StartDate.Time,
		Status:     req.Status,
	}
	if req.DOB != nil {
		member.DOB = &req.DOB.Time
	}

	if err := database.CreateStaff(config.GetDB(), member); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create staff member")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    member,
	})
}

// GetStaffAPI lists all staff members.
func GetStaffAPI(c *fiber.Ctx) error {
	staff, err := database.ListStaff(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff")
	}
	return c.JSON(fiber.Map{"success": true, "data": staff})
}

// GetStaffByIDAPI returns a single staff member.
func GetStaffByIDAPI(c *fiber.Ctx) error {
	member, err := database.GetStaffByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff member")
	}
	return c.JSON(fiber.Map{"success": true, "data": member})
}

// UpdateStaffAPI applies a partial update. Department and date of birth can
// be cleared with an explicit null.
func UpdateStaffAPI(c *fiber.Ctx) error {
	var patch models.StaffPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	member, err := database.UpdateStaff(config.GetDB(), c.Params("id"), &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update staff member")
	}

	return c.JSON(fiber.Map{"success": true, "data": member})
}

// DeleteStaffAPI removes a staff member.
func DeleteStaffAPI(c *fiber.Ctx) error {
	if err := database.DeleteStaff(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete staff member")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Staff member deleted successfully"})
}

// GetStaffStatsAPI returns headcounts overall, active and by role.
func GetStaffStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStaffStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff stats")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
