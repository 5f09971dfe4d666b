package students

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type CreateStudentRequest struct {
	StudentNo string               `json:"student_no" validate:"required"`
	FullName  string               `json:"full_name" validate:"required,min=2"`
	Program   string               `json:"program" validate:"required"`
	Year      int                  `json:"year" validate:"required,min=1,max=7"`
	Status    models.StudentStatus `json:"status" validate:"omitempty,oneof=ACTIVE DEFERRED DROPPED"`
}

// CreateStudentAPI enrolls a new student.
func CreateStudentAPI(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		StudentNo: req.StudentNo,
		FullName:  req.FullName,
		Program:   req.Program,
		Year:      req.Year,
		Status:    req.Status,
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// GetStudentsAPI lists all students.
func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.ListStudents(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return c.JSON(fiber.Map{"success": true, "data": students})
}

// GetStudentByIDAPI returns a single student.
func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return c.JSON(fiber.Map{"success": true, "data": student})
}

// UpdateStudentAPI applies a partial update.
func UpdateStudentAPI(c *fiber.Ctx) error {
	var patch models.StudentPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := database.UpdateStudent(config.GetDB(), c.Params("id"), &patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{"success": true, "data": student})
}

// DeleteStudentAPI removes a student and cascades to their fee assignments.
func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Student deleted successfully"})
}

// GetStudentStatsAPI returns enrollment counts overall, active and by
// program.
func GetStudentStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student stats")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
