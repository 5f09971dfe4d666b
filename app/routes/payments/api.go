package payments

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"uniadmin/app/config"
	"uniadmin/app/database"
	"uniadmin/app/models"
	"uniadmin/app/validation"
)

type RecordPaymentRequest struct {
	StudentID     string               `json:"student_id" validate:"required"`
	StudentFeeID  *string              `json:"student_fee_id"`
	Amount        int64                `json:"amount" validate:"required,min=1"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=CASH BANK_TRANSFER MOBILE_MONEY CHEQUE CARD"`
	Reference     *string              `json:"reference"`
	ReceiptNo     *string              `json:"receipt_no"`
	Notes         *string              `json:"notes"`
}

// RecordPaymentAPI records a payment, applies it to the linked fee and
// allocates the next payment number, all atomically.
func RecordPaymentAPI(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment := &models.Payment{
		StudentID:     req.StudentID,
		StudentFeeID:  req.StudentFeeID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		ReceiptNo:     req.ReceiptNo,
		Notes:         req.Notes,
	}

	if err := database.RecordPayment(config.GetDB(), payment); err != nil {
		var exceeded *models.BalanceExceededError
		if errors.As(err, &exceeded) {
			return fiber.NewError(fiber.StatusBadRequest, exceeded.Error())
		}
		if errors.Is(err, models.ErrStudentFeeNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student fee not found")
		}
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// GetPaymentsAPI lists payments with search, filters and pagination.
func GetPaymentsAPI(c *fiber.Ctx) error {
	filter := database.PaymentFilter{
		Search:        c.Query("search"),
		StudentID:     c.Query("student_id"),
		PaymentMethod: c.Query("payment_method"),
		Page:          c.QueryInt("page", 1),
		Limit:         c.QueryInt("limit", 10),
	}

	payments, total, err := database.ListPayments(config.GetDB(), filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(models.NewPagedResult(payments, total, filter.Page, filter.Limit))
}

// GetPaymentByIDAPI returns a single payment.
func GetPaymentByIDAPI(c *fiber.Ctx) error {
	payment, err := database.GetPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}
	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// DeletePaymentAPI reverses a payment's effect on its linked fee and removes
// the record.
func DeletePaymentAPI(c *fiber.Ctx) error {
	if err := database.DeletePayment(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Payment deleted successfully"})
}

// GetStudentPaymentsAPI lists all payments made by one student.
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetStudentPayments(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student payments")
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}

// GetPaymentStatsAPI returns payment totals, method breakdown and recent
// receipts.
func GetPaymentStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetPaymentStats(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment stats")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
