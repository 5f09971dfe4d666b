package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base error for missing records. Entity-specific
// sentinels wrap it so handlers can match with errors.Is.
var ErrNotFound = errors.New("not found")

var (
	ErrFeeStructureNotFound = fmt.Errorf("fee structure %w", ErrNotFound)
	ErrStudentFeeNotFound   = fmt.Errorf("student fee %w", ErrNotFound)
	ErrPaymentNotFound      = fmt.Errorf("payment %w", ErrNotFound)
	ErrExpenseNotFound      = fmt.Errorf("expense %w", ErrNotFound)
	ErrStudentNotFound      = fmt.Errorf("student %w", ErrNotFound)
	ErrStaffNotFound        = fmt.Errorf("staff member %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
)

// ErrUnauthorized is returned when the auth verifier rejects a request.
var ErrUnauthorized = errors.New("unauthorized")

// DuplicateAssignmentError is returned when a fee is assigned to a student
// who already has it for the same academic year and semester.
type DuplicateAssignmentError struct {
	StudentID      string
	FeeStructureID string
	AcademicYear   string
	Semester       Semester
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("student %s already has this fee for %s %s",
		e.StudentID, e.AcademicYear, e.Semester)
}

// BalanceExceededError is returned when a payment amount exceeds the
// remaining balance on a fee beyond the allowed tolerance.
type BalanceExceededError struct {
	Amount  int64
	Balance int64
}

func (e *BalanceExceededError) Error() string {
	return fmt.Sprintf("payment amount (%d) exceeds remaining balance (%d), maximum allowed: %d",
		e.Amount, e.Balance, e.Balance+PaymentTolerance)
}

// InvalidTransitionError is returned when an expense status change does not
// follow the approval workflow.
type InvalidTransitionError struct {
	From ExpenseStatus
	To   ExpenseStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("expense status cannot change from %s to %s", e.From, e.To)
}
