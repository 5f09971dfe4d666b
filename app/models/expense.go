package models

import "time"

// Expense represents a university expense. Expenses feed the financial
// aggregator as outflows but have no ledger coupling to student payments.
type Expense struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Category    string        `json:"category" gorm:"not null;index" validate:"required"`
	Description string        `json:"description" gorm:"not null;type:text" validate:"required"`
	Amount      int64         `json:"amount" gorm:"not null;type:bigint" validate:"required,min=1"`
	Status      ExpenseStatus `json:"status" gorm:"not null;default:'PENDING';type:varchar(20)"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// CanTransitionTo reports whether the approval workflow allows moving from
// status s to next. PENDING may be approved or rejected, APPROVED may be
// paid. Setting the same status again is a no-op and always allowed.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ExpensePending:
		return next == ExpenseApproved || next == ExpenseRejected
	case ExpenseApproved:
		return next == ExpensePaid
	default:
		return false
	}
}

// ExpensePatch carries a partial expense update.
type ExpensePatch struct {
	Category    *string        `json:"category" validate:"omitempty,min=1"`
	Description *string        `json:"description" validate:"omitempty,min=1"`
	Amount      *int64         `json:"amount" validate:"omitempty,min=1"`
	Status      *ExpenseStatus `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED PAID"`
}
