package models

import "time"

// PaymentTolerance is the fixed allowance, in currency units, by which a
// payment may exceed the remaining balance to absorb rounding.
const PaymentTolerance = 100

// StudentFee binds a fee structure to a student for one academic year and
// semester. AmountDue is snapshotted at assignment time and is independent
// of later edits to the fee structure.
type StudentFee struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentID      string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeStructureID string    `json:"fee_structure_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AmountDue      int64     `json:"amount_due" gorm:"not null;type:bigint" validate:"required,min=1"`
	AmountPaid     int64     `json:"amount_paid" gorm:"not null;default:0;type:bigint" validate:"min=0"`
	Balance        int64     `json:"balance" gorm:"not null;type:bigint"`
	Status         FeeStatus `json:"status" gorm:"not null;default:'PENDING';type:varchar(20)"`
	DueDate        time.Time `json:"due_date" gorm:"not null;type:date"`
	AcademicYear   string    `json:"academic_year" gorm:"not null" validate:"required"`
	Semester       Semester  `json:"semester" gorm:"not null;type:varchar(20)" validate:"required"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student      *Student      `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	FeeStructure *FeeStructure `json:"fee_structure,omitempty" gorm:"foreignKey:FeeStructureID;references:ID"`
}

// DeriveFeeStatus computes the fee status from the amounts. It is the single
// source of truth for the status state machine and is used identically when
// applying and when reversing payments.
func DeriveFeeStatus(amountPaid, amountDue int64) FeeStatus {
	balance := amountDue - amountPaid
	switch {
	case balance <= 0:
		return FeePaid
	case amountPaid > 0:
		return FeePartial
	default:
		return FeePending
	}
}

// ClampBalance returns the remaining balance, floored at zero so a payment
// within tolerance never produces a negative balance.
func ClampBalance(amountDue, amountPaid int64) int64 {
	balance := amountDue - amountPaid
	if balance < 0 {
		return 0
	}
	return balance
}

// ApplyPayment credits amount against the fee. It fails with
// BalanceExceededError when the amount is more than the remaining balance
// plus the tolerance, leaving the fee unmodified.
func (f *StudentFee) ApplyPayment(amount int64) error {
	if amount > f.Balance+PaymentTolerance {
		return &BalanceExceededError{Amount: amount, Balance: f.Balance}
	}
	f.AmountPaid += amount
	f.Balance = ClampBalance(f.AmountDue, f.AmountPaid)
	f.Status = DeriveFeeStatus(f.AmountPaid, f.AmountDue)
	return nil
}

// ReversePayment undoes a previously applied payment. For a single payment
// this is an exact inverse of ApplyPayment: the fee returns to its
// pre-payment amounts and status.
func (f *StudentFee) ReversePayment(amount int64) {
	f.AmountPaid -= amount
	if f.AmountPaid < 0 {
		f.AmountPaid = 0
	}
	f.Balance = ClampBalance(f.AmountDue, f.AmountPaid)
	f.Status = DeriveFeeStatus(f.AmountPaid, f.AmountDue)
}

// StudentFeeSummary aggregates a student's fee assignments.
type StudentFeeSummary struct {
	Fees    []*StudentFee   `json:"fees"`
	Summary StudentFeeTotal `json:"summary"`
}

type StudentFeeTotal struct {
	TotalDue     int64 `json:"total_due"`
	TotalPaid    int64 `json:"total_paid"`
	TotalBalance int64 `json:"total_balance"`
	FeeCount     int   `json:"fee_count"`
	PaidCount    int   `json:"paid_count"`
	PendingCount int   `json:"pending_count"`
	PartialCount int   `json:"partial_count"`
}

// Summarize builds the summary totals for a student's fees.
func Summarize(fees []*StudentFee) StudentFeeTotal {
	total := StudentFeeTotal{FeeCount: len(fees)}
	for _, f := range fees {
		total.TotalDue += f.AmountDue
		total.TotalPaid += f.AmountPaid
		total.TotalBalance += f.Balance
		switch f.Status {
		case FeePaid:
			total.PaidCount++
		case FeePending:
			total.PendingCount++
		case FeePartial:
			total.PartialCount++
		}
	}
	return total
}
