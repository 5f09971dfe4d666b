package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Payment records money received from a student. A payment may optionally be
// linked to a student fee; unlinked payments are general receipts. Deleting a
// payment reverses its effect on the linked fee but never deletes the fee.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	PaymentNo     string        `json:"payment_no" gorm:"uniqueIndex;not null" validate:"required"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentFeeID  *string       `json:"student_fee_id,omitempty" gorm:"index;type:uuid"`
	Amount        int64         `json:"amount" gorm:"not null;type:bigint" validate:"required,min=1"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required"`
	Reference     *string       `json:"reference,omitempty"`
	ReceiptNo     *string       `json:"receipt_no,omitempty"`
	Notes         *string       `json:"notes,omitempty" gorm:"type:text"`
	PaidAt        time.Time     `json:"paid_at" gorm:"not null;index"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`

	Student    *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	StudentFee *StudentFee `json:"student_fee,omitempty" gorm:"foreignKey:StudentFeeID;references:ID"`
}

// PaymentNoPrefix returns the payment number prefix for a calendar year,
// e.g. "PAY-2025-".
func PaymentNoPrefix(year int) string {
	return fmt.Sprintf("PAY-%d-", year)
}

// FormatPaymentNo renders a payment number, zero-padding the sequence to
// five digits: PAY-2025-00001.
func FormatPaymentNo(year, seq int) string {
	return fmt.Sprintf("PAY-%d-%05d", year, seq)
}

// PaymentNoSequence extracts the numeric suffix of a payment number.
func PaymentNoSequence(paymentNo string) (int, error) {
	idx := strings.LastIndex(paymentNo, "-")
	if idx < 0 || idx == len(paymentNo)-1 {
		return 0, fmt.Errorf("malformed payment number %q", paymentNo)
	}
	seq, err := strconv.Atoi(paymentNo[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed payment number %q: %v", paymentNo, err)
	}
	return seq, nil
}

// NextPaymentNo returns the payment number following lastNo within the given
// year. An empty lastNo starts the year's sequence at 1.
func NextPaymentNo(lastNo string, year int) (string, error) {
	if lastNo == "" {
		return FormatPaymentNo(year, 1), nil
	}
	seq, err := PaymentNoSequence(lastNo)
	if err != nil {
		return "", err
	}
	return FormatPaymentNo(year, seq+1), nil
}
