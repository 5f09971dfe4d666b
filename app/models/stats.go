package models

import "time"

// FinancialPosition is the overall money-in vs money-out view used by the
// finance dashboard.
type FinancialPosition struct {
	TotalReceivables int64 `json:"total_receivables"`
	TotalExpected    int64 `json:"total_expected"`
	TotalCollected   int64 `json:"total_collected"`
	TotalOutstanding int64 `json:"total_outstanding"`
	TotalExpenses    int64 `json:"total_expenses"`
	NetAmount        int64 `json:"net_amount"`
	CollectionRate   int   `json:"collection_rate"`
	ExpenseRatio     int   `json:"expense_ratio"`
	PaymentCount     int   `json:"payment_count"`
	ExpenseCount     int   `json:"expense_count"`
}

// FeeStats aggregates student fee assignments.
type FeeStats struct {
	TotalExpected    int64            `json:"total_expected"`
	TotalCollected   int64            `json:"total_collected"`
	TotalOutstanding int64            `json:"total_outstanding"`
	CollectionRate   int              `json:"collection_rate"`
	ByStatus         []FeeStatusStats `json:"by_status"`
	ByFeeType        []FeeTypeStats   `json:"by_fee_type"`
}

type FeeStatusStats struct {
	Status     FeeStatus `json:"status"`
	Count      int       `json:"count"`
	AmountDue  int64     `json:"amount_due"`
	AmountPaid int64     `json:"amount_paid"`
	Balance    int64     `json:"balance"`
}

type FeeTypeStats struct {
	FeeType    FeeType `json:"fee_type"`
	Count      int     `json:"count"`
	AmountDue  int64   `json:"amount_due"`
	AmountPaid int64   `json:"amount_paid"`
	Balance    int64   `json:"balance"`
}

// PaymentStats aggregates recorded payments.
type PaymentStats struct {
	TotalPayments  int                  `json:"total_payments"`
	TotalAmount    int64                `json:"total_amount"`
	ByMethod       []PaymentMethodStats `json:"by_method"`
	RecentPayments []*Payment           `json:"recent_payments"`
}

type PaymentMethodStats struct {
	Method PaymentMethod `json:"method"`
	Amount int64         `json:"amount"`
	Count  int           `json:"count"`
}

// ExpenseStats aggregates expenses across the approval workflow.
type ExpenseStats struct {
	Total       int                    `json:"total"`
	Pending     int                    `json:"pending"`
	Approved    int                    `json:"approved"`
	Paid        int                    `json:"paid"`
	TotalAmount int64                  `json:"total_amount"`
	ByCategory  []ExpenseCategoryStats `json:"by_category"`
}

type ExpenseCategoryStats struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Count    int    `json:"count"`
}

// StaffStats counts staff members.
type StaffStats struct {
	Total  int               `json:"total"`
	Active int               `json:"active"`
	ByRole map[StaffRole]int `json:"by_role"`
}

// StudentStats counts students.
type StudentStats struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	ByProgram map[string]int `json:"by_program"`
}

// Activity is a recent-activity entry for the admin dashboard.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RawTime     time.Time `json:"time"`
}
