package models

import "testing"

func TestExpenseStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ExpenseStatus
		want     bool
	}{
		{ExpensePending, ExpenseApproved, true},
		{ExpensePending, ExpenseRejected, true},
		{ExpensePending, ExpensePaid, false},
		{ExpenseApproved, ExpensePaid, true},
		{ExpenseApproved, ExpenseRejected, false},
		{ExpenseApproved, ExpensePending, false},
		{ExpenseRejected, ExpenseApproved, false},
		{ExpenseRejected, ExpensePaid, false},
		{ExpensePaid, ExpensePending, false},
		// Setting the same status again is a no-op.
		{ExpensePending, ExpensePending, true},
		{ExpensePaid, ExpensePaid, true},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
