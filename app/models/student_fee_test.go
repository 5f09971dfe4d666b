package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFee(amountDue int64) *StudentFee {
	return &StudentFee{
		AmountDue:  amountDue,
		AmountPaid: 0,
		Balance:    amountDue,
		Status:     FeePending,
	}
}

func TestDeriveFeeStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid int64
		amountDue  int64
		want       FeeStatus
	}{
		{"nothing paid", 0, 500000, FeePending},
		{"partially paid", 300000, 500000, FeePartial},
		{"exactly paid", 500000, 500000, FeePaid},
		{"overpaid within tolerance", 500050, 500000, FeePaid},
		{"single unit paid", 1, 500000, FeePartial},
		{"zero due zero paid", 0, 0, FeePaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFeeStatus(tt.amountPaid, tt.amountDue))
		})
	}
}

func TestApplyPaymentFull(t *testing.T) {
	fee := newFee(500000)

	require.NoError(t, fee.ApplyPayment(500000))

	assert.Equal(t, int64(500000), fee.AmountPaid)
	assert.Equal(t, int64(0), fee.Balance)
	assert.Equal(t, FeePaid, fee.Status)
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	fee := newFee(500000)

	require.NoError(t, fee.ApplyPayment(300000))
	assert.Equal(t, int64(300000), fee.AmountPaid)
	assert.Equal(t, int64(200000), fee.Balance)
	assert.Equal(t, FeePartial, fee.Status)

	require.NoError(t, fee.ApplyPayment(200000))
	assert.Equal(t, int64(500000), fee.AmountPaid)
	assert.Equal(t, int64(0), fee.Balance)
	assert.Equal(t, FeePaid, fee.Status)
}

func TestApplyPaymentWithinTolerance(t *testing.T) {
	fee := newFee(500000)

	require.NoError(t, fee.ApplyPayment(500000 + PaymentTolerance))

	// Balance clamps at zero even though more than the due amount came in.
	assert.Equal(t, int64(500000+PaymentTolerance), fee.AmountPaid)
	assert.Equal(t, int64(0), fee.Balance)
	assert.Equal(t, FeePaid, fee.Status)
}

func TestApplyPaymentExceedsTolerance(t *testing.T) {
	fee := newFee(500000)

	err := fee.ApplyPayment(500000 + PaymentTolerance + 50)

	var exceeded *BalanceExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, int64(500150), exceeded.Amount)
	assert.Equal(t, int64(500000), exceeded.Balance)

	// A rejected payment leaves the fee untouched.
	assert.Equal(t, int64(0), fee.AmountPaid)
	assert.Equal(t, int64(500000), fee.Balance)
	assert.Equal(t, FeePending, fee.Status)
}

func TestReversePaymentRestoresPriorState(t *testing.T) {
	tests := []struct {
		name   string
		due    int64
		amount int64
	}{
		{"full payment", 500000, 500000},
		{"partial payment", 500000, 300000},
		{"tolerance overpayment", 500000, 500000 + PaymentTolerance},
		{"small payment", 500000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := newFee(tt.due)
			before := *fee

			require.NoError(t, fee.ApplyPayment(tt.amount))
			fee.ReversePayment(tt.amount)

			assert.Equal(t, before.AmountPaid, fee.AmountPaid)
			assert.Equal(t, before.Balance, fee.Balance)
			assert.Equal(t, before.Status, fee.Status)
		})
	}
}

func TestReversePaymentSecondOfTwo(t *testing.T) {
	fee := newFee(500000)
	require.NoError(t, fee.ApplyPayment(300000))
	require.NoError(t, fee.ApplyPayment(200000))
	require.Equal(t, FeePaid, fee.Status)

	fee.ReversePayment(200000)

	assert.Equal(t, int64(300000), fee.AmountPaid)
	assert.Equal(t, int64(200000), fee.Balance)
	assert.Equal(t, FeePartial, fee.Status)
}

func TestReversePaymentFloorsAtZero(t *testing.T) {
	fee := newFee(500000)
	require.NoError(t, fee.ApplyPayment(100000))

	// Reversing more than was ever paid must not go negative.
	fee.ReversePayment(250000)

	assert.Equal(t, int64(0), fee.AmountPaid)
	assert.Equal(t, int64(500000), fee.Balance)
	assert.Equal(t, FeePending, fee.Status)
}

func TestPaidPlusBalanceInvariant(t *testing.T) {
	fee := newFee(500000)
	amounts := []int64{100000, 250000, 150000}

	for _, amount := range amounts {
		require.NoError(t, fee.ApplyPayment(amount))
		assert.Equal(t, fee.AmountDue, fee.AmountPaid+fee.Balance)
	}
	for _, amount := range amounts {
		fee.ReversePayment(amount)
		assert.Equal(t, fee.AmountDue, fee.AmountPaid+fee.Balance)
	}
}

func TestSummarize(t *testing.T) {
	fees := []*StudentFee{
		{AmountDue: 500000, AmountPaid: 500000, Balance: 0, Status: FeePaid},
		{AmountDue: 300000, AmountPaid: 100000, Balance: 200000, Status: FeePartial},
		{AmountDue: 200000, AmountPaid: 0, Balance: 200000, Status: FeePending},
	}

	total := Summarize(fees)

	assert.Equal(t, int64(1000000), total.TotalDue)
	assert.Equal(t, int64(600000), total.TotalPaid)
	assert.Equal(t, int64(400000), total.TotalBalance)
	assert.Equal(t, 3, total.FeeCount)
	assert.Equal(t, 1, total.PaidCount)
	assert.Equal(t, 1, total.PartialCount)
	assert.Equal(t, 1, total.PendingCount)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, StudentFeeTotal{}, Summarize(nil))
}
