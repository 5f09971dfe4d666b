package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPaymentNo(t *testing.T) {
	assert.Equal(t, "PAY-2025-00001", FormatPaymentNo(2025, 1))
	assert.Equal(t, "PAY-2025-00042", FormatPaymentNo(2025, 42))
	assert.Equal(t, "PAY-2026-12345", FormatPaymentNo(2026, 12345))
}

func TestPaymentNoSequence(t *testing.T) {
	seq, err := PaymentNoSequence("PAY-2025-00037")
	require.NoError(t, err)
	assert.Equal(t, 37, seq)

	_, err = PaymentNoSequence("PAY-2025-")
	assert.Error(t, err)

	_, err = PaymentNoSequence("garbage")
	assert.Error(t, err)
}

func TestNextPaymentNo(t *testing.T) {
	// An empty last number starts the year's sequence.
	no, err := NextPaymentNo("", 2025)
	require.NoError(t, err)
	assert.Equal(t, "PAY-2025-00001", no)

	no, err = NextPaymentNo("PAY-2025-00009", 2025)
	require.NoError(t, err)
	assert.Equal(t, "PAY-2025-00010", no)

	// Sequences reset per year: the new year's number starts from the new
	// year regardless of the previous year's high-water mark.
	no, err = NextPaymentNo("", 2026)
	require.NoError(t, err)
	assert.Equal(t, "PAY-2026-00001", no)
}

func TestPaymentNoLexicalOrder(t *testing.T) {
	// ORDER BY payment_no DESC relies on the zero padding keeping lexical
	// and numeric order aligned.
	assert.Less(t, FormatPaymentNo(2025, 9), FormatPaymentNo(2025, 10))
	assert.Less(t, FormatPaymentNo(2025, 99), FormatPaymentNo(2025, 100))
}
