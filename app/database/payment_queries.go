package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// maxPaymentNoRetries bounds the retry loop that resolves payment-number
// collisions between concurrent recordings in the same year.
const maxPaymentNoRetries = 3

// PaymentFilter holds the list filters for payments.
type PaymentFilter struct {
	Search        string
	StudentID     string
	PaymentMethod string
	Page          int
	Limit         int
}

// RecordPayment records a payment and applies it to the linked student fee
// in a single transaction. The payment number scan and the unique index on
// payment_no can race under concurrent recordings, so the whole transaction
// is retried a bounded number of times on a duplicate number.
func RecordPayment(db *sql.DB, p *models.Payment) error {
	var err error
	for attempt := 0; attempt < maxPaymentNoRetries; attempt++ {
		err = recordPaymentTx(db, p)
		if err != nil && isUniqueViolation(err, "idx_payments_payment_no") {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to allocate payment number: %w", err)
}

func recordPaymentTx(db *sql.DB, p *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Apply the payment to the linked fee, if any. The row is locked so
	// the balance check and the update see the same state.
	if p.StudentFeeID != nil {
		fee := &models.StudentFee{}
		err = tx.QueryRow(`SELECT id, amount_due, amount_paid, balance, status
			FROM student_fees WHERE id = $1 FOR UPDATE`, *p.StudentFeeID).
			Scan(&fee.ID, &fee.AmountDue, &fee.AmountPaid, &fee.Balance, &fee.Status)
		if err == sql.ErrNoRows {
			return models.ErrStudentFeeNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load student fee: %w", err)
		}

		if err := fee.ApplyPayment(p.Amount); err != nil {
			return err
		}

		_, err = tx.Exec(`UPDATE student_fees
			SET amount_paid = $1, balance = $2, status = $3, updated_at = NOW()
			WHERE id = $4`,
			fee.AmountPaid, fee.Balance, string(fee.Status), fee.ID)
		if err != nil {
			return fmt.Errorf("failed to update student fee: %w", err)
		}
	}

	// 2. Generate the payment number from the year's highest suffix. The
	// zero-padded format keeps lexical and numeric order aligned.
	year := time.Now().Year()
	var lastNo string
	err = tx.QueryRow(`SELECT payment_no FROM payments WHERE payment_no LIKE $1
		ORDER BY payment_no DESC LIMIT 1`, models.PaymentNoPrefix(year)+"%").Scan(&lastNo)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to scan payment numbers: %w", err)
	}
	p.PaymentNo, err = models.NextPaymentNo(lastNo, year)
	if err != nil {
		return err
	}

	// 3. Insert the payment record.
	p.ID = uuid.NewString()
	err = tx.QueryRow(`INSERT INTO payments
		(id, payment_no, student_id, student_fee_id, amount, payment_method, reference, receipt_no, notes, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING paid_at, created_at`,
		p.ID, p.PaymentNo, p.StudentID, p.StudentFeeID, p.Amount,
		string(p.PaymentMethod), p.Reference, p.ReceiptNo, p.Notes,
	).Scan(&p.PaidAt, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "idx_payments_payment_no") {
			return err
		}
		if isForeignKeyViolation(err) {
			return models.ErrStudentNotFound
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return tx.Commit()
}

// DeletePayment reverses a payment's effect on its linked fee and removes
// the record, all in one transaction. The reversal uses the same status
// derivation as the forward path, so deleting a fee's only payment restores
// the assignment to its exact pre-payment state.
func DeletePayment(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var amount int64
	var studentFeeID sql.NullString
	err = tx.QueryRow(`SELECT amount, student_fee_id FROM payments WHERE id = $1 FOR UPDATE`, id).
		Scan(&amount, &studentFeeID)
	if err == sql.ErrNoRows {
		return models.ErrPaymentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load payment: %w", err)
	}

	if studentFeeID.Valid {
		fee := &models.StudentFee{}
		err = tx.QueryRow(`SELECT id, amount_due, amount_paid, balance, status
			FROM student_fees WHERE id = $1 FOR UPDATE`, studentFeeID.String).
			Scan(&fee.ID, &fee.AmountDue, &fee.AmountPaid, &fee.Balance, &fee.Status)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to load student fee: %w", err)
		}
		// The fee may have been deleted since; only reverse when it exists.
		if err == nil {
			fee.ReversePayment(amount)
			_, err = tx.Exec(`UPDATE student_fees
				SET amount_paid = $1, balance = $2, status = $3, updated_at = NOW()
				WHERE id = $4`,
				fee.AmountPaid, fee.Balance, string(fee.Status), fee.ID)
			if err != nil {
				return fmt.Errorf("failed to reverse payment on student fee: %w", err)
			}
		}
	}

	if _, err := tx.Exec("DELETE FROM payments WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return tx.Commit()
}

// GetPaymentByID returns a single payment with its student joined in.
func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	query := `SELECT p.id, p.payment_no, p.student_id, p.student_fee_id, p.amount,
		p.payment_method, p.reference, p.receipt_no, p.notes, p.paid_at, p.created_at,
		s.student_no, s.full_name, s.program
		FROM payments p
		JOIN students s ON p.student_id = s.id
		WHERE p.id = $1`

	p := &models.Payment{}
	var studentNo, fullName, program string
	err := db.QueryRow(query, id).Scan(
		&p.ID, &p.PaymentNo, &p.StudentID, &p.StudentFeeID, &p.Amount,
		&p.PaymentMethod, &p.Reference, &p.ReceiptNo, &p.Notes, &p.PaidAt, &p.CreatedAt,
		&studentNo, &fullName, &program,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Student = &models.Student{ID: p.StudentID, StudentNo: studentNo, FullName: fullName, Program: program}
	return p, nil
}

// ListPayments returns a page of payments matching the filter. Search covers
// the payment number, reference, student name and student number.
func ListPayments(db *sql.DB, filter PaymentFilter) ([]*models.Payment, int, error) {
	where := "1=1"
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		where += fmt.Sprintf(` AND (p.payment_no ILIKE $%d OR p.reference ILIKE $%d
			OR s.full_name ILIKE $%d OR s.student_no ILIKE $%d)`,
			argIndex, argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.StudentID != "" {
		where += fmt.Sprintf(" AND p.student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.PaymentMethod != "" && filter.PaymentMethod != "all" {
		where += fmt.Sprintf(" AND p.payment_method = $%d", argIndex)
		args = append(args, filter.PaymentMethod)
		argIndex++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM payments p JOIN students s ON p.student_id = s.id WHERE ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT p.id, p.payment_no, p.student_id, p.student_fee_id, p.amount,
		p.payment_method, p.reference, p.receipt_no, p.notes, p.paid_at, p.created_at,
		s.student_no, s.full_name, s.program
		FROM payments p
		JOIN students s ON p.student_id = s.id
		WHERE %s
		ORDER BY p.paid_at DESC LIMIT $%d OFFSET $%d`, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		var studentNo, fullName, program string
		err := rows.Scan(
			&p.ID, &p.PaymentNo, &p.StudentID, &p.StudentFeeID, &p.Amount,
			&p.PaymentMethod, &p.Reference, &p.ReceiptNo, &p.Notes, &p.PaidAt, &p.CreatedAt,
			&studentNo, &fullName, &program,
		)
		if err != nil {
			return nil, 0, err
		}
		p.Student = &models.Student{ID: p.StudentID, StudentNo: studentNo, FullName: fullName, Program: program}
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}

// GetStudentPayments lists all payments for one student, newest first.
func GetStudentPayments(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT id, payment_no, student_id, student_fee_id, amount,
		payment_method, reference, receipt_no, notes, paid_at, created_at
		FROM payments WHERE student_id = $1 ORDER BY paid_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		err := rows.Scan(
			&p.ID, &p.PaymentNo, &p.StudentID, &p.StudentFeeID, &p.Amount,
			&p.PaymentMethod, &p.Reference, &p.ReceiptNo, &p.Notes, &p.PaidAt, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
