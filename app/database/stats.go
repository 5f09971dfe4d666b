package database

import (
	"database/sql"
	"math"

	"uniadmin/app/models"
)

// roundRate converts a part/whole ratio to a whole percentage, 0 when the
// denominator is zero.
func roundRate(part, whole int64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// GetFinancialPosition computes the money-in vs money-out view across
// payments, student fees and expenses. Pure read; tolerates slightly stale
// snapshots under concurrent writes.
func GetFinancialPosition(db *sql.DB) (*models.FinancialPosition, error) {
	pos := &models.FinancialPosition{}

	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM payments`).
		Scan(&pos.TotalReceivables, &pos.PaymentCount)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount_due), 0), COALESCE(SUM(amount_paid), 0),
		COALESCE(SUM(balance), 0) FROM student_fees`).
		Scan(&pos.TotalExpected, &pos.TotalCollected, &pos.TotalOutstanding)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM expenses`).
		Scan(&pos.TotalExpenses, &pos.ExpenseCount)
	if err != nil {
		return nil, err
	}

	pos.NetAmount = pos.TotalReceivables - pos.TotalExpenses
	pos.CollectionRate = roundRate(pos.TotalCollected, pos.TotalExpected)
	pos.ExpenseRatio = roundRate(pos.TotalExpenses, pos.TotalReceivables)

	return pos, nil
}

// GetFeeStats aggregates student fee assignments by status and fee type.
func GetFeeStats(db *sql.DB) (*models.FeeStats, error) {
	stats := &models.FeeStats{}

	err := db.QueryRow(`SELECT COALESCE(SUM(amount_due), 0), COALESCE(SUM(amount_paid), 0),
		COALESCE(SUM(balance), 0) FROM student_fees`).
		Scan(&stats.TotalExpected, &stats.TotalCollected, &stats.TotalOutstanding)
	if err != nil {
		return nil, err
	}
	stats.CollectionRate = roundRate(stats.TotalCollected, stats.TotalExpected)

	rows, err := db.Query(`SELECT status, COUNT(*), COALESCE(SUM(amount_due), 0),
		COALESCE(SUM(amount_paid), 0), COALESCE(SUM(balance), 0)
		FROM student_fees GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.ByStatus = []models.FeeStatusStats{}
	for rows.Next() {
		var s models.FeeStatusStats
		if err := rows.Scan(&s.Status, &s.Count, &s.AmountDue, &s.AmountPaid, &s.Balance); err != nil {
			return nil, err
		}
		stats.ByStatus = append(stats.ByStatus, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Assignments whose structure was deleted fall under OTHER.
	typeRows, err := db.Query(`SELECT COALESCE(fs.fee_type, 'OTHER'), COUNT(*),
		COALESCE(SUM(sf.amount_due), 0), COALESCE(SUM(sf.amount_paid), 0), COALESCE(SUM(sf.balance), 0)
		FROM student_fees sf
		LEFT JOIN fee_structures fs ON sf.fee_structure_id = fs.id
		GROUP BY COALESCE(fs.fee_type, 'OTHER')`)
	if err != nil {
		return nil, err
	}
	defer typeRows.Close()

	stats.ByFeeType = []models.FeeTypeStats{}
	for typeRows.Next() {
		var s models.FeeTypeStats
		if err := typeRows.Scan(&s.FeeType, &s.Count, &s.AmountDue, &s.AmountPaid, &s.Balance); err != nil {
			return nil, err
		}
		stats.ByFeeType = append(stats.ByFeeType, s)
	}
	return stats, typeRows.Err()
}

// GetPaymentStats aggregates payments by method and includes the most
// recent receipts.
func GetPaymentStats(db *sql.DB) (*models.PaymentStats, error) {
	stats := &models.PaymentStats{}

	err := db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM payments`).
		Scan(&stats.TotalPayments, &stats.TotalAmount)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT payment_method, COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments GROUP BY payment_method`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.ByMethod = []models.PaymentMethodStats{}
	for rows.Next() {
		var m models.PaymentMethodStats
		if err := rows.Scan(&m.Method, &m.Amount, &m.Count); err != nil {
			return nil, err
		}
		stats.ByMethod = append(stats.ByMethod, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, _, err := ListPayments(db, PaymentFilter{Page: 1, Limit: 5})
	if err != nil {
		return nil, err
	}
	stats.RecentPayments = recent

	return stats, nil
}

// GetExpenseStats aggregates expenses by workflow status and category.
func GetExpenseStats(db *sql.DB) (*models.ExpenseStats, error) {
	stats := &models.ExpenseStats{}

	err := db.QueryRow(`SELECT COUNT(*),
		COUNT(CASE WHEN status = 'PENDING' THEN 1 END),
		COUNT(CASE WHEN status = 'APPROVED' THEN 1 END),
		COUNT(CASE WHEN status = 'PAID' THEN 1 END),
		COALESCE(SUM(amount), 0)
		FROM expenses`).
		Scan(&stats.Total, &stats.Pending, &stats.Approved, &stats.Paid, &stats.TotalAmount)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.ByCategory = []models.ExpenseCategoryStats{}
	for rows.Next() {
		var c models.ExpenseCategoryStats
		if err := rows.Scan(&c.Category, &c.Amount, &c.Count); err != nil {
			return nil, err
		}
		stats.ByCategory = append(stats.ByCategory, c)
	}
	return stats, rows.Err()
}

// GetStaffStats counts staff members overall, active and by role.
func GetStaffStats(db *sql.DB) (*models.StaffStats, error) {
	stats := &models.StaffStats{ByRole: map[models.StaffRole]int{}}

	err := db.QueryRow(`SELECT COUNT(*), COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END) FROM staff`).
		Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT role, COUNT(*) FROM staff GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role models.StaffRole
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		stats.ByRole[role] = count
	}
	return stats, rows.Err()
}

// GetStudentStats counts students overall, active and by program.
func GetStudentStats(db *sql.DB) (*models.StudentStats, error) {
	stats := &models.StudentStats{ByProgram: map[string]int{}}

	err := db.QueryRow(`SELECT COUNT(*), COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END) FROM students`).
		Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT program, COUNT(*) FROM students GROUP BY program`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var program string
		var count int
		if err := rows.Scan(&program, &count); err != nil {
			return nil, err
		}
		stats.ByProgram[program] = count
	}
	return stats, rows.Err()
}

// GetRecentActivity builds the dashboard's recent-activity feed from the
// latest payments and pending expenses.
func GetRecentActivity(db *sql.DB, limit int) ([]models.Activity, error) {
	activities := []models.Activity{}

	payments, _, err := ListPayments(db, PaymentFilter{Page: 1, Limit: limit})
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		activities = append(activities, models.Activity{
			Type:        "payment",
			Title:       "Fee payment received",
			Description: p.PaymentNo + " - " + p.Student.FullName,
			RawTime:     p.PaidAt,
		})
	}

	expenses, err := GetPendingExpenses(db, limit)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		activities = append(activities, models.Activity{
			Type:        "expense",
			Title:       "Expense awaiting approval",
			Description: e.Category + " - " + e.Description,
			RawTime:     e.CreatedAt,
		})
	}

	return activities, nil
}
