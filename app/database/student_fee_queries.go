package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// StudentFeeFilter holds the list filters for student fee assignments.
type StudentFeeFilter struct {
	StudentID    string
	Status       string
	AcademicYear string
	Page         int
	Limit        int
}

// AssignFeeToStudent creates a single fee assignment. The amount due is
// snapshotted on the assignment and stays fixed even if the fee structure is
// edited later. A duplicate (student, fee structure, academic year,
// semester) tuple fails with DuplicateAssignmentError.
func AssignFeeToStudent(db *sql.DB, f *models.StudentFee) error {
	f.ID = uuid.NewString()
	f.Balance = f.AmountDue
	f.AmountPaid = 0
	f.Status = models.DeriveFeeStatus(f.AmountPaid, f.AmountDue)

	query := `INSERT INTO student_fees
		(id, student_id, fee_structure_id, amount_due, amount_paid, balance, status, due_date, academic_year, semester, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := db.QueryRow(query,
		f.ID, f.StudentID, f.FeeStructureID, f.AmountDue, f.AmountPaid,
		f.Balance, string(f.Status), f.DueDate, f.AcademicYear, string(f.Semester),
	).Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "idx_student_fees_assignment") {
			return &models.DuplicateAssignmentError{
				StudentID:      f.StudentID,
				FeeStructureID: f.FeeStructureID,
				AcademicYear:   f.AcademicYear,
				Semester:       f.Semester,
			}
		}
		if isForeignKeyViolation(err) {
			return models.ErrStudentNotFound
		}
		return fmt.Errorf("failed to assign fee: %w", err)
	}
	return nil
}

// BulkAssignFee assigns a fee structure to many students in one transaction.
// Students who already hold the assignment for the same academic year and
// semester are silently skipped; the returned count covers only
// newly-created rows.
func BulkAssignFee(db *sql.DB, feeStructureID string, studentIDs []string, dueDate time.Time, academicYear string, semester models.Semester) (int, error) {
	var amount int64
	err := db.QueryRow("SELECT amount FROM fee_structures WHERE id = $1", feeStructureID).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, models.ErrFeeStructureNotFound
	}
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `INSERT INTO student_fees
		(id, student_id, fee_structure_id, amount_due, amount_paid, balance, status, due_date, academic_year, semester, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (student_id, fee_structure_id, academic_year, semester) DO NOTHING`

	created := 0
	for _, studentID := range studentIDs {
		result, err := tx.Exec(query,
			uuid.NewString(), studentID, feeStructureID, amount,
			string(models.FeePending), dueDate, academicYear, string(semester),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to assign fee to student %s: %w", studentID, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		created += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

// GetStudentFeeByID returns a single assignment.
func GetStudentFeeByID(db *sql.DB, id string) (*models.StudentFee, error) {
	query := `SELECT id, student_id, fee_structure_id, amount_due, amount_paid, balance,
		status, due_date, academic_year, semester, created_at, updated_at
		FROM student_fees WHERE id = $1`

	f := &models.StudentFee{}
	err := db.QueryRow(query, id).Scan(
		&f.ID, &f.StudentID, &f.FeeStructureID, &f.AmountDue, &f.AmountPaid,
		&f.Balance, &f.Status, &f.DueDate, &f.AcademicYear, &f.Semester,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrStudentFeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListStudentFees returns a page of assignments with student and fee
// structure details joined in for display.
func ListStudentFees(db *sql.DB, filter StudentFeeFilter) ([]*models.StudentFee, int, error) {
	where := "1=1"
	var args []interface{}
	argIndex := 1

	if filter.StudentID != "" {
		where += fmt.Sprintf(" AND sf.student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.Status != "" && filter.Status != "all" {
		where += fmt.Sprintf(" AND sf.status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.AcademicYear != "" && filter.AcademicYear != "all" {
		where += fmt.Sprintf(" AND sf.academic_year = $%d", argIndex)
		args = append(args, filter.AcademicYear)
		argIndex++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM student_fees sf WHERE " + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT sf.id, sf.student_id, sf.fee_structure_id, sf.amount_due,
		sf.amount_paid, sf.balance, sf.status, sf.due_date, sf.academic_year, sf.semester,
		sf.created_at, sf.updated_at,
		s.student_no, s.full_name, s.program,
		fs.name, fs.fee_type
		FROM student_fees sf
		JOIN students s ON sf.student_id = s.id
		LEFT JOIN fee_structures fs ON sf.fee_structure_id = fs.id
		WHERE %s
		ORDER BY sf.created_at DESC LIMIT $%d OFFSET $%d`, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	fees := []*models.StudentFee{}
	for rows.Next() {
		f := &models.StudentFee{}
		var studentNo, fullName, program string
		var fsName, fsType sql.NullString
		err := rows.Scan(
			&f.ID, &f.StudentID, &f.FeeStructureID, &f.AmountDue, &f.AmountPaid,
			&f.Balance, &f.Status, &f.DueDate, &f.AcademicYear, &f.Semester,
			&f.CreatedAt, &f.UpdatedAt,
			&studentNo, &fullName, &program,
			&fsName, &fsType,
		)
		if err != nil {
			return nil, 0, err
		}
		f.Student = &models.Student{ID: f.StudentID, StudentNo: studentNo, FullName: fullName, Program: program}
		if fsName.Valid {
			f.FeeStructure = &models.FeeStructure{
				ID:      f.FeeStructureID,
				Name:    fsName.String,
				FeeType: models.FeeType(fsType.String),
			}
		}
		fees = append(fees, f)
	}
	return fees, total, rows.Err()
}

// GetStudentFeeSummary aggregates all assignments for one student. Pure
// read, no mutation.
func GetStudentFeeSummary(db *sql.DB, studentID string) (*models.StudentFeeSummary, error) {
	query := `SELECT sf.id, sf.student_id, sf.fee_structure_id, sf.amount_due, sf.amount_paid,
		sf.balance, sf.status, sf.due_date, sf.academic_year, sf.semester,
		sf.created_at, sf.updated_at,
		fs.name, fs.fee_type
		FROM student_fees sf
		LEFT JOIN fee_structures fs ON sf.fee_structure_id = fs.id
		WHERE sf.student_id = $1
		ORDER BY sf.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.StudentFee{}
	for rows.Next() {
		f := &models.StudentFee{}
		var fsName, fsType sql.NullString
		err := rows.Scan(
			&f.ID, &f.StudentID, &f.FeeStructureID, &f.AmountDue, &f.AmountPaid,
			&f.Balance, &f.Status, &f.DueDate, &f.AcademicYear, &f.Semester,
			&f.CreatedAt, &f.UpdatedAt,
			&fsName, &fsType,
		)
		if err != nil {
			return nil, err
		}
		if fsName.Valid {
			f.FeeStructure = &models.FeeStructure{
				ID:      f.FeeStructureID,
				Name:    fsName.String,
				FeeType: models.FeeType(fsType.String),
			}
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.StudentFeeSummary{
		Fees:    fees,
		Summary: models.Summarize(fees),
	}, nil
}
