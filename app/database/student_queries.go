package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// CreateStudent inserts a new student.
func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = uuid.NewString()
	if s.Status == "" {
		s.Status = models.StudentActive
	}

	query := `INSERT INTO students (id, student_no, full_name, program, year, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := db.QueryRow(query, s.ID, s.StudentNo, s.FullName, s.Program, s.Year, string(s.Status)).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "students_student_no_key") {
			return fmt.Errorf("student number %s already exists", s.StudentNo)
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetStudentByID returns a single student.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, student_no, full_name, program, year, status, created_at, updated_at
		FROM students WHERE id = $1`

	s := &models.Student{}
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.StudentNo, &s.FullName, &s.Program, &s.Year, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListStudents returns all students, newest first.
func ListStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_no, full_name, program, year, status, created_at, updated_at
		FROM students ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.StudentNo, &s.FullName, &s.Program, &s.Year, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdateStudent applies a partial update.
func UpdateStudent(db *sql.DB, id string, patch *models.StudentPatch) (*models.Student, error) {
	set := ""
	var args []interface{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if patch.StudentNo != nil {
		addSet("student_no", *patch.StudentNo)
	}
	if patch.FullName != nil {
		addSet("full_name", *patch.FullName)
	}
	if patch.Program != nil {
		addSet("program", *patch.Program)
	}
	if patch.Year != nil {
		addSet("year", *patch.Year)
	}
	if patch.Status != nil {
		addSet("status", string(*patch.Status))
	}

	if set == "" {
		return GetStudentByID(db, id)
	}

	query := fmt.Sprintf("UPDATE students SET %s, updated_at = NOW() WHERE id = $%d", set, argIndex)
	args = append(args, id)

	result, err := db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrStudentNotFound
	}

	return GetStudentByID(db, id)
}

// DeleteStudent removes a student along with their fee assignments and
// payments (the schema cascades).
func DeleteStudent(db *sql.DB, id string) error {
	result, err := db.Exec("DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrStudentNotFound
	}
	return nil
}
