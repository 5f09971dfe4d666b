package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// CreateStaff inserts a new staff member.
func CreateStaff(db *sql.DB, s *models.Staff) error {
	s.ID = uuid.NewString()
	if s.Status == "" {
		s.Status = models.StaffActive
	}

	query := `INSERT INTO staff (id, full_name, role, department, salary, dob, start_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := db.QueryRow(query,
		s.ID, s.FullName, string(s.Role), s.Department, s.Salary, s.DOB, s.StartDate, string(s.Status),
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

// GetStaffByID returns a single staff member.
func GetStaffByID(db *sql.DB, id string) (*models.Staff, error) {
	query := `SELECT id, full_name, role, department, salary, dob, start_date, status, created_at, updated_at
		FROM staff WHERE id = $1`

	s := &models.Staff{}
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.FullName, &s.Role, &s.Department, &s.Salary, &s.DOB,
		&s.StartDate, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListStaff returns all staff members, newest first.
func ListStaff(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT id, full_name, role, department, salary, dob, start_date, status, created_at, updated_at
		FROM staff ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s := &models.Staff{}
		err := rows.Scan(
			&s.ID, &s.FullName, &s.Role, &s.Department, &s.Salary, &s.DOB,
			&s.StartDate, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// UpdateStaff applies a partial update. Department and DOB accept explicit
// null to clear the value.
func UpdateStaff(db *sql.DB, id string, patch *models.StaffPatch) (*models.Staff, error) {
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

	if patch.FullName != nil {
		addSet("full_name", *patch.FullName)
	}
	if patch.Role != nil {
		addSet("role", string(*patch.Role))
	}
	if patch.Department.Set {
		addSet("department", patch.Department.Value)
	}
	if patch.Salary != nil {
		addSet("salary", *patch.Salary)
	}
	if patch.DOB.Set {
		addSet("dob", patch.DOB.Value)
	}
	if patch.StartDate != nil {
		addSet("start_date", patch.StartDate.Time)
	}
	if patch.Status != nil {
		addSet("status", string(*patch.Status))
	}

	if set == "" {
		return GetStaffByID(db, id)
	}

	query := fmt.Sprintf("UPDATE staff SET %s, updated_at = NOW() WHERE id = $%d", set, argIndex)
	args = append(args, id)

	result, err := db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrStaffNotFound
	}

	return GetStaffByID(db, id)
}

// DeleteStaff removes a staff member.
func DeleteStaff(db *sql.DB, id string) error {
	result, err := db.Exec("DELETE FROM staff WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrStaffNotFound
	}
	return nil
}
