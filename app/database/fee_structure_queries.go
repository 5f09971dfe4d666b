package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// FeeStructureFilter holds the list filters for fee structures.
type FeeStructureFilter struct {
	Search       string
	FeeType      string
	AcademicYear string
	IsActive     *bool
	Page         int
	Limit        int
}

// CreateFeeStructure inserts a new fee template.
func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	fs.ID = uuid.NewString()

	query := `INSERT INTO fee_structures
		(id, name, fee_type, amount, program, year, semester, academic_year, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := db.QueryRow(query,
		fs.ID, fs.Name, string(fs.FeeType), fs.Amount, fs.Program, fs.Year,
		string(fs.Semester), fs.AcademicYear, fs.Description, fs.IsActive,
	).Scan(&fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fee structure: %w", err)
	}
	return nil
}

// GetFeeStructureByID returns a single fee structure.
func GetFeeStructureByID(db *sql.DB, id string) (*models.FeeStructure, error) {
	query := `SELECT id, name, fee_type, amount, program, year, semester, academic_year,
		description, is_active, created_at, updated_at
		FROM fee_structures WHERE id = $1`

	fs := &models.FeeStructure{}
	err := db.QueryRow(query, id).Scan(
		&fs.ID, &fs.Name, &fs.FeeType, &fs.Amount, &fs.Program, &fs.Year,
		&fs.Semester, &fs.AcademicYear, &fs.Description, &fs.IsActive,
		&fs.CreatedAt, &fs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrFeeStructureNotFound
	}
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// ListFeeStructures returns a page of fee structures matching the filter
// together with the total match count.
func ListFeeStructures(db *sql.DB, filter FeeStructureFilter) ([]*models.FeeStructure, int, error) {
	where := "1=1"
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR program ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.FeeType != "" && filter.FeeType != "all" {
		where += fmt.Sprintf(" AND fee_type = $%d", argIndex)
		args = append(args, filter.FeeType)
		argIndex++
	}
	if filter.AcademicYear != "" && filter.AcademicYear != "all" {
		where += fmt.Sprintf(" AND academic_year = $%d", argIndex)
		args = append(args, filter.AcademicYear)
		argIndex++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
		argIndex++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM fee_structures WHERE " + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, name, fee_type, amount, program, year, semester,
		academic_year, description, is_active, created_at, updated_at
		FROM fee_structures WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	structures := []*models.FeeStructure{}
	for rows.Next() {
		fs := &models.FeeStructure{}
		err := rows.Scan(
			&fs.ID, &fs.Name, &fs.FeeType, &fs.Amount, &fs.Program, &fs.Year,
			&fs.Semester, &fs.AcademicYear, &fs.Description, &fs.IsActive,
			&fs.CreatedAt, &fs.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		structures = append(structures, fs)
	}
	return structures, total, rows.Err()
}

// UpdateFeeStructure applies a partial update. Only fields present in the
// patch mutate state; program, year and description accept explicit null to
// clear the value.
func UpdateFeeStructure(db *sql.DB, id string, patch *models.FeeStructurePatch) (*models.FeeStructure, error) {
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

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.FeeType != nil {
		addSet("fee_type", string(*patch.FeeType))
	}
	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Program.Set {
		addSet("program", patch.Program.Value)
	}
	if patch.Year.Set {
		addSet("year", patch.Year.Value)
	}
	if patch.Semester != nil {
		addSet("semester", string(*patch.Semester))
	}
	if patch.AcademicYear != nil {
		addSet("academic_year", *patch.AcademicYear)
	}
	if patch.Description.Set {
		addSet("description", patch.Description.Value)
	}
	if patch.IsActive != nil {
		addSet("is_active", *patch.IsActive)
	}

	if set == "" {
		return GetFeeStructureByID(db, id)
	}

	query := fmt.Sprintf("UPDATE fee_structures SET %s, updated_at = NOW() WHERE id = $%d", set, argIndex)
	args = append(args, id)

	result, err := db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update fee structure: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrFeeStructureNotFound
	}

	return GetFeeStructureByID(db, id)
}

// DeleteFeeStructure removes a fee template. Existing assignments keep their
// snapshotted amounts and are unaffected.
func DeleteFeeStructure(db *sql.DB, id string) error {
	result, err := db.Exec("DELETE FROM fee_structures WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete fee structure: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrFeeStructureNotFound
	}
	return nil
}

// GetAcademicYears lists the distinct academic years known to the catalog.
func GetAcademicYears(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT DISTINCT academic_year FROM fee_structures ORDER BY academic_year DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := []string{}
	for rows.Next() {
		var y string
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}
