package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"uniadmin/app/models"
)

// ExpenseFilter holds the list filters for expenses.
type ExpenseFilter struct {
	Search   string
	Category string
	Status   string
	Page     int
	Limit    int
}

// CreateExpense inserts a new expense, defaulting to PENDING status.
func CreateExpense(db *sql.DB, e *models.Expense) error {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = models.ExpensePending
	}

	query := `INSERT INTO expenses (id, category, description, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := db.QueryRow(query, e.ID, e.Category, e.Description, e.Amount, string(e.Status)).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetExpenseByID returns a single expense.
func GetExpenseByID(db *sql.DB, id string) (*models.Expense, error) {
	query := `SELECT id, category, description, amount, status, created_at, updated_at
		FROM expenses WHERE id = $1`

	e := &models.Expense{}
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.Category, &e.Description, &e.Amount, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListExpenses returns a page of expenses matching the filter.
func ListExpenses(db *sql.DB, filter ExpenseFilter) ([]*models.Expense, int, error) {
	where := "1=1"
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (description ILIKE $%d OR category ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Category != "" && filter.Category != "all" {
		where += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filter.Category)
		argIndex++
	}
	if filter.Status != "" && filter.Status != "all" {
		where += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM expenses WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, category, description, amount, status, created_at, updated_at
		FROM expenses WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.Status, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, e)
	}
	return expenses, total, rows.Err()
}

// UpdateExpense applies a partial update. A status change must follow the
// approval workflow: PENDING to APPROVED or REJECTED, APPROVED to PAID.
func UpdateExpense(db *sql.DB, id string, patch *models.ExpensePatch) (*models.Expense, error) {
	current, err := GetExpenseByID(db, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !current.Status.CanTransitionTo(*patch.Status) {
		return nil, &models.InvalidTransitionError{From: current.Status, To: *patch.Status}
	}

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

	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Status != nil {
		addSet("status", string(*patch.Status))
	}

	if set == "" {
		return current, nil
	}

	query := fmt.Sprintf("UPDATE expenses SET %s, updated_at = NOW() WHERE id = $%d", set, argIndex)
	args = append(args, id)

	if _, err := db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return GetExpenseByID(db, id)
}

// DeleteExpense removes an expense.
func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec("DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrExpenseNotFound
	}
	return nil
}

// GetPendingExpenses lists the largest pending expenses for the dashboard.
func GetPendingExpenses(db *sql.DB, limit int) ([]*models.Expense, error) {
	query := `SELECT id, category, description, amount, status, created_at, updated_at
		FROM expenses WHERE status = $1 ORDER BY amount DESC LIMIT $2`

	rows, err := db.Query(query, string(models.ExpensePending), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.Status, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// GetExpenseCategories lists the distinct categories in use.
func GetExpenseCategories(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT DISTINCT category FROM expenses ORDER BY category ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
