package database

import (
	"database/sql"

	"uniadmin/app/models"
)

// GetUserByEmail looks up an active user account for login.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT id, email, password, full_name, is_active, created_at
		FROM users WHERE email = $1 AND is_active = true`

	u := &models.User{}
	err := db.QueryRow(query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.IsActive, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
