package database

import (
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RunMigrations creates the schema and applies necessary updates.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			department VARCHAR(255),
			salary BIGINT NOT NULL DEFAULT 0,
			dob DATE,
			start_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			student_no VARCHAR(50) UNIQUE NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			program VARCHAR(255) NOT NULL,
			year INT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			fee_type VARCHAR(20) NOT NULL,
			amount BIGINT NOT NULL,
			program VARCHAR(255),
			year INT,
			semester VARCHAR(20) NOT NULL,
			academic_year VARCHAR(9) NOT NULL,
			description TEXT,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS student_fees (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			fee_structure_id UUID NOT NULL,
			amount_due BIGINT NOT NULL,
			amount_paid BIGINT NOT NULL DEFAULT 0,
			balance BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			due_date DATE NOT NULL,
			academic_year VARCHAR(9) NOT NULL,
			semester VARCHAR(20) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			payment_no VARCHAR(20) NOT NULL,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			student_fee_id UUID REFERENCES student_fees(id) ON DELETE SET NULL,
			amount BIGINT NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			reference VARCHAR(255),
			receipt_no VARCHAR(255),
			notes TEXT,
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			category VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			amount BIGINT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// Uniqueness backing the ledger invariants: one assignment per
	// (student, fee structure, academic year, semester) and globally
	// unique payment numbers.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_student_fees_assignment
			ON student_fees(student_id, fee_structure_id, academic_year, semester)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_payment_no ON payments(payment_no)`,
		`CREATE INDEX IF NOT EXISTS idx_student_fees_student_id ON student_fees(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_student_fees_status ON student_fees(status)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_paid_at ON payments(paid_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_status ON expenses(status)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_structures_academic_year ON fee_structures(academic_year)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating indexes: %v", err)
			return err
		}
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedAdminUser inserts a default administrator when the users table is
// empty so a fresh deployment can log in.
func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@uniadmin.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO users (id, email, password, full_name, is_active)
		VALUES ($1, $2, $3, 'Administrator', true)
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), email, string(hash))
	if err != nil {
		return err
	}

	log.Printf("Seeded default admin user %s", email)
	return nil
}
