package models

import "time"

// Staff represents an employed staff member.
type Staff struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	FullName   string      `json:"full_name" gorm:"not null" validate:"required,min=2"`
	Role       StaffRole   `json:"role" gorm:"not null;type:varchar(20)" validate:"required"`
	Department *string     `json:"department,omitempty"`
	Salary     int64       `json:"salary" gorm:"not null;type:bigint" validate:"min=0"`
	DOB        *time.Time  `json:"dob,omitempty" gorm:"type:date"`
	StartDate  time.Time   `json:"start_date" gorm:"not null;type:date" validate:"required"`
	Status     StaffStatus `json:"status" gorm:"not null;default:'ACTIVE';type:varchar(20)"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// StaffPatch carries a partial staff update. Department and DOB are
// clearable with an explicit null.
type StaffPatch struct {
	FullName   *string        `json:"full_name" validate:"omitempty,min=2"`
	Role       *StaffRole     `json:"role" validate:"omitempty,oneof=LECTURER SECURITY CLEANER ADMIN OTHER"`
	Department OptionalString `json:"department"`
	Salary     *int64         `json:"salary" validate:"omitempty,min=0"`
	DOB        OptionalString `json:"dob"`
	StartDate  *CustomDate    `json:"start_date"`
	Status     *StaffStatus   `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED EXITED"`
}
