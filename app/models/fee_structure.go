package models

import "time"

// FeeStructure is a fee template. Program and Year optionally scope which
// students the fee applies to; nil means the fee applies across the board.
type FeeStructure struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	FeeType      FeeType   `json:"fee_type" gorm:"not null;type:varchar(20)" validate:"required"`
	Amount       int64     `json:"amount" gorm:"not null;type:bigint" validate:"required,min=1"`
	Program      *string   `json:"program,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Semester     Semester  `json:"semester" gorm:"not null;type:varchar(20)" validate:"required"`
	AcademicYear string    `json:"academic_year" gorm:"not null" validate:"required"`
	Description  *string   `json:"description,omitempty" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FeeStructurePatch carries a partial update. Only fields present in the
// request mutate state; Program, Year and Description distinguish an absent
// field from an explicit null, which clears the value.
type FeeStructurePatch struct {
	Name         *string        `json:"name"`
	FeeType      *FeeType       `json:"fee_type" validate:"omitempty,oneof=TUITION ACCOMMODATION LIBRARY LABORATORY REGISTRATION EXAMINATION SCHOOL_TRIP SPORTS MEDICAL OTHER"`
	Amount       *int64         `json:"amount" validate:"omitempty,min=1"`
	Program      OptionalString `json:"program"`
	Year         OptionalInt    `json:"year"`
	Semester     *Semester      `json:"semester" validate:"omitempty,oneof=SEMESTER_1 SEMESTER_2 SEMESTER_3"`
	AcademicYear *string        `json:"academic_year" validate:"omitempty,min=1"`
	Description  OptionalString `json:"description"`
	IsActive     *bool          `json:"is_active"`
}
