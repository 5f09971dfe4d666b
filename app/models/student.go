package models

import "time"

// Student represents an enrolled student.
type Student struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentNo string        `json:"student_no" gorm:"uniqueIndex;not null" validate:"required"`
	FullName  string        `json:"full_name" gorm:"not null" validate:"required,min=2"`
	Program   string        `json:"program" gorm:"not null" validate:"required"`
	Year      int           `json:"year" gorm:"not null" validate:"required,min=1,max=7"`
	Status    StudentStatus `json:"status" gorm:"not null;default:'ACTIVE';type:varchar(20)"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// StudentPatch carries a partial student update.
type StudentPatch struct {
	StudentNo *string        `json:"student_no" validate:"omitempty,min=1"`
	FullName  *string        `json:"full_name" validate:"omitempty,min=2"`
	Program   *string        `json:"program" validate:"omitempty,min=1"`
	Year      *int           `json:"year" validate:"omitempty,min=1,max=7"`
	Status    *StudentStatus `json:"status" validate:"omitempty,oneof=ACTIVE DEFERRED DROPPED"`
}
