package models

import "time"

// User is an administrative account used to authenticate against the API.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=8"`
	FullName  string    `json:"full_name" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
