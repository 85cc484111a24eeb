package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:64"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	DisplayName  string    `json:"displayName,omitempty"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"size:16;not null;default:'customer'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
