package models

import "time"

// User is the authenticated account profile.
type User struct {
	ID           string     `json:"_id"`
	ProfileImage string     `json:"profileImage"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Account roles known to the service.
const (
	RoleBorrower  = "borrower"
	RoleLibrarian = "librarian"
)
