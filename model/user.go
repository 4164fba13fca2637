package model

import "time"

// Role is the closed set of roles a user can hold. The role travels
// inside the JWT claims, so a role change only takes effect for tokens
// issued after the change.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	PasswordHash string    `json:"-"` // never serialized in responses
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
