package models

import (
	"time"
)

// User represents a registered user of the site
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         string    `json:"role" db:"role"`
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	"admin":  true,
	"client": true,
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// CreateUserInput is the accepted payload for createUser
type CreateUserInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

// ApplyDefaults fills omitted optional fields with their schema defaults
func (in *CreateUserInput) ApplyDefaults() {
	if in.Role == "" {
		in.Role = "client"
	}
}
