package models

import "time"

// UserType distinguishes job seekers from employers.
type UserType string

// Supported user types
const (
	UserTypeSeeker   UserType = "seeker"
	UserTypeEmployer UserType = "employer"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	UserType     UserType  `json:"user_type" db:"user_type"`   // seeker or employer
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Registration timestamp
}
