package models

import "time"

// ResumeDB represents a resume row in the database.
// IsDefault is 1 for exactly one resume per user.
type ResumeDB struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	FileName   string    `json:"file_name" db:"file_name"`
	UploadDate time.Time `json:"upload_date" db:"upload_date"`
	IsDefault  int       `json:"is_default" db:"is_default"`
}
