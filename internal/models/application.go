package models

import "time"

// ApplicationStatus is the review state of a job application.
// Any status may follow any other; there is no transition table.
type ApplicationStatus string

// Supported application statuses
const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ApplicationDB represents an application row in the database
type ApplicationDB struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"job_id" db:"job_id"`
	UserID      int64             `json:"user_id" db:"user_id"`
	ResumeID    *int64            `json:"resume_id" db:"resume_id"` // NULL once the resume is deleted
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedDate time.Time         `json:"applied_date" db:"applied_date"`
	Notes       *string           `json:"notes" db:"notes"`
}

// JobApplicationDB is an application joined with its applicant's contact data.
type JobApplicationDB struct {
	ApplicationDB
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}
