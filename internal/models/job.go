package models

import "time"

// JobStatus is the publication state of a job posting.
type JobStatus string

// Supported job statuses
const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// JobDB represents a job posting row in the database
type JobDB struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Location     string    `json:"location" db:"location"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Salary       string    `json:"salary" db:"salary"`
	JobType      string    `json:"job_type" db:"job_type"`
	PostedDate   time.Time `json:"posted_date" db:"posted_date"`
	EmployerID   int64     `json:"employer_id" db:"employer_id"`
	Status       JobStatus `json:"status" db:"status"`
}

// JobUpdate is a partial update of a job posting.
// A nil field leaves the stored column untouched.
type JobUpdate struct {
	Title        *string
	Company      *string
	Location     *string
	Description  *string
	Requirements *string
	Salary       *string
	JobType      *string
	Status       *JobStatus
}

// IsEmpty reports whether the update carries no field at all.
func (u JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Company == nil && u.Location == nil &&
		u.Description == nil && u.Requirements == nil && u.Salary == nil &&
		u.JobType == nil && u.Status == nil
}

// Apply merges the non-nil fields of u into job.
func (u JobUpdate) Apply(job *JobDB) {
	if u.Title != nil {
		job.Title = *u.Title
	}
	if u.Company != nil {
		job.Company = *u.Company
	}
	if u.Location != nil {
		job.Location = *u.Location
	}
	if u.Description != nil {
		job.Description = *u.Description
	}
	if u.Requirements != nil {
		job.Requirements = *u.Requirements
	}
	if u.Salary != nil {
		job.Salary = *u.Salary
	}
	if u.JobType != nil {
		job.JobType = *u.JobType
	}
	if u.Status != nil {
		job.Status = *u.Status
	}
}
