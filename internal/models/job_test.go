package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobUpdate_IsEmpty(t *testing.T) {
	assert.True(t, JobUpdate{}.IsEmpty())

	title := "Go developer"
	assert.False(t, JobUpdate{Title: &title}.IsEmpty())

	status := JobStatusClosed
	assert.False(t, JobUpdate{Status: &status}.IsEmpty())
}

func TestJobUpdate_Apply(t *testing.T) {
	job := JobDB{
		ID:           1,
		Title:        "Backend Engineer",
		Company:      "TechCorp Inc.",
		Location:     "Remote",
		Description:  "APIs",
		Requirements: "Go",
		Salary:       "$100k",
		JobType:      "full-time",
		EmployerID:   2,
		Status:       JobStatusActive,
	}

	title := "Senior Backend Engineer"
	jobType := "contract"
	status := JobStatusClosed
	JobUpdate{Title: &title, JobType: &jobType, Status: &status}.Apply(&job)

	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "contract", job.JobType)
	assert.Equal(t, JobStatusClosed, job.Status)

	// untouched fields
	assert.Equal(t, "TechCorp Inc.", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "$100k", job.Salary)
	assert.Equal(t, int64(2), job.EmployerID)
}
