package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists   = errors.New("username or email already in use")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrNoFieldsToUpdate    = errors.New("no valid fields to update")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrMissingResumeTitle  = errors.New("missing resume title")
)
