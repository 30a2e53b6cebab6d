package services

import (
	"context"

	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

// StatsReader defines the counting queries behind dashboard stats.
type StatsReader interface {
	CountJobs(ctx context.Context, employerID int64, status *models.JobStatus) (int64, error)
	ListJobIDs(ctx context.Context, employerID int64) ([]int64, error)
	CountApplicationsForJobs(ctx context.Context, jobIDs []int64, status *models.ApplicationStatus) (int64, error)
	CountApplicationsForUser(ctx context.Context, userID int64, status *models.ApplicationStatus) (int64, error)
}

// StatsService composes dashboard counters.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

func statusPtr[T any](v T) *T {
	return &v
}

// Employer returns posting and applicant counters for the employer.
// An unknown employer yields all zeros.
func (s *StatsService) Employer(ctx context.Context, employerID int64) (*models.EmployerStats, error) {
	var (
		stats models.EmployerStats
		err   error
	)

	if stats.TotalJobs, err = s.reader.CountJobs(ctx, employerID, nil); err != nil {
		logger.Log.Errorw("failed to count jobs", "employerID", employerID, "error", err)
		return nil, err
	}
	if stats.ActiveJobs, err = s.reader.CountJobs(ctx, employerID, statusPtr(models.JobStatusActive)); err != nil {
		logger.Log.Errorw("failed to count active jobs", "employerID", employerID, "error", err)
		return nil, err
	}

	jobIDs, err := s.reader.ListJobIDs(ctx, employerID)
	if err != nil {
		logger.Log.Errorw("failed to list job ids", "employerID", employerID, "error", err)
		return nil, err
	}
	if len(jobIDs) == 0 {
		return &stats, nil
	}

	counters := []struct {
		dst    *int64
		status *models.ApplicationStatus
	}{
		{&stats.TotalApplications, nil},
		{&stats.ReviewedApplications, statusPtr(models.ApplicationStatusReviewed)},
		{&stats.InterviewedCandidates, statusPtr(models.ApplicationStatusInterviewed)},
	}
	for _, c := range counters {
		if *c.dst, err = s.reader.CountApplicationsForJobs(ctx, jobIDs, c.status); err != nil {
			logger.Log.Errorw("failed to count applications", "employerID", employerID, "error", err)
			return nil, err
		}
	}

	return &stats, nil
}

// Seeker returns application counters for the user.
func (s *StatsService) Seeker(ctx context.Context, userID int64) (*models.SeekerStats, error) {
	var (
		stats models.SeekerStats
		err   error
	)

	counters := []struct {
		dst    *int64
		status *models.ApplicationStatus
	}{
		{&stats.TotalApplications, nil},
		{&stats.PendingApplications, statusPtr(models.ApplicationStatusPending)},
		{&stats.ReviewedApplications, statusPtr(models.ApplicationStatusReviewed)},
		{&stats.Interviews, statusPtr(models.ApplicationStatusInterviewed)},
		{&stats.Offers, statusPtr(models.ApplicationStatusOffered)},
	}
	for _, c := range counters {
		if *c.dst, err = s.reader.CountApplicationsForUser(ctx, userID, c.status); err != nil {
			logger.Log.Errorw("failed to count applications", "userID", userID, "error", err)
			return nil, err
		}
	}

	return &stats, nil
}
