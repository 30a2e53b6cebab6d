package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

//go:generate mockgen -source=job.go -destination=mock_job.go -package=services

// JobReader defines read operations for jobs.
type JobReader interface {
	GetByID(ctx context.Context, id int64) (*models.JobDB, error)
	ListActive(ctx context.Context) ([]models.JobDB, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]models.JobDB, error)
}

// JobWriter defines write operations for jobs.
type JobWriter interface {
	Create(ctx context.Context, job models.JobDB) (*models.JobDB, error)
	Update(ctx context.Context, job models.JobDB) (*models.JobDB, error)
	Delete(ctx context.Context, id int64) error
}

// JobCache caches single jobs by id.
type JobCache interface {
	Get(ctx context.Context, id int64) (*models.JobDB, error)
	Set(ctx context.Context, job models.JobDB) error
	Delete(ctx context.Context, id int64) error
}

// JobService handles job postings.
type JobService struct {
	reader JobReader
	writer JobWriter
	cache  JobCache
	now    func() time.Time
}

// NewJobService creates a JobService. cache may be nil.
func NewJobService(reader JobReader, writer JobWriter, cache JobCache) *JobService {
	return &JobService{
		reader: reader,
		writer: writer,
		cache:  cache,
		now:    time.Now,
	}
}

// ListActive returns active jobs, newest first.
func (s *JobService) ListActive(ctx context.Context) ([]models.JobDB, error) {
	jobs, err := s.reader.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

// ListByEmployer returns all jobs of an employer, newest first.
func (s *JobService) ListByEmployer(ctx context.Context, employerID int64) ([]models.JobDB, error) {
	jobs, err := s.reader.ListByEmployer(ctx, employerID)
	if err != nil {
		logger.Log.Errorw("failed to list employer jobs", "employerID", employerID, "error", err)
		return nil, err
	}
	return jobs, nil
}

// GetByID returns a job, reading through the cache when one is configured.
func (s *JobService) GetByID(ctx context.Context, id int64) (*models.JobDB, error) {
	if s.cache != nil {
		job, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("job cache read failed, falling back to store", "jobID", id, "error", err)
		}
		if job != nil {
			return job, nil
		}
	}

	job, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", id, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *job); err != nil {
			logger.Log.Warnw("failed to cache job", "jobID", id, "error", err)
		}
	}

	return job, nil
}

// Create stores a new active job posted now.
func (s *JobService) Create(ctx context.Context, job models.JobDB) (*models.JobDB, error) {
	job.PostedDate = s.now().UTC()
	job.Status = models.JobStatusActive

	created, err := s.writer.Create(ctx, job)
	if err != nil {
		logger.Log.Errorw("failed to create job", "employerID", job.EmployerID, "error", err)
		return nil, err
	}

	logger.Log.Infow("job created", "jobID", created.ID, "employerID", created.EmployerID)
	return created, nil
}

// Update merges upd into the stored job and writes it back.
func (s *JobService) Update(ctx context.Context, id int64, upd models.JobUpdate) (*models.JobDB, error) {
	job, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", id, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if upd.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	upd.Apply(job)

	updated, err := s.writer.Update(ctx, *job)
	if err != nil {
		logger.Log.Errorw("failed to update job", "jobID", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrJobNotFound
	}

	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes a job and its applications.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	job, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", id, "error", err)
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete job", "jobID", id, "error", err)
		return err
	}

	s.invalidate(ctx, id)
	logger.Log.Infow("job deleted", "jobID", id)
	return nil
}

func (s *JobService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached job", "jobID", id, "error", err)
	}
}
