package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

//go:generate mockgen -source=resume.go -destination=mock_resume.go -package=services

// UserGetter looks a user up by id.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ResumeReader defines read operations for resumes.
type ResumeReader interface {
	GetByID(ctx context.Context, id int64) (*models.ResumeDB, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.ResumeDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error)
}

// ResumeWriter defines write operations for resumes.
type ResumeWriter interface {
	Create(ctx context.Context, userID int64, title, fileName string, uploadDate time.Time) (*models.ResumeDB, error)
	Delete(ctx context.Context, id int64) error
	SetDefault(ctx context.Context, userID, id int64) (*models.ResumeDB, error)
	PromoteLatest(ctx context.Context, userID int64) error
}

// ResumeService manages resume records and the default-resume rule.
type ResumeService struct {
	users  UserGetter
	reader ResumeReader
	writer ResumeWriter
	now    func() time.Time
}

// NewResumeService creates a new ResumeService instance.
func NewResumeService(users UserGetter, reader ResumeReader, writer ResumeWriter) *ResumeService {
	return &ResumeService{
		users:  users,
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// resumeFileName builds the stored file name from the owner and upload time.
func resumeFileName(userID int64, uploadedAt time.Time) string {
	return fmt.Sprintf("resume_%d_%s.pdf", userID, uploadedAt.Format("20060102150405"))
}

// ListByUser returns the user's resumes, newest first.
func (s *ResumeService) ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error) {
	resumes, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list resumes", "userID", userID, "error", err)
		return nil, err
	}
	return resumes, nil
}

// Upload records a new resume for the user. The first resume becomes the default.
func (s *ResumeService) Upload(ctx context.Context, userID int64, title string) (*models.ResumeDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if title == "" {
		return nil, ErrMissingResumeTitle
	}

	uploadedAt := s.now().UTC()
	resume, err := s.writer.Create(ctx, userID, title, resumeFileName(userID, uploadedAt), uploadedAt)
	if err != nil {
		logger.Log.Errorw("failed to create resume", "userID", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("resume uploaded", "resumeID", resume.ID, "userID", userID, "is_default", resume.IsDefault)
	return resume, nil
}

// Delete removes the resume. When it was the default, the newest remaining
// resume of the same user takes over.
func (s *ResumeService) Delete(ctx context.Context, id int64) error {
	resume, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get resume", "resumeID", id, "error", err)
		return err
	}
	if resume == nil {
		return ErrResumeNotFound
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete resume", "resumeID", id, "error", err)
		return err
	}

	if resume.IsDefault == 1 {
		if err := s.writer.PromoteLatest(ctx, resume.UserID); err != nil {
			logger.Log.Errorw("failed to promote default resume", "userID", resume.UserID, "error", err)
			return err
		}
	}

	return nil
}

// SetDefault makes the user's resume the default one.
func (s *ResumeService) SetDefault(ctx context.Context, userID, id int64) (*models.ResumeDB, error) {
	resume, err := s.reader.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to get resume", "resumeID", id, "userID", userID, "error", err)
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}

	updated, err := s.writer.SetDefault(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to set default resume", "resumeID", id, "userID", userID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrResumeNotFound
	}

	return updated, nil
}
