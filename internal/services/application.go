package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/repositories"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=application.go -destination=mock_application.go -package=services

// ApplicationReader defines read operations for applications.
type ApplicationReader interface {
	GetByJobAndUser(ctx context.Context, jobID, userID int64) (*models.ApplicationDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ApplicationDB, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.JobApplicationDB, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	Create(ctx context.Context, jobID, userID, resumeID int64, appliedDate time.Time) (*models.ApplicationDB, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error)
	UpdateNotes(ctx context.Context, id int64, notes *string) (*models.ApplicationDB, error)
}

// JobGetter looks a job up by id.
type JobGetter interface {
	GetByID(ctx context.Context, id int64) (*models.JobDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ApplicationService handles job applications and publishes their events.
type ApplicationService struct {
	reader      ApplicationReader
	writer      ApplicationWriter
	jobs        JobGetter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewApplicationService creates an ApplicationService. kafkaWriter may be nil.
func NewApplicationService(
	reader ApplicationReader,
	writer ApplicationWriter,
	jobs JobGetter,
	kafkaWriter KafkaWriter,
) *ApplicationService {
	return &ApplicationService{
		reader:      reader,
		writer:      writer,
		jobs:        jobs,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishEvent publishes an application event to Kafka, keyed by application id.
func (s *ApplicationService) publishEvent(ctx context.Context, eventType string, app *models.ApplicationDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "application_id", app.ID)
		return
	}

	event := models.ApplicationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		UserID:        app.UserID,
		Status:        app.Status,
		Timestamp:     s.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal application event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(app.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish application event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Application event published", "event_id", event.EventID, "type", eventType, "application_id", app.ID)
	}
}

// Apply submits a pending application of the user for the job.
func (s *ApplicationService) Apply(ctx context.Context, jobID, userID, resumeID int64) (*models.ApplicationDB, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to get job", "jobID", jobID, "error", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	existing, err := s.reader.GetByJobAndUser(ctx, jobID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check existing application", "jobID", jobID, "userID", userID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app, err := s.writer.Create(ctx, jobID, userID, resumeID, s.now().UTC())
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, ErrAlreadyApplied
	case err != nil:
		logger.Log.Errorw("failed to create application", "jobID", jobID, "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventApplicationSubmitted, app)
	return app, nil
}

// UpdateStatus sets the application status. Any status may follow any other.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error) {
	app, err := s.writer.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update application status", "applicationID", id, "status", status, "error", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	s.publishEvent(ctx, models.EventApplicationStatusChanged, app)
	return app, nil
}

// UpdateNotes replaces the employer notes; nil clears them.
func (s *ApplicationService) UpdateNotes(ctx context.Context, id int64, notes *string) (*models.ApplicationDB, error) {
	app, err := s.writer.UpdateNotes(ctx, id, notes)
	if err != nil {
		logger.Log.Errorw("failed to update application notes", "applicationID", id, "error", err)
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	s.publishEvent(ctx, models.EventApplicationNotesUpdated, app)
	return app, nil
}

// ListByUser returns the user's applications, newest first.
func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]models.ApplicationDB, error) {
	apps, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user applications", "userID", userID, "error", err)
		return nil, err
	}
	return apps, nil
}

// ListByJob returns the job's applications with applicant contact data.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]models.JobApplicationDB, error) {
	apps, err := s.reader.ListByJob(ctx, jobID)
	if err != nil {
		logger.Log.Errorw("failed to list job applications", "jobID", jobID, "error", err)
		return nil, err
	}
	return apps, nil
}
