package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

const applicationColumns = `id, job_id, user_id, resume_id, status, applied_date, notes`

// ApplicationReadRepository handles application read operations
type ApplicationReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewApplicationReadRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationReadRepository {
	return &ApplicationReadRepository{db: db, txGetter: txGetter}
}

// GetByJobAndUser returns the user's application for the job or nil, nil.
func (r *ApplicationReadRepository) GetByJobAndUser(ctx context.Context, jobID, userID int64) (*models.ApplicationDB, error) {
	const query = `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1 AND user_id = $2
	`

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, jobID, userID)
	logQuery(query, []any{jobID, userID}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByUser returns the user's applications, newest first.
func (r *ApplicationReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.ApplicationDB, error) {
	const query = `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY applied_date DESC, id DESC
	`

	apps := []models.ApplicationDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &apps, query, userID)
	logQuery(query, []any{userID}, len(apps), err)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByJob returns the job's applications with applicant username and email, newest first.
func (r *ApplicationReadRepository) ListByJob(ctx context.Context, jobID int64) ([]models.JobApplicationDB, error) {
	const query = `
		SELECT a.id, a.job_id, a.user_id, a.resume_id, a.status, a.applied_date, a.notes,
		       u.username, u.email
		FROM applications a
		JOIN users u ON a.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_date DESC, a.id DESC
	`

	apps := []models.JobApplicationDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &apps, query, jobID)
	logQuery(query, []any{jobID}, len(apps), err)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ApplicationWriteRepository handles application write operations
type ApplicationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewApplicationWriteRepository(db *sqlx.DB, txGetter TxGetter) *ApplicationWriteRepository {
	return &ApplicationWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a pending application.
// A second application for the same (job, user) pair yields ErrDuplicate.
func (r *ApplicationWriteRepository) Create(ctx context.Context, jobID, userID, resumeID int64, appliedDate time.Time) (*models.ApplicationDB, error) {
	const query = `
		INSERT INTO applications (job_id, user_id, resume_id, status, applied_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + applicationColumns

	args := []any{jobID, userID, resumeID, string(models.ApplicationStatusPending), appliedDate}

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, args...)
	logQuery(query, args, app.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// UpdateStatus sets the status and returns the row, or nil, nil if it does not exist.
func (r *ApplicationWriteRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error) {
	const query = `
		UPDATE applications SET status = $1
		WHERE id = $2
		RETURNING ` + applicationColumns

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, string(status), id)
	logQuery(query, []any{status, id}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateNotes replaces the notes (nil clears them) and returns the row, or nil, nil.
func (r *ApplicationWriteRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (*models.ApplicationDB, error) {
	const query = `
		UPDATE applications SET notes = $1
		WHERE id = $2
		RETURNING ` + applicationColumns

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, notes, id)
	logQuery(query, []any{notes, id}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
