package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

const jobColumns = `id, title, company, location, description, requirements, salary, job_type, posted_date, employer_id, status`

// JobReadRepository handles job read operations
type JobReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewJobReadRepository(db *sqlx.DB, txGetter TxGetter) *JobReadRepository {
	return &JobReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the job with the given id or nil, nil.
func (r *JobReadRepository) GetByID(ctx context.Context, id int64) (*models.JobDB, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.JobDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &job, query, id)
	logQuery(query, []any{id}, job.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListActive returns active jobs, newest first.
func (r *JobReadRepository) ListActive(ctx context.Context) ([]models.JobDB, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = $1
		ORDER BY posted_date DESC, id DESC
	`

	jobs := []models.JobDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &jobs, query, string(models.JobStatusActive))
	logQuery(query, []any{models.JobStatusActive}, len(jobs), err)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByEmployer returns every job of the employer regardless of status, newest first.
func (r *JobReadRepository) ListByEmployer(ctx context.Context, employerID int64) ([]models.JobDB, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE employer_id = $1
		ORDER BY posted_date DESC, id DESC
	`

	jobs := []models.JobDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &jobs, query, employerID)
	logQuery(query, []any{employerID}, len(jobs), err)

	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobWriteRepository handles job write operations
type JobWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewJobWriteRepository(db *sqlx.DB, txGetter TxGetter) *JobWriteRepository {
	return &JobWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the job and returns the stored row. job.ID is ignored.
func (r *JobWriteRepository) Create(ctx context.Context, job models.JobDB) (*models.JobDB, error) {
	const query = `
		INSERT INTO jobs (title, company, location, description, requirements, salary,
		                  job_type, posted_date, employer_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + jobColumns

	args := []any{
		job.Title, job.Company, job.Location, job.Description, job.Requirements, job.Salary,
		job.JobType, job.PostedDate, job.EmployerID, string(job.Status),
	}

	var created models.JobDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// Update overwrites the mutable columns of the job identified by job.ID.
// employer_id and posted_date are never changed. It returns nil, nil if the job is gone.
func (r *JobWriteRepository) Update(ctx context.Context, job models.JobDB) (*models.JobDB, error) {
	const query = `
		UPDATE jobs
		SET title = $1, company = $2, location = $3, description = $4,
		    requirements = $5, salary = $6, job_type = $7, status = $8
		WHERE id = $9
		RETURNING ` + jobColumns

	args := []any{
		job.Title, job.Company, job.Location, job.Description,
		job.Requirements, job.Salary, job.JobType, string(job.Status),
		job.ID,
	}

	var updated models.JobDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, args, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// Delete removes the job row only. Applications referencing it are kept.
func (r *JobWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM jobs WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return err
}
