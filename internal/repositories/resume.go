package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

const resumeColumns = `id, user_id, title, file_name, upload_date, is_default`

// ResumeReadRepository handles resume read operations
type ResumeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewResumeReadRepository(db *sqlx.DB, txGetter TxGetter) *ResumeReadRepository {
	return &ResumeReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the resume or nil, nil.
func (r *ResumeReadRepository) GetByID(ctx context.Context, id int64) (*models.ResumeDB, error) {
	const query = `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	var resume models.ResumeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &resume, query, id)
	logQuery(query, []any{id}, resume.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// GetByIDAndUser returns the resume only if it belongs to the user, otherwise nil, nil.
func (r *ResumeReadRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.ResumeDB, error) {
	const query = `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND user_id = $2`

	var resume models.ResumeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &resume, query, id, userID)
	logQuery(query, []any{id, userID}, resume.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListByUser returns the user's resumes, newest first.
func (r *ResumeReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error) {
	const query = `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE user_id = $1
		ORDER BY upload_date DESC, id DESC
	`

	resumes := []models.ResumeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &resumes, query, userID)
	logQuery(query, []any{userID}, len(resumes), err)

	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// ResumeWriteRepository handles resume write operations
type ResumeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewResumeWriteRepository(db *sqlx.DB, txGetter TxGetter) *ResumeWriteRepository {
	return &ResumeWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a resume. It becomes the default when the user has no default yet;
// the decision is taken by the INSERT itself.
func (r *ResumeWriteRepository) Create(ctx context.Context, userID int64, title, fileName string, uploadDate time.Time) (*models.ResumeDB, error) {
	const query = `
		INSERT INTO resumes (user_id, title, file_name, upload_date, is_default)
		VALUES ($1, $2, $3, $4,
		        CASE WHEN EXISTS (SELECT 1 FROM resumes WHERE user_id = $1 AND is_default = 1)
		             THEN 0 ELSE 1 END)
		RETURNING ` + resumeColumns

	args := []any{userID, title, fileName, uploadDate}

	var resume models.ResumeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &resume, query, args...)
	logQuery(query, args, resume.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &resume, nil
}

// Delete removes the resume. Applications referencing it are left untouched.
func (r *ResumeWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM resumes WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return err
}

// SetDefault flags the resume as the user's default and clears the flag on the
// user's other resumes in one statement. It returns nil, nil when the resume is
// not the user's.
func (r *ResumeWriteRepository) SetDefault(ctx context.Context, userID, id int64) (*models.ResumeDB, error) {
	const query = `
		WITH updated AS (
			UPDATE resumes
			SET is_default = CASE WHEN id = $2 THEN 1 ELSE 0 END
			WHERE user_id = $1
			RETURNING ` + resumeColumns + `
		)
		SELECT ` + resumeColumns + ` FROM updated WHERE id = $2
	`

	var resume models.ResumeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &resume, query, userID, id)
	logQuery(query, []any{userID, id}, resume.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// PromoteLatest makes the user's newest resume the default if the user has
// resumes but none of them is the default.
func (r *ResumeWriteRepository) PromoteLatest(ctx context.Context, userID int64) error {
	const query = `
		UPDATE resumes SET is_default = 1
		WHERE id = (
			SELECT id FROM resumes
			WHERE user_id = $1
			ORDER BY upload_date DESC, id DESC
			LIMIT 1
		)
		AND NOT EXISTS (SELECT 1 FROM resumes WHERE user_id = $1 AND is_default = 1)
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	return err
}
