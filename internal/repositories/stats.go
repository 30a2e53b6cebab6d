package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

// StatsReadRepository runs the aggregate counts behind the dashboards.
type StatsReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStatsReadRepository(db *sqlx.DB, txGetter TxGetter) *StatsReadRepository {
	return &StatsReadRepository{db: db, txGetter: txGetter}
}

// CountJobs counts the employer's jobs, optionally restricted to one status.
func (r *StatsReadRepository) CountJobs(ctx context.Context, employerID int64, status *models.JobStatus) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM jobs
		WHERE employer_id = $1
		  AND ($2::TEXT IS NULL OR status = $2)
	`

	args := []any{employerID, statusArg(status)}

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}

// ListJobIDs returns the ids of all the employer's jobs.
func (r *StatsReadRepository) ListJobIDs(ctx context.Context, employerID int64) ([]int64, error) {
	const query = `SELECT id FROM jobs WHERE employer_id = $1 ORDER BY id`

	ids := []int64{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, employerID)
	logQuery(query, []any{employerID}, ids, err)

	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountApplicationsForJobs counts applications to any of jobIDs, optionally
// restricted to one status. An empty id set counts zero without a query.
func (r *StatsReadRepository) CountApplicationsForJobs(ctx context.Context, jobIDs []int64, status *models.ApplicationStatus) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM applications WHERE job_id IN (?)`
	inArgs := []any{jobIDs}
	if status != nil {
		query += ` AND status = ?`
		inArgs = append(inArgs, string(*status))
	}

	query, args, err := sqlx.In(query, inArgs...)
	if err != nil {
		return 0, err
	}

	exec := executor(ctx, r.db, r.txGetter)
	query = exec.Rebind(query)

	var count int64
	err = sqlx.GetContext(ctx, exec, &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}

// CountApplicationsForUser counts the user's applications, optionally restricted to one status.
func (r *StatsReadRepository) CountApplicationsForUser(ctx context.Context, userID int64, status *models.ApplicationStatus) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM applications
		WHERE user_id = $1
		  AND ($2::TEXT IS NULL OR status = $2)
	`

	args := []any{userID, statusArg(status)}

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}

// statusArg turns an optional enum into a nullable SQL text argument.
func statusArg[T ~string](status *T) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
