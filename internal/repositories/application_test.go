package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	now := time.Now().UTC()

	seekerID := mustCreateUser(t, db, "muser")
	otherID := mustCreateUser(t, db, "other")

	job, err := NewJobWriteRepository(db, nil).Create(ctx, newTestJob("Data Scientist", 2, now))
	require.NoError(t, err)
	resume, err := NewResumeWriteRepository(db, nil).Create(ctx, seekerID, "CV", "resume.pdf", now)
	require.NoError(t, err)
	otherResume, err := NewResumeWriteRepository(db, nil).Create(ctx, otherID, "CV", "other.pdf", now)
	require.NoError(t, err)

	writeRepo := NewApplicationWriteRepository(db, nil)
	readRepo := NewApplicationReadRepository(db, nil)

	app, err := writeRepo.Create(ctx, job.ID, seekerID, resume.ID, now.Add(-time.Minute))
	require.NoError(t, err)
	second, err := writeRepo.Create(ctx, job.ID, otherID, otherResume.ID, now)
	require.NoError(t, err)

	t.Run("Create is pending", func(t *testing.T) {
		assert.Equal(t, models.ApplicationStatusPending, app.Status)
		require.NotNil(t, app.ResumeID)
		assert.Equal(t, resume.ID, *app.ResumeID)
		assert.Nil(t, app.Notes)
	})

	t.Run("Create duplicate pair", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, job.ID, seekerID, resume.ID, now)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Create with unknown resume is stored as given", func(t *testing.T) {
		job2, err := NewJobWriteRepository(db, nil).Create(ctx, newTestJob("Other", 2, now))
		require.NoError(t, err)

		thirdID := mustCreateUser(t, db, "third")
		created, err := writeRepo.Create(ctx, job2.ID, thirdID, 999999, now)
		require.NoError(t, err)
		require.NotNil(t, created.ResumeID)
		assert.Equal(t, int64(999999), *created.ResumeID)
	})

	t.Run("GetByJobAndUser", func(t *testing.T) {
		got, err := readRepo.GetByJobAndUser(ctx, job.ID, seekerID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, app.ID, got.ID)

		none, err := readRepo.GetByJobAndUser(ctx, job.ID, 999999)
		assert.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		updated, err := writeRepo.UpdateStatus(ctx, app.ID, models.ApplicationStatusReviewed)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, models.ApplicationStatusReviewed, updated.Status)

		missing, err := writeRepo.UpdateStatus(ctx, 999999, models.ApplicationStatusReviewed)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("UpdateNotes set and clear", func(t *testing.T) {
		notes := "Strong candidate, schedule interview"
		updated, err := writeRepo.UpdateNotes(ctx, app.ID, &notes)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, notes, *updated.Notes)

		cleared, err := writeRepo.UpdateNotes(ctx, app.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, cleared.Notes)
	})

	t.Run("ListByUser", func(t *testing.T) {
		apps, err := readRepo.ListByUser(ctx, seekerID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, app.ID, apps[0].ID)
	})

	t.Run("ListByJob joins applicant", func(t *testing.T) {
		apps, err := readRepo.ListByJob(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, apps, 2)

		assert.Equal(t, second.ID, apps[0].ID)
		assert.Equal(t, "other", apps[0].Username)
		assert.Equal(t, "other@example.com", apps[0].Email)
		assert.Equal(t, app.ID, apps[1].ID)
		assert.Equal(t, "muser", apps[1].Username)
	})

	t.Run("resume deletion keeps application", func(t *testing.T) {
		require.NoError(t, NewResumeWriteRepository(db, nil).Delete(ctx, otherResume.ID))

		got, err := readRepo.GetByJobAndUser(ctx, job.ID, otherID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, second.ID, got.ID)
		require.NotNil(t, got.ResumeID)
		assert.Equal(t, otherResume.ID, *got.ResumeID)
	})

	t.Run("job deletion keeps applications", func(t *testing.T) {
		require.NoError(t, NewJobWriteRepository(db, nil).Delete(ctx, job.ID))

		got, err := readRepo.GetByJobAndUser(ctx, job.ID, seekerID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, app.ID, got.ID)

		apps, err := readRepo.ListByUser(ctx, seekerID)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, app.ID, apps[0].ID)
	})
}
