package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDefaults(t *testing.T, db *sqlx.DB, userID int64) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM resumes WHERE user_id = $1 AND is_default = 1", userID))
	return n
}

func TestResumeRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	now := time.Now().UTC()

	userID := mustCreateUser(t, db, "muser")
	strangerID := mustCreateUser(t, db, "stranger")

	writeRepo := NewResumeWriteRepository(db, nil)
	readRepo := NewResumeReadRepository(db, nil)

	first, err := writeRepo.Create(ctx, userID, "Software Developer Resume", "resume_1.pdf", now.Add(-2*time.Hour))
	require.NoError(t, err)
	second, err := writeRepo.Create(ctx, userID, "Data Science Resume", "resume_2.pdf", now.Add(-time.Hour))
	require.NoError(t, err)

	t.Run("first upload is default", func(t *testing.T) {
		assert.Equal(t, 1, first.IsDefault)
		assert.Equal(t, 0, second.IsDefault)
		assert.Equal(t, 1, countDefaults(t, db, userID))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, 999999, "CV", "cv.pdf", now)
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("ListByUser newest first", func(t *testing.T) {
		resumes, err := readRepo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, resumes, 2)
		assert.Equal(t, second.ID, resumes[0].ID)
		assert.Equal(t, first.ID, resumes[1].ID)
	})

	t.Run("GetByIDAndUser checks ownership", func(t *testing.T) {
		got, err := readRepo.GetByIDAndUser(ctx, second.ID, userID)
		require.NoError(t, err)
		require.NotNil(t, got)

		none, err := readRepo.GetByIDAndUser(ctx, second.ID, strangerID)
		assert.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("SetDefault swaps the flag", func(t *testing.T) {
		updated, err := writeRepo.SetDefault(ctx, userID, second.ID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 1, updated.IsDefault)
		assert.Equal(t, 1, countDefaults(t, db, userID))

		old, err := readRepo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, old.IsDefault)
	})

	t.Run("SetDefault foreign resume", func(t *testing.T) {
		got, err := writeRepo.SetDefault(ctx, strangerID, first.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete default then promote latest", func(t *testing.T) {
		third, err := writeRepo.Create(ctx, userID, "Frontend Resume", "resume_3.pdf", now)
		require.NoError(t, err)
		assert.Equal(t, 0, third.IsDefault)

		require.NoError(t, writeRepo.Delete(ctx, second.ID))
		assert.Equal(t, 0, countDefaults(t, db, userID))

		require.NoError(t, writeRepo.PromoteLatest(ctx, userID))
		promoted, err := readRepo.GetByID(ctx, third.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, promoted.IsDefault)
		assert.Equal(t, 1, countDefaults(t, db, userID))

		// no-op once a default exists
		require.NoError(t, writeRepo.PromoteLatest(ctx, userID))
		assert.Equal(t, 1, countDefaults(t, db, userID))
	})

	t.Run("PromoteLatest without resumes", func(t *testing.T) {
		assert.NoError(t, writeRepo.PromoteLatest(ctx, strangerID))
	})
}
