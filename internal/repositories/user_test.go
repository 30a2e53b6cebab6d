package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	id, err := repo.Save(ctx, "alice", "alice@example.com", "hash123", models.UserTypeSeeker)
	require.NoError(t, err)
	assert.NotZero(t, id)

	var user models.UserDB
	err = db.Get(&user, "SELECT id, username, email, password_hash, user_type, created_at FROM users WHERE id = $1", id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, models.UserTypeSeeker, user.UserType)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice", "other@example.com", "hash", models.UserTypeSeeker)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Save(ctx, "alice2", "alice@example.com", "hash", models.UserTypeEmployer)
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)
	ctx := context.Background()

	charlieID, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "secret", models.UserTypeSeeker)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "secret2", models.UserTypeEmployer)
	require.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		username := "charlie"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByEmail", func(t *testing.T) {
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("EitherMatches", func(t *testing.T) {
		username := "nobody"
		email := "dave@example.com"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dave", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		username := "nonexistent"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, charlieID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)

		missing, err := readRepo.GetByID(ctx, charlieID+1000)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}
