package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-job-board/internal/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a disposable Postgres and applies the migrations.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(ctx, db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

// mustCreateUser inserts a user straight through the write repository.
func mustCreateUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	id, err := NewUserWriteRepository(db, nil).Save(context.Background(), username, username+"@example.com", "hash", "seeker")
	require.NoError(t, err)
	return id
}

func TestTranslateError(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"},
			wantIs: ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "applications_resume_id_fkey"}),
			wantIs: ErrReferenceNotFound,
		},
		{
			name:   "other postgres error",
			err:    &pgconn.PgError{Code: "42P01"},
			wantIs: nil,
		},
		{
			name:   "not a postgres error",
			err:    plain,
			wantIs: plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.wantIs == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestExecutor_PrefersTransaction(t *testing.T) {
	db := &sqlx.DB{}
	tx := &sqlx.Tx{}

	assert.Equal(t, sqlx.ExtContext(db), executor(context.Background(), db, nil))
	assert.Equal(t, sqlx.ExtContext(db), executor(context.Background(), db, func(context.Context) *sqlx.Tx { return nil }))
	assert.Equal(t, sqlx.ExtContext(tx), executor(context.Background(), db, func(context.Context) *sqlx.Tx { return tx }))
}
