package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestJobService_GetByID(t *testing.T) {
	job := &models.JobDB{ID: 5, Title: "Go developer", Status: models.JobStatusActive}

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockJobReader(ctrl)
		cache := services.NewMockJobCache(ctrl)
		svc := services.NewJobService(reader, services.NewMockJobWriter(ctrl), cache)

		cache.EXPECT().Get(gomock.Any(), int64(5)).Return(job, nil)

		got, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, job, got)
	})

	t.Run("cache miss reads through and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockJobReader(ctrl)
		cache := services.NewMockJobCache(ctrl)
		svc := services.NewJobService(reader, services.NewMockJobWriter(ctrl), cache)

		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, nil),
			reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(job, nil),
			cache.EXPECT().Set(gomock.Any(), *job).Return(nil),
		)

		got, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, job, got)
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockJobReader(ctrl)
		cache := services.NewMockJobCache(ctrl)
		svc := services.NewJobService(reader, services.NewMockJobWriter(ctrl), cache)

		cache.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, errors.New("redis down"))
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(job, nil)
		cache.EXPECT().Set(gomock.Any(), *job).Return(errors.New("redis down"))

		got, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, job, got)
	})

	t.Run("not found without cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockJobReader(ctrl)
		svc := services.NewJobService(reader, services.NewMockJobWriter(ctrl), nil)

		reader.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		got, err := svc.GetByID(context.Background(), 9)
		assert.ErrorIs(t, err, services.ErrJobNotFound)
		assert.Nil(t, got)
	})
}

func TestJobService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockJobWriter(ctrl)
	svc := services.NewJobService(services.NewMockJobReader(ctrl), writer, nil)

	input := models.JobDB{Title: "SRE", Company: "Acme", EmployerID: 2, Status: models.JobStatusClosed}
	before := time.Now().UTC().Add(-time.Second)

	writer.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job models.JobDB) (*models.JobDB, error) {
			assert.Equal(t, models.JobStatusActive, job.Status)
			assert.True(t, job.PostedDate.After(before))
			job.ID = 11
			return &job, nil
		})

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "SRE", created.Title)
}

func TestJobService_Update(t *testing.T) {
	stored := models.JobDB{ID: 4, Title: "Old", Company: "Acme", Status: models.JobStatusActive}
	closed := models.JobStatusClosed

	tests := []struct {
		name    string
		upd     models.JobUpdate
		setup   func(r *services.MockJobReader, w *services.MockJobWriter, c *services.MockJobCache)
		wantErr error
		want    *models.JobDB
	}{
		{
			name: "merges fields and invalidates cache",
			upd:  models.JobUpdate{Title: strPtr("New"), Status: &closed},
			setup: func(r *services.MockJobReader, w *services.MockJobWriter, c *services.MockJobCache) {
				job := stored
				r.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&job, nil)
				merged := stored
				merged.Title = "New"
				merged.Status = closed
				w.EXPECT().Update(gomock.Any(), merged).Return(&merged, nil)
				c.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
			},
			want: &models.JobDB{ID: 4, Title: "New", Company: "Acme", Status: closed},
		},
		{
			name: "missing job wins over empty update",
			upd:  models.JobUpdate{},
			setup: func(r *services.MockJobReader, w *services.MockJobWriter, c *services.MockJobCache) {
				r.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, nil)
			},
			wantErr: services.ErrJobNotFound,
		},
		{
			name: "empty update",
			upd:  models.JobUpdate{},
			setup: func(r *services.MockJobReader, w *services.MockJobWriter, c *services.MockJobCache) {
				job := stored
				r.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&job, nil)
			},
			wantErr: services.ErrNoFieldsToUpdate,
		},
		{
			name: "writer error",
			upd:  models.JobUpdate{Salary: strPtr("100k")},
			setup: func(r *services.MockJobReader, w *services.MockJobWriter, c *services.MockJobCache) {
				job := stored
				r.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&job, nil)
				w.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := services.NewMockJobReader(ctrl)
			w := services.NewMockJobWriter(ctrl)
			c := services.NewMockJobCache(ctrl)
			tt.setup(r, w, c)

			svc := services.NewJobService(r, w, c)
			got, err := svc.Update(context.Background(), 4, tt.upd)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobService_Delete(t *testing.T) {
	t.Run("deletes and invalidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := services.NewMockJobReader(ctrl)
		w := services.NewMockJobWriter(ctrl)
		c := services.NewMockJobCache(ctrl)

		r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.JobDB{ID: 3}, nil)
		w.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
		c.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("redis down"))

		assert.NoError(t, services.NewJobService(r, w, c).Delete(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := services.NewMockJobReader(ctrl)
		r.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, nil)

		err := services.NewJobService(r, services.NewMockJobWriter(ctrl), nil).Delete(context.Background(), 3)
		assert.ErrorIs(t, err, services.ErrJobNotFound)
	})
}

func TestJobService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := services.NewMockJobReader(ctrl)
	svc := services.NewJobService(r, services.NewMockJobWriter(ctrl), nil)

	jobs := []models.JobDB{{ID: 2}, {ID: 1}}
	r.EXPECT().ListActive(gomock.Any()).Return(jobs, nil)
	r.EXPECT().ListByEmployer(gomock.Any(), int64(8)).Return(nil, errors.New("db error"))

	got, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs, got)

	_, err = svc.ListByEmployer(context.Background(), 8)
	assert.EqualError(t, err, "db error")
}
