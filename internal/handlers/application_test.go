package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListApplicationsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("by user", func(t *testing.T) {
		m := NewMockUserApplicationLister(ctrl)
		m.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/1/applications", nil), map[string]string{"id": "1"})
		rr := httptest.NewRecorder()
		NewListUserApplicationsHandler(m)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("by job includes applicant contact", func(t *testing.T) {
		m := NewMockJobApplicationLister(ctrl)
		m.EXPECT().ListByJob(gomock.Any(), int64(7)).Return([]models.JobApplicationDB{{
			ApplicationDB: models.ApplicationDB{ID: 3, JobID: 7, UserID: 1, Status: models.ApplicationStatusPending},
			Username:      "muser",
			Email:         "muser@example.com",
		}}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/jobs/7/applications", nil), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		NewListJobApplicationsHandler(m)(rr, req)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "muser", resp[0]["username"])
		assert.Equal(t, "muser@example.com", resp[0]["email"])
		assert.Equal(t, float64(7), resp[0]["job_id"])
		assert.Equal(t, "pending", resp[0]["status"])
	})
}

func TestApplyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockApplier)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success with string ids",
			body: `{"userId":"1","resumeId":"2"}`,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), int64(7), int64(1), int64(2)).
					Return(&models.ApplicationDB{ID: 1, JobID: 7, UserID: 1, Status: models.ApplicationStatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing resume",
			body:          `{"userId":1}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name: "job not found",
			body: `{"userId":1,"resumeId":2}`,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), int64(7), int64(1), int64(2)).Return(nil, services.ErrJobNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Job not found",
		},
		{
			name: "already applied",
			body: `{"userId":1,"resumeId":2}`,
			mockSetup: func(m *MockApplier) {
				m.EXPECT().Apply(gomock.Any(), int64(7), int64(1), int64(2)).Return(nil, services.ErrAlreadyApplied)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "You have already applied for this job",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockApplier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/jobs/7/apply", bytes.NewBufferString(tt.body)), map[string]string{"id": "7"})
			rr := httptest.NewRecorder()
			NewApplyHandler(m)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestUpdateApplicationStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockApplicationStatusUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"status":"interviewed"}`,
			mockSetup: func(m *MockApplicationStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), int64(3), models.ApplicationStatusInterviewed).
					Return(&models.ApplicationDB{ID: 3, Status: models.ApplicationStatusInterviewed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "missing status",
			body:          `{}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing status",
		},
		{
			name:          "unknown status",
			body:          `{"status":"hired"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid status",
		},
		{
			name: "not found",
			body: `{"status":"rejected"}`,
			mockSetup: func(m *MockApplicationStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), int64(3), models.ApplicationStatusRejected).
					Return(nil, services.ErrApplicationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Application not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockApplicationStatusUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/applications/3/status", bytes.NewBufferString(tt.body)), map[string]string{"id": "3"})
			rr := httptest.NewRecorder()
			NewUpdateApplicationStatusHandler(m)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestUpdateApplicationNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := "call back on Monday"
	m := NewMockApplicationNotesUpdater(ctrl)
	m.EXPECT().UpdateNotes(gomock.Any(), int64(3), &notes).Return(&models.ApplicationDB{ID: 3, Notes: &notes}, nil)
	m.EXPECT().UpdateNotes(gomock.Any(), int64(3), nil).Return(&models.ApplicationDB{ID: 3}, nil)
	m.EXPECT().UpdateNotes(gomock.Any(), int64(8), nil).Return(nil, services.ErrApplicationNotFound)

	do := func(id, body string) *httptest.ResponseRecorder {
		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/applications/"+id+"/notes", bytes.NewBufferString(body)), map[string]string{"id": id})
		rr := httptest.NewRecorder()
		NewUpdateApplicationNotesHandler(m)(rr, req)
		return rr
	}

	rr := do("3", `{"notes":"call back on Monday"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	var app models.ApplicationDB
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &app))
	assert.Equal(t, &notes, app.Notes)

	rr = do("3", `{"notes":null}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"notes":null`)

	rr = do("8", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Application not found", decodeError(t, rr))
}
