package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJobsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty list encodes as array", func(t *testing.T) {
		m := NewMockJobLister(ctrl)
		m.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewListJobsHandler(m)(rr, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("jobs", func(t *testing.T) {
		m := NewMockJobLister(ctrl)
		m.EXPECT().ListActive(gomock.Any()).Return([]models.JobDB{{ID: 2, JobType: "full-time"}, {ID: 1}}, nil)

		rr := httptest.NewRecorder()
		NewListJobsHandler(m)(rr, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "full-time", resp[0]["job_type"])
	})

	t.Run("error", func(t *testing.T) {
		m := NewMockJobLister(ctrl)
		m.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListJobsHandler(m)(rr, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListEmployerJobsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockEmployerJobLister(ctrl)
	m.EXPECT().ListByEmployer(gomock.Any(), int64(2)).Return([]models.JobDB{{ID: 5, EmployerID: 2, Status: models.JobStatusClosed}}, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/employers/2/jobs", nil), map[string]string{"id": "2"})
	rr := httptest.NewRecorder()
	NewListEmployerJobsHandler(m)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []models.JobDB
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.JobStatusClosed, resp[0].Status)
}

func TestGetJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockJobGetter)
		expectedCode int
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func(m *MockJobGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.JobDB{ID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "9",
			mockSetup: func(m *MockJobGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, services.ErrJobNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "id out of range",
			id:           "99999999999999999999",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockJobGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/jobs/"+tt.id, nil), map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()
			NewGetJobHandler(m)(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	full := `{"title":"Go dev","company":"Acme","location":"Remote","description":"d","requirements":"","salary":"100k","jobType":"full-time","employerId":"2"}`

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockJobCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success with string employer id and empty requirements",
			body: full,
			mockSetup: func(m *MockJobCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.JobDB{
						Title:       "Go dev",
						Company:     "Acme",
						Location:    "Remote",
						Description: "d",
						Salary:      "100k",
						JobType:     "full-time",
						EmployerID:  2,
					}).
					Return(&models.JobDB{ID: 1, Title: "Go dev", EmployerID: 2, Status: models.JobStatusActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing field",
			body:          `{"title":"Go dev","company":"Acme"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required fields",
		},
		{
			name:          "non numeric employer id",
			body:          `{"title":"t","company":"c","location":"l","description":"d","requirements":"r","salary":"s","jobType":"j","employerId":"abc"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "store error",
			body: full,
			mockSetup: func(m *MockJobCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockJobCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			rr := httptest.NewRecorder()
			NewCreateJobHandler(m)(rr, httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestUpdateJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	title := "Senior Go dev"
	closed := models.JobStatusClosed
	jobType := "contract"

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockJobUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "partial update drops unknown keys",
			body: `{"title":"Senior Go dev","jobType":"contract","status":"closed","employer_id":99}`,
			mockSetup: func(m *MockJobUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(4), models.JobUpdate{Title: &title, JobType: &jobType, Status: &closed}).
					Return(&models.JobDB{ID: 4, Title: title, Status: closed}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no known keys",
			body: `{"foo":"bar"}`,
			mockSetup: func(m *MockJobUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(4), models.JobUpdate{}).Return(nil, services.ErrNoFieldsToUpdate)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "No valid fields to update",
		},
		{
			name: "job not found",
			body: `{"title":"x"}`,
			mockSetup: func(m *MockJobUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(nil, services.ErrJobNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Job not found",
		},
		{
			name:          "unknown status",
			body:          `{"status":"archived"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockJobUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/jobs/4", bytes.NewBufferString(tt.body)), map[string]string{"id": "4"})
			rr := httptest.NewRecorder()
			NewUpdateJobHandler(m)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestDeleteJobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockJobDeleter(ctrl)
	m.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	m.EXPECT().Delete(gomock.Any(), int64(5)).Return(services.ErrJobNotFound)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/jobs/4", nil), map[string]string{"id": "4"})
	rr := httptest.NewRecorder()
	NewDeleteJobHandler(m)(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Job deleted successfully"}`, rr.Body.String())

	req = withURLParams(httptest.NewRequest(http.MethodDelete, "/api/jobs/5", nil), map[string]string{"id": "5"})
	rr = httptest.NewRecorder()
	NewDeleteJobHandler(m)(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Job not found", decodeError(t, rr))
}
