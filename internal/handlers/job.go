package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
)

//go:generate mockgen -source=job.go -destination=mock_job.go -package=handlers

const msgJobNotFound = "Job not found"

// JobLister lists open jobs.
type JobLister interface {
	ListActive(ctx context.Context) ([]models.JobDB, error)
}

// EmployerJobLister lists the jobs of one employer.
type EmployerJobLister interface {
	ListByEmployer(ctx context.Context, employerID int64) ([]models.JobDB, error)
}

// JobGetter fetches a single job.
type JobGetter interface {
	GetByID(ctx context.Context, id int64) (*models.JobDB, error)
}

// JobCreator posts new jobs.
type JobCreator interface {
	Create(ctx context.Context, job models.JobDB) (*models.JobDB, error)
}

// JobUpdater applies partial job updates.
type JobUpdater interface {
	Update(ctx context.Context, id int64, upd models.JobUpdate) (*models.JobDB, error)
}

// JobDeleter removes jobs.
type JobDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// CreateJobRequest represents the JSON body for posting a job.
// Every field must be present; empty strings are accepted.
// swagger:model CreateJobRequest
type CreateJobRequest struct {
	Title        *string    `json:"title" validate:"required"`
	Company      *string    `json:"company" validate:"required"`
	Location     *string    `json:"location" validate:"required"`
	Description  *string    `json:"description" validate:"required"`
	Requirements *string    `json:"requirements" validate:"required"`
	Salary       *string    `json:"salary" validate:"required"`
	JobType      *string    `json:"jobType" validate:"required"`
	EmployerID   *models.ID `json:"employerId" validate:"required" swaggertype:"integer"`
}

// UpdateJobRequest represents the JSON body for a partial job update.
// Keys other than these are ignored.
// swagger:model UpdateJobRequest
type UpdateJobRequest struct {
	Title        *string           `json:"title"`
	Company      *string           `json:"company"`
	Location     *string           `json:"location"`
	Description  *string           `json:"description"`
	Requirements *string           `json:"requirements"`
	Salary       *string           `json:"salary"`
	JobType      *string           `json:"jobType"`
	Status       *models.JobStatus `json:"status" validate:"omitempty,oneof=active closed"`
}

func (req UpdateJobRequest) toUpdate() models.JobUpdate {
	return models.JobUpdate{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		JobType:      req.JobType,
		Status:       req.Status,
	}
}

// NewListJobsHandler returns an HTTP handler listing active jobs.
// @Summary List active jobs
// @Description Returns all active jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} models.JobDB "Active jobs"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs [get]
func NewListJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := svc.ListActive(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(jobs))
	}
}

// NewListEmployerJobsHandler returns an HTTP handler listing an employer's jobs.
// @Summary List employer jobs
// @Description Returns every job of the employer regardless of status, newest first
// @Tags jobs
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {array} models.JobDB "Employer jobs"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/employers/{id}/jobs [get]
func NewListEmployerJobsHandler(svc EmployerJobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employerID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		jobs, err := svc.ListByEmployer(r.Context(), employerID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(jobs))
	}
}

// NewGetJobHandler returns an HTTP handler fetching one job.
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} models.JobDB "Job"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [get]
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgJobNotFound)
			return
		}

		job, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				writeError(w, http.StatusNotFound, msgJobNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// NewCreateJobHandler returns an HTTP handler posting a job.
// @Summary Create job
// @Description Posts a new active job dated now
// @Tags jobs
// @Accept json
// @Produce json
// @Param createJobRequest body handlers.CreateJobRequest true "Job posting"
// @Success 201 {object} models.JobDB "Created job"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs [post]
func NewCreateJobHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateJobRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if msg := validationMessage(req, msgMissingFields); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		job, err := svc.Create(r.Context(), models.JobDB{
			Title:        *req.Title,
			Company:      *req.Company,
			Location:     *req.Location,
			Description:  *req.Description,
			Requirements: *req.Requirements,
			Salary:       *req.Salary,
			JobType:      *req.JobType,
			EmployerID:   req.EmployerID.Int64(),
		})
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, job)
	}
}

// NewUpdateJobHandler returns an HTTP handler updating a job.
// @Summary Update job
// @Description Updates the provided fields only. Unknown keys are ignored.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param updateJobRequest body handlers.UpdateJobRequest true "Fields to update"
// @Success 200 {object} models.JobDB "Updated job"
// @Failure 400 {object} handlers.ErrorResponse "No valid fields to update"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [put]
func NewUpdateJobHandler(svc JobUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgJobNotFound)
			return
		}

		var req UpdateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if msg := validationMessage(req, msgInvalidBody); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		job, err := svc.Update(r.Context(), id, req.toUpdate())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				writeError(w, http.StatusNotFound, msgJobNotFound)
			case errors.Is(err, services.ErrNoFieldsToUpdate):
				writeError(w, http.StatusBadRequest, "No valid fields to update")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

// NewDeleteJobHandler returns an HTTP handler deleting a job.
// @Summary Delete job
// @Description Deletes the job. Applications for it are kept
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} handlers.MessageResponse "Job deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [delete]
func NewDeleteJobHandler(svc JobDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgJobNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				writeError(w, http.StatusNotFound, msgJobNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Job deleted successfully"})
	}
}
