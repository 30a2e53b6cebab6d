package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
)

//go:generate mockgen -source=application.go -destination=mock_application.go -package=handlers

const msgApplicationNotFound = "Application not found"

// UserApplicationLister lists a seeker's applications.
type UserApplicationLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.ApplicationDB, error)
}

// JobApplicationLister lists the applicants of a job.
type JobApplicationLister interface {
	ListByJob(ctx context.Context, jobID int64) ([]models.JobApplicationDB, error)
}

// Applier submits applications.
type Applier interface {
	Apply(ctx context.Context, jobID, userID, resumeID int64) (*models.ApplicationDB, error)
}

// ApplicationStatusUpdater changes application statuses.
type ApplicationStatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error)
}

// ApplicationNotesUpdater changes employer notes on applications.
type ApplicationNotesUpdater interface {
	UpdateNotes(ctx context.Context, id int64, notes *string) (*models.ApplicationDB, error)
}

// ApplyRequest represents the JSON body for applying to a job
// swagger:model ApplyRequest
type ApplyRequest struct {
	// Applicant id
	// required: true
	UserID models.ID `json:"userId" validate:"required" swaggertype:"integer"`

	// Resume to attach
	// required: true
	ResumeID models.ID `json:"resumeId" validate:"required" swaggertype:"integer"`
}

// UpdateStatusRequest represents the JSON body for an application status change
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	// New status
	// required: true
	// enum: pending,reviewed,interviewed,offered,rejected
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed interviewed offered rejected"`
}

// UpdateNotesRequest represents the JSON body for employer notes.
// A missing or null value clears the notes.
// swagger:model UpdateNotesRequest
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// NewListUserApplicationsHandler returns an HTTP handler listing a seeker's applications.
// @Summary List user applications
// @Tags applications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ApplicationDB "Applications, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/applications [get]
func NewListUserApplicationsHandler(svc UserApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		apps, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(apps))
	}
}

// NewListJobApplicationsHandler returns an HTTP handler listing a job's applicants.
// @Summary List job applications
// @Description Returns the job's applications with applicant username and email, newest first
// @Tags applications
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {array} models.JobApplicationDB "Applications"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs/{id}/applications [get]
func NewListJobApplicationsHandler(svc JobApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		apps, err := svc.ListByJob(r.Context(), jobID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(apps))
	}
}

// NewApplyHandler returns an HTTP handler submitting an application.
// @Summary Apply for job
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param applyRequest body handlers.ApplyRequest true "Applicant and resume"
// @Success 201 {object} models.ApplicationDB "Pending application"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 404 {object} handlers.ErrorResponse "Job not found"
// @Failure 409 {object} handlers.ErrorResponse "You have already applied for this job"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/jobs/{id}/apply [post]
func NewApplyHandler(svc Applier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgJobNotFound)
			return
		}

		var req ApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if msg := validationMessage(req, msgMissingFields); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		app, err := svc.Apply(r.Context(), jobID, req.UserID.Int64(), req.ResumeID.Int64())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				writeError(w, http.StatusNotFound, msgJobNotFound)
			case errors.Is(err, services.ErrAlreadyApplied):
				writeError(w, http.StatusConflict, "You have already applied for this job")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, app)
	}
}

// NewUpdateApplicationStatusHandler returns an HTTP handler changing an application status.
// @Summary Update application status
// @Description Any status may follow any other
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param updateStatusRequest body handlers.UpdateStatusRequest true "New status"
// @Success 200 {object} models.ApplicationDB "Updated application"
// @Failure 400 {object} handlers.ErrorResponse "Missing status"
// @Failure 404 {object} handlers.ErrorResponse "Application not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/applications/{id}/status [put]
func NewUpdateApplicationStatusHandler(svc ApplicationStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgApplicationNotFound)
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if msg := validationMessage(req, "Missing status"); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		app, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrApplicationNotFound):
				writeError(w, http.StatusNotFound, msgApplicationNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, app)
	}
}

// NewUpdateApplicationNotesHandler returns an HTTP handler replacing employer notes.
// @Summary Update application notes
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param updateNotesRequest body handlers.UpdateNotesRequest true "Notes, null clears"
// @Success 200 {object} models.ApplicationDB "Updated application"
// @Failure 404 {object} handlers.ErrorResponse "Application not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/applications/{id}/notes [put]
func NewUpdateApplicationNotesHandler(svc ApplicationNotesUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgApplicationNotFound)
			return
		}

		var req UpdateNotesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		app, err := svc.UpdateNotes(r.Context(), id, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrApplicationNotFound):
				writeError(w, http.StatusNotFound, msgApplicationNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, app)
	}
}
