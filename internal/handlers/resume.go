package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/services"
)

//go:generate mockgen -source=resume.go -destination=mock_resume.go -package=handlers

const msgResumeNotFound = "Resume not found"

// ResumeLister lists a user's resumes.
type ResumeLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error)
}

// ResumeUploader records uploaded resumes.
type ResumeUploader interface {
	Upload(ctx context.Context, userID int64, title string) (*models.ResumeDB, error)
}

// ResumeDeleter removes resumes.
type ResumeDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DefaultResumeSetter switches a user's default resume.
type DefaultResumeSetter interface {
	SetDefault(ctx context.Context, userID, id int64) (*models.ResumeDB, error)
}

// NewListResumesHandler returns an HTTP handler listing a user's resumes.
// @Summary List user resumes
// @Tags resumes
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ResumeDB "Resumes, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/resumes [get]
func NewListResumesHandler(svc ResumeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		resumes, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orEmpty(resumes))
	}
}

// NewUploadResumeHandler returns an HTTP handler recording a resume upload.
// The file itself is not stored; only a generated file name is recorded.
// @Summary Upload resume
// @Description The user's first resume becomes the default one
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param title formData string true "Resume title"
// @Success 201 {object} models.ResumeDB "Created resume"
// @Failure 400 {object} handlers.ErrorResponse "Missing resume title"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/resumes [post]
func NewUploadResumeHandler(svc ResumeUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		resume, err := svc.Upload(r.Context(), userID, r.PostFormValue("title"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, services.ErrMissingResumeTitle):
				writeError(w, http.StatusBadRequest, "Missing resume title")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, resume)
	}
}

// NewDeleteResumeHandler returns an HTTP handler deleting a resume.
// @Summary Delete resume
// @Description Deleting the default resume makes the newest remaining one the default
// @Tags resumes
// @Produce json
// @Param id path int true "Resume ID"
// @Success 200 {object} handlers.MessageResponse "Resume deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "Resume not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/resumes/{id} [delete]
func NewDeleteResumeHandler(svc ResumeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgResumeNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrResumeNotFound):
				writeError(w, http.StatusNotFound, msgResumeNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Resume deleted successfully"})
	}
}

// NewSetDefaultResumeHandler returns an HTTP handler switching the default resume.
// @Summary Set default resume
// @Tags resumes
// @Produce json
// @Param id path int true "User ID"
// @Param resumeId path int true "Resume ID"
// @Success 200 {object} models.ResumeDB "New default resume"
// @Failure 404 {object} handlers.ErrorResponse "Resume not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/resumes/{resumeId}/default [put]
func NewSetDefaultResumeHandler(svc DefaultResumeSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgResumeNotFound)
			return
		}
		resumeID, ok := pathID(r, "resumeId")
		if !ok {
			writeError(w, http.StatusNotFound, msgResumeNotFound)
			return
		}

		resume, err := svc.SetDefault(r.Context(), userID, resumeID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrResumeNotFound):
				writeError(w, http.StatusNotFound, msgResumeNotFound)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, resume)
	}
}
