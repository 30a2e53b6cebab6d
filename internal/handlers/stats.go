package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-board/internal/models"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=handlers

// EmployerStatsGetter computes employer dashboard counters.
type EmployerStatsGetter interface {
	Employer(ctx context.Context, employerID int64) (*models.EmployerStats, error)
}

// SeekerStatsGetter computes seeker dashboard counters.
type SeekerStatsGetter interface {
	Seeker(ctx context.Context, userID int64) (*models.SeekerStats, error)
}

// NewEmployerStatsHandler returns an HTTP handler with employer counters.
// @Summary Employer stats
// @Description An employer without jobs gets all zeros
// @Tags stats
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} models.EmployerStats "Counters"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/employers/{id}/stats [get]
func NewEmployerStatsHandler(svc EmployerStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employerID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		stats, err := svc.Employer(r.Context(), employerID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewSeekerStatsHandler returns an HTTP handler with seeker counters.
// @Summary Seeker stats
// @Tags stats
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.SeekerStats "Counters"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/stats [get]
func NewSeekerStatsHandler(svc SeekerStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		stats, err := svc.Seeker(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
