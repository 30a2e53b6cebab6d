package models

// Application event types published to Kafka
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
	EventApplicationNotesUpdated  = "application.notes_updated"
)

// ApplicationEvent describes a change to an application, keyed by EventID.
type ApplicationEvent struct {
	EventID       string            `json:"event_id"`       // EventID is a unique identifier of the event.
	Type          string            `json:"type"`           // Type is one of the application.* event types.
	ApplicationID int64             `json:"application_id"` // ApplicationID is the affected application.
	JobID         int64             `json:"job_id"`         // JobID is the job applied for.
	UserID        int64             `json:"user_id"`        // UserID is the applicant.
	Status        ApplicationStatus `json:"status"`         // Status is the application status after the change.
	Timestamp     int64             `json:"timestamp"`      // Timestamp is the Unix time (seconds) of the change.
}
