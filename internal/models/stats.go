package models

// EmployerStats aggregates an employer's postings and the applications they received.
// swagger:model EmployerStats
type EmployerStats struct {
	TotalJobs             int64 `json:"totalJobs"`
	ActiveJobs            int64 `json:"activeJobs"`
	TotalApplications     int64 `json:"totalApplications"`
	ReviewedApplications  int64 `json:"reviewedApplications"`
	InterviewedCandidates int64 `json:"interviewedCandidates"`
}

// SeekerStats aggregates a seeker's applications by status.
// swagger:model SeekerStats
type SeekerStats struct {
	TotalApplications    int64 `json:"totalApplications"`
	PendingApplications  int64 `json:"pendingApplications"`
	ReviewedApplications int64 `json:"reviewedApplications"`
	Interviews           int64 `json:"interviews"`
	Offers               int64 `json:"offers"`
}
