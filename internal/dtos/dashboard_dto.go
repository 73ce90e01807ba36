package dtos

// AdminDashboard is the aggregate counts object for the admin surface.
type AdminDashboard struct {
	TotalJobs          int64 `json:"total_jobs"`
	OpenJobs           int64 `json:"open_jobs"`
	AllocatedJobs      int64 `json:"allocated_jobs"`
	ClosedJobs         int64 `json:"closed_jobs"`
	SubmittedJobs      int64 `json:"submitted_jobs"`
	TotalCandidates    int64 `json:"total_candidates"`
	SelectedCandidates int64 `json:"selected_candidates"`
	RejectedCandidates int64 `json:"rejected_candidates"`
	HRUsers            int64 `json:"hr_users"`
}

// HRDashboard is the aggregate counts object scoped to one HR user's
// allocated jobs.
type HRDashboard struct {
	TotalJobs             int64 `json:"total_jobs"`
	OpenJobs              int64 `json:"open_jobs"`
	AllocatedJobs         int64 `json:"allocated_jobs"`
	ClosedJobs            int64 `json:"closed_jobs"`
	SubmittedJobs         int64 `json:"submitted_jobs"`
	TotalCandidates       int64 `json:"total_candidates"`
	SelectedCandidates    int64 `json:"selected_candidates"`
	RejectedCandidates    int64 `json:"rejected_candidates"`
	InProgressCandidates  int64 `json:"in_progress_candidates"`
	InterviewedCandidates int64 `json:"interviewed_candidates"`
	AppliedCandidates     int64 `json:"applied_candidates"`
}
