package services

import (
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/workflow"
	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// AdminCounts aggregates portal-wide job and candidate totals.
func (s *DashboardService) AdminCounts() (*dtos.AdminDashboard, error) {
	d := &dtos.AdminDashboard{}

	jobCounts := []struct {
		status string
		dest   *int64
	}{
		{"", &d.TotalJobs},
		{workflow.JobOpen, &d.OpenJobs},
		{workflow.JobAllocated, &d.AllocatedJobs},
		{workflow.JobClosed, &d.ClosedJobs},
		{workflow.JobSubmit, &d.SubmittedJobs},
	}
	for _, c := range jobCounts {
		q := s.DB.Model(&models.Job{})
		if c.status != "" {
			q = q.Where("status = ?", c.status)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	candCounts := []struct {
		status string
		dest   *int64
	}{
		{"", &d.TotalCandidates},
		{workflow.CandidateSelected, &d.SelectedCandidates},
		{workflow.CandidateRejected, &d.RejectedCandidates},
	}
	for _, c := range candCounts {
		q := s.DB.Model(&models.Candidate{})
		if c.status != "" {
			q = q.Where("status = ?", c.status)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(&models.User{}).Where("role = ?", "hr").Count(&d.HRUsers).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// HRCounts aggregates totals scoped to one HR user's allocated jobs.
func (s *DashboardService) HRCounts(hrID string) (*dtos.HRDashboard, error) {
	d := &dtos.HRDashboard{}

	jobCounts := []struct {
		status string
		dest   *int64
	}{
		{"", &d.TotalJobs},
		{workflow.JobOpen, &d.OpenJobs},
		{workflow.JobAllocated, &d.AllocatedJobs},
		{workflow.JobClosed, &d.ClosedJobs},
		{workflow.JobSubmit, &d.SubmittedJobs},
	}
	for _, c := range jobCounts {
		q := s.DB.Model(&models.Job{}).Where("assigned_hr = ?", hrID)
		if c.status != "" {
			q = q.Where("status = ?", c.status)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var jobIDs []string
	if err := s.DB.Model(&models.Job{}).Where("assigned_hr = ?", hrID).
		Pluck("job_id", &jobIDs).Error; err != nil {
		return nil, err
	}
	if len(jobIDs) == 0 {
		return d, nil
	}

	candCounts := []struct {
		status string
		dest   *int64
	}{
		{"", &d.TotalCandidates},
		{workflow.CandidateSelected, &d.SelectedCandidates},
		{workflow.CandidateRejected, &d.RejectedCandidates},
		{workflow.CandidateInProgress, &d.InProgressCandidates},
		{workflow.CandidateInterviewed, &d.InterviewedCandidates},
		{workflow.CandidateApplied, &d.AppliedCandidates},
	}
	for _, c := range candCounts {
		q := s.DB.Model(&models.Candidate{}).Where("job_id IN ?", jobIDs)
		if c.status != "" {
			q = q.Where("status = ?", c.status)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return d, nil
}
