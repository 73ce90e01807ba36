package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the referenced record does not exist
// (or is not visible to the requesting user).
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus rejects a status outside the fixed enum.
var ErrInvalidStatus = errors.New("invalid status")

// Job fields a sparse update may never touch.
var protectedJobFields = map[string]bool{
	"id":          true,
	"job_id":      true,
	"uploaded_by": true,
	"created_at":  true,
	"updated_at":  true,
}

// Updatable job columns; unknown keys in a patch are dropped.
var jobUpdateColumns = map[string]bool{
	"title":          true,
	"description":    true,
	"location":       true,
	"salary_package": true,
	"source_company": true,
	"assigned_hr":    true,
	"status":         true,
	"opening_date":   true,
}

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// newJobID builds the human-visible job identifier: jb + MMDDHHMM + a
// two-digit suffix.
func newJobID() string {
	return fmt.Sprintf("jb%s%02d", time.Now().Format("01021504"), 10+rand.Intn(90))
}

// CreateJob records a single manually entered opening. New jobs start
// open; allocation is a separate step.
func (s *JobService) CreateJob(req *dtos.JobCreationRequest, uploadedBy string) (*models.Job, error) {
	source := req.SourceCompany
	if source == "" {
		source = "Manual Entry"
	}
	job := &models.Job{
		ID:            uuid.NewString(),
		JobID:         newJobID(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		SalaryPackage: req.SalaryPackage,
		SourceCompany: source,
		UploadedBy:    uploadedBy,
		AssignedHR:    req.AssignedHR,
		Status:        workflow.JobOpen,
		OpeningDate:   time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// BulkCreateJobs records every row of a CSV import, mapping the ctc
// column onto salary_package. Returns the number of jobs added. The
// operation is not idempotent; callers debounce re-submission.
func (s *JobService) BulkCreateJobs(rows []dtos.BulkJobRow, uploadedBy string) (int, error) {
	added := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			job := &models.Job{
				ID:            uuid.NewString(),
				JobID:         newJobID(),
				Title:         row.Title,
				Description:   row.Description,
				Location:      row.Location,
				SalaryPackage: row.CTC,
				SourceCompany: "CSV Upload",
				UploadedBy:    uploadedBy,
				AssignedHR:    row.AssignedHR,
				Status:        workflow.JobOpen,
				OpeningDate:   time.Now(),
			}
			if err := tx.Create(job).Error; err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// JobFilter narrows admin job listings.
type JobFilter struct {
	Status          string
	OpeningDateFrom time.Time
	OpeningDateTo   time.Time
	AssignedHR      string
}

// ListJobs returns all jobs matching the filter, newest first, with
// assigned_hr_name filled from the users table.
func (s *JobService) ListJobs(filter JobFilter) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.OpeningDateFrom.IsZero() {
		q = q.Where("opening_date >= ?", filter.OpeningDateFrom)
	}
	if !filter.OpeningDateTo.IsZero() {
		// Inclusive: the whole "to" day counts.
		q = q.Where("opening_date <= ?", filter.OpeningDateTo.Add(24*time.Hour-time.Nanosecond))
	}
	if filter.AssignedHR != "" {
		q = q.Where("assigned_hr = ?", filter.AssignedHR)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	s.fillHRNames(jobs)
	return jobs, nil
}

// ListHRJobs returns the jobs allocated to one HR user.
func (s *JobService) ListHRJobs(hrID, status string) ([]models.Job, error) {
	q := s.DB.Where("assigned_hr = ?", hrID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJob(jobID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("job_id = ?", jobID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies a sparse patch. Protected and unknown keys are
// dropped; a status key must be a valid job status.
func (s *JobService) UpdateJob(jobID string, patch map[string]interface{}) (*models.Job, error) {
	clean := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		if protectedJobFields[k] || !jobUpdateColumns[k] {
			continue
		}
		if k == "status" {
			status, _ := v.(string)
			if !workflow.ValidJobStatus(status) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, v)
			}
		}
		clean[k] = v
	}

	if len(clean) > 0 {
		res := s.DB.Model(&models.Job{}).Where("job_id = ?", jobID).Updates(clean)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetJob(jobID)
}

// UpdateJobStatus changes the status of a job allocated to the given
// HR user and returns the post-transition record.
func (s *JobService) UpdateJobStatus(jobID, status, hrID string) (*models.Job, error) {
	if !workflow.ValidJobStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	res := s.DB.Model(&models.Job{}).
		Where("job_id = ? AND assigned_hr = ?", jobID, hrID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetJob(jobID)
}

// AllocateJob assigns a job to an HR user and moves it to allocated.
func (s *JobService) AllocateJob(jobID, hrID string) (*models.Job, error) {
	var hr models.User
	err := s.DB.Where("id = ? AND role = ?", hrID, "hr").First(&hr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: hr user %s", ErrNotFound, hrID)
	}
	if err != nil {
		return nil, err
	}

	res := s.DB.Model(&models.Job{}).Where("job_id = ?", jobID).
		Updates(map[string]interface{}{"assigned_hr": hrID, "status": workflow.JobAllocated})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetJob(jobID)
}

// ListHRUsers returns the HR users jobs can be allocated to.
func (s *JobService) ListHRUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", "hr").Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *JobService) fillHRNames(jobs []models.Job) {
	var users []models.User
	if err := s.DB.Where("role = ?", "hr").Find(&users).Error; err != nil {
		return
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range jobs {
		if jobs[i].AssignedHR != nil {
			if name, ok := names[*jobs[i].AssignedHR]; ok {
				jobs[i].AssignedHRName = name
			} else {
				jobs[i].AssignedHRName = "Unknown"
			}
		}
	}
}
