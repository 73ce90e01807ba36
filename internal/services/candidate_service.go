package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotAuthorized is returned when a job is not allocated to the
// requesting HR user.
var ErrNotAuthorized = errors.New("not authorized for this job")

// jsonColumns are candidate columns stored as jsonb; patch values for
// them arrive as decoded JSON and are re-marshalled before the update.
var jsonColumns = map[string]bool{
	"skill_assessments":         true,
	"work_experience_entries":   true,
	"client_deployment_details": true,
}

type CandidateService struct {
	DB *gorm.DB
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{DB: db}
}

// Create stores a new candidate against a job. HR users may only add
// candidates to jobs allocated to them; admins pass ownedBy == "".
func (s *CandidateService) Create(cand *models.Candidate, createdBy, ownedBy string) (*models.Candidate, error) {
	if ownedBy != "" {
		var count int64
		if err := s.DB.Model(&models.Job{}).
			Where("job_id = ? AND assigned_hr = ?", cand.JobID, ownedBy).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotAuthorized
		}
	} else {
		var count int64
		if err := s.DB.Model(&models.Job{}).Where("job_id = ?", cand.JobID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, cand.JobID)
		}
	}

	cand.ID = uuid.NewString()
	if cand.Status == "" {
		cand.Status = workflow.CandidateApplied
	}
	if !workflow.ValidCandidateStatus(cand.Status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, cand.Status)
	}
	if cand.AppliedDate == nil {
		d := time.Now().Format("2006-01-02")
		cand.AppliedDate = &d
	}
	if createdBy != "" {
		cand.CreatedBy = &createdBy
	}

	if err := s.DB.Create(cand).Error; err != nil {
		return nil, err
	}
	return s.Get(cand.ID)
}

func (s *CandidateService) Get(id string) (*models.Candidate, error) {
	var cand models.Candidate
	err := s.DB.Where("id = ?", id).First(&cand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

// Update applies a sparse patch and returns the refreshed record.
// Unknown keys (including identifiers the label fallback may have
// invented) are ignored; immutable fields never change; empty strings
// arriving for optional fields are stored as null.
func (s *CandidateService) Update(id string, patch map[string]interface{}, updatedBy string) (*models.Candidate, error) {
	columns := models.CandidateUpdateColumns()
	clean := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		if !columns[k] {
			continue
		}
		if k == "status" {
			status, _ := v.(string)
			if !workflow.ValidCandidateStatus(status) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, v)
			}
		}
		if s, ok := v.(string); ok && s == "" {
			v = nil
		}
		if jsonColumns[k] && v != nil {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			v = string(b)
		}
		clean[k] = v
	}
	if updatedBy != "" {
		clean["last_updated_by"] = updatedBy
	}

	res := s.DB.Model(&models.Candidate{}).Where("id = ?", id).Updates(clean)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish "no such candidate" from "nothing changed".
		if _, err := s.Get(id); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// UpdateStatus performs a status transition, stamps the note and the
// acting user, and appends a history row. When ownedBy is non-empty
// the candidate's job must be allocated to that HR user.
func (s *CandidateService) UpdateStatus(id, status, notes, updatedBy, ownedBy string) (*models.Candidate, error) {
	if !workflow.ValidCandidateStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	cand, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if ownedBy != "" {
		var count int64
		if err := s.DB.Model(&models.Job{}).
			Where("job_id = ? AND assigned_hr = ?", cand.JobID, ownedBy).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotAuthorized
		}
	}

	oldStatus := cand.Status
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":          status,
			"notes":           nullable(notes),
			"last_updated_by": updatedBy,
		}
		if err := tx.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		history := models.StatusHistory{
			ID:          uuid.NewString(),
			CandidateID: id,
			JobID:       cand.JobID,
			OldStatus:   oldStatus,
			NewStatus:   status,
			UpdatedBy:   updatedBy,
			Timestamp:   time.Now().UTC(),
			Comment:     nullable(notes),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// ListAll returns every candidate, newest first, enriched with the
// owning job's title.
func (s *CandidateService) ListAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := s.DB.Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	if err := s.fillJobTitles(candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// ListForJob returns the candidates of one job, which must be
// allocated to the requesting HR user when ownedBy is non-empty.
func (s *CandidateService) ListForJob(jobID, ownedBy string) ([]models.Candidate, error) {
	q := s.DB.Model(&models.Job{}).Where("job_id = ?", jobID)
	if ownedBy != "" {
		q = q.Where("assigned_hr = ?", ownedBy)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var candidates []models.Candidate
	if err := s.DB.Where("job_id = ?", jobID).Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	if err := s.fillJobTitles(candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// ListForHR returns candidates across every job allocated to one HR.
func (s *CandidateService) ListForHR(hrID string) ([]models.Candidate, error) {
	var jobIDs []string
	if err := s.DB.Model(&models.Job{}).Where("assigned_hr = ?", hrID).
		Pluck("job_id", &jobIDs).Error; err != nil {
		return nil, err
	}
	if len(jobIDs) == 0 {
		return []models.Candidate{}, nil
	}

	var candidates []models.Candidate
	if err := s.DB.Where("job_id IN ?", jobIDs).Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	if err := s.fillJobTitles(candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// History returns a candidate's status transitions, newest first.
func (s *CandidateService) History(candidateID string) ([]models.StatusHistory, error) {
	var history []models.StatusHistory
	err := s.DB.Where("candidate_id = ?", candidateID).
		Order("timestamp DESC").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// fillJobTitles backfills the display title fields from the owning
// job, without persisting them.
func (s *CandidateService) fillJobTitles(candidates []models.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return err
	}
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		titles[j.JobID] = j.Title
	}
	for i := range candidates {
		title, ok := titles[candidates[i].JobID]
		if !ok {
			title = "Unknown Job"
		}
		candidates[i].AppliedFor = title
		candidates[i].JobTitle = title
		if candidates[i].TitlePosition == nil && title != "Unknown Job" {
			t := title
			candidates[i].TitlePosition = &t
		}
		if candidates[i].RoleAppliedFor == nil && title != "Unknown Job" {
			t := title
			candidates[i].RoleAppliedFor = &t
		}
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
