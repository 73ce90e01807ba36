package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/services"
	"github.com/gin-gonic/gin"
)

// JobStore is the job-service surface the handler needs.
// *services.JobService satisfies it; tests supply fakes.
type JobStore interface {
	CreateJob(req *dtos.JobCreationRequest, uploadedBy string) (*models.Job, error)
	BulkCreateJobs(rows []dtos.BulkJobRow, uploadedBy string) (int, error)
	ListJobs(filter services.JobFilter) ([]models.Job, error)
	ListHRJobs(hrID, status string) ([]models.Job, error)
	GetJob(jobID string) (*models.Job, error)
	UpdateJob(jobID string, patch map[string]interface{}) (*models.Job, error)
	UpdateJobStatus(jobID, status, hrID string) (*models.Job, error)
	AllocateJob(jobID, hrID string) (*models.Job, error)
	ListHRUsers() ([]models.User, error)
}

type JobHandler struct {
	Jobs JobStore
}

func NewJobHandler(jobs JobStore) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// CreateJob is POST /admin/add-job
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user := auth.CurrentUser(c)
	job, err := h.Jobs.CreateJob(&req, user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// BulkCreateJobs is POST /admin/add-jobs-bulk
func (h *JobHandler) BulkCreateJobs(c *gin.Context) {
	var rows []dtos.BulkJobRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user := auth.CurrentUser(c)
	added, err := h.Jobs.BulkCreateJobs(rows, user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to add jobs")
		return
	}
	c.JSON(http.StatusCreated, dtos.BulkJobsResult{
		Message: fmt.Sprintf("Successfully added %d jobs", added),
	})
}

// ListJobs is GET /admin/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := services.JobFilter{
		Status:     c.Query("status"),
		AssignedHR: c.Query("assigned_hr"),
	}
	if from := c.Query("opening_date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opening_date_from"})
			return
		}
		filter.OpeningDateFrom = t
	}
	if to := c.Query("opening_date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opening_date_to"})
			return
		}
		filter.OpeningDateTo = t
	}

	jobs, err := h.Jobs.ListJobs(filter)
	if err != nil {
		respondServiceError(c, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListHRJobs is GET /hr/jobs
func (h *JobHandler) ListHRJobs(c *gin.Context) {
	user := auth.CurrentUser(c)
	jobs, err := h.Jobs.ListHRJobs(user.ID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /jobs/:job_id
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.GetJob(c.Param("job_id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob is PUT /admin/jobs/:job_id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateJob(c.Param("job_id"), patch)
	if err != nil {
		respondServiceError(c, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus is PUT /hr/jobs/:job_id/status?status=
// Status rides in the query string, not a JSON body; the deployed
// frontend sends it that way.
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status parameter"})
		return
	}

	user := auth.CurrentUser(c)
	job, err := h.Jobs.UpdateJobStatus(c.Param("job_id"), status, user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, job)
}

// AllocateJob is PUT /admin/jobs/:job_id/allocate?hr_id=
func (h *JobHandler) AllocateJob(c *gin.Context) {
	hrID := c.Query("hr_id")
	if hrID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing hr_id parameter"})
		return
	}

	job, err := h.Jobs.AllocateJob(c.Param("job_id"), hrID)
	if err != nil {
		respondServiceError(c, err, "Failed to allocate job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListHRUsers is GET /admin/users
func (h *JobHandler) ListHRUsers(c *gin.Context) {
	users, err := h.Jobs.ListHRUsers()
	if err != nil {
		respondServiceError(c, err, "Failed to list HR users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback + ": " + err.Error()})
	}
}
