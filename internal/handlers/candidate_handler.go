package handlers

import (
	"net/http"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/export"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
	"github.com/gin-gonic/gin"
)

// CandidateStore is the candidate-service surface the handler needs.
type CandidateStore interface {
	Create(cand *models.Candidate, createdBy, ownedBy string) (*models.Candidate, error)
	Get(id string) (*models.Candidate, error)
	Update(id string, patch map[string]interface{}, updatedBy string) (*models.Candidate, error)
	UpdateStatus(id, status, notes, updatedBy, ownedBy string) (*models.Candidate, error)
	ListAll() ([]models.Candidate, error)
	ListForJob(jobID, ownedBy string) ([]models.Candidate, error)
	ListForHR(hrID string) ([]models.Candidate, error)
	History(candidateID string) ([]models.StatusHistory, error)
}

type CandidateHandler struct {
	Candidates CandidateStore
}

func NewCandidateHandler(candidates CandidateStore) *CandidateHandler {
	return &CandidateHandler{Candidates: candidates}
}

// ownerScope returns the HR id used to restrict access, empty for admins.
func ownerScope(user *auth.User) string {
	if user.Role == "hr" {
		return user.ID
	}
	return ""
}

// CreateCandidate is POST /candidates
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var cand models.Candidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user := auth.CurrentUser(c)
	created, err := h.Candidates.Create(&cand, user.ID, ownerScope(user))
	if err != nil {
		respondServiceError(c, err, "Failed to create candidate")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCandidate is GET /candidates/:id
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	cand, err := h.Candidates.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch candidate")
		return
	}
	c.JSON(http.StatusOK, cand)
}

// UpdateCandidate is PUT /candidates/:id
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user := auth.CurrentUser(c)
	cand, err := h.Candidates.Update(c.Param("id"), patch, user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to update candidate")
		return
	}
	c.JSON(http.StatusOK, cand)
}

// UpdateCandidateStatus is PUT /candidates/:id/status?status=&notes=
// Parameters arrive query-encoded with an empty body.
func (h *CandidateHandler) UpdateCandidateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status parameter"})
		return
	}

	user := auth.CurrentUser(c)
	cand, err := h.Candidates.UpdateStatus(c.Param("id"), status, c.Query("notes"), user.ID, ownerScope(user))
	if err != nil {
		respondServiceError(c, err, "Failed to update candidate status")
		return
	}
	c.JSON(http.StatusOK, cand)
}

// ListCandidates is GET /candidates, scoped to the caller's role.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	user := auth.CurrentUser(c)

	var (
		candidates []models.Candidate
		err        error
	)
	if user.Role == "hr" {
		candidates, err = h.Candidates.ListForHR(user.ID)
	} else {
		candidates, err = h.Candidates.ListAll()
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// ListAdminCandidates is GET /admin/candidates
func (h *CandidateHandler) ListAdminCandidates(c *gin.Context) {
	candidates, err := h.Candidates.ListAll()
	if err != nil {
		respondServiceError(c, err, "Failed to list candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// ListJobCandidates is GET /hr/candidates/:job_id
func (h *CandidateHandler) ListJobCandidates(c *gin.Context) {
	user := auth.CurrentUser(c)
	candidates, err := h.Candidates.ListForJob(c.Param("job_id"), ownerScope(user))
	if err != nil {
		respondServiceError(c, err, "Failed to list candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// ListHRCandidates is GET /hr/candidates
func (h *CandidateHandler) ListHRCandidates(c *gin.Context) {
	user := auth.CurrentUser(c)
	candidates, err := h.Candidates.ListForHR(user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to list candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// ApplicationHistory is GET /application-history/:candidate_id
func (h *CandidateHandler) ApplicationHistory(c *gin.Context) {
	history, err := h.Candidates.History(c.Param("candidate_id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch application history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// ExportCandidates is GET /admin/candidates/export
func (h *CandidateHandler) ExportCandidates(c *gin.Context) {
	candidates, err := h.Candidates.ListAll()
	if err != nil {
		respondServiceError(c, err, "Failed to list candidates")
		return
	}

	data, err := export.CandidatesToExcel(candidates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="candidates.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
