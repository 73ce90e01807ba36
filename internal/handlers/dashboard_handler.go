package handlers

import (
	"net/http"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
	"github.com/gin-gonic/gin"
)

// DashboardStore aggregates the counters shown on the dashboards.
type DashboardStore interface {
	AdminCounts() (*dtos.AdminDashboard, error)
	HRCounts(hrID string) (*dtos.HRDashboard, error)
}

type DashboardHandler struct {
	Dashboards DashboardStore
}

func NewDashboardHandler(dashboards DashboardStore) *DashboardHandler {
	return &DashboardHandler{Dashboards: dashboards}
}

// AdminDashboard is GET /admin/dashboard
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	counts, err := h.Dashboards.AdminCounts()
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// HRDashboard is GET /hr/dashboard
func (h *DashboardHandler) HRDashboard(c *gin.Context) {
	user := auth.CurrentUser(c)
	counts, err := h.Dashboards.HRCounts(user.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, counts)
}
