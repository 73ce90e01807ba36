// Package workflow owns the candidate and job status lifecycles. The
// enums are closed but deliberately unordered: any member is reachable
// from any other, so a transition is just a validated assignment plus
// the store's dedicated status endpoint.
package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
)

// Candidate statuses.
const (
	CandidateApplied     = "applied"
	CandidateInProgress  = "in_progress"
	CandidateInterviewed = "interviewed"
	CandidateSelected    = "selected"
	CandidateRejected    = "rejected"
)

// Job statuses.
const (
	JobOpen      = "open"
	JobAllocated = "allocated"
	JobClosed    = "closed"
	JobSubmit    = "submit"
)

var (
	CandidateStatuses = []string{
		CandidateApplied, CandidateInProgress, CandidateInterviewed,
		CandidateSelected, CandidateRejected,
	}
	JobStatuses = []string{JobOpen, JobAllocated, JobClosed, JobSubmit}
)

// InvalidStatus rejects a status outside the fixed enum.
type InvalidStatus struct {
	Status  string
	Allowed []string
}

func (e *InvalidStatus) Error() string {
	return fmt.Sprintf("invalid status %q, allowed: %s", e.Status, strings.Join(e.Allowed, ", "))
}

// ValidCandidateStatus reports enum membership.
func ValidCandidateStatus(status string) bool {
	return contains(CandidateStatuses, status)
}

func ValidJobStatus(status string) bool {
	return contains(JobStatuses, status)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// StatusStore is the slice of the record store the workflow needs.
// *store.Client satisfies it.
type StatusStore interface {
	UpdateCandidateStatus(ctx context.Context, id, status, notes string) (*models.Candidate, error)
	UpdateJobStatus(ctx context.Context, jobID, status string) (*models.Job, error)
}

type Workflow struct {
	Store StatusStore
}

func New(store StatusStore) *Workflow {
	return &Workflow{Store: store}
}

// ApplyCandidateStatus validates the target status, pushes the
// transition (with its optional note) to the store, and returns the
// authoritative post-transition record. The surrounding list refresh
// is the caller's concern.
func (w *Workflow) ApplyCandidateStatus(ctx context.Context, candidateID, next, notes string) (*models.Candidate, error) {
	if !ValidCandidateStatus(next) {
		return nil, &InvalidStatus{Status: next, Allowed: CandidateStatuses}
	}
	return w.Store.UpdateCandidateStatus(ctx, candidateID, next, notes)
}

// ApplyJobStatus is the job-side counterpart. Job transitions carry no
// note; the store's endpoint takes only the status.
func (w *Workflow) ApplyJobStatus(ctx context.Context, jobID, next string) (*models.Job, error) {
	if !ValidJobStatus(next) {
		return nil, &InvalidStatus{Status: next, Allowed: JobStatuses}
	}
	return w.Store.UpdateJobStatus(ctx, jobID, next)
}
