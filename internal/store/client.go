// Package store is the HTTP client for the candidate/job record store.
// Read calls go through a limited retry wrapper; mutating calls are
// sent exactly once, since the store does not guarantee idempotent
// writes and a retried submission would create duplicates.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/dtos"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
)

const (
	requestTimeout = 15 * time.Second
	getRetries     = 2
	retryDelay     = time.Second
)

// UpdateFailed signals that the store rejected or never received a
// mutation. The caller's local state is untouched when it sees one.
type UpdateFailed struct {
	Entity string
	ID     string
	Cause  error
}

func (e *UpdateFailed) Error() string {
	return fmt.Sprintf("update of %s %s failed: %v", e.Entity, e.ID, e.Cause)
}

func (e *UpdateFailed) Unwrap() error { return e.Cause }

// StatusError is a non-2xx response from the store.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("store returned status %d", e.Code)
	}
	return fmt.Sprintf("store returned status %d: %s", e.Code, e.Detail)
}

// Client talks to the record store. The session is injected; the
// client never manages tokens itself.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *auth.Session
}

func New(baseURL string, session *auth.Session) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: requestTimeout},
		session: session,
	}
}

// do sends one request and decodes a JSON response into out (when out
// is non-nil). No retry here; retry policy lives in getJSON.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", c.session.Authorization())
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		detail := ""
		if b, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096)); readErr == nil {
			if json.Unmarshal(b, &apiErr) == nil {
				detail = apiErr.Error
				if detail == "" {
					detail = apiErr.Detail
				}
			}
		}
		return &StatusError{Code: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON is the retry wrapper for idempotent reads: up to two
// retries, one second apart, on transport errors and 5xx responses.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = c.do(ctx, http.MethodGet, path, query, nil, out)
		if err == nil {
			return nil
		}
		var statusErr *StatusError
		retriable := true
		if errors.As(err, &statusErr) {
			retriable = statusErr.Code >= 500
		}
		if !retriable || attempt >= getRetries {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

// Candidate operations

func (c *Client) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	var cand models.Candidate
	if err := c.getJSON(ctx, "/candidates/"+id, nil, &cand); err != nil {
		return nil, err
	}
	return &cand, nil
}

// UpdateCandidate sends a sparse field map. Keys absent from the map
// are left untouched server-side.
func (c *Client) UpdateCandidate(ctx context.Context, id string, payload map[string]interface{}) error {
	if err := c.do(ctx, http.MethodPut, "/candidates/"+id, nil, payload, nil); err != nil {
		return &UpdateFailed{Entity: "candidate", ID: id, Cause: err}
	}
	return nil
}

// UpdateCandidateStatus uses the store's dedicated status endpoint.
// Status changes are query-string encoded, not JSON; the deployed
// backend routes them that way and the client preserves it.
func (c *Client) UpdateCandidateStatus(ctx context.Context, id, status, notes string) (*models.Candidate, error) {
	q := url.Values{}
	q.Set("status", status)
	if notes != "" {
		q.Set("notes", notes)
	}
	var cand models.Candidate
	if err := c.do(ctx, http.MethodPut, "/candidates/"+id+"/status", q, nil, &cand); err != nil {
		return nil, &UpdateFailed{Entity: "candidate", ID: id, Cause: err}
	}
	return &cand, nil
}

func (c *Client) CreateCandidate(ctx context.Context, cand *models.Candidate) (*models.Candidate, error) {
	var created models.Candidate
	if err := c.do(ctx, http.MethodPost, "/candidates", nil, cand, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListAdminCandidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := c.getJSON(ctx, "/admin/candidates", nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *Client) ListJobCandidates(ctx context.Context, jobID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := c.getJSON(ctx, "/hr/candidates/"+jobID, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (c *Client) ListStatusHistory(ctx context.Context, candidateID string) ([]models.StatusHistory, error) {
	var history []models.StatusHistory
	if err := c.getJSON(ctx, "/application-history/"+candidateID, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Job operations

func (c *Client) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	if err := c.getJSON(ctx, "/jobs/"+jobID, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	var created models.Job
	if err := c.do(ctx, http.MethodPost, "/admin/add-job", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) BulkCreateJobs(ctx context.Context, rows []dtos.BulkJobRow) (*dtos.BulkJobsResult, error) {
	var result dtos.BulkJobsResult
	if err := c.do(ctx, http.MethodPost, "/admin/add-jobs-bulk", nil, rows, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateJob(ctx context.Context, jobID string, payload map[string]interface{}) error {
	if err := c.do(ctx, http.MethodPut, "/admin/jobs/"+jobID, nil, payload, nil); err != nil {
		return &UpdateFailed{Entity: "job", ID: jobID, Cause: err}
	}
	return nil
}

func (c *Client) UpdateJobStatus(ctx context.Context, jobID, status string) (*models.Job, error) {
	q := url.Values{}
	q.Set("status", status)
	var job models.Job
	if err := c.do(ctx, http.MethodPut, "/hr/jobs/"+jobID+"/status", q, nil, &job); err != nil {
		return nil, &UpdateFailed{Entity: "job", ID: jobID, Cause: err}
	}
	return &job, nil
}

func (c *Client) ListAdminJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.getJSON(ctx, "/admin/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) ListHRJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.getJSON(ctx, "/hr/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Dashboard aggregates

func (c *Client) AdminDashboard(ctx context.Context) (*dtos.AdminDashboard, error) {
	var d dtos.AdminDashboard
	if err := c.getJSON(ctx, "/admin/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) HRDashboard(ctx context.Context) (*dtos.HRDashboard, error) {
	var d dtos.HRDashboard
	if err := c.getJSON(ctx, "/hr/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
