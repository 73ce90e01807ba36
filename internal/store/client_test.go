package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
)

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.Candidate{ID: "c1"})
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "tok-123"})
	if _, err := client.GetCandidate(context.Background(), "c1"); err != nil {
		t.Fatalf("GetCandidate: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClient_GetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.Candidate{ID: "c1", Name: "Asha"})
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "t"})
	cand, err := client.GetCandidate(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetCandidate after retries: %v", err)
	}
	if cand.Name != "Asha" {
		t.Errorf("candidate name = %q", cand.Name)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3 (1 + 2 retries)", got)
	}
}

func TestClient_GetDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "t"})
	_, err := client.GetCandidate(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Fatalf("error = %v, want 404 StatusError", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1 (4xx is not retried)", got)
	}
}

func TestClient_MutationsAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "t"})
	err := client.UpdateCandidate(context.Background(), "c1", map[string]interface{}{"name": "X"})
	if err == nil {
		t.Fatal("expected error for failed update")
	}
	var failed *UpdateFailed
	if !errors.As(err, &failed) {
		t.Fatalf("error = %T, want *UpdateFailed", err)
	}
	if failed.Entity != "candidate" || failed.ID != "c1" {
		t.Errorf("UpdateFailed = %+v", failed)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1 (writes are sent exactly once)", got)
	}
}

func TestClient_StatusUpdateIsQueryEncoded(t *testing.T) {
	var gotMethod, gotPath, gotStatus, gotNotes string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotStatus = r.URL.Query().Get("status")
		gotNotes = r.URL.Query().Get("notes")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(models.Candidate{ID: "c1", Status: "selected"})
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "t"})
	cand, err := client.UpdateCandidateStatus(context.Background(), "c1", "selected", "great interview")
	if err != nil {
		t.Fatalf("UpdateCandidateStatus: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/candidates/c1/status" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotStatus != "selected" || gotNotes != "great interview" {
		t.Errorf("query = status %q notes %q", gotStatus, gotNotes)
	}
	if len(gotBody) != 0 {
		t.Errorf("status update carried a body: %q", gotBody)
	}
	if cand.Status != "selected" {
		t.Errorf("returned status = %q", cand.Status)
	}
}

func TestClient_UpdateSendsSparsePayload(t *testing.T) {
	var decoded map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&decoded)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, &auth.Session{Token: "t"})
	payload := map[string]interface{}{"hometown": "Nagpur", "notice_period": nil}
	if err := client.UpdateCandidate(context.Background(), "c1", payload); err != nil {
		t.Fatalf("UpdateCandidate: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("server received %d keys, want 2: %v", len(decoded), decoded)
	}
	if decoded["hometown"] != "Nagpur" {
		t.Errorf("hometown = %v", decoded["hometown"])
	}
	if v, present := decoded["notice_period"]; !present || v != nil {
		t.Errorf("notice_period = %v (present=%v), want explicit null", v, present)
	}
}
