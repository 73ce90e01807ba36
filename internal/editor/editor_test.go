package editor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
)

func TestBuildUpdatePayload_Minimality(t *testing.T) {
	hometown := "Nagpur"
	original := &models.Candidate{
		ID:       "c1",
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9999999999",
		Hometown: &hometown,
		Status:   "applied",
	}

	edits := map[string]interface{}{
		"hometown":      "Pune",
		"notice_period": "",
	}

	payload, err := BuildUpdatePayload(original, edits)
	if err != nil {
		t.Fatalf("BuildUpdatePayload: %v", err)
	}

	var keys []string
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if !reflect.DeepEqual(keys, []string{"hometown", "notice_period"}) {
		t.Fatalf("payload keys = %v, want exactly the edited keys", keys)
	}
	if payload["hometown"] != "Pune" {
		t.Errorf("hometown = %v", payload["hometown"])
	}
	if payload["notice_period"] != nil {
		t.Errorf("empty string should normalize to nil, got %v", payload["notice_period"])
	}
}

func TestBuildUpdatePayload_NestedCollectionsPassThrough(t *testing.T) {
	entries := []models.WorkExperienceEntry{{
		Organization:     "Acme",
		Responsibilities: []string{"builds", "reviews"},
	}}
	edits := map[string]interface{}{
		"work_experience_entries":   entries,
		"client_deployment_details": []string{"Client A", "Client B"},
	}

	payload, err := BuildUpdatePayload(&models.Candidate{ID: "c1"}, edits)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(payload["work_experience_entries"], entries) {
		t.Errorf("nested entries were not passed through unchanged")
	}
	if !reflect.DeepEqual(payload["client_deployment_details"], []string{"Client A", "Client B"}) {
		t.Errorf("deployment details were not passed through unchanged")
	}
}

func TestBuildUpdatePayload_AssessmentCoercion(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    interface{}
		wantErr bool
	}{
		{"String three", "3", 3, false},
		{"Empty string clears", "", nil, false},
		{"Nil stays nil", nil, nil, false},
		{"Int passes", 2, 2, false},
		{"JSON float", float64(4), 4, false},
		{"Out of scale high", "5", nil, true},
		{"Out of scale low", "0", nil, true},
		{"Negative", -1, nil, true},
		{"Not a number", "good", nil, true},
		{"Fractional", 2.5, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := BuildUpdatePayload(&models.Candidate{ID: "c1"}, map[string]interface{}{
				"general_attitude_assessment": tt.input,
			})
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("error = %v, want ValidationError", err)
				}
				if vErr.Field != "general_attitude_assessment" {
					t.Errorf("ValidationError.Field = %q", vErr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := payload["general_attitude_assessment"]; got != tt.want {
				t.Errorf("coerced value = %v (%T), want %v", got, got, tt.want)
			}
		})
	}
}

// fakeStore returns a record that differs from whatever was submitted
// so tests can tell a re-fetch from a payload echo.
type fakeStore struct {
	updates []map[string]interface{}
	fetches int
	failPut bool
	stored  models.Candidate
}

func (f *fakeStore) UpdateCandidate(_ context.Context, id string, payload map[string]interface{}) error {
	if f.failPut {
		return fmt.Errorf("store rejected update of %s", id)
	}
	f.updates = append(f.updates, payload)
	return nil
}

func (f *fakeStore) GetCandidate(_ context.Context, id string) (*models.Candidate, error) {
	f.fetches++
	cand := f.stored
	cand.ID = id
	return &cand, nil
}

func TestApplyUpdate_ReturnsRefetchedRecord(t *testing.T) {
	// The store normalizes name casing server-side; the returned record
	// must reflect that, not the raw submission.
	fake := &fakeStore{stored: models.Candidate{Name: "Asha Rao", Status: "applied"}}
	e := New(fake)

	got, err := e.ApplyUpdate(context.Background(), "c1", Payload{"name": "asha rao"})
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if got.Name != "Asha Rao" {
		t.Errorf("returned name = %q, want the store-side value", got.Name)
	}
	if fake.fetches != 1 {
		t.Errorf("record fetched %d times, want 1", fake.fetches)
	}
	if len(fake.updates) != 1 {
		t.Fatalf("store saw %d updates, want 1", len(fake.updates))
	}
}

func TestApplyUpdate_FailureFetchesNothing(t *testing.T) {
	fake := &fakeStore{failPut: true}
	e := New(fake)

	if _, err := e.ApplyUpdate(context.Background(), "c1", Payload{"name": "X"}); err == nil {
		t.Fatal("expected error when the store rejects the update")
	}
	if fake.fetches != 0 {
		t.Errorf("re-fetch happened despite failed update (%d fetches)", fake.fetches)
	}
}
