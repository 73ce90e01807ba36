package models

import (
	"testing"
)

func TestSkillAssessmentListValueNil(t *testing.T) {
	var l SkillAssessmentList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil list Value() = %v, want []", v)
	}
}

func TestSkillAssessmentListRoundTrip(t *testing.T) {
	in := SkillAssessmentList{
		{SkillName: "Go", YearsOfExperience: "4", LastUsedYear: "2026", VendorSMEAssessmentScore: "3"},
	}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var out SkillAssessmentList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(out) != 1 || out[0].SkillName != "Go" || out[0].VendorSMEAssessmentScore != "3" {
		t.Errorf("round trip got %+v", out)
	}
}

func TestWorkExperienceListScanBytes(t *testing.T) {
	// Postgres drivers hand jsonb back as []byte.
	raw := []byte(`[{"organization":"Acme","responsibilities":["built APIs","ran releases"]}]`)

	var out WorkExperienceList
	if err := out.Scan(raw); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(out) != 1 || out[0].Organization != "Acme" {
		t.Fatalf("Scan got %+v", out)
	}
	if len(out[0].Responsibilities) != 2 {
		t.Errorf("responsibilities = %v", out[0].Responsibilities)
	}
}

func TestStringListScanNil(t *testing.T) {
	out := StringList{"keep"}
	if err := out.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("Scan(nil) modified destination: %v", out)
	}
}

func TestScanJSONRejectsUnknownType(t *testing.T) {
	var out StringList
	if err := out.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestAssessmentLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{1, "Below Average"},
		{2, "Average"},
		{3, "Good"},
		{4, "Excellent"},
		{0, ""},
		{5, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := AssessmentLabel(tt.score); got != tt.want {
			t.Errorf("AssessmentLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCandidateUpdateColumns(t *testing.T) {
	cols := CandidateUpdateColumns()

	for _, want := range []string{
		"name", "email", "phone", "status", "notes",
		"pan_number", "skill_assessments", "work_experience_entries",
		"client_deployment_details", "linkedin", "github",
		"general_attitude_assessment", "oral_communication_assessment",
		"last_updated_by",
	} {
		if !cols[want] {
			t.Errorf("missing updatable column %q", want)
		}
	}

	for _, excluded := range []string{
		"id", "created_at", "updated_at", "job_id", "applied_date",
		"created_by", "applied_for", "job_title",
	} {
		if cols[excluded] {
			t.Errorf("column %q must not be updatable", excluded)
		}
	}
}
